package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusNotifier implements [client.Notifier] by forwarding notices into the
// running Bubble Tea program, where they land on the dashboard status line.
//
// Stores emit notices from command goroutines, so delivery goes through
// Program.Send rather than shared model state. Notices raised before Attach
// are buffered and flushed on attach.
type StatusNotifier struct {
	mu      sync.Mutex
	program *tea.Program
	pending []noticeMsg
}

func NewStatusNotifier() *StatusNotifier {
	return &StatusNotifier{}
}

// Attach binds the notifier to a running program and flushes buffered
// notices.
func (n *StatusNotifier) Attach(program *tea.Program) {
	n.mu.Lock()
	n.program = program
	pending := n.pending
	n.pending = nil
	n.mu.Unlock()

	for _, notice := range pending {
		program.Send(notice)
	}
}

func (n *StatusNotifier) Info(message string) {
	n.send(noticeMsg{text: message})
}

func (n *StatusNotifier) Error(message string) {
	n.send(noticeMsg{text: message, isError: true})
}

func (n *StatusNotifier) send(notice noticeMsg) {
	n.mu.Lock()
	program := n.program
	if program == nil {
		n.pending = append(n.pending, notice)
	}
	n.mu.Unlock()

	if program != nil {
		program.Send(notice)
	}
}
