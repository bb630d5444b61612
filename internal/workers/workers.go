// Package workers provides a small runner for detached background tasks.
//
// The telemetry reporter uses it for fire-and-forget activity logging: the
// caller's control flow never joins the task, but Wait lets shutdown code and
// tests drain everything that was started.
package workers

import (
	"sync"

	"github.com/promptdeck/promptdeck/internal/logger"
)

type Runner struct {
	wg sync.WaitGroup

	logger *logger.Logger
}

func NewRunner(logger *logger.Logger) *Runner {
	return &Runner{logger: logger}
}

// Go starts task on its own goroutine. A panic inside the task is recovered
// and logged under name; it never takes the process down.
func (r *Runner) Go(name string, task func()) {
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error().Str("task", name).Any("panic", rec).Msg("detached task panicked")
			}
		}()

		task()
	}()
}

// Wait blocks until every task started so far has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}
