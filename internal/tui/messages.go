package tui

type commandsLoadedMsg struct {
	err error
}

type authDoneMsg struct {
	err error
}

type commandSavedMsg struct {
	err error
}

type commandDeletedMsg struct {
	err error
}

type favoriteToggledMsg struct {
	err error
}

type noticeMsg struct {
	text    string
	isError bool
}
