package tui

type state int

const (
	loadingState state = iota
	modulesState
	settingsState
	errorState
)
