package tui

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePicker      // preset picker overlay
)

// MessageType determines the styling of the message line.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// exportDoneMsg reports the outcome of an HTML export.
type exportDoneMsg struct {
	path string
	err  error
}
