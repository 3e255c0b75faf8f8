package teaform

import "github.com/teaform/teaform/files"

// Origin identifies the kind of control a change event came from.
type Origin int

const (
	OriginUnknown Origin = iota
	OriginInput
	OriginSelect
	OriginFile
)

func (o Origin) String() string {
	switch o {
	case OriginInput:
		return "input"
	case OriginSelect:
		return "select"
	case OriginFile:
		return "file"
	default:
		return "unknown"
	}
}

// InputEvent carries the current text of a text control. Emit one on
// every keystroke you want reflected in the form state.
type InputEvent struct {
	Value string
}

// ChangeEvent carries a committed change from a control. Origin tells
// the binder which control family produced it; Value holds the chosen
// text for input and select origins, and Files holds the selection for
// file origins.
type ChangeEvent struct {
	Origin Origin
	Value  string
	Files  []files.File
}

// InputChange builds the ChangeEvent a text control commits.
func InputChange(value string) ChangeEvent {
	return ChangeEvent{Origin: OriginInput, Value: value}
}

// SelectChange builds the ChangeEvent a select control commits.
func SelectChange(value string) ChangeEvent {
	return ChangeEvent{Origin: OriginSelect, Value: value}
}

// FileChange builds the ChangeEvent a file picker commits.
func FileChange(selected ...files.File) ChangeEvent {
	return ChangeEvent{Origin: OriginFile, Files: selected}
}

// ResetMsg is broadcast through the program when a form resets, either
// explicitly or after an auto-reset submit. Parents should forward it
// to their widgets and clear transient control state (text buffers,
// cursor positions) when it arrives.
type ResetMsg struct{}
