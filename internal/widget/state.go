package widget

import (
	"time"

	"github.com/jask/anuvad/internal/prefs"
)

// UIState is the lifecycle of one translate action.
type UIState int

const (
	Idle UIState = iota
	Translating
	Success
	Failed
)

func (s UIState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Translating:
		return "translating"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Severity of a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a transient message. ID orders notifications: a later
// call always has a greater ID.
type Notification struct {
	ID       string
	Message  string
	Severity Severity
	TTL      time.Duration
}

// Output is what the translation panel shows. Placeholder text (the idle hint
// and the in-progress marker) is never offered to the clipboard.
type Output struct {
	Text        string
	Placeholder bool
}

// ButtonState is the translate action control.
type ButtonState struct {
	Enabled bool
	Label   string
}

// State is everything the controller remembers between events. It is owned
// by one Controller and only touched from the event loop.
type State struct {
	Theme prefs.Theme
	UI    UIState
	// Last is the outcome of the most recent finished action (Success or
	// Failed), Idle before the first one.
	Last UIState

	InFlight bool
	Token    string
	Started  time.Time

	Output         Output
	NotificationID string
}

// NewState returns the state of a fresh widget.
func NewState() *State {
	return &State{Theme: prefs.DefaultTheme, UI: Idle, Last: Idle}
}
