package tui

import "github.com/jask/anuvad/internal/widget"

// translateDoneMsg carries a finished request back onto the event loop.
type translateDoneMsg struct {
	result widget.Result
}

// notificationExpiredMsg fires when a notification's hide timer runs out.
type notificationExpiredMsg struct {
	id string
}
