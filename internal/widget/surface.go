package widget

import "github.com/jask/anuvad/internal/prefs"

// Surface is the rendering side of the widget. Implementations only draw;
// every decision is made by the Controller. All methods are called from the
// event loop.
//
//go:generate mockgen -package=widget -destination=mock_surface_test.go github.com/jask/anuvad/internal/widget Surface
type Surface interface {
	InputText() string
	SetCounter(n int)
	SetOutput(o Output)
	SetButtonState(b ButtonState)
	SetElapsed(text string)
	SetAccuracyNote(visible bool, text string)
	ApplyTheme(t prefs.Theme)
	Notify(n Notification)
	HideNotification()
}
