// Package widget holds the translation widget controller: validation, request
// shaping, error mapping, theme and notification policy. It drives a Surface
// and never draws anything itself.
package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/jask/anuvad/internal/clipboard"
	"github.com/jask/anuvad/internal/locale"
	"github.com/jask/anuvad/internal/prefs"
	"github.com/jask/anuvad/internal/translator"
)

// DefaultNotificationTimeout is how long a notification stays up.
const DefaultNotificationTimeout = 3 * time.Second

// errAborted stands in for a result that never arrived because Run panicked.
var errAborted = errors.New("translate aborted")

// Deps are the controller's collaborators.
type Deps struct {
	Surface    Surface
	Translator translator.Translator
	Themes     prefs.ThemeStore
	Clipboard  clipboard.Writer
	Messages   *locale.Catalog
	Logger     *slog.Logger
}

// Options tune controller behaviour. The zero value is usable.
type Options struct {
	NotificationTimeout time.Duration
	// StrictNotifications makes a hide timer only hide the notification it
	// was started for. When false any expiring timer hides whatever is shown.
	StrictNotifications bool
	State               *State
	Now                 func() time.Time
}

// Controller mediates between user input, the translation backend and the
// Surface.
type Controller struct {
	surface Surface
	tr      translator.Translator
	themes  prefs.ThemeStore
	clip    clipboard.Writer
	msgs    *locale.Catalog
	log     *slog.Logger

	state     *State
	now       func() time.Time
	notifyTTL time.Duration
	strict    bool
	newToken  func() string
	newNoteID func() string
}

// New wires a controller. Surface, Translator, Themes, Clipboard and Messages
// are required.
func New(d Deps, opts Options) *Controller {
	c := &Controller{
		surface:   d.Surface,
		tr:        d.Translator,
		themes:    d.Themes,
		clip:      d.Clipboard,
		msgs:      d.Messages,
		log:       d.Logger,
		state:     opts.State,
		now:       opts.Now,
		notifyTTL: opts.NotificationTimeout,
		strict:    opts.StrictNotifications,
		newToken:  func() string { return uuid.NewString() },
		newNoteID: func() string { return ulid.Make().String() },
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.state == nil {
		c.state = NewState()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.notifyTTL <= 0 {
		c.notifyTTL = DefaultNotificationTimeout
	}
	return c
}

// State exposes the controller's state for inspection.
func (c *Controller) State() *State { return c.state }

// Initialize loads and applies the saved theme, puts the action control and
// output in their idle form and computes the initial character count.
func (c *Controller) Initialize(ctx context.Context) {
	theme, err := c.themes.LoadTheme(ctx)
	if err != nil {
		c.log.Warn("theme load failed, using default", "err", err, "theme", prefs.DefaultTheme)
		theme = prefs.DefaultTheme
	}
	c.state.Theme = theme
	c.surface.ApplyTheme(theme)

	c.state.UI = Idle
	c.surface.SetButtonState(c.idleButton())
	c.setOutput(Output{Text: c.msgs.T(locale.OutputEmpty), Placeholder: true})
	c.surface.SetAccuracyNote(false, "")
	c.surface.SetElapsed("")
	c.UpdateCharacterCount()
}

// UpdateCharacterCount sets the counter to the live input length in code
// points and returns it.
func (c *Controller) UpdateCharacterCount() int {
	n := utf8.RuneCountInString(c.surface.InputText())
	c.surface.SetCounter(n)
	return n
}

// ToggleTheme flips between light and dark, applies and persists the result.
// A failed save keeps the new theme on screen and raises an error notification.
func (c *Controller) ToggleTheme(ctx context.Context) prefs.Theme {
	next := c.state.Theme.Toggle()
	c.state.Theme = next
	c.surface.ApplyTheme(next)
	if err := c.themes.SaveTheme(ctx, next); err != nil {
		c.log.Error("theme save failed", "err", err, "theme", next)
		c.ShowNotification(c.msgs.T(locale.NotifyThemeSaveFailed), SeverityError)
	}
	return next
}

// Job is one accepted translate action, ready to hit the network.
type Job struct {
	Token   string
	Text    string
	Started time.Time

	tr  translator.Translator
	now func() time.Time
}

// Result is what came back for a Job.
type Result struct {
	Token    string
	Response translator.Response
	Err      error
	Finished time.Time
}

// Run performs the request. It blocks and must not touch the Surface, so it
// is safe to call off the event loop.
func (j *Job) Run(ctx context.Context) Result {
	resp, err := j.tr.Translate(ctx, j.Text)
	return Result{Token: j.Token, Response: resp, Err: err, Finished: j.now()}
}

// BeginTranslate validates the input and, when a request should go out,
// switches the widget to Translating and returns the Job. It returns false
// for blank input (after a warning) and while another request is in flight.
func (c *Controller) BeginTranslate() (*Job, bool) {
	if c.state.InFlight {
		c.log.Debug("translate ignored, request in flight", "token", c.state.Token)
		return nil, false
	}
	text := strings.TrimSpace(c.surface.InputText())
	if text == "" {
		c.ShowNotification(c.msgs.T(locale.NotifyEmptyInput), SeverityWarning)
		return nil, false
	}

	c.state.UI = Translating
	c.state.InFlight = true
	c.state.Token = c.newToken()
	c.surface.SetButtonState(ButtonState{Enabled: false, Label: c.msgs.T(locale.ButtonTranslating)})
	c.setOutput(Output{Text: c.msgs.T(locale.OutputTranslating), Placeholder: true})
	c.surface.SetAccuracyNote(false, "")
	c.surface.SetElapsed(c.msgs.T(locale.ElapsedProcessing))
	c.state.Started = c.now()

	c.log.Debug("translate started", "token", c.state.Token, "chars", utf8.RuneCountInString(text))
	return &Job{Token: c.state.Token, Text: text, Started: c.state.Started, tr: c.tr, now: c.now}, true
}

// FinishTranslate renders a Result. Results for anything but the request in
// flight are dropped and false is returned. The action control is always
// re-enabled for an accepted result.
func (c *Controller) FinishTranslate(res Result) bool {
	if !c.state.InFlight || res.Token != c.state.Token {
		c.log.Debug("stale translate result dropped", "token", res.Token, "current", c.state.Token)
		return false
	}
	defer c.endTranslate()

	if res.Err != nil {
		c.state.UI = Failed
		c.logFailure(res)
		c.setOutput(Output{Text: c.msgs.T(locale.OutputFailed)})
		c.surface.SetElapsed(c.msgs.T(locale.ElapsedFailed))
		c.ShowNotification(c.msgs.T(locale.NotifyTranslateError), SeverityError)
		return true
	}

	c.state.UI = Success
	elapsed := res.Finished.Sub(c.state.Started)
	c.setOutput(Output{Text: res.Response.Translation})
	c.surface.SetElapsed(FormatElapsed(elapsed))
	note := c.msgs.T(locale.AccuracyNote)
	if extra := strings.TrimSpace(res.Response.Note); extra != "" {
		note += " " + extra
	}
	c.surface.SetAccuracyNote(true, note)
	c.ShowNotification(c.msgs.T(locale.NotifyTranslated), SeveritySuccess)

	attrs := []any{"token", res.Token, "elapsed", elapsed}
	if pt := res.Response.ProcessingTime; pt != nil {
		attrs = append(attrs, "backend_seconds", *pt)
	}
	if len(res.Response.ModelInfo) > 0 {
		attrs = append(attrs, "model_info", res.Response.ModelInfo)
	}
	c.log.Info("translate succeeded", attrs...)
	return true
}

// Translate runs a whole action synchronously: validate, request, render.
// Cleanup happens even if the translator panics.
func (c *Controller) Translate(ctx context.Context) {
	job, ok := c.BeginTranslate()
	if !ok {
		return
	}
	res := Result{Token: job.Token, Err: errAborted, Finished: c.now()}
	defer func() { c.FinishTranslate(res) }()
	res = job.Run(ctx)
}

func (c *Controller) endTranslate() {
	c.state.Last = c.state.UI
	c.state.UI = Idle
	c.state.InFlight = false
	c.surface.SetButtonState(c.idleButton())
}

func (c *Controller) logFailure(res Result) {
	var se *translator.StatusError
	switch {
	case errors.As(res.Err, &se):
		c.log.Warn("translate rejected", "token", res.Token, "status", se.Code, "body", se.Body)
	case errors.Is(res.Err, context.Canceled):
		c.log.Info("translate cancelled", "token", res.Token)
	case errors.Is(res.Err, translator.ErrDecode):
		c.log.Warn("translate response malformed", "token", res.Token, "err", res.Err)
	default:
		c.log.Warn("translate failed", "token", res.Token, "err", res.Err)
	}
}

// CopyTranslation puts the current translation on the clipboard. Blank or
// placeholder output only raises a warning.
func (c *Controller) CopyTranslation() {
	out := c.state.Output
	if out.Placeholder || strings.TrimSpace(out.Text) == "" {
		c.ShowNotification(c.msgs.T(locale.NotifyNothingToCopy), SeverityWarning)
		return
	}
	if err := c.clip.Write(out.Text); err != nil {
		c.log.Error("clipboard write failed", "err", err)
		c.ShowNotification(c.msgs.T(locale.NotifyCopyFailed), SeverityError)
		return
	}
	c.ShowNotification(c.msgs.T(locale.NotifyCopied), SeveritySuccess)
}

// ShowNotification replaces whatever notification is visible. The Surface is
// expected to call ExpireNotification with the returned ID after its TTL.
func (c *Controller) ShowNotification(message string, sev Severity) Notification {
	n := Notification{ID: c.newNoteID(), Message: message, Severity: sev, TTL: c.notifyTTL}
	c.state.NotificationID = n.ID
	c.surface.Notify(n)
	return n
}

// ExpireNotification is the hide timer for notification id firing. In strict
// mode it only hides the latest notification and reports whether it did.
func (c *Controller) ExpireNotification(id string) bool {
	if c.strict && id != c.state.NotificationID {
		return false
	}
	if id == c.state.NotificationID {
		c.state.NotificationID = ""
	}
	c.surface.HideNotification()
	return true
}

func (c *Controller) setOutput(o Output) {
	c.state.Output = o
	c.surface.SetOutput(o)
}

func (c *Controller) idleButton() ButtonState {
	return ButtonState{Enabled: true, Label: c.msgs.T(locale.ButtonTranslate)}
}

// FormatElapsed renders a duration as seconds with two decimals, e.g. "1.25s".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
