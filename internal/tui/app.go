package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/anuvad/internal/locale"
	"github.com/jask/anuvad/internal/prefs"
	"github.com/jask/anuvad/internal/widget"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
	// below this width the panes stack instead of sitting side by side
	stackWidth = 80
)

// App is the bubbletea model and the widget's Surface.
type App struct {
	ctx   context.Context
	ctrl  *widget.Controller
	msgs  *locale.Catalog
	keys  keyMap
	help  help.Model
	input textarea.Model

	theme  prefs.Theme
	styles Styles

	counter      int
	output       widget.Output
	button       widget.ButtonState
	elapsed      string
	noteVisible  bool
	noteText     string
	notification *widget.Notification

	width, height int
	cancel        context.CancelFunc
	// commands queued by Surface calls, flushed at the end of Update
	pending []tea.Cmd
}

var _ widget.Surface = (*App)(nil)

// New builds the model. Bind must be called before the program starts.
func New(ctx context.Context, msgs *locale.Catalog) *App {
	ta := textarea.New()
	ta.Placeholder = msgs.T(locale.InputPlaceholder)
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Cursor.SetMode(cursor.CursorStatic)
	ta.Focus()

	a := &App{
		ctx:    ctx,
		msgs:   msgs,
		keys:   newKeyMap(msgs),
		help:   help.New(),
		input:  ta,
		theme:  prefs.DefaultTheme,
		styles: NewStyles(prefs.DefaultTheme),
		width:  defaultWidth,
		height: defaultHeight,
	}
	a.layout()
	return a
}

// Bind attaches the controller that drives this surface.
func (a *App) Bind(ctrl *widget.Controller) { a.ctrl = ctrl }

func (a *App) Init() tea.Cmd {
	a.ctrl.Initialize(a.ctx)
	return a.flush()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.layout()
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			if a.cancel != nil {
				a.cancel()
			}
			return a, tea.Quit
		case key.Matches(m, a.keys.Translate):
			if job, ok := a.ctrl.BeginTranslate(); ok {
				cmds = append(cmds, a.run(job))
			}
		case key.Matches(m, a.keys.Copy):
			a.ctrl.CopyTranslation()
		case key.Matches(m, a.keys.Theme):
			a.ctrl.ToggleTheme(a.ctx)
		default:
			before := a.input.Value()
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(m)
			cmds = append(cmds, cmd)
			if a.input.Value() != before {
				a.ctrl.UpdateCharacterCount()
			}
		}
	case translateDoneMsg:
		a.ctrl.FinishTranslate(m.result)
	case notificationExpiredMsg:
		a.ctrl.ExpireNotification(m.id)
	default:
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, a.flush(cmds...)
}

// SetInput replaces the editor contents, as a paste from outside would.
func (a *App) SetInput(text string) {
	a.input.SetValue(text)
	a.ctrl.UpdateCharacterCount()
}

// run sends the request off the event loop. A panic inside the translator
// still produces a result so the action control comes back.
func (a *App) run(job *widget.Job) tea.Cmd {
	ctx, cancel := context.WithCancel(a.ctx)
	a.cancel = cancel
	return func() (msg tea.Msg) {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				msg = translateDoneMsg{result: widget.Result{
					Token:    job.Token,
					Err:      fmt.Errorf("translator panic: %v", r),
					Finished: time.Now(),
				}}
			}
		}()
		return translateDoneMsg{result: job.Run(ctx)}
	}
}

func (a *App) flush(extra ...tea.Cmd) tea.Cmd {
	cmds := append(a.pending, extra...)
	a.pending = nil
	return tea.Batch(cmds...)
}

// ---------------------------------------------------------------------------
// widget.Surface
// ---------------------------------------------------------------------------

func (a *App) InputText() string { return a.input.Value() }

func (a *App) SetCounter(n int) { a.counter = n }

func (a *App) SetOutput(o widget.Output) { a.output = o }

func (a *App) SetButtonState(b widget.ButtonState) { a.button = b }

func (a *App) SetElapsed(text string) { a.elapsed = text }

func (a *App) SetAccuracyNote(visible bool, text string) {
	a.noteVisible, a.noteText = visible, text
}

func (a *App) ApplyTheme(t prefs.Theme) {
	a.theme = t
	a.styles = NewStyles(t)
	p := PaletteFor(t)
	a.input.FocusedStyle.Text = lipgloss.NewStyle().Foreground(p.Text)
	a.input.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(p.Overlay1)
	a.input.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(p.Mantle)
}

func (a *App) Notify(n widget.Notification) {
	a.notification = &n
	id := n.ID
	a.pending = append(a.pending, tea.Tick(n.TTL, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	}))
}

func (a *App) HideNotification() { a.notification = nil }

// ---------------------------------------------------------------------------
// rendering
// ---------------------------------------------------------------------------

func (a *App) stacked() bool { return a.width < stackWidth }

// paneWidth is the content width of one pane.
func (a *App) paneWidth() int {
	w := a.width - 2 // app padding
	if !a.stacked() {
		w = w/2 - 1
	}
	return max(10, w-4) // border + padding
}

func (a *App) paneHeight() int {
	// title, status, button, note, notification, help and borders
	h := a.height - 12
	if a.stacked() {
		h /= 2
	}
	return max(3, h)
}

func (a *App) layout() {
	a.input.SetWidth(a.paneWidth())
	a.input.SetHeight(a.paneHeight())
	a.help.Width = a.width
}

func (a *App) View() string {
	s := a.styles

	themeName := a.msgs.T(locale.ThemeLight)
	if a.theme == prefs.ThemeDark {
		themeName = a.msgs.T(locale.ThemeDark)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Title.Render(a.msgs.T(locale.AppTitle)), "  ", s.ThemeBadge.Render(themeName))

	inPane := a.pane(a.msgs.T(locale.InputTitle), a.input.View(),
		s.Counter.Render(a.msgs.Count(locale.CharCount, a.counter)))
	outPane := a.pane(a.msgs.T(locale.OutputTitle), a.renderOutput(), s.Elapsed.Render(a.elapsed))

	var panes string
	if a.stacked() {
		panes = lipgloss.JoinVertical(lipgloss.Left, inPane, outPane)
	} else {
		panes = lipgloss.JoinHorizontal(lipgloss.Top, inPane, " ", outPane)
	}

	button := s.Button.Render(a.button.Label)
	if !a.button.Enabled {
		button = s.ButtonDisabled.Render(a.button.Label)
	}

	lines := []string{header, panes, button}
	if a.noteVisible {
		lines = append(lines, s.Note.Width(a.width-2).Render(a.noteText))
	}
	if a.notification != nil {
		lines = append(lines, s.Notification(a.notification.Severity).Render(a.notification.Message))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, s.Help.Render(a.help.View(a.keys)))
	return s.App.Render(strings.Join(lines, "\n"))
}

func (a *App) pane(title, body, footer string) string {
	w := a.paneWidth()
	content := lipgloss.JoinVertical(lipgloss.Left,
		a.styles.PaneTitle.Render(title),
		lipgloss.NewStyle().Width(w).Height(a.paneHeight()).Render(body),
		footer,
	)
	return a.styles.Pane.Width(w + 2).Render(content)
}

func (a *App) renderOutput() string {
	w := a.paneWidth()
	if a.output.Placeholder {
		return a.styles.Placeholder.Width(w).Render(a.output.Text)
	}
	return a.styles.Output.Width(w).Render(a.output.Text)
}
