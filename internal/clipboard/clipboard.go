// Package clipboard writes text to the system clipboard from a terminal app.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable means no clipboard mechanism accepted the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	Write(text string) error
}

// runner executes a clipboard command with text on stdin.
type runner func(name string, args []string, stdin string) error

func execRunner(name string, args []string, stdin string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}

// System tries the platform clipboard tools in order and falls back to an
// OSC 52 escape sequence written to the terminal.
type System struct {
	writers  [][]string
	lookPath func(string) (string, error)
	run      runner
	term     io.Writer // nil disables the OSC 52 fallback
}

// NewSystem returns a clipboard writer. term receives the OSC 52 fallback;
// pass os.Stderr when the UI owns stdout, or nil to disable it.
func NewSystem(term io.Writer) *System {
	return &System{
		writers: [][]string{
			{"pbcopy"},
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
			{"clip.exe"},
		},
		lookPath: exec.LookPath,
		run:      execRunner,
		term:     term,
	}
}

func (c *System) Write(text string) error {
	if c == nil {
		return ErrUnavailable
	}
	var errs []error
	for _, args := range c.writers {
		if len(args) == 0 {
			continue
		}
		if _, err := c.lookPath(args[0]); err != nil {
			continue
		}
		if err := c.run(args[0], args[1:], text); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", args[0], err))
			continue
		}
		return nil
	}
	if c.term != nil {
		seq := osc52.New(text)
		if os.Getenv("TMUX") != "" {
			seq = seq.Tmux()
		} else if strings.HasPrefix(os.Getenv("TERM"), "screen") {
			seq = seq.Screen()
		}
		if _, err := seq.WriteTo(c.term); err != nil {
			errs = append(errs, fmt.Errorf("osc52: %w", err))
		} else {
			return nil
		}
	}
	return errors.Join(append([]error{ErrUnavailable}, errs...)...)
}
