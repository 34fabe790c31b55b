package prefs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jask/anuvad/internal/database"
	"github.com/jask/anuvad/internal/database/repository"
)

// Theme is the persisted presentation preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the preference key the theme lives under.
const ThemeKey = "theme"

// DefaultTheme applies when nothing has been stored yet.
const DefaultTheme = ThemeLight

// Toggle returns the other theme. Anything that is not dark flips to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ThemeStore loads and saves the theme preference.
type ThemeStore interface {
	LoadTheme(ctx context.Context) (Theme, error)
	SaveTheme(ctx context.Context, t Theme) error
}

// DBThemeStore keeps the theme in the preferences table.
type DBThemeStore struct {
	Prefs *repository.PreferenceRepo
	Now   func() time.Time
}

func NewDBThemeStore(repo *repository.PreferenceRepo) *DBThemeStore {
	return &DBThemeStore{Prefs: repo, Now: database.Now}
}

// LoadTheme returns the stored theme, DefaultTheme when nothing is stored, and
// DefaultTheme plus an error when the stored value is unusable.
func (s *DBThemeStore) LoadTheme(ctx context.Context) (Theme, error) {
	p, err := s.Prefs.Get(ctx, ThemeKey)
	if errors.Is(err, repository.ErrNotFound) {
		return DefaultTheme, nil
	}
	if err != nil {
		return DefaultTheme, fmt.Errorf("load theme: %w", err)
	}
	t := Theme(p.Value)
	if !t.Valid() {
		return DefaultTheme, fmt.Errorf("load theme: unknown value %q", p.Value)
	}
	return t, nil
}

func (s *DBThemeStore) SaveTheme(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("save theme: unknown value %q", t)
	}
	if err := s.Prefs.Set(ctx, ThemeKey, string(t), s.Now()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
