// Package locale holds the widget's own UI strings. It has nothing to do with
// the translation itself; it only decides whether the chrome around the
// editor speaks English or Hindi.
package locale

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Message ids.
const (
	AppTitle              = "AppTitle"
	InputTitle            = "InputTitle"
	OutputTitle           = "OutputTitle"
	InputPlaceholder      = "InputPlaceholder"
	OutputEmpty           = "OutputEmpty"
	CharCount             = "CharCount"
	ButtonTranslate       = "ButtonTranslate"
	ButtonTranslating     = "ButtonTranslating"
	OutputTranslating     = "OutputTranslating"
	OutputFailed          = "OutputFailed"
	ElapsedProcessing     = "ElapsedProcessing"
	ElapsedFailed         = "ElapsedFailed"
	AccuracyNote          = "AccuracyNote"
	NotifyEmptyInput      = "NotifyEmptyInput"
	NotifyTranslated      = "NotifyTranslated"
	NotifyTranslateError  = "NotifyTranslateError"
	NotifyNothingToCopy   = "NotifyNothingToCopy"
	NotifyCopied          = "NotifyCopied"
	NotifyCopyFailed      = "NotifyCopyFailed"
	NotifyThemeSaveFailed = "NotifyThemeSaveFailed"
	ThemeLight            = "ThemeLight"
	ThemeDark             = "ThemeDark"
	HelpTranslate         = "HelpTranslate"
	HelpCopy              = "HelpCopy"
	HelpTheme             = "HelpTheme"
	HelpQuit              = "HelpQuit"
)

var files = []string{"active.en.toml", "active.hi.toml"}

// Catalog is a thin wrapper around go-i18n's Bundle/Localizer.
type Catalog struct {
	tag       language.Tag
	localizer *i18n.Localizer
	log       *slog.Logger
}

// New builds a catalog for locale, falling back to English for unknown
// locales and missing messages.
func New(locale string, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Warn("i18n: failed to load messages", "file", file, "err", err)
		}
	}

	tag, err := language.Parse(locale)
	if err != nil {
		log.Warn("i18n: unknown locale, using English", "locale", locale, "err", err)
		tag = language.English
	}
	return &Catalog{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		log:       log,
	}
}

// Tag is the requested UI language.
func (c *Catalog) Tag() language.Tag { return c.tag }

// T renders message id. Unknown ids render as the id itself.
func (c *Catalog) T(id string) string {
	return c.localize(&i18n.LocalizeConfig{MessageID: id})
}

// Count renders a plural message with {{.Count}} set to n.
func (c *Catalog) Count(id string, n int) string {
	return c.localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	})
}

func (c *Catalog) localize(cfg *i18n.LocalizeConfig) string {
	if cfg.MessageID == "" {
		return ""
	}
	msg, err := c.localizer.Localize(cfg)
	if err != nil {
		c.log.Debug("i18n: localize failed", "id", cfg.MessageID, "locale", c.tag.String(), "err", err)
		if msg != "" {
			return msg
		}
		return cfg.MessageID
	}
	return msg
}
