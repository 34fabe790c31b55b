package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/anuvad/internal/clipboard"
	"github.com/jask/anuvad/internal/config"
	"github.com/jask/anuvad/internal/database"
	"github.com/jask/anuvad/internal/database/repository"
	"github.com/jask/anuvad/internal/locale"
	"github.com/jask/anuvad/internal/logging"
	"github.com/jask/anuvad/internal/prefs"
	"github.com/jask/anuvad/internal/translator"
	"github.com/jask/anuvad/internal/tui"
	"github.com/jask/anuvad/internal/widget"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// the terminal belongs to the UI, so logs go to a file
	logger, logFile, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()

	if wrote, err := config.EnsureFile(); err != nil {
		logger.Warn("config file not written", "err", err)
	} else if wrote {
		logger.Info("wrote default config", "path", config.Path())
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	themes := prefs.NewDBThemeStore(repository.NewPreferenceRepo(db))
	msgs := locale.New(cfg.UI.Locale, logger)
	client := translator.NewClient(cfg.Translator.BaseURL, translator.WithTimeout(cfg.Translator.Timeout))

	app := tui.New(ctx, msgs)
	app.Bind(widget.New(widget.Deps{
		Surface:    app,
		Translator: client,
		Themes:     themes,
		Clipboard:  clipboard.NewSystem(os.Stderr),
		Messages:   msgs,
		Logger:     logger,
	}, widget.Options{
		NotificationTimeout: cfg.UI.NotificationTimeout,
		StrictNotifications: cfg.UI.StrictNotifications,
	}))

	logger.Info("starting", "endpoint", client.Endpoint(), "db", cfg.Database.Path, "locale", msgs.Tag().String())
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("error: %v\n", err)
	}
}
