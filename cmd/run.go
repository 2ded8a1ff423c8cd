package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cdiazbas/norwegian-quiz/internal/app"
	"github.com/cdiazbas/norwegian-quiz/internal/bank"
	"github.com/cdiazbas/norwegian-quiz/internal/config"
	"github.com/cdiazbas/norwegian-quiz/internal/logger"
	"github.com/cdiazbas/norwegian-quiz/internal/session"
)

var banks = bank.NewCache()

// deps are the pieces every command needs.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	bank   *bank.Bank
}

// loadDeps reads configuration, opens the log and loads the question bank.
func loadDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	b, err := banks.Get(cfg.BankPath)
	if err != nil {
		log.Error("load bank failed", zap.String("path", cfg.BankPath), zap.Error(err))
		_ = log.Sync()
		return nil, err
	}
	log.Info("bank loaded",
		zap.String("path", b.Path()),
		zap.Int("questions", b.Len()),
		zap.Strings("categories", b.Categories()),
	)

	return &deps{cfg: cfg, logger: log, bank: b}, nil
}

// newSession builds a quiz session from the loaded dependencies.
func (d *deps) newSession() *session.Session {
	return session.New(d.bank,
		session.WithRand(session.NewRand(d.cfg.Seed)),
		session.WithLogger(d.logger),
		session.WithCategory(d.cfg.Category),
	)
}

// runApp loads dependencies and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = d.logger.Sync() }()

	s := d.newSession()
	d.logger.Info("session started", zap.String("session_id", s.ID()), zap.String("category", s.Category()))

	return app.Run(app.Options{
		Session:     s,
		Logger:      d.logger,
		SkipWelcome: skipWelcome,
	})
}
