package commands

import (
	"github.com/rs/zerolog"

	"github.com/Wilfredo1970/Finanzas/internal/classifier"
	"github.com/Wilfredo1970/Finanzas/internal/config"
	"github.com/Wilfredo1970/Finanzas/internal/importer"
	"github.com/Wilfredo1970/Finanzas/internal/ledger"
	"github.com/Wilfredo1970/Finanzas/internal/logger"
)

// app bundles the shared wiring every subcommand needs: configuration,
// logger and the loaded ledger.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	ledger *ledger.Ledger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel)

	lg := ledger.New(cfg.DataFile)
	if err := lg.Load(); err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, ledger: lg}, nil
}

// importer builds the import service, honoring a rules file override when
// one is configured.
func (a *app) importer() (*importer.Service, error) {
	rules := classifier.DefaultRules()
	if a.cfg.RulesFile != "" {
		loaded, err := classifier.LoadRules(a.cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	return importer.New(classifier.New(rules), a.log), nil
}
