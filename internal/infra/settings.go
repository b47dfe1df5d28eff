package infra

import (
	"log/slog"
	"sync"

	"auction-hall/internal/pkg/config"
	"auction-hall/internal/usecase"

	"github.com/shopspring/decimal"
)

// EnvSettingsSource re-reads auction tunables from the environment on each
// Load, so an admin-triggered reload picks up values changed since startup.
// If re-reading fails, the last good settings are served.
type EnvSettingsSource struct {
	mu     sync.Mutex
	last   usecase.Settings
	logger *slog.Logger
}

func NewEnvSettingsSource(cfg config.Config, logger *slog.Logger) *EnvSettingsSource {
	return &EnvSettingsSource{
		last:   settingsFromConfig(cfg.Auction),
		logger: logger,
	}
}

func (s *EnvSettingsSource) Load() usecase.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := config.LoadConfig()
	if err != nil {
		s.logger.Warn("settings reload failed, keeping previous values", "error", err)
		return s.last
	}
	s.last = settingsFromConfig(cfg.Auction)
	return s.last
}

func settingsFromConfig(cfg config.AuctionConfig) usecase.Settings {
	return usecase.Settings{
		Duration:         cfg.Duration,
		MaxQueueSize:     cfg.MaxQueueSize,
		StepEnabled:      cfg.StepEnabled,
		PublicationFee:   decimal.NewFromFloat(cfg.PublicationFee),
		BidFeePercent:    cfg.BidFeePercent,
		CountdownEnabled: cfg.CountdownEnabled,
		SelfHealInterval: cfg.SelfHealInterval,
	}
}

// StaticSettingsSource always serves the same settings. Used in tests and
// when reload support is not wanted.
type StaticSettingsSource struct {
	settings usecase.Settings
}

func NewStaticSettingsSource(settings usecase.Settings) *StaticSettingsSource {
	return &StaticSettingsSource{settings: settings}
}

func (s *StaticSettingsSource) Load() usecase.Settings {
	return s.settings
}
