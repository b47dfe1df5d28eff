package components

import (
	"context"
	"log/slog"

	"auction-hall/internal/infra"
	"auction-hall/internal/infra/holdings"
	"auction-hall/internal/infra/notify"
	"auction-hall/internal/infra/policy"
	"auction-hall/internal/infra/repository"
	"auction-hall/internal/infra/snapshot"
	"auction-hall/internal/pkg/config"
	"auction-hall/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			repository.NewAuctionRepository,
			fx.As(new(usecase.PersistenceStore)),
		),
		NewLedger,
		NewSnapshotStore,
		NewNotifier,
		notify.NewHub,
		fx.Annotate(
			NewBanPolicy,
			fx.As(new(usecase.BanPolicy)),
		),
		fx.Annotate(
			NewHoldingStore,
			fx.As(new(usecase.HoldingStore)),
		),
		fx.Annotate(
			infra.NewEnvSettingsSource,
			fx.As(new(usecase.SettingsSource)),
		),
	),
)

func NewLedger(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) usecase.Ledger {
	if !cfg.Economy.Enabled {
		return repository.NewDisabledLedger(cfg.Economy.Symbol)
	}
	return repository.NewWalletLedger(pool, cfg.Economy.Symbol, logger)
}

func NewSnapshotStore(lc fx.Lifecycle, cfg config.Config) (usecase.SnapshotStore, error) {
	if !cfg.Redis.Enabled {
		return snapshot.NewNoopStore(), nil
	}

	store, cleanup, err := snapshot.NewRedisStore(cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return store, nil
}

// NewNotifier composes the websocket hub with the log sink and, when
// configured, a NATS publisher for external consumers.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, hub *notify.Hub, logger *slog.Logger) (usecase.Notifier, error) {
	sinks := []usecase.Notifier{hub, notify.NewLogNotifier(logger)}

	if cfg.NATS.Enabled {
		publisher, cleanup, err := notify.NewNATSNotifier(cfg.NATS.URL, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		sinks = append(sinks, publisher)
	}

	return notify.NewFanout(sinks...), nil
}

func NewBanPolicy(cfg config.Config) *policy.BanList {
	return policy.NewBanList(cfg.Auction.BannedItems)
}

func NewHoldingStore(cfg config.Config) *holdings.MemoryStore {
	return holdings.NewMemoryStore(cfg.Auction.HoldingCapacity)
}
