package components

import (
	"context"

	"auction-hall/internal/infra/sched"
	"auction-hall/internal/pkg/clock"
	"auction-hall/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			sched.NewTimerScheduler,
			fx.As(new(usecase.Scheduler)),
		),
		usecase.NewCoordinator,
		func(c *usecase.Coordinator) usecase.AuctionCommands { return c },
		usecase.NewWarehouseUseCase,
	),
	fx.Invoke(registerCoordinator),
)

// registerCoordinator ties the coordinator to the application lifecycle:
// pending auctions are reloaded on start, and shutdown drains the queue.
func registerCoordinator(lc fx.Lifecycle, coordinator *usecase.Coordinator) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return coordinator.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return coordinator.Shutdown(ctx)
		},
	})
}
