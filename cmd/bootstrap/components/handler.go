package components

import (
	"auction-hall/internal/handler"
	"auction-hall/internal/handler/api"
	"auction-hall/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuctionHandler,
		api.NewAdminHandler,
		api.NewWarehouseHandler,
		api.NewEventsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
