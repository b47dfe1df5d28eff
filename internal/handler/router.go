package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-hall/internal/handler/api"
	"auction-hall/internal/handler/middleware"
	"auction-hall/internal/pkg/config"
	"auction-hall/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	auctionHandler *api.AuctionHandler,
	adminHandler *api.AdminHandler,
	warehouseHandler *api.WarehouseHandler,
	eventsHandler *api.EventsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, auctionHandler, adminHandler, warehouseHandler, eventsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	auctionHandler *api.AuctionHandler,
	adminHandler *api.AdminHandler,
	warehouseHandler *api.WarehouseHandler,
	eventsHandler *api.EventsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auctions := apiGroup.Group("/auctions")
		auctions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(auctions, []route{
				{Method: http.MethodPost, Path: "", Handler: auctionHandler.SellItem},
				{Method: http.MethodGet, Path: "/active", Handler: auctionHandler.GetActive},
				{Method: http.MethodGet, Path: "/queue", Handler: auctionHandler.PreviewQueue},
				{Method: http.MethodPost, Path: "/active/bids", Handler: auctionHandler.PlaceBid},
			})

			admin := auctions.Group("")
			admin.Use(authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin))
			addRoutes(admin, []route{
				{Method: http.MethodDelete, Path: "/active", Handler: adminHandler.CancelActive},
				{Method: http.MethodDelete, Path: "/queue/:id", Handler: adminHandler.CancelQueued},
				{Method: http.MethodPost, Path: "/force", Handler: adminHandler.ForceStart},
				{Method: http.MethodPost, Path: "/reload", Handler: adminHandler.Reload},
			})
		}

		warehouse := apiGroup.Group("/warehouse")
		warehouse.Use(authMiddleware.RequireAuth())
		{
			addRoutes(warehouse, []route{
				{Method: http.MethodGet, Path: "", Handler: warehouseHandler.ListUncollected},
				{Method: http.MethodPost, Path: "/:id/collect", Handler: warehouseHandler.Collect},
			})
		}
	}

	ws := engine.Group("/ws")
	ws.Use(authMiddleware.RequireAuth())
	ws.GET("", eventsHandler.Subscribe)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
