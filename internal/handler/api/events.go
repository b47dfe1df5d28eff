package api

import (
	"net/http"

	"auction-hall/internal/handler/middleware"
	"auction-hall/internal/infra/notify"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	hub *notify.Hub
}

func NewEventsHandler(hub *notify.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
	}
}

// Subscribe upgrades the request to a websocket and streams auction events.
func (h *EventsHandler) Subscribe(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.hub.Serve(c.Writer, c.Request, accountID)
}
