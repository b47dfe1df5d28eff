package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "auction-hall/internal/handler/dto/response"
	"auction-hall/internal/handler/middleware"
	"auction-hall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WarehouseHandler struct {
	warehouse usecase.WarehouseCommands
}

func NewWarehouseHandler(warehouse usecase.WarehouseCommands) *WarehouseHandler {
	return &WarehouseHandler{
		warehouse: warehouse,
	}
}

func (h *WarehouseHandler) Collect(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	historyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid entry ID format",
		})
		return
	}

	if err := h.warehouse.Collect(c.Request.Context(), historyID, accountID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrHistoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Entry not found",
			})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Entry belongs to another account",
			})
		case errors.Is(err, usecase.ErrAlreadyCollected):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Entry already collected",
			})
		case errors.Is(err, usecase.ErrNotCollectable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Entry is not collectable",
			})
		case errors.Is(err, usecase.ErrHoldingFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Holding area cannot accept the item",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WarehouseHandler) ListUncollected(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	entries, err := h.warehouse.ListUncollected(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryEntries(entries))
}
