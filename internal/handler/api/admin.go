package api

import (
	"errors"
	"net/http"

	reqdto "auction-hall/internal/handler/dto/request"
	resdto "auction-hall/internal/handler/dto/response"
	"auction-hall/internal/handler/middleware"
	"auction-hall/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	auctions usecase.AuctionCommands
}

func NewAdminHandler(auctions usecase.AuctionCommands) *AdminHandler {
	return &AdminHandler{
		auctions: auctions,
	}
}

func (h *AdminHandler) CancelActive(c *gin.Context) {
	if err := h.auctions.CancelActive(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuctionNotActive):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active auction",
			})
		case errors.Is(err, usecase.ErrCoordinatorClosed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Auction service is shutting down",
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

func (h *AdminHandler) CancelQueued(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return
	}

	if err := h.auctions.CancelQueued(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found in queue",
			})
		case errors.Is(err, usecase.ErrCoordinatorClosed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Auction service is shutting down",
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

func (h *AdminHandler) ForceStart(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	accountName, _ := middleware.GetAccountName(c)

	var req reqdto.SellItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(accountID, accountName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item payload",
		})
		return
	}

	id, err := h.auctions.ForceStart(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemBanned):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Item kind is not allowed",
			})
		case errors.Is(err, usecase.ErrInvalidRecord):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid auction parameters",
			})
		case errors.Is(err, usecase.ErrCoordinatorClosed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Auction service is shutting down",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.EnqueuedResponse{ID: id})
}

func (h *AdminHandler) Reload(c *gin.Context) {
	if err := h.auctions.Reload(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCoordinatorClosed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Auction service is shutting down",
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
