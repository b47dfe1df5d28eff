package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "auction-hall/internal/handler/dto/request"
	resdto "auction-hall/internal/handler/dto/response"
	"auction-hall/internal/handler/middleware"
	"auction-hall/internal/pkg/clock"
	"auction-hall/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultPreviewLimit = 10

type AuctionHandler struct {
	auctions usecase.AuctionCommands
	clock    clock.Clock
}

func NewAuctionHandler(auctions usecase.AuctionCommands, clk clock.Clock) *AuctionHandler {
	return &AuctionHandler{
		auctions: auctions,
		clock:    clk,
	}
}

func (h *AuctionHandler) SellItem(c *gin.Context) {
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

	id, err := h.auctions.Enqueue(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemBanned):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Item kind is not allowed",
			})
		case errors.Is(err, usecase.ErrQueueFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction queue is full",
			})
		case errors.Is(err, usecase.ErrPublicationFee):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Could not charge publication fee",
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

func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	accountName, _ := middleware.GetAccountName(c)

	var req reqdto.PlaceBidRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bidder := usecase.Bidder{ID: accountID, Name: accountName}
	if err := h.auctions.PlaceBid(c.Request.Context(), bidder, req.Amount); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuctionNotActive):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active auction",
			})
		case errors.Is(err, usecase.ErrBidTooLow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Bid is below the minimum next bid",
			})
		case errors.Is(err, usecase.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient funds",
			})
		case errors.Is(err, usecase.ErrWithdrawalFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Could not withdraw bid amount",
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

func (h *AuctionHandler) GetActive(c *gin.Context) {
	snap := h.auctions.GetActive()
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No active auction",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshot(*snap, h.clock.Now()))
}

func (h *AuctionHandler) PreviewQueue(c *gin.Context) {
	limit := defaultPreviewLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	snaps := h.auctions.PreviewQueue(limit)
	c.JSON(http.StatusOK, resdto.FromSnapshots(snaps, h.clock.Now()))
}
