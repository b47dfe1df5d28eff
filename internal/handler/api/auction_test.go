//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"auction-hall/internal/domain/auction"
	"auction-hall/internal/domain/item"
	"auction-hall/internal/handler/api"
	"auction-hall/internal/pkg/clock"
	"auction-hall/internal/pkg/jwt"
	"auction-hall/internal/usecase"
	"auction-hall/tests/common/httptest"
	usecasemock "auction-hall/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuctionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockAuctions *usecasemock.MockAuctionCommands
	handler      *api.AuctionHandler
	clock        *clock.MockClock
	accountID    uuid.UUID
}

func (s *AuctionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuctions = usecasemock.NewMockAuctionCommands(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewAuctionHandler(s.mockAuctions, s.clock)
	s.accountID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("account_id", s.accountID)
		c.Set("account_name", "tester")
		c.Set("account_role", jwt.RoleBidder)
		c.Next()
	}

	s.router.POST("/api/auctions", authMiddleware, s.handler.SellItem)
	s.router.GET("/api/auctions/active", authMiddleware, s.handler.GetActive)
	s.router.GET("/api/auctions/queue", authMiddleware, s.handler.PreviewQueue)
	s.router.POST("/api/auctions/active/bids", authMiddleware, s.handler.PlaceBid)
}

func (s *AuctionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuctionHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuctionHandlerTestSuite))
}

func (s *AuctionHandlerTestSuite) sellBody() map[string]any {
	return map[string]any{
		"item":   map[string]any{"kind": "vintage_lamp"},
		"minBid": "100",
	}
}

func (s *AuctionHandlerTestSuite) TestSellItem() {
	url := "/api/auctions"

	s.Run("success: returns 201 Created with auction ID", func() {
		id := uuid.New()
		s.mockAuctions.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.sellBody(), "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id.String(), body["id"])
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.sellBody(), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 on missing item kind", func() {
		body := s.sellBody()
		body["item"] = map[string]any{}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 when item kind is banned", func() {
		s.mockAuctions.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, usecase.ErrItemBanned).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.sellBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not allowed")
	})

	s.Run("error: 409 when queue is full", func() {
		s.mockAuctions.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, usecase.ErrQueueFull).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.sellBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "full")
	})

	s.Run("error: 402 when publication fee cannot be charged", func() {
		s.mockAuctions.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, usecase.ErrPublicationFee).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.sellBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "publication fee")
	})
}

func (s *AuctionHandlerTestSuite) TestPlaceBid() {
	url := "/api/auctions/active/bids"
	body := map[string]any{"amount": "150"}

	s.Run("success: returns 204 No Content", func() {
		s.mockAuctions.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, bidder usecase.Bidder, amount decimal.Decimal) error {
				s.Equal(s.accountID, bidder.ID)
				s.True(amount.Equal(decimal.NewFromInt(150)))
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when no auction is active", func() {
		s.mockAuctions.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrAuctionNotActive).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No active auction")
	})

	s.Run("error: 422 when bid is below minimum", func() {
		s.mockAuctions.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrBidTooLow).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "below")
	})

	s.Run("error: 402 on insufficient funds", func() {
		s.mockAuctions.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrInsufficientFunds).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "Insufficient funds")
	})

	s.Run("error: 400 on missing amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuctionHandlerTestSuite) TestGetActive() {
	url := "/api/auctions/active"

	s.Run("success: returns the active auction with remaining seconds", func() {
		now := s.clock.Now()
		payload, err := item.NewPayload("vintage_lamp", nil)
		s.Require().NoError(err)

		snap := auction.Snapshot{
			ID:         uuid.New(),
			SellerID:   uuid.New(),
			SellerName: "seller",
			Item:       payload,
			MinBid:     decimal.NewFromInt(100),
			CurrentBid: decimal.NewFromInt(100),
			StartTime:  now.Add(-time.Minute),
			EndTime:    now.Add(4 * time.Minute),
			Status:     auction.StatusActive,
		}
		s.mockAuctions.EXPECT().GetActive().Return(&snap).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(snap.ID.String(), body["id"])
		s.Equal(float64(240), body["remainingSeconds"])
		s.Equal(string(auction.StatusActive), body["status"])
	})

	s.Run("error: 404 when the slot is empty", func() {
		s.mockAuctions.EXPECT().GetActive().Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No active auction")
	})
}

func (s *AuctionHandlerTestSuite) TestPreviewQueue() {
	s.Run("success: returns queued auctions", func() {
		payload, err := item.NewPayload("old_clock", nil)
		s.Require().NoError(err)

		snaps := []auction.Snapshot{
			{ID: uuid.New(), Item: payload, Status: auction.StatusPending, MinBid: decimal.NewFromInt(10), CurrentBid: decimal.NewFromInt(10)},
			{ID: uuid.New(), Item: payload, Status: auction.StatusPending, MinBid: decimal.NewFromInt(20), CurrentBid: decimal.NewFromInt(20)},
		}
		s.mockAuctions.EXPECT().PreviewQueue(5).Return(snaps).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auctions/queue?limit=5", nil, "bearer-token")

		var body struct {
			Auctions []map[string]any `json:"auctions"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Auctions, 2)
	})

	s.Run("error: 400 on non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auctions/queue?limit=abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "limit")
	})

	s.Run("error: 400 on non-positive limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auctions/queue?limit=0", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "limit")
	})
}
