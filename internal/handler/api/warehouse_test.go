//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"auction-hall/internal/domain/auction"
	"auction-hall/internal/domain/item"
	"auction-hall/internal/handler/api"
	"auction-hall/internal/usecase"
	"auction-hall/tests/common/httptest"
	usecasemock "auction-hall/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WarehouseHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockWarehouse *usecasemock.MockWarehouseCommands
	handler       *api.WarehouseHandler
	accountID     uuid.UUID
}

func (s *WarehouseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWarehouse = usecasemock.NewMockWarehouseCommands(s.mockCtrl)
	s.handler = api.NewWarehouseHandler(s.mockWarehouse)
	s.accountID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("account_id", s.accountID)
		c.Next()
	}

	s.router.GET("/api/warehouse", authMiddleware, s.handler.ListUncollected)
	s.router.POST("/api/warehouse/:id/collect", authMiddleware, s.handler.Collect)
}

func (s *WarehouseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWarehouseHandlerSuite(t *testing.T) {
	suite.Run(t, new(WarehouseHandlerTestSuite))
}

func (s *WarehouseHandlerTestSuite) TestCollect() {
	s.Run("success: returns 204 No Content", func() {
		s.mockWarehouse.EXPECT().Collect(gomock.Any(), int64(42), s.accountID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/warehouse/42/collect", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed entry ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/warehouse/abc/collect", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 on unknown entry", func() {
		s.mockWarehouse.EXPECT().Collect(gomock.Any(), int64(42), s.accountID).
			Return(usecase.ErrHistoryNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/warehouse/42/collect", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 403 when entry belongs to another account", func() {
		s.mockWarehouse.EXPECT().Collect(gomock.Any(), int64(42), s.accountID).
			Return(usecase.ErrNotOwner).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/warehouse/42/collect", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another account")
	})

	s.Run("error: 409 when already collected", func() {
		s.mockWarehouse.EXPECT().Collect(gomock.Any(), int64(42), s.accountID).
			Return(usecase.ErrAlreadyCollected).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/warehouse/42/collect", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already collected")
	})

	s.Run("error: 409 when the holding area is full", func() {
		s.mockWarehouse.EXPECT().Collect(gomock.Any(), int64(42), s.accountID).
			Return(usecase.ErrHoldingFull).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/warehouse/42/collect", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *WarehouseHandlerTestSuite) TestListUncollected() {
	s.Run("success: returns entries waiting for collection", func() {
		payload, err := item.NewPayload("old_clock", nil)
		s.Require().NoError(err)

		buyerID := s.accountID
		entries := []usecase.HistoryEntry{
			{
				ID:         7,
				Item:       payload,
				SellerID:   uuid.New(),
				SellerName: "seller",
				BuyerID:    &buyerID,
				BuyerName:  "tester",
				EndTime:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				FinalBid:   decimal.NewFromInt(150),
				Status:     auction.StatusSold,
			},
		}
		s.mockWarehouse.EXPECT().ListUncollected(gomock.Any(), s.accountID).
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/warehouse", nil, "bearer-token")

		var body struct {
			Entries []map[string]any `json:"entries"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Entries, 1)
		s.Equal(float64(7), body.Entries[0]["id"])
		s.Equal(string(auction.StatusSold), body.Entries[0]["status"])
	})

	s.Run("success: returns empty list when nothing is waiting", func() {
		s.mockWarehouse.EXPECT().ListUncollected(gomock.Any(), s.accountID).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/warehouse", nil, "bearer-token")

		var body struct {
			Entries []map[string]any `json:"entries"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Entries)
	})
}
