package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"os_service_api/internal/adapter/http/handlers/mocks"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStockTimeoutHandler_ListStockTimeouts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saga := mocks.NewMockIStockReductionSagaUseCase(ctrl)
		h := NewStockTimeoutHandler(saga)

		r := gin.New()
		r.GET("/v1/service-orders/stock-timeouts", h.ListStockTimeouts)

		saga.EXPECT().ListStockReductionTimeouts(gomock.Any(), 10*time.Minute).Return([]entities.ServiceOrder{receivedOrder()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/stock-timeouts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "os-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("custom threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saga := mocks.NewMockIStockReductionSagaUseCase(ctrl)
		h := NewStockTimeoutHandler(saga)

		r := gin.New()
		r.GET("/v1/service-orders/stock-timeouts", h.ListStockTimeouts)

		saga.EXPECT().ListStockReductionTimeouts(gomock.Any(), 3*time.Minute).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/stock-timeouts?threshold_minutes=3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non numeric threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saga := mocks.NewMockIStockReductionSagaUseCase(ctrl)
		h := NewStockTimeoutHandler(saga)

		r := gin.New()
		r.GET("/v1/service-orders/stock-timeouts", h.ListStockTimeouts)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/stock-timeouts?threshold_minutes=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative threshold rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saga := mocks.NewMockIStockReductionSagaUseCase(ctrl)
		h := NewStockTimeoutHandler(saga)

		r := gin.New()
		r.GET("/v1/service-orders/stock-timeouts", h.ListStockTimeouts)

		saga.EXPECT().ListStockReductionTimeouts(gomock.Any(), -1*time.Minute).Return(nil, usecase.ErrInvalidTimeoutThreshold)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/stock-timeouts?threshold_minutes=-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
