package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func receivedOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:        "os-1",
		Code:      "OS-20260828-ABCD1234",
		VehicleID: "veh-1",
		Status:    entities.OSStatusRecebida,
		History:   entities.OSHistory{CreatedAt: time.Now().UTC()},
	}
}

func TestServiceOrderHandler_CreateServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank vehicle id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(`{"vehicle_id":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		uc.EXPECT().CreateServiceOrder(gomock.Any(), "veh-missing").Return(entities.ServiceOrder{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(`{"vehicle_id":"veh-missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		uc.EXPECT().CreateServiceOrder(gomock.Any(), "veh-1").Return(receivedOrder(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(`{"vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "os-1" || body["status"] != "recebida" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_GetServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/:id", h.GetServiceOrder)

		uc.EXPECT().GetByID(gomock.Any(), "os-missing").Return(entities.ServiceOrder{}, usecase.ErrServiceOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/:id", h.GetServiceOrder)

		uc.EXPECT().GetByID(gomock.Any(), "os-1").Return(receivedOrder(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("order not open for changes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "os-1", "item-1", 2).Return(entities.ServiceOrder{}, entities.ErrOrderNotOpenForChanges)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/items", bytes.NewBufferString(`{"stock_item_id":"item-1","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("duplicate service is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders/:id/services", h.AddService)

		uc.EXPECT().AddService(gomock.Any(), "os-1", "svc-1").Return(entities.ServiceOrder{}, entities.ErrServiceAlreadyIncluded)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/services", bytes.NewBufferString(`{"service_id":"svc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/budget/approve", h.ApproveBudget)

		o := receivedOrder()
		o.Status = entities.OSStatusEmExecucao
		uc.EXPECT().ApproveBudget(gomock.Any(), "os-1").Return(o, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/budget/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "em_execucao" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("approve out of sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/budget/approve", h.ApproveBudget)

		uc.EXPECT().ApproveBudget(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, entities.ErrOrderNotAwaitingBudget)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/budget/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("publish failure surfaces as 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/budget/approve", h.ApproveBudget)

		uc.EXPECT().ApproveBudget(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, errors.New("broker unreachable"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/budget/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/cancel", h.Cancel)

		o := receivedOrder()
		o.Status = entities.OSStatusCancelada
		uc.EXPECT().Cancel(gomock.Any(), "os-1").Return(o, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapServiceOrderError(t *testing.T) {
	if got := mapServiceOrderError(usecase.ErrInvalidOSID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceOrderError(usecase.ErrServiceOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceOrderError(entities.ErrServiceAlreadyIncluded); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapServiceOrderError(entities.ErrBudgetAlreadyGenerated); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapServiceOrderError(entities.ErrOrderNotInExecution); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapServiceOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
