package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm_ventas/internal/adapter/http/handlers/mocks"
	"crm_ventas/internal/domain/entities"
	"crm_ventas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProspectHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown deal type rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProspectUseCase(ctrl)
		h := NewProspectHandler(uc)

		r := gin.New()
		r.POST("/v1/prospects", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Prospect{}, usecase.ErrInvalidDealType)

		req := httptest.NewRequest(http.MethodPost, "/v1/prospects", bytes.NewBufferString(`{"advisor":"Ana","prospect_name":"Acme","deal_type":"Lease"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProspectUseCase(ctrl)
		h := NewProspectHandler(uc)

		r := gin.New()
		r.POST("/v1/prospects", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Prospect{
			ID: "ID-1234567890123", Advisor: "Ana", ProspectName: "Acme", DealType: entities.DealTypeSale,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/prospects", bytes.NewBufferString(`{"advisor":"Ana","prospect_name":"Acme","deal_type":"Sale"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestProspectHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProspectUseCase(ctrl)
	h := NewProspectHandler(uc)

	r := gin.New()
	r.GET("/v1/prospects", h.List)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Prospect{{ID: "ID-1"}, {ID: "ID-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/prospects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapProspectError(t *testing.T) {
	if got := mapProspectError(usecase.ErrInvalidDealType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProspectError(usecase.ErrProspectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProspectError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
