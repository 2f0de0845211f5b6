package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm_ventas/internal/adapter/http/handlers/mocks"
	"crm_ventas/internal/domain/metrics"
	"crm_ventas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed date bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?date_start=15/05/2024&date_end=2024-05-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inverted window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?date_start=2024-06-01&date_end=2024-05-01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		uc.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(usecase.DashboardResult{}, errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success with advisor scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)

		uc.EXPECT().
			GetDashboard(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f metrics.Filter) (usecase.DashboardResult, error) {
				if f.Advisor != "Ana" || f.DateWindowActive() {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return usecase.DashboardResult{
					Advisors: []string{"Ana", "Bruno"},
					Headline: metrics.HeadlineMetrics{AppointmentCount: 3},
				}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?advisor=Ana", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["weekly_cadence"] != nil {
			t.Fatalf("expected null cadence, got %v", body["weekly_cadence"])
		}
		headline, _ := body["headline"].(map[string]any)
		if headline["appointment_count"] != 3.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestDashboardHandler_ListAdvisors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/advisors", h.ListAdvisors)

		uc.EXPECT().ListAdvisors(gomock.Any()).Return([]string{"Ana", "Carla"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/advisors", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"advisors":["Ana","Carla"]}` {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/advisors", h.ListAdvisors)

		uc.EXPECT().ListAdvisors(gomock.Any()).Return(nil, errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/advisors", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
