package request

import (
	"errors"
	"testing"
	"time"

	"crm_ventas/internal/domain/metrics"
)

func TestDashboardQuery_ResolveFilter(t *testing.T) {
	t.Run("empty query defaults to all advisors and no window", func(t *testing.T) {
		f, err := DashboardQuery{}.ResolveFilter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Advisor != metrics.AdvisorAll {
			t.Fatalf("expected All sentinel, got %q", f.Advisor)
		}
		if f.DateWindowActive() {
			t.Fatalf("expected inactive window: %+v", f)
		}
	})

	t.Run("both bounds resolve to an active window", func(t *testing.T) {
		f, err := DashboardQuery{DateStart: "2024-05-01", DateEnd: "2024-05-31", Advisor: " Ana "}.ResolveFilter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !f.DateWindowActive() {
			t.Fatalf("expected active window: %+v", f)
		}
		if !f.DateStart.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected start: %v", f.DateStart)
		}
		if f.Advisor != "Ana" {
			t.Fatalf("expected trimmed advisor, got %q", f.Advisor)
		}
	})

	t.Run("single bound is kept without activating the window", func(t *testing.T) {
		f, err := DashboardQuery{DateStart: "2024-05-01"}.ResolveFilter()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.DateStart == nil || f.DateEnd != nil || f.DateWindowActive() {
			t.Fatalf("unexpected filter: %+v", f)
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := DashboardQuery{DateStart: "05/01/2024", DateEnd: "2024-05-31"}.ResolveFilter()
		if !errors.Is(err, ErrInvalidDateBound) {
			t.Fatalf("expected ErrInvalidDateBound, got %v", err)
		}
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		_, err := DashboardQuery{DateStart: "2024-06-01", DateEnd: "2024-05-01"}.ResolveFilter()
		if !errors.Is(err, ErrInvalidDateBound) {
			t.Fatalf("expected ErrInvalidDateBound, got %v", err)
		}
	})
}
