package response

import (
	"encoding/json"
	"strings"
	"testing"

	"crm_ventas/internal/domain/entities"
	"crm_ventas/internal/domain/metrics"
	"crm_ventas/internal/usecase"
)

func TestFromDashboard_NilCadenceSerializesAsNull(t *testing.T) {
	res := usecase.DashboardResult{
		Advisors: []string{"Ana"},
		Headline: metrics.HeadlineMetrics{AppointmentCount: 2},
	}

	body, err := json.Marshal(FromDashboard(res))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), `"weekly_cadence":null`) {
		t.Fatalf("expected null cadence section, got %s", body)
	}
	if !strings.Contains(string(body), `"appointment_count":2`) {
		t.Fatalf("expected headline counters, got %s", body)
	}
}

func TestFromProject_KeepsOptionalTotal(t *testing.T) {
	withNil := FromProject(entities.Project{ID: "ID-1", Status: entities.ProjectStatusWon})
	if withNil.Total != nil {
		t.Fatalf("expected nil total, got %v", *withNil.Total)
	}

	total := 1500.0
	withValue := FromProject(entities.Project{ID: "ID-2", Total: &total})
	if withValue.Total == nil || *withValue.Total != 1500 {
		t.Fatalf("unexpected total: %+v", withValue.Total)
	}
}

func TestFromAppointments_EmptyInputYieldsEmptySlice(t *testing.T) {
	out := FromAppointments(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
}
