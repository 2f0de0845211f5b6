package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"crm_ventas/internal/domain/entities"
	"crm_ventas/internal/domain/metrics"
	mock_interfaces "crm_ventas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newDashboardMocks(ctrl *gomock.Controller) (
	*mock_interfaces.MockIAppointmentRepository,
	*mock_interfaces.MockIProspectRepository,
	*mock_interfaces.MockIProjectRepository,
	*mock_interfaces.MockITargetRepository,
	*DashboardUseCase,
) {
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	prospects := mock_interfaces.NewMockIProspectRepository(ctrl)
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	targets := mock_interfaces.NewMockITargetRepository(ctrl)
	uc := NewDashboardUseCase(appointments, prospects, projects, targets)
	uc.now = func() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC) }
	return appointments, prospects, projects, targets, uc
}

func TestDashboardUseCase_GetDashboard(t *testing.T) {
	t.Run("aggregates snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		appointments, prospects, projects, targets, uc := newDashboardMocks(ctrl)

		appointments.EXPECT().List(gomock.Any()).Return([]entities.Appointment{
			{ID: "ID-1", Advisor: "Ana", Date: "06/05/2024"},
			{ID: "ID-2", Advisor: "Bruno", Date: "06/05/2024"},
		}, nil)
		prospects.EXPECT().List(gomock.Any()).Return([]entities.Prospect{
			{ID: "ID-3", Advisor: "Ana", Date: "07/05/2024"},
		}, nil)
		quota := 800.0
		total := 1000.0
		projects.EXPECT().List(gomock.Any()).Return([]entities.Project{
			{ID: "ID-4", Advisor: "Ana", Status: entities.ProjectStatusWon, Total: &total, InvoiceDate: "10/05/2024"},
		}, nil)
		targets.EXPECT().List(gomock.Any()).Return([]entities.Target{
			{Advisor: "Ana", Month: 5, Year: 2024, QuotaAmount: &quota},
		}, nil)

		res, err := uc.GetDashboard(context.Background(), metrics.Filter{Advisor: "Ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(res.Advisors, []string{"Ana", "Bruno"}) {
			t.Fatalf("unexpected advisors: %v", res.Advisors)
		}
		if res.Headline.AppointmentCount != 1 || res.Headline.ProspectCount != 1 || res.Headline.ProjectCount != 1 {
			t.Fatalf("unexpected headline: %+v", res.Headline)
		}
		if res.Headline.TotalPipelineValue != 1000 {
			t.Fatalf("unexpected pipeline: %+v", res.Headline)
		}
		if res.WeeklyCadence == nil || res.WeeklyCadence.WeekCount != 1 {
			t.Fatalf("unexpected cadence: %+v", res.WeeklyCadence)
		}
		if res.QuotaAttainment.SalesTotal != 1000 || res.QuotaAttainment.QuotaTotal != 800 {
			t.Fatalf("unexpected attainment: %+v", res.QuotaAttainment)
		}
		if res.Quarterly.Quarter != 2 || res.Quarterly.SalesTotal != 1000 {
			t.Fatalf("unexpected quarterly: %+v", res.Quarterly)
		}
		if res.YearToDate.PeriodLabel != "January – May" {
			t.Fatalf("unexpected ytd: %+v", res.YearToDate)
		}
	})

	t.Run("empty collections are a valid degenerate input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		appointments, prospects, projects, targets, uc := newDashboardMocks(ctrl)

		appointments.EXPECT().List(gomock.Any()).Return(nil, nil)
		prospects.EXPECT().List(gomock.Any()).Return(nil, nil)
		projects.EXPECT().List(gomock.Any()).Return(nil, nil)
		targets.EXPECT().List(gomock.Any()).Return(nil, nil)

		res, err := uc.GetDashboard(context.Background(), metrics.Filter{Advisor: metrics.AdvisorAll})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.WeeklyCadence != nil {
			t.Fatalf("expected nil cadence, got %+v", res.WeeklyCadence)
		}
		if res.QuotaAttainment.SalesDeltaLabel != "No quota defined" {
			t.Fatalf("unexpected attainment: %+v", res.QuotaAttainment)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		appointments, _, _, _, uc := newDashboardMocks(ctrl)

		appointments.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamodb down"))

		_, err := uc.GetDashboard(context.Background(), metrics.Filter{Advisor: metrics.AdvisorAll})
		if err == nil || err.Error() != "dynamodb down" {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestDashboardUseCase_ListAdvisors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	appointments, prospects, projects, targets, uc := newDashboardMocks(ctrl)

	appointments.EXPECT().List(gomock.Any()).Return([]entities.Appointment{{Advisor: "Carla"}}, nil).Times(2)
	prospects.EXPECT().List(gomock.Any()).Return([]entities.Prospect{{Advisor: "Ana"}}, nil).Times(2)
	projects.EXPECT().List(gomock.Any()).Return([]entities.Project{{Advisor: "Ana"}}, nil).Times(2)
	targets.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)

	first, err := uc.ListAdvisors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.ListAdvisors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, []string{"Ana", "Carla"}) || !reflect.DeepEqual(first, second) {
		t.Fatalf("unexpected advisor lists: %v vs %v", first, second)
	}
}
