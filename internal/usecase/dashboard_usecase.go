package usecase

import (
	"context"
	"log"
	"time"

	"crm_ventas/internal/domain/entities"
	"crm_ventas/internal/domain/metrics"
	"crm_ventas/internal/usecase/interfaces"
)

// DashboardResult is the full set of dashboard metrics for one filter scope.
type DashboardResult struct {
	Advisors        []string
	Headline        metrics.HeadlineMetrics
	WeeklyCadence   *metrics.WeeklyCadenceMetrics
	StatusBreakdown metrics.StatusBreakdownMetrics
	QuotaAttainment metrics.QuotaAttainmentMetrics
	Quarterly       metrics.QuarterlyMetrics
	YearToDate      metrics.YearToDateMetrics
}

// IDashboardUseCase computes dashboard metrics from fresh snapshots of the
// four collections.

type IDashboardUseCase interface {
	GetDashboard(ctx context.Context, f metrics.Filter) (DashboardResult, error)
	ListAdvisors(ctx context.Context) ([]string, error)
}

// DashboardUseCase wires the record repositories to the pure metrics engine.
// Each call reads one snapshot per collection, computes everything against
// it and discards it; no state survives between calls.
type DashboardUseCase struct {
	appointments interfaces.IAppointmentRepository
	prospects    interfaces.IProspectRepository
	projects     interfaces.IProjectRepository
	targets      interfaces.ITargetRepository

	// now is injectable so period-scoped metrics are deterministic in tests.
	now func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	appointments interfaces.IAppointmentRepository,
	prospects interfaces.IProspectRepository,
	projects interfaces.IProjectRepository,
	targets interfaces.ITargetRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		appointments: appointments,
		prospects:    prospects,
		projects:     projects,
		targets:      targets,
		now:          time.Now,
	}
}

func (u *DashboardUseCase) loadSnapshot(ctx context.Context) (
	[]entities.Appointment, []entities.Prospect, []entities.Project, []entities.Target, error,
) {
	appointments, err := u.appointments.List(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] failed loading appointments err=%v", err)
		return nil, nil, nil, nil, err
	}
	prospects, err := u.prospects.List(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] failed loading prospects err=%v", err)
		return nil, nil, nil, nil, err
	}
	projects, err := u.projects.List(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] failed loading projects err=%v", err)
		return nil, nil, nil, nil, err
	}
	targets, err := u.targets.List(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] failed loading targets err=%v", err)
		return nil, nil, nil, nil, err
	}
	return appointments, prospects, projects, targets, nil
}

func (u *DashboardUseCase) GetDashboard(ctx context.Context, f metrics.Filter) (DashboardResult, error) {
	appointments, prospects, projects, targets, err := u.loadSnapshot(ctx)
	if err != nil {
		return DashboardResult{}, err
	}
	log.Printf("[dashboard][usecase] snapshot loaded appointments=%d prospects=%d projects=%d targets=%d",
		len(appointments), len(prospects), len(projects), len(targets))

	advisors := metrics.ListAdvisors(appointments, prospects, projects, targets)
	filteredAppointments, filteredProspects, filteredProjects := metrics.ApplyFilters(appointments, prospects, projects, f)

	now := u.now()
	return DashboardResult{
		Advisors:        advisors,
		Headline:        metrics.Headline(filteredAppointments, filteredProspects, filteredProjects),
		WeeklyCadence:   metrics.WeeklyCadence(appointments, f),
		StatusBreakdown: metrics.StatusBreakdown(filteredProjects),
		QuotaAttainment: metrics.QuotaAttainment(filteredProjects, targets, f.Advisor, advisors, f, now),
		Quarterly:       metrics.QuarterlyPerformance(filteredProjects, targets, now),
		YearToDate:      metrics.YearToDate(filteredProjects, targets, f.Advisor, advisors, now),
	}, nil
}

func (u *DashboardUseCase) ListAdvisors(ctx context.Context) ([]string, error) {
	appointments, prospects, projects, targets, err := u.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.ListAdvisors(appointments, prospects, projects, targets), nil
}
