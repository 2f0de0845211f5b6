package metrics

import (
	"strings"

	"crm_ventas/internal/domain/entities"
)

// ApplyFilters narrows the three activity collections to the dashboard scope.
//
// Rules:
//   - The date window applies only when both bounds are set; rows whose date
//     fails to parse are excluded while a window is active but kept when no
//     window is in effect.
//   - Projects participate in the advisor filter only; date windowing for
//     project-derived metrics is metric-specific and happens there.
//   - Inputs are never mutated; fresh slices are returned.
func ApplyFilters(
	appointments []entities.Appointment,
	prospects []entities.Prospect,
	projects []entities.Project,
	f Filter,
) ([]entities.Appointment, []entities.Prospect, []entities.Project) {
	filteredAppointments := make([]entities.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if f.DateWindowActive() {
			d, ok := ParseDate(a.Date)
			if !ok || !inWindow(d, *f.DateStart, *f.DateEnd) {
				continue
			}
		}
		if f.AdvisorActive() && strings.TrimSpace(a.Advisor) != f.Advisor {
			continue
		}
		filteredAppointments = append(filteredAppointments, a)
	}

	filteredProspects := make([]entities.Prospect, 0, len(prospects))
	for _, p := range prospects {
		if f.DateWindowActive() {
			d, ok := ParseDate(p.Date)
			if !ok || !inWindow(d, *f.DateStart, *f.DateEnd) {
				continue
			}
		}
		if f.AdvisorActive() && strings.TrimSpace(p.Advisor) != f.Advisor {
			continue
		}
		filteredProspects = append(filteredProspects, p)
	}

	filteredProjects := make([]entities.Project, 0, len(projects))
	for _, p := range projects {
		if f.AdvisorActive() && strings.TrimSpace(p.Advisor) != f.Advisor {
			continue
		}
		filteredProjects = append(filteredProjects, p)
	}

	return filteredAppointments, filteredProspects, filteredProjects
}
