package metrics

import "crm_ventas/internal/domain/entities"

// Headline computes the top-line dashboard counters from the filtered views.
//
// TotalPipelineValue sums every project's total regardless of status: it
// represents all quoted value in view, not closed business. AverageTicket
// divides won value by the number of won rows; rows whose total failed to
// parse still count in the denominator but contribute nothing to the sum.
func Headline(
	appointments []entities.Appointment,
	prospects []entities.Prospect,
	projects []entities.Project,
) HeadlineMetrics {
	m := HeadlineMetrics{
		AppointmentCount: len(appointments),
		ProspectCount:    len(prospects),
		ProjectCount:     len(projects),
	}

	wonCount := 0
	wonSum := 0.0
	for _, p := range projects {
		if p.Total != nil {
			m.TotalPipelineValue += *p.Total
		}
		if p.Status == entities.ProjectStatusWon {
			wonCount++
			if p.Total != nil {
				wonSum += *p.Total
			}
		}
	}
	if wonCount > 0 {
		m.AverageTicket = wonSum / float64(wonCount)
	}
	return m
}

// StatusBreakdown sums quoted value per normalized status bucket. Rows with
// an unrecognized status stay out of every bucket (they still show up in the
// pipeline sum computed by Headline).
func StatusBreakdown(projects []entities.Project) StatusBreakdownMetrics {
	var m StatusBreakdownMetrics
	for _, p := range projects {
		if p.Total == nil {
			continue
		}
		switch p.Status {
		case entities.ProjectStatusInProgress:
			m.AmountInProgress += *p.Total
		case entities.ProjectStatusWon:
			m.AmountWon += *p.Total
		case entities.ProjectStatusLost:
			m.AmountLost += *p.Total
		}
	}
	return m
}
