package response

import (
	"crm_ventas/internal/domain/metrics"
	"crm_ventas/internal/usecase"
)

// DashboardResponse is the single aggregate payload behind GET /v1/dashboard.
// All sections describe the same snapshot, so one round trip renders the
// whole screen.
type DashboardResponse struct {
	Advisors        []string                       `json:"advisors"`
	Headline        metrics.HeadlineMetrics        `json:"headline"`
	WeeklyCadence   *metrics.WeeklyCadenceMetrics  `json:"weekly_cadence"`
	StatusBreakdown metrics.StatusBreakdownMetrics `json:"status_breakdown"`
	QuotaAttainment metrics.QuotaAttainmentMetrics `json:"quota_attainment"`
	Quarterly       metrics.QuarterlyMetrics       `json:"quarterly"`
	YearToDate      metrics.YearToDateMetrics      `json:"year_to_date"`
}

func FromDashboard(res usecase.DashboardResult) DashboardResponse {
	return DashboardResponse{
		Advisors:        res.Advisors,
		Headline:        res.Headline,
		WeeklyCadence:   res.WeeklyCadence,
		StatusBreakdown: res.StatusBreakdown,
		QuotaAttainment: res.QuotaAttainment,
		Quarterly:       res.Quarterly,
		YearToDate:      res.YearToDate,
	}
}

// AdvisorsResponse backs GET /v1/advisors, the selector options feed.
type AdvisorsResponse struct {
	Advisors []string `json:"advisors"`
}
