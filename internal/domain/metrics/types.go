// Package metrics is the dashboard aggregation engine.
//
// Every function in this package is a pure, stateless transform over
// already-loaded snapshots of the four record collections. Nothing here
// performs I/O, mutates its inputs, or keeps state between calls; metrics
// that depend on "today" receive the reference time as an argument.
//
// Data-quality problems (missing values, unparsable dates or numbers, empty
// collections) always degrade to zero/empty results instead of failing.
package metrics

import "time"

// AdvisorAll is the selector sentinel meaning "no advisor filter".
const AdvisorAll = "All"

// DeltaTier tags a metric delta for presentation: on-track, caution or alert.
type DeltaTier string

const (
	TierNormal  DeltaTier = "normal"
	TierOff     DeltaTier = "off"
	TierInverse DeltaTier = "inverse"
)

// Filter is the user-selected dashboard scope.
//
// The date window only applies when BOTH bounds are set; a single bound is
// ignored entirely. Both ends are inclusive.
type Filter struct {
	DateStart *time.Time
	DateEnd   *time.Time
	Advisor   string
}

// DateWindowActive reports whether both bounds are present.
func (f Filter) DateWindowActive() bool {
	return f.DateStart != nil && f.DateEnd != nil
}

// AdvisorActive reports whether a single-advisor filter is in effect.
func (f Filter) AdvisorActive() bool {
	return f.Advisor != "" && f.Advisor != AdvisorAll
}

// HeadlineMetrics are the top-of-dashboard counters over the filtered views.
type HeadlineMetrics struct {
	AppointmentCount   int     `json:"appointment_count"`
	ProspectCount      int     `json:"prospect_count"`
	ProjectCount       int     `json:"project_count"`
	AverageTicket      float64 `json:"average_ticket"`
	TotalPipelineValue float64 `json:"total_pipeline_value"`
}

// WeeklyCadenceMetrics reports appointment activity per advisor-week bucket.
type WeeklyCadenceMetrics struct {
	AvgPerWeek      float64   `json:"avg_per_week"`
	ComplianceLabel string    `json:"compliance_label"`
	ComplianceTier  DeltaTier `json:"compliance_tier"`
	WeekCount       int       `json:"week_count"`
}

// StatusBreakdownMetrics sums quoted value per normalized project status.
type StatusBreakdownMetrics struct {
	AmountInProgress float64 `json:"amount_in_progress"`
	AmountWon        float64 `json:"amount_won"`
	AmountLost       float64 `json:"amount_lost"`
}

// QuotaAttainmentMetrics compares sales and quoting activity against the
// period quota for the selected advisor scope.
type QuotaAttainmentMetrics struct {
	QuotaTotal       float64   `json:"quota_total"`
	SalesTotal       float64   `json:"sales_total"`
	QuotesTotal      float64   `json:"quotes_total"`
	SalesDeltaLabel  string    `json:"sales_delta_label"`
	SalesDeltaTier   DeltaTier `json:"sales_delta_tier"`
	QuotesDeltaLabel string    `json:"quotes_delta_label"`
	QuotesDeltaTier  DeltaTier `json:"quotes_delta_tier"`
}

// QuarterlyMetrics is always scoped to the current real-world quarter,
// regardless of dashboard filters.
type QuarterlyMetrics struct {
	Quarter    int       `json:"quarter"`
	QuotaTotal float64   `json:"quota_total"`
	SalesTotal float64   `json:"sales_total"`
	Pct        float64   `json:"pct"`
	DeltaLabel string    `json:"delta_label"`
	DeltaTier  DeltaTier `json:"delta_tier"`
}

// YearToDateMetrics spans January through the current month.
type YearToDateMetrics struct {
	QuotaYTD    float64   `json:"quota_ytd"`
	SalesYTD    float64   `json:"sales_ytd"`
	Pct         float64   `json:"pct"`
	DeltaLabel  string    `json:"delta_label"`
	DeltaTier   DeltaTier `json:"delta_tier"`
	PeriodLabel string    `json:"period_label"`
	MonthCount  int       `json:"month_count"`
}
