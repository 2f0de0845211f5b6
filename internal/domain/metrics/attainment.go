package metrics

import (
	"fmt"
	"strings"
	"time"

	"crm_ventas/internal/domain/entities"
)

// Quotes activity is targeted at ten times the sales quota.
const quotesTargetMultiplier = 10

const noQuotaLabel = "No quota defined"

// resolveSaleDate picks the effective sale date of a project: invoice date
// first (present only on won deals), then quote date, then the generic date
// column. A value that is present but unparsable falls through to the next
// candidate.
func resolveSaleDate(p entities.Project) (time.Time, bool) {
	for _, raw := range []string{p.InvoiceDate, p.QuoteDate, p.Date} {
		if d, ok := ParseDate(raw); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// quotaSum adds quota amounts for one advisor over the given months.
// Duplicate target rows for the same month accumulate.
func quotaSum(targets []entities.Target, advisor string, months []monthYear) float64 {
	sum := 0.0
	for _, t := range targets {
		if strings.TrimSpace(t.Advisor) != advisor || t.QuotaAmount == nil {
			continue
		}
		for _, my := range months {
			if t.Month == my.month && t.Year == my.year {
				sum += *t.QuotaAmount
				break
			}
		}
	}
	return sum
}

// attainmentDelta builds the label/tier pair shared by every quota metric:
// on-track at 100% of quota, behind otherwise, neutral when no quota exists.
func attainmentDelta(quota, actual float64) (string, DeltaTier) {
	if quota <= 0 {
		return noQuotaLabel, TierOff
	}
	shortfall := quota - actual
	if shortfall > 0 {
		return fmt.Sprintf("Short by: $%s", FormatMoney(shortfall)), TierInverse
	}
	return fmt.Sprintf("Exceeded by: $%s", FormatMoney(-shortfall)), TierNormal
}

// scopedAdvisors resolves the advisor universe a quota metric aggregates
// over: the single selected advisor, or every known advisor for "All". The
// "All" quota is deliberately the sum of each advisor's individual quota,
// not a separate team-wide target row.
func scopedAdvisors(selected string, all []string) []string {
	if selected != "" && selected != AdvisorAll {
		return []string{selected}
	}
	return all
}

// wonSales sums won-project value for one advisor, gated by the
// resolved sale date when a window of months is given (nil months = no gate).
func wonSales(projects []entities.Project, advisor string, months []monthYear) float64 {
	sum := 0.0
	for _, p := range projects {
		if strings.TrimSpace(p.Advisor) != advisor || p.Status != entities.ProjectStatusWon || p.Total == nil {
			continue
		}
		if months != nil {
			d, ok := resolveSaleDate(p)
			if !ok {
				continue
			}
			matched := false
			for _, my := range months {
				if int(d.Month()) == my.month && d.Year() == my.year {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		sum += *p.Total
	}
	return sum
}

// QuotaAttainment compares won sales and total quoting activity against the
// period quota for the selected advisor scope.
//
// The period is every calendar month whose first day falls inside the filter
// window; without a window it defaults to the current month. Each advisor in
// scope contributes independently and the totals are summed.
func QuotaAttainment(
	projects []entities.Project,
	targets []entities.Target,
	advisor string,
	allAdvisors []string,
	f Filter,
	now time.Time,
) QuotaAttainmentMetrics {
	var months []monthYear
	if f.DateWindowActive() {
		months = monthsInRange(*f.DateStart, *f.DateEnd)
	} else {
		months = []monthYear{{month: int(now.Month()), year: now.Year()}}
	}

	var m QuotaAttainmentMetrics
	for _, a := range scopedAdvisors(advisor, allAdvisors) {
		m.QuotaTotal += quotaSum(targets, a, months)

		saleWindow := months
		if !f.DateWindowActive() {
			// Without a filter window the sales figure covers the whole
			// filtered view, not just the default quota month.
			saleWindow = nil
		}
		m.SalesTotal += wonSales(projects, a, saleWindow)

		for _, p := range projects {
			if strings.TrimSpace(p.Advisor) == a && p.Total != nil {
				m.QuotesTotal += *p.Total
			}
		}
	}

	m.SalesDeltaLabel, m.SalesDeltaTier = attainmentDelta(m.QuotaTotal, m.SalesTotal)
	m.QuotesDeltaLabel, m.QuotesDeltaTier = attainmentDelta(m.QuotaTotal*quotesTargetMultiplier, m.QuotesTotal)
	return m
}

// QuarterlyPerformance is always "this quarter": the window derives from now,
// never from the dashboard filters. Quota sums every advisor's targets for
// the quarter's three months of the current year.
func QuarterlyPerformance(projects []entities.Project, targets []entities.Target, now time.Time) QuarterlyMetrics {
	quarter := (int(now.Month())-1)/3 + 1
	firstMonth := (quarter-1)*3 + 1
	months := []monthYear{
		{month: firstMonth, year: now.Year()},
		{month: firstMonth + 1, year: now.Year()},
		{month: firstMonth + 2, year: now.Year()},
	}

	m := QuarterlyMetrics{Quarter: quarter}
	for _, t := range targets {
		if t.QuotaAmount == nil || t.Year != now.Year() {
			continue
		}
		if t.Month >= firstMonth && t.Month < firstMonth+3 {
			m.QuotaTotal += *t.QuotaAmount
		}
	}
	for _, p := range projects {
		if p.Status != entities.ProjectStatusWon || p.Total == nil {
			continue
		}
		d, ok := resolveSaleDate(p)
		if !ok {
			continue
		}
		for _, my := range months {
			if int(d.Month()) == my.month && d.Year() == my.year {
				m.SalesTotal += *p.Total
				break
			}
		}
	}

	if m.QuotaTotal > 0 {
		m.Pct = m.SalesTotal / m.QuotaTotal * 100
		shortfall := m.QuotaTotal - m.SalesTotal
		if shortfall > 0 {
			m.DeltaLabel = fmt.Sprintf("%.1f%% - Short by: $%s", m.Pct, FormatMoney(shortfall))
			m.DeltaTier = TierInverse
		} else {
			m.DeltaLabel = fmt.Sprintf("%.1f%% - Exceeded by: $%s", m.Pct, FormatMoney(-shortfall))
			m.DeltaTier = TierNormal
		}
	} else {
		m.DeltaLabel = noQuotaLabel
		m.DeltaTier = TierOff
	}
	return m
}

// YearToDate aggregates January through the current month of the current
// year over the selected advisor scope.
func YearToDate(
	projects []entities.Project,
	targets []entities.Target,
	advisor string,
	allAdvisors []string,
	now time.Time,
) YearToDateMetrics {
	currentMonth := int(now.Month())
	months := make([]monthYear, 0, currentMonth)
	for mo := 1; mo <= currentMonth; mo++ {
		months = append(months, monthYear{month: mo, year: now.Year()})
	}

	m := YearToDateMetrics{MonthCount: currentMonth}
	for _, a := range scopedAdvisors(advisor, allAdvisors) {
		m.QuotaYTD += quotaSum(targets, a, months)
		m.SalesYTD += wonSales(projects, a, months)
	}

	if m.QuotaYTD > 0 {
		m.Pct = m.SalesYTD / m.QuotaYTD * 100
	}
	m.DeltaLabel, m.DeltaTier = attainmentDelta(m.QuotaYTD, m.SalesYTD)

	if currentMonth == 1 {
		m.PeriodLabel = time.January.String()
	} else {
		m.PeriodLabel = fmt.Sprintf("%s – %s", time.January, now.Month())
	}
	return m
}
