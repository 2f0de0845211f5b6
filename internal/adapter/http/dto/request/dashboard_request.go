package request

import (
	"errors"
	"strings"
	"time"

	"crm_ventas/internal/domain/metrics"
)

var (
	ErrInvalidDateBound = errors.New("invalid date bound")
)

const queryDateLayout = "2006-01-02"

// DashboardQuery is the filter scope carried on GET /v1/dashboard.
//
// date_start and date_end are ISO dates (YYYY-MM-DD). The window only takes
// effect when both are present; advisor defaults to the "All" sentinel.
type DashboardQuery struct {
	DateStart string `form:"date_start"`
	DateEnd   string `form:"date_end"`
	Advisor   string `form:"advisor"`
}

func (q DashboardQuery) ResolveFilter() (metrics.Filter, error) {
	f := metrics.Filter{Advisor: strings.TrimSpace(q.Advisor)}
	if f.Advisor == "" {
		f.Advisor = metrics.AdvisorAll
	}

	start, err := parseQueryDate(q.DateStart)
	if err != nil {
		return metrics.Filter{}, err
	}
	end, err := parseQueryDate(q.DateEnd)
	if err != nil {
		return metrics.Filter{}, err
	}
	f.DateStart = start
	f.DateEnd = end

	if f.DateStart != nil && f.DateEnd != nil && f.DateEnd.Before(*f.DateStart) {
		return metrics.Filter{}, ErrInvalidDateBound
	}
	return f, nil
}

func parseQueryDate(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(queryDateLayout, s)
	if err != nil {
		return nil, ErrInvalidDateBound
	}
	return &t, nil
}
