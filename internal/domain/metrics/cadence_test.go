package metrics

import (
	"fmt"
	"testing"

	"crm_ventas/internal/domain/entities"
)

// weekOf builds n appointments for one advisor on consecutive days of the
// same ISO week.
func weekOf(advisor string, day, month, year, n int) []entities.Appointment {
	out := make([]entities.Appointment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.Appointment{
			Advisor: advisor,
			Date:    fmt.Sprintf("%02d/%02d/%d", day, month, year),
		})
	}
	return out
}

func TestWeeklyCadence(t *testing.T) {
	t.Run("no usable dates returns nil", func(t *testing.T) {
		appointments := []entities.Appointment{{Advisor: "Ana"}, {Advisor: "Bruno", Date: "  "}}
		if m := WeeklyCadence(appointments, Filter{Advisor: AdvisorAll}); m != nil {
			t.Fatalf("expected nil, got %+v", m)
		}
		if m := WeeklyCadence(nil, Filter{Advisor: AdvisorAll}); m != nil {
			t.Fatalf("expected nil for empty collection, got %+v", m)
		}
	})

	t.Run("single advisor buckets 4 6 8", func(t *testing.T) {
		var appointments []entities.Appointment
		appointments = append(appointments, weekOf("Ana", 6, 5, 2024, 4)...)  // ISO week 19
		appointments = append(appointments, weekOf("Ana", 13, 5, 2024, 6)...) // ISO week 20
		appointments = append(appointments, weekOf("Ana", 20, 5, 2024, 8)...) // ISO week 21

		m := WeeklyCadence(appointments, Filter{Advisor: "Ana"})
		if m == nil {
			t.Fatalf("expected metrics")
		}
		if m.AvgPerWeek != 6.0 {
			t.Fatalf("expected average 6.0, got %v", m.AvgPerWeek)
		}
		if m.WeekCount != 3 {
			t.Fatalf("expected 3 buckets, got %d", m.WeekCount)
		}
		// 6/5 = 120% of the single-advisor quota.
		if m.ComplianceTier != TierNormal {
			t.Fatalf("expected normal tier, got %s", m.ComplianceTier)
		}
		if m.ComplianceLabel != "120% compliance" {
			t.Fatalf("unexpected label %q", m.ComplianceLabel)
		}
	})

	t.Run("all advisors contribute independent buckets", func(t *testing.T) {
		var appointments []entities.Appointment
		appointments = append(appointments, weekOf("Ana", 6, 5, 2024, 10)...)
		appointments = append(appointments, weekOf("Bruno", 6, 5, 2024, 30)...)

		m := WeeklyCadence(appointments, Filter{Advisor: AdvisorAll})
		if m == nil {
			t.Fatalf("expected metrics")
		}
		// Two buckets in the same ISO week, averaged equally.
		if m.AvgPerWeek != 20.0 || m.WeekCount != 2 {
			t.Fatalf("unexpected metrics: %+v", m)
		}
		// 20/20 = 100% of the team quota.
		if m.ComplianceTier != TierNormal {
			t.Fatalf("expected normal tier, got %s", m.ComplianceTier)
		}
	})

	t.Run("caution and alert tiers", func(t *testing.T) {
		m := WeeklyCadence(weekOf("Ana", 6, 5, 2024, 3), Filter{Advisor: "Ana"})
		if m == nil || m.ComplianceTier != TierOff {
			t.Fatalf("expected off tier at 60%%, got %+v", m)
		}

		m = WeeklyCadence(weekOf("Ana", 6, 5, 2024, 2), Filter{Advisor: "Ana"})
		if m == nil || m.ComplianceTier != TierInverse {
			t.Fatalf("expected inverse tier at 40%%, got %+v", m)
		}
	})

	t.Run("date window applies", func(t *testing.T) {
		var appointments []entities.Appointment
		appointments = append(appointments, weekOf("Ana", 6, 5, 2024, 4)...)
		appointments = append(appointments, weekOf("Ana", 6, 6, 2024, 8)...)

		f := Filter{
			Advisor:   "Ana",
			DateStart: datePtr(2024, 5, 1),
			DateEnd:   datePtr(2024, 5, 31),
		}
		m := WeeklyCadence(appointments, f)
		if m == nil || m.WeekCount != 1 || m.AvgPerWeek != 4.0 {
			t.Fatalf("expected only the May bucket, got %+v", m)
		}
	})

	t.Run("rows with unparsable dates are skipped", func(t *testing.T) {
		appointments := append(weekOf("Ana", 6, 5, 2024, 4), entities.Appointment{Advisor: "Ana", Date: "31/02/2024"})
		m := WeeklyCadence(appointments, Filter{Advisor: "Ana"})
		if m == nil || m.AvgPerWeek != 4.0 || m.WeekCount != 1 {
			t.Fatalf("unexpected metrics: %+v", m)
		}
	})
}
