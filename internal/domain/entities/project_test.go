package entities

import "testing"

func TestNormalizeProjectStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want ProjectStatus
	}{
		{"Won", ProjectStatusWon},
		{"WON", ProjectStatusWon},
		{" won ", ProjectStatusWon},
		{"Sold", ProjectStatusWon}, // legacy synonym
		{"SOLD", ProjectStatusWon},
		{"Lost", ProjectStatusLost},
		{"lost", ProjectStatusLost},
		{"In Progress", ProjectStatusInProgress},
		{"IN PROGRESS", ProjectStatusInProgress},
		{"in_progress", ProjectStatusInProgress},
		{"", ProjectStatusUnknown},
		{"pending", ProjectStatusUnknown},
	}
	for _, tc := range cases {
		if got := NormalizeProjectStatus(tc.raw); got != tc.want {
			t.Fatalf("NormalizeProjectStatus(%q): expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestNormalizeLossReason(t *testing.T) {
	cases := []struct {
		raw  string
		want LossReason
	}{
		{"Price", LossReasonPrice},
		{"stock", LossReasonStock},
		{"Stock/Inventory", LossReasonStock},
		{"Other", LossReasonOther},
		{"", LossReasonNone},
		{"whatever", LossReasonNone},
	}
	for _, tc := range cases {
		if got := NormalizeLossReason(tc.raw); got != tc.want {
			t.Fatalf("NormalizeLossReason(%q): expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestNormalizeDealType(t *testing.T) {
	if NormalizeDealType(" sale ") != DealTypeSale {
		t.Fatalf("expected Sale")
	}
	if NormalizeDealType("RENT") != DealTypeRent {
		t.Fatalf("expected Rent")
	}
	if NormalizeDealType("lease") != DealTypeUnknown {
		t.Fatalf("expected unknown deal type")
	}
}
