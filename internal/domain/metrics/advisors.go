package metrics

import (
	"sort"

	"crm_ventas/internal/domain/entities"
)

// ListAdvisors unions the distinct advisor names across the four collections
// and returns them sorted ascending. Values are used exactly as stored (no
// case folding); empty names are skipped.
func ListAdvisors(
	appointments []entities.Appointment,
	prospects []entities.Prospect,
	projects []entities.Project,
	targets []entities.Target,
) []string {
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		seen[name] = struct{}{}
	}

	for _, a := range appointments {
		add(a.Advisor)
	}
	for _, p := range prospects {
		add(p.Advisor)
	}
	for _, p := range projects {
		add(p.Advisor)
	}
	for _, t := range targets {
		add(t.Advisor)
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
