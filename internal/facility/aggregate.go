package facility

import (
	"fmt"
	"sort"
)

// Metric selects the leaderboard ranking column.
type Metric string

const (
	MetricCount        Metric = "count"
	MetricCARF         Metric = "carf_count"
	MetricTherapyHours Metric = "therapy_hours"
)

// ParseMetric accepts the canonical metric names plus the short forms
// used on the CLI ("carf", "therapy").
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "count", "":
		return MetricCount, nil
	case "carf", "carf_count":
		return MetricCARF, nil
	case "therapy", "therapy_hours":
		return MetricTherapyHours, nil
	default:
		return "", fmt.Errorf("unknown metric %q (want count, carf_count, or therapy_hours)", s)
	}
}

// Options selects which records participate in an aggregation pass.
// Both filters are optional and AND-combined when both are set.
type Options struct {
	RequireLTACH bool
	RequireTBI   bool
}

// Match reports whether a record passes all active filters.
func (o Options) Match(r Record) bool {
	if o.RequireLTACH && !IsLTACH(r) {
		return false
	}
	if o.RequireTBI && !IsTBI(r) {
		return false
	}
	return true
}

// StateGroup accumulates the leaderboard totals for one state. Groups
// are built fresh on every aggregation pass and never persisted.
type StateGroup struct {
	State        string   `json:"state"`
	Count        int      `json:"count"`
	CARFCount    int      `json:"carf_count"`
	TherapyHours float64  `json:"therapy_hours"`
	Facilities   []Record `json:"facilities,omitempty"`
}

// MetricValue returns the group's value for the given metric.
func (g *StateGroup) MetricValue(m Metric) float64 {
	switch m {
	case MetricCARF:
		return float64(g.CARFCount)
	case MetricTherapyHours:
		return g.TherapyHours
	default:
		return float64(g.Count)
	}
}

// Aggregate groups the filtered records by resolved state. Each record
// lands in exactly one group. Missing or non-numeric therapy hours
// contribute 0 to the sum. Groups are returned in first-seen order;
// rerunning with the same input yields the same result.
func Aggregate(records []Record, opts Options) []*StateGroup {
	groups := make(map[string]*StateGroup)
	var order []*StateGroup

	for _, r := range records {
		if !opts.Match(r) {
			continue
		}

		state := ResolveState(r)
		g, ok := groups[state]
		if !ok {
			g = &StateGroup{State: state}
			groups[state] = g
			order = append(order, g)
		}

		g.Count++
		if bool(r.CARF) {
			g.CARFCount++
		}
		g.TherapyHours += float64(r.TherapyHours)
		g.Facilities = append(g.Facilities, r)
	}

	return order
}

// Rank returns the groups sorted descending by metric, capped at topN
// (unlimited when topN <= 0). Ties break on state code ascending so
// output is stable. The input slice is not modified.
func Rank(groups []*StateGroup, m Metric, topN int) []*StateGroup {
	ranked := make([]*StateGroup, len(groups))
	copy(ranked, groups)

	sort.Slice(ranked, func(i, j int) bool {
		vi, vj := ranked[i].MetricValue(m), ranked[j].MetricValue(m)
		if vi != vj {
			return vi > vj
		}
		return ranked[i].State < ranked[j].State
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
