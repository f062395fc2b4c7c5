package board

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/smallick/ltach-tools/internal/facility"
)

func rankedGroups() []*facility.StateGroup {
	return []*facility.StateGroup{
		{State: "TX", Count: 4, CARFCount: 2, TherapyHours: 10.25},
		{State: "NJ", Count: 2, CARFCount: 1, TherapyHours: 6},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(rankedGroups())

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Rank != 1 || rows[1].Rank != 2 {
		t.Errorf("ranks = %d, %d, want 1, 2", rows[0].Rank, rows[1].Rank)
	}
	// One decimal place, rounded.
	if rows[0].TherapyHours != "10.2" && rows[0].TherapyHours != "10.3" {
		t.Errorf("therapy hours = %q, want one decimal place", rows[0].TherapyHours)
	}
	if rows[1].TherapyHours != "6.0" {
		t.Errorf("therapy hours = %q, want 6.0", rows[1].TherapyHours)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		groups  []*facility.StateGroup
		loadErr error
		want    string
	}{
		{
			name:   "normal summary",
			groups: rankedGroups(),
			want:   "6 facilities across 2 states",
		},
		{
			name: "empty data",
			want: "0 facilities across 0 states",
		},
		{
			name:    "load failure surfaces",
			groups:  nil,
			loadErr: errors.New("unexpected status code: 404"),
			want:    "Snapshot load failed: unexpected status code: 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.groups, tt.loadErr); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(&buf, Rows(rankedGroups())); err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], "RANK") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "TX") {
		t.Errorf("first data row should be TX: %q", lines[1])
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, Rows(rankedGroups()), facility.MetricCount); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Facility Leaderboard", "| TX", "`count`"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}
