// Package board renders ranked state groups as leaderboard output:
// plain text for the terminal, Markdown for docs, and row structs for
// the HTTP API.
package board

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nao1215/markdown"

	"github.com/smallick/ltach-tools/internal/facility"
)

// Row is one rendered leaderboard line. TherapyHours is preformatted
// to one decimal place so every output surface agrees.
type Row struct {
	Rank         int    `json:"rank"`
	State        string `json:"state"`
	Count        int    `json:"count"`
	CARFCount    int    `json:"carf_count"`
	TherapyHours string `json:"therapy_hours"`
}

// Rows converts ranked groups into display rows.
func Rows(ranked []*facility.StateGroup) []Row {
	rows := make([]Row, 0, len(ranked))
	for i, g := range ranked {
		rows = append(rows, Row{
			Rank:         i + 1,
			State:        g.State,
			Count:        g.Count,
			CARFCount:    g.CARFCount,
			TherapyHours: fmt.Sprintf("%.1f", g.TherapyHours),
		})
	}
	return rows
}

// Summary describes an aggregation pass in one line. A load error
// takes precedence because the empty board it produces is otherwise
// indistinguishable from genuinely empty data.
func Summary(groups []*facility.StateGroup, loadErr error) string {
	if loadErr != nil {
		return fmt.Sprintf("Snapshot load failed: %v", loadErr)
	}

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return fmt.Sprintf("%d facilities across %d states", total, len(groups))
}

// RenderText writes an aligned plain-text table.
func RenderText(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSTATE\tCOUNT\tCARF\tTHERAPY HRS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", r.Rank, r.State, r.Count, r.CARFCount, r.TherapyHours)
	}
	return tw.Flush()
}

// RenderMarkdown writes the leaderboard as a Markdown table.
func RenderMarkdown(w io.Writer, rows []Row, metric facility.Metric) error {
	md := markdown.NewMarkdown(w)

	md.H1("Facility Leaderboard")
	md.PlainText("")
	md.PlainTextf("Ranked by `%s`.", string(metric))
	md.PlainText("")

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d", r.Rank),
			r.State,
			fmt.Sprintf("%d", r.Count),
			fmt.Sprintf("%d", r.CARFCount),
			r.TherapyHours,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "State", "Count", "CARF", "Therapy Hours"},
		Rows:   tableRows,
	})

	return md.Build()
}
