// Package report serializes audit findings to CSV, Markdown, or JSON.
//
// A report holds one row per audited page. The current auditor always
// produces exactly one row, but the writers make no assumption about
// that.
package report

import (
	"time"

	"github.com/google/uuid"
)

// Page is one flat report row.
type Page struct {
	URL               string   `json:"url"`
	Title             string   `json:"title"`
	MetaDescription   string   `json:"meta_description"`
	H1Count           int      `json:"h1_count"`
	MissingAltCount   int      `json:"missing_alt_count"`
	WordCount         int      `json:"word_count"`
	InternalLinkCount int      `json:"internal_link_count"`
	BrokenLinkCount   int      `json:"broken_link_count"`
	BrokenLinks       []string `json:"broken_link_list"`
}

// Report is the full output of one audit run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	StartURL    string    `json:"start_url"`
	Pages       []Page    `json:"pages"`
}

// New creates an empty report for startURL with a fresh run ID.
func New(startURL string) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		StartURL:    startURL,
	}
}
