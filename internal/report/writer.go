package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Writer outputs a report to some destination. Implementations exist
// for CSV, Markdown, and JSON so the same report can go to a file,
// stdout, or both.
type Writer interface {
	Write(r *Report) error
}

// Header columns for the tabular formats, in fixed order.
var columns = []string{
	"url",
	"title",
	"meta_description",
	"h1_count",
	"missing_alt_count",
	"word_count",
	"internal_link_count",
	"broken_link_count",
	"broken_link_list",
}

// row flattens a page into column order.
func row(p Page) []string {
	return []string{
		p.URL,
		p.Title,
		p.MetaDescription,
		strconv.Itoa(p.H1Count),
		strconv.Itoa(p.MissingAltCount),
		strconv.Itoa(p.WordCount),
		strconv.Itoa(p.InternalLinkCount),
		strconv.Itoa(p.BrokenLinkCount),
		strings.Join(p.BrokenLinks, "; "),
	}
}

// CSVWriter writes the report as comma-separated values with a header
// row, the default audit output format.
type CSVWriter struct {
	output io.Writer
}

// NewCSVWriter creates a CSVWriter targeting output.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{output: output}
}

// Write outputs the header row followed by one row per page.
func (w *CSVWriter) Write(r *Report) error {
	cw := csv.NewWriter(w.output)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, p := range r.Pages {
		if err := cw.Write(row(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONWriter writes the report as indented JSON.
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter targeting output.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

// Write encodes the full report structure.
func (w *JSONWriter) Write(r *Report) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
