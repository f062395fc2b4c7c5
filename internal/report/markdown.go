package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter writes the report as a Markdown document, one section
// per audited page. Useful for pasting audit results into issues or
// docs.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter targeting output.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write renders the report.
func (w *MarkdownWriter) Write(r *Report) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("SEO Audit Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Start URL", r.StartURL},
			{"Run ID", "`" + r.RunID + "`"},
			{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	for _, p := range r.Pages {
		w.writePage(md, p)
	}

	return md.Build()
}

func (w *MarkdownWriter) writePage(md *markdown.Markdown, p Page) {
	md.H2(p.URL)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Title", p.Title},
			{"Meta description", p.MetaDescription},
			{"H1 count", strconv.Itoa(p.H1Count)},
			{"Images missing alt", strconv.Itoa(p.MissingAltCount)},
			{"Word count", strconv.Itoa(p.WordCount)},
			{"Internal links", strconv.Itoa(p.InternalLinkCount)},
			{"Broken links", strconv.Itoa(p.BrokenLinkCount)},
		},
	})
	md.PlainText("")

	if len(p.BrokenLinks) > 0 {
		md.H3("Broken links")
		md.BulletList(p.BrokenLinks...)
		md.PlainText("")
	}
}
