package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gaurav-prasanna/corpuspipe/core/pipeline"
)

// renderSummary prints per-domain build counts with a totals footer.
func renderSummary(w io.Writer, stats []pipeline.DomainStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Domain", "Titles", "Resolved", "Missing", "Paragraphs"})

	var total pipeline.DomainStats
	for _, s := range stats {
		t.AppendRow(table.Row{s.Domain, s.Titles, s.Resolved, s.Missing, s.Records})
		total.Titles += s.Titles
		total.Resolved += s.Resolved
		total.Missing += s.Missing
		total.Records += s.Records
	}
	t.AppendFooter(table.Row{"Total", total.Titles, total.Resolved, total.Missing, total.Records})

	t.Render()
}
