package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/valuation"
	md "github.com/nao1215/markdown"
)

// CollapsedMarkdown renders the top-N series of a collapsed composition as a
// stacked table: one column per series, the synthetic "other" one last.
func CollapsedMarkdown(c valuation.Collapsed, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Top %d", topN(c)))
	if len(c.Dates) == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Date"},
	}
	for _, s := range c.Series {
		table.Header = append(table.Header, string(s.Key))
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	table.Header = append(table.Header, md.Bold("Total"))
	table.Alignment = append(table.Alignment, md.AlignRight)

	for _, row := range c.Rows() {
		cells := []string{row.Date.String()}
		for _, s := range c.Series {
			cells = append(cells, opts.money(row.Values[s.Key]))
		}
		cells = append(cells, md.Bold(opts.money(c.Total(row.Date))))
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)
	return doc.String()
}

// topN counts the real series of c.
func topN(c valuation.Collapsed) int {
	n := 0
	for _, s := range c.Series {
		if !s.Synthetic {
			n++
		}
	}
	return n
}
