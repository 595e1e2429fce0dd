package renderer

import (
	"bytes"

	"github.com/etnz/valuation"
	md "github.com/nao1215/markdown"
)

// UnlocksMarkdown renders the cumulative unlocked amount of every asset, one
// row per unlock date.
func UnlocksMarkdown(s valuation.CumulativeSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cumulative Unlocks")
	if len(s.Rows) == 0 {
		doc.PlainText("No unlock scheduled.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    append([]string{"Date"}, ids(s.Assets)...),
	}
	for range s.Assets {
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for _, row := range s.Rows {
		cells := []string{row.Date.String()}
		for _, id := range s.Assets {
			v, ok := row.Values[id]
			if !ok {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, amount(v))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	doc.H2("Totals")
	final := s.Final()
	totals := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Asset", "Unlocked"},
	}
	for _, id := range s.Assets {
		totals.Rows = append(totals.Rows, []string{string(id), amount(final[id])})
	}
	doc.Table(totals)

	return doc.String()
}

// MonthlyUnlocksMarkdown renders the amount unlocked each month, with its
// running total.
func MonthlyUnlocksMarkdown(points []valuation.MonthlyPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Unlocks")
	if len(points) == 0 {
		doc.PlainText("No unlock scheduled.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Month", "Unlocked", "Cumulative"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Month.String(),
			amount(p.AmountThisMonth),
			md.Bold(amount(p.CumulativeAmount)),
		})
	}
	doc.Table(table)
	return doc.String()
}

// MonthsMarkdown renders the list of months holding an unlock.
func MonthsMarkdown(labels []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Unlock Months")
	if len(labels) == 0 {
		doc.PlainText("No unlock scheduled.")
		return doc.String()
	}
	doc.OrderedList(labels...)
	return doc.String()
}

// PeriodicUnlocksMarkdown renders the amount unlocked in each calendar period.
func PeriodicUnlocksMarkdown(period string, points []valuation.PeriodPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Unlocks per " + period)
	if len(points) == 0 {
		doc.PlainText("No unlock scheduled.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Period", "Unlocked", "Cumulative"},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{p.Period, amount(p.Amount), amount(p.CumulativeAmount)})
	}
	doc.Table(table)
	return doc.String()
}
