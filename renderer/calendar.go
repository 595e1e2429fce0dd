package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/etnz/valuation"
	md "github.com/nao1215/markdown"
)

// CalendarMarkdown renders a month grid, Sunday first.
//
// Days of the adjacent months are shown in parentheses, today in bold, and
// the number of unlocks of a day follows its number. When view has a
// selection, its unlocks are listed below the grid.
func CalendarMarkdown(view valuation.CalendarView, g valuation.MonthGrid, idx valuation.EventIndex) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(g.Month.Label())

	table := md.TableSet{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		table.Header = append(table.Header, wd.String()[:3])
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for _, week := range g.Weeks {
		row := make([]string, len(week))
		for i, d := range week {
			row[i] = dayCell(d)
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d unlocks this month.", g.EventCount()))

	if view.HasSelection() {
		doc.H2(view.Selected.Format("Monday, January 2, 2006"))
		events := view.SelectedEvents(idx)
		if len(events) == 0 {
			doc.PlainText("No unlock.")
			return doc.String()
		}
		var lines []string
		for _, e := range events {
			lines = append(lines, event(e))
		}
		doc.OrderedList(lines...)
	}
	return doc.String()
}

func dayCell(d valuation.CalendarDay) string {
	cell := strconv.Itoa(d.Date.Day())
	if !d.IsCurrentMonth {
		cell = "(" + cell + ")"
	}
	if d.IsToday {
		cell = md.Bold(cell)
	}
	if n := d.Count(); n > 0 {
		cell += fmt.Sprintf(" •%d", n)
	}
	return cell
}

// event describes one unlock of the selected day.
func event(e valuation.UnlockAllocation) string {
	s := fmt.Sprintf("%s: %s", e.AssetID, amount(e.Amount))
	if e.PercentOfTotal.Valid {
		s += fmt.Sprintf(" (%s%% of total)", e.PercentOfTotal.Decimal.String())
	}
	switch {
	case e.IsTge:
		s += " TGE"
	case e.IsCliff:
		s += " cliff"
	}
	return s
}
