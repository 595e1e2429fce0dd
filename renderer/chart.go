package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/valuation"
	md "github.com/nao1215/markdown"
)

// ChartMarkdown renders a valuation chart as a table, one row per date.
func ChartMarkdown(c valuation.ValuationChart, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Valuation")
	if c.NoData {
		doc.PlainText("No valuation data.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Market", "Market Cap", "Funding", "Best Buy", "Best Sell", "Quotes"},
	}
	for _, p := range c.Points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			opts.fdv(p.MarketValue),
			opts.fdv(p.MarketCap),
			opts.fdv(p.FundingValue),
			opts.fdv(p.BuyQuote),
			opts.fdv(p.SellQuote),
			quotes(p),
		})
	}
	doc.Table(table)

	if len(c.Unmatched) > 0 {
		doc.H2("Unmatched Orders")
		var lines []string
		for _, o := range c.Unmatched {
			lines = append(lines, fmt.Sprintf("%s %s %q", o.Date, o.OrderID, o.Type))
		}
		doc.OrderedList(lines...)
	}
	return doc.String()
}

// quotes summarizes the number of buy and sell quotes of a record.
func quotes(r valuation.DatedRecord) string {
	if len(r.AllBuyQuotes) == 0 && len(r.AllSellQuotes) == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", len(r.AllBuyQuotes), len(r.AllSellQuotes))
}
