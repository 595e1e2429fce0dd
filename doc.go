// Package valuation reconciles sparse, irregularly dated financial event
// streams into dense chronological series ready to be charted.
//
// The engine is made of small pure functions:
//   - Source adapters (AddPriceHistory, AddFundingRounds, AddOrders) merge
//     price history, funding rounds and buy/sell orders into a Table, one
//     record per date, without one source erasing another.
//   - Table.Sequence assembles the table in chronological order, and
//     ShouldRender decides whether the result is worth plotting at all.
//   - CumulativeByAsset and MonthlyUnlocks turn token unlock schedules into
//     running totals, per asset or per month.
//   - Collapse keeps the largest series of a multi-asset chart and folds the
//     others into a single "other" series, preserving exact sums.
//   - BuildMonth, CalendarView and MonthIndex drive an unlock calendar.
//
// Every computation starts from fresh inputs and shares nothing with the
// previous one. Amounts are decimal.Decimal so that sums are exact.
//
// This package is the foundation of the `vcs` command-line tool.
package valuation
