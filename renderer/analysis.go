// Package renderer turns the engine's report structs into markdown text.
// It holds every formatting decision so the engine itself never prints.
package renderer

import (
	"fmt"
	"strings"

	theta "github.com/mgalgs/thetactl"
)

// AnalysisMarkdown renders the full options profitability report: one trade
// grid and one set of settlement chains per symbol, then a summary with the
// per-symbol and grand totals.
func AnalysisMarkdown(report *theta.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Options Profitability as of %s\n\n", report.AsOf)

	if len(report.Symbols) == 0 {
		fmt.Fprintln(&b, "No options trades to report.")
		return b.String()
	}

	for i := range report.Symbols {
		symbolMarkdown(&b, &report.Symbols[i])
	}

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| Symbol | Profit |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, s := range report.Symbols {
		fmt.Fprintf(&b, "| %s | %s |\n", s.Symbol, s.Total.SignedString())
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", report.Total.SignedString())

	return b.String()
}

func symbolMarkdown(b *strings.Builder, s *theta.SymbolReport) {
	fmt.Fprintf(b, "## %s\n\n", s.Symbol)

	fmt.Fprint(b, "### Trade grid\n\n")
	fmt.Fprintln(b, "| Trade | Long Calls | Short Calls | Long Puts | Short Puts | Calls Profit | Puts Profit | Total Profit |")
	fmt.Fprintln(b, "|:---|---:|---:|---:|---:|---:|---:|---:|")
	for _, row := range s.Rows {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.Trade,
			interestCell(row.LongCalls, row.Delta.LongCalls),
			interestCell(row.ShortCalls, row.Delta.ShortCalls),
			interestCell(row.LongPuts, row.Delta.LongPuts),
			interestCell(row.ShortPuts, row.Delta.ShortPuts),
			profitCell(row.CallProfit, row.CallProfitDelta),
			profitCell(row.PutProfit, row.PutProfitDelta),
			profitCell(row.TotalProfit, row.TotalProfitDelta),
		)
	}
	fmt.Fprintln(b)

	fmt.Fprint(b, "### Settlement chains\n\n")
	for _, c := range s.Contracts {
		fmt.Fprintf(b, "- %s %s\n", c.Contract, chain(c))
	}
	fmt.Fprintln(b)
}

// chain renders one contract's settlement sequence with its profit
// annotation, e.g.
//
//	[profit=+$200.00] BTO 1x$3.00=-$300.00 -> STC 1x$5.00=+$500.00
func chain(c theta.ContractSummary) string {
	var steps []string
	for _, s := range c.Steps {
		steps = append(steps, fmt.Sprintf("%s %dx%s=%s", s.Label, s.Quantity, s.Price, s.Cost.SignedString()))
	}
	switch {
	case c.Lapsed:
		steps = append(steps, "expired")
	case c.Provisional:
		steps = append(steps, "...")
	}

	profit := fmt.Sprintf("[profit=%s]", c.Profit.SignedString())
	if c.Provisional {
		profit = fmt.Sprintf("[profit=%s (provisional), open interest=%+d]", c.Profit.SignedString(), c.Interest)
	}
	return profit + " " + strings.Join(steps, " -> ")
}

// interestCell shows the running contract count, with this trade's delta in
// parentheses when it contributed one.
func interestCell(running, delta int64) string {
	if delta == 0 {
		if running == 0 {
			return ""
		}
		return fmt.Sprintf("%d", running)
	}
	return fmt.Sprintf("%d (%+d)", running, delta)
}

// profitCell shows the running profit, with this trade's delta in
// parentheses when it contributed one.
func profitCell(running, delta theta.Money) string {
	if delta.IsZero() {
		if running.IsZero() {
			return ""
		}
		return running.SignedString()
	}
	return fmt.Sprintf("%s (%s)", running.SignedString(), delta.SignedString())
}
