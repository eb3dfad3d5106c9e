package theta

import (
	"maps"
	"slices"
	"strings"
)

// SymbolReport holds everything the engine derives for one underlying symbol:
// the trade-by-trade grid, the per-contract settlement chains, and the final
// realized profit.
type SymbolReport struct {
	Symbol    string
	Rows      []GridRow
	Contracts []ContractSummary // ordered by each contract's first trade
	Total     Money
}

// Report is the full structured analysis across symbols. Rendering it into
// tables or text is the caller's concern.
type Report struct {
	AsOf    Date
	Symbols []SymbolReport // ascending by symbol name
	Total   Money          // grand total across symbols
}

// NewReport replays a set of option trades and derives open interest and
// realized profit per symbol and per contract.
//
// The input may arrive in any order: each symbol's trades are stable-sorted
// by transaction time, so two trades with the same timestamp keep their
// ingestion order. When symbols are given, trades on any other underlying are
// dropped; an empty filter means all symbols. The expiration policy is
// evaluated against asOf.
//
// The fold owns all of its running state and touches nothing outside the
// returned report: calling it twice on the same input yields the same result.
func NewReport(trades []Trade, asOf Date, symbols ...string) *Report {
	filter := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		filter[strings.ToUpper(s)] = true
	}

	bySymbol := make(map[string][]Trade)
	for _, t := range trades {
		if len(filter) > 0 && !filter[t.Symbol] {
			continue
		}
		bySymbol[t.Symbol] = append(bySymbol[t.Symbol], t)
	}

	report := &Report{AsOf: asOf, Total: M(0, USD)}
	for _, symbol := range slices.Sorted(maps.Keys(bySymbol)) {
		group := bySymbol[symbol]
		slices.SortStableFunc(group, func(a, b Trade) int {
			return a.Time.Compare(b.Time)
		})

		rows, total := buildGrid(group)

		// Split the symbol's chronological stream per contract, keeping the
		// order in which contracts were first traded.
		byContract := make(map[ContractKey][]Trade)
		var order []ContractKey
		for _, t := range group {
			key := t.ContractKey()
			if key == "" {
				continue
			}
			if _, seen := byContract[key]; !seen {
				order = append(order, key)
			}
			byContract[key] = append(byContract[key], t)
		}

		contracts := make([]ContractSummary, 0, len(order))
		for _, key := range order {
			contracts = append(contracts, accumulateContract(byContract[key], asOf))
		}

		report.Symbols = append(report.Symbols, SymbolReport{
			Symbol:    symbol,
			Rows:      rows,
			Contracts: contracts,
			Total:     total,
		})
		report.Total = report.Total.Add(total)
	}
	return report
}
