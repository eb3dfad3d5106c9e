package theta

// SettlementStep is one link of a contract's settlement chain: the trade in
// its shorthand form plus the deltas it contributed.
type SettlementStep struct {
	Label    string // BTO, BTC, STO, STC
	Effect   PositionEffect
	Quantity int64
	Price    Money
	Cost     Money // signed notional folded into the contract's profit
}

// ContractSummary is the outcome of replaying every trade of a single option
// contract in time order.
type ContractSummary struct {
	Key        ContractKey
	Contract   string // display form
	Expiration Date
	Profit     Money // realized profit; provisional while the position is open
	Interest   int64 // net open interest after the last trade, in contracts
	// Provisional is true when the contract has open interest and has not
	// expired yet: future trades can still move its profit.
	Provisional bool
	// Lapsed is true when the contract expired with interest still open,
	// meaning the position ended by expiration rather than an explicit close.
	Lapsed bool
	Steps  []SettlementStep
}

// accumulateContract folds one contract's trades, already sorted by
// transaction time, into its settlement chain and profit/interest summary.
// The expiration policy is evaluated against asOf, not the wall clock, so the
// fold stays deterministic.
func accumulateContract(trades []Trade, asOf Date) ContractSummary {
	if len(trades) == 0 {
		return ContractSummary{}
	}
	first := trades[0]
	summary := ContractSummary{
		Key:        first.ContractKey(),
		Contract:   first.Contract(),
		Expiration: first.Expiration,
		Profit:     M(0, USD),
		Steps:      make([]SettlementStep, 0, len(trades)),
	}

	for _, t := range trades {
		delta, cost := classify(t)
		summary.Profit = summary.Profit.Add(cost)
		summary.Interest += delta.Net()
		summary.Steps = append(summary.Steps, SettlementStep{
			Label:    t.Label(),
			Effect:   t.Effect,
			Quantity: t.Quantity,
			Price:    t.Price,
			Cost:     cost,
		})
	}

	if summary.Interest != 0 {
		if summary.Expiration.After(asOf) {
			summary.Provisional = true
		} else {
			summary.Lapsed = true
		}
	}
	return summary
}
