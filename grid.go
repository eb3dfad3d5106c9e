package theta

// GridRow is one line of a symbol's audit trail: the trade that was applied,
// the deltas it contributed, and the running state right after it.
type GridRow struct {
	Trade Trade
	// Deltas contributed by this trade.
	Delta            InterestDelta
	CallProfitDelta  Money
	PutProfitDelta   Money
	TotalProfitDelta Money
	// Running state after this trade.
	LongCalls   int64
	ShortCalls  int64
	LongPuts    int64
	ShortPuts   int64
	CallProfit  Money
	PutProfit   Money
	TotalProfit Money
}

// buildGrid folds one symbol's trades, already sorted by transaction time,
// into one row per trade. It returns the full audit trail and the symbol's
// final total profit.
func buildGrid(trades []Trade) ([]GridRow, Money) {
	var longCalls, shortCalls, longPuts, shortPuts int64
	callProfit := M(0, USD)
	putProfit := M(0, USD)

	rows := make([]GridRow, 0, len(trades))
	for _, t := range trades {
		delta, cost := classify(t)
		longCalls += delta.LongCalls
		shortCalls += delta.ShortCalls
		longPuts += delta.LongPuts
		shortPuts += delta.ShortPuts

		callDelta := M(0, USD)
		putDelta := M(0, USD)
		switch t.Kind {
		case Call:
			callDelta = cost
			callProfit = callProfit.Add(cost)
		case Put:
			putDelta = cost
			putProfit = putProfit.Add(cost)
		}

		rows = append(rows, GridRow{
			Trade:            t,
			Delta:            delta,
			CallProfitDelta:  callDelta,
			PutProfitDelta:   putDelta,
			TotalProfitDelta: callDelta.Add(putDelta),
			LongCalls:        longCalls,
			ShortCalls:       shortCalls,
			LongPuts:         longPuts,
			ShortPuts:        shortPuts,
			CallProfit:       callProfit,
			PutProfit:        putProfit,
			TotalProfit:      callProfit.Add(putProfit),
		})
	}
	return rows, callProfit.Add(putProfit)
}
