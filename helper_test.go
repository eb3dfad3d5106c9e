package theta

import "time"

// usd is a helper for tests to create dollar money from a const.
func usd(v float64) Money { return M(v, USD) }

// at is a helper for tests to create a transaction time on a given day.
func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

// optionTrade is a helper building a canonical option fill for tests.
func optionTrade(symbol string, i Instruction, k OptionKind, e PositionEffect, qty int64, price float64, exp Date, when time.Time) Trade {
	return Trade{
		AssetType:   Option,
		Instruction: i,
		Effect:      e,
		Kind:        k,
		Symbol:      symbol,
		Strike:      usd(100),
		Expiration:  exp,
		Quantity:    qty,
		Price:       usd(price),
		Time:        when,
	}
}
