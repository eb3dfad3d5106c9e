package theta

// InterestDelta is the effect of one option trade on the four open-interest
// counters, in contracts. At most one field is non-zero for any trade.
type InterestDelta struct {
	LongCalls  int64
	ShortCalls int64
	LongPuts   int64
	ShortPuts  int64
}

// Net is the trade's effect on a single contract's net open interest:
// positive for interest held long, negative for interest held short.
// Closing legs cancel what the matching opening leg contributed, so a
// balanced open/close pair always nets to zero.
func (d InterestDelta) Net() int64 {
	return d.LongCalls + d.LongPuts - d.ShortCalls - d.ShortPuts
}

// classify applies the sign rules for the eight valid
// (instruction, kind, effect) combinations of an option trade.
//
// Buying always debits profit (cash out) and selling always credits it,
// regardless of effect. Opening adds interest on the side being opened;
// closing removes interest from the side that was open. Interest is counted
// in plain contracts.
//
// Equity trades, and any combination outside the table, contribute nothing:
// all-zero deltas, never an error.
func classify(t Trade) (InterestDelta, Money) {
	var d InterestDelta
	if t.AssetType != Option {
		return d, Money{}
	}
	q := t.Quantity
	switch [3]string{string(t.Instruction), string(t.Kind), string(t.Effect)} {
	case [3]string{"BUY", "CALL", "OPEN"}:
		d.LongCalls = q
	case [3]string{"BUY", "CALL", "CLOSE"}:
		d.ShortCalls = -q
	case [3]string{"BUY", "PUT", "OPEN"}:
		d.LongPuts = q
	case [3]string{"BUY", "PUT", "CLOSE"}:
		d.ShortPuts = -q
	case [3]string{"SELL", "CALL", "OPEN"}:
		d.ShortCalls = q
	case [3]string{"SELL", "CALL", "CLOSE"}:
		d.LongCalls = -q
	case [3]string{"SELL", "PUT", "OPEN"}:
		d.ShortPuts = q
	case [3]string{"SELL", "PUT", "CLOSE"}:
		d.LongPuts = -q
	default:
		return InterestDelta{}, Money{}
	}
	return d, t.Cost()
}
