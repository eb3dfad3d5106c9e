package theta

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// moneyComparer lets go-cmp compare Money values without reaching into the
// decimal internals.
var moneyComparer = cmp.Comparer(func(a, b Money) bool { return a.Equal(b) })

// dateComparer does the same for Date, which is an opaque value type.
var dateComparer = cmp.Comparer(func(a, b Date) bool { return a == b })

func TestNewReport_TwoSymbols(t *testing.T) {
	// Two symbols, each a fully-closed profitable contract: +200 and +150.
	asOf := NewDate(2025, time.August, 1)
	exp := NewDate(2025, time.June, 20)
	trades := []Trade{
		optionTrade("AAPL", Buy, Call, OpenPosition, 1, 3.00, exp, at(2025, time.May, 1, 14)),
		optionTrade("AAPL", Sell, Call, ClosePosition, 1, 5.00, exp, at(2025, time.May, 8, 14)),
		optionTrade("TSLA", Sell, Put, OpenPosition, 1, 2.00, exp, at(2025, time.May, 2, 14)),
		optionTrade("TSLA", Buy, Put, ClosePosition, 1, 0.50, exp, at(2025, time.May, 9, 14)),
	}

	report := NewReport(trades, asOf)

	if len(report.Symbols) != 2 {
		t.Fatalf("len(Symbols) = %d, want 2", len(report.Symbols))
	}
	if report.Symbols[0].Symbol != "AAPL" || report.Symbols[1].Symbol != "TSLA" {
		t.Errorf("symbol order = %s, %s; want AAPL, TSLA",
			report.Symbols[0].Symbol, report.Symbols[1].Symbol)
	}
	if !report.Symbols[0].Total.Equal(usd(200)) {
		t.Errorf("AAPL total = %s, want %s", report.Symbols[0].Total, usd(200))
	}
	if !report.Symbols[1].Total.Equal(usd(150)) {
		t.Errorf("TSLA total = %s, want %s", report.Symbols[1].Total, usd(150))
	}
	if !report.Total.Equal(usd(350)) {
		t.Errorf("grand total = %s, want %s", report.Total, usd(350))
	}

	// Additivity: the grand total is exactly the sum of the symbol totals.
	sum := M(0, USD)
	for _, s := range report.Symbols {
		sum = sum.Add(s.Total)
	}
	if !sum.Equal(report.Total) {
		t.Errorf("sum of symbol totals = %s, want grand total %s", sum, report.Total)
	}
}

func TestNewReport_DeterministicUnderShuffle(t *testing.T) {
	asOf := NewDate(2025, time.August, 1)
	exp := NewDate(2025, time.September, 19)
	trades := []Trade{
		optionTrade("AAPL", Buy, Call, OpenPosition, 1, 3.00, exp, at(2025, time.May, 1, 14)),
		optionTrade("AAPL", Sell, Call, ClosePosition, 1, 5.00, exp, at(2025, time.May, 8, 14)),
		optionTrade("AAPL", Sell, Put, OpenPosition, 2, 1.25, exp, at(2025, time.May, 9, 10)),
		optionTrade("TSLA", Sell, Put, OpenPosition, 1, 2.00, exp, at(2025, time.May, 2, 14)),
		optionTrade("NVDA", Buy, Put, OpenPosition, 3, 0.80, exp, at(2025, time.May, 3, 14)),
		optionTrade("NVDA", Sell, Put, ClosePosition, 3, 1.10, exp, at(2025, time.May, 4, 14)),
	}

	want := NewReport(trades, asOf)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]Trade, len(trades))
		copy(shuffled, trades)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := NewReport(shuffled, asOf)
		if diff := cmp.Diff(want, got, moneyComparer, dateComparer); diff != "" {
			t.Fatalf("report differs under input shuffle (-want +got):\n%s", diff)
		}
	}
}

func TestNewReport_TimestampTiesKeepIngestionOrder(t *testing.T) {
	// Two fills at the exact same timestamp: the fold keeps the order the
	// records were supplied in.
	asOf := NewDate(2025, time.August, 1)
	exp := NewDate(2025, time.September, 19)
	when := at(2025, time.May, 1, 14)
	trades := []Trade{
		optionTrade("AAPL", Sell, Put, OpenPosition, 1, 2.00, exp, when),
		optionTrade("AAPL", Buy, Put, ClosePosition, 1, 1.00, exp, when),
	}

	report := NewReport(trades, asOf)
	rows := report.Symbols[0].Rows
	if rows[0].Trade.Instruction != Sell || rows[1].Trade.Instruction != Buy {
		t.Errorf("tie order = %s, %s; want SELL, BUY",
			rows[0].Trade.Instruction, rows[1].Trade.Instruction)
	}
	if report.Symbols[0].Contracts[0].Interest != 0 {
		t.Errorf("Interest = %d, want 0", report.Symbols[0].Contracts[0].Interest)
	}
}

func TestNewReport_SymbolFilter(t *testing.T) {
	asOf := NewDate(2025, time.August, 1)
	exp := NewDate(2025, time.September, 19)
	trades := []Trade{
		optionTrade("AAPL", Sell, Put, OpenPosition, 1, 2.00, exp, at(2025, time.May, 1, 14)),
		optionTrade("TSLA", Sell, Put, OpenPosition, 1, 3.00, exp, at(2025, time.May, 2, 14)),
	}

	report := NewReport(trades, asOf, "tsla")
	if len(report.Symbols) != 1 || report.Symbols[0].Symbol != "TSLA" {
		t.Fatalf("filtered symbols = %+v, want only TSLA", report.Symbols)
	}
	if !report.Total.Equal(usd(300)) {
		t.Errorf("grand total = %s, want %s", report.Total, usd(300))
	}

	// A filter matching nothing yields an empty, valid report.
	empty := NewReport(trades, asOf, "MSFT")
	if len(empty.Symbols) != 0 || !empty.Total.IsZero() {
		t.Errorf("report = %+v, want empty with zero total", empty)
	}
}

func TestNewReport_Empty(t *testing.T) {
	report := NewReport(nil, Today())
	if len(report.Symbols) != 0 {
		t.Errorf("len(Symbols) = %d, want 0", len(report.Symbols))
	}
	if !report.Total.IsZero() {
		t.Errorf("grand total = %s, want zero", report.Total)
	}
}

func TestNewReport_ContractsSplitWithinSymbol(t *testing.T) {
	// Two contracts on the same underlying stay separate in the settlement
	// chains but share the symbol grid.
	asOf := NewDate(2025, time.August, 1)
	june := NewDate(2025, time.June, 20)
	sept := NewDate(2025, time.September, 19)
	trades := []Trade{
		optionTrade("AAPL", Sell, Put, OpenPosition, 1, 2.00, june, at(2025, time.May, 1, 14)),
		optionTrade("AAPL", Sell, Call, OpenPosition, 1, 1.00, sept, at(2025, time.May, 2, 14)),
		optionTrade("AAPL", Buy, Put, ClosePosition, 1, 0.50, june, at(2025, time.May, 3, 14)),
	}

	report := NewReport(trades, asOf)
	sym := report.Symbols[0]
	if len(sym.Rows) != 3 {
		t.Errorf("len(Rows) = %d, want 3", len(sym.Rows))
	}
	if len(sym.Contracts) != 2 {
		t.Fatalf("len(Contracts) = %d, want 2", len(sym.Contracts))
	}
	put, call := sym.Contracts[0], sym.Contracts[1]
	if put.Expiration != june || len(put.Steps) != 2 {
		t.Errorf("first contract = %+v, want the June put with 2 steps", put)
	}
	if !put.Profit.Equal(usd(150)) || put.Interest != 0 {
		t.Errorf("June put profit/interest = %s/%d, want %s/0", put.Profit, put.Interest, usd(150))
	}
	if call.Expiration != sept || !call.Provisional {
		t.Errorf("second contract = %+v, want the provisional September call", call)
	}
	if !sym.Total.Equal(usd(250)) {
		t.Errorf("symbol total = %s, want %s", sym.Total, usd(250))
	}
}
