package theta

import (
	"testing"
	"time"
)

func TestTrade_Cost(t *testing.T) {
	exp := NewDate(2025, time.June, 20)
	when := at(2025, time.May, 1, 14)

	tests := []struct {
		name  string
		trade Trade
		want  Money
	}{
		{
			name:  "option buy debits 100x",
			trade: optionTrade("AAPL", Buy, Call, OpenPosition, 2, 1.50, exp, when),
			want:  usd(-300),
		},
		{
			name:  "option sell credits 100x",
			trade: optionTrade("AAPL", Sell, Put, OpenPosition, 1, 2.00, exp, when),
			want:  usd(200),
		},
		{
			name: "equity has no multiplier",
			trade: Trade{
				AssetType:   Equity,
				Instruction: Buy,
				Symbol:      "AAPL",
				Quantity:    10,
				Price:       usd(150),
				Time:        when,
			},
			want: usd(-1500),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.trade.Cost(); !got.Equal(tc.want) {
				t.Errorf("Cost() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestTrade_ContractKey(t *testing.T) {
	exp := NewDate(2025, time.June, 20)
	when := at(2025, time.May, 1, 14)

	a := optionTrade("AAPL", Buy, Call, OpenPosition, 1, 3.00, exp, when)
	b := optionTrade("AAPL", Sell, Call, ClosePosition, 5, 9.99, exp, when.Add(time.Hour))
	if a.ContractKey() != b.ContractKey() {
		t.Errorf("same contract, different keys: %q vs %q", a.ContractKey(), b.ContractKey())
	}

	// The display string must not drive grouping.
	c := a
	c.OptionSymbol = "AAPL_062025C100"
	if a.ContractKey() != c.ContractKey() {
		t.Error("display symbol changed the contract key")
	}
	if c.Contract() != "AAPL_062025C100" {
		t.Errorf("Contract() = %q, want the broker display symbol", c.Contract())
	}

	d := a
	d.Kind = Put
	if a.ContractKey() == d.ContractKey() {
		t.Error("call and put collapsed to the same key")
	}

	equity := Trade{AssetType: Equity, Instruction: Buy, Symbol: "AAPL", Quantity: 1, Price: usd(1), Time: when}
	if equity.ContractKey() != "" {
		t.Errorf("equity ContractKey() = %q, want empty", equity.ContractKey())
	}
}

func TestTrade_Label(t *testing.T) {
	exp := NewDate(2025, time.June, 20)
	when := at(2025, time.May, 1, 14)
	tests := []struct {
		i    Instruction
		e    PositionEffect
		want string
	}{
		{Buy, OpenPosition, "BTO"},
		{Buy, ClosePosition, "BTC"},
		{Sell, OpenPosition, "STO"},
		{Sell, ClosePosition, "STC"},
	}
	for _, tc := range tests {
		trade := optionTrade("AAPL", tc.i, Call, tc.e, 1, 1, exp, when)
		if got := trade.Label(); got != tc.want {
			t.Errorf("Label(%s %s) = %q, want %q", tc.i, tc.e, got, tc.want)
		}
	}
}
