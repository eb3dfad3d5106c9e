package theta

import "testing"

func TestMoney_Arithmetic(t *testing.T) {
	a := usd(1.10)
	b := usd(2.20)
	if got := a.Add(b); !got.Equal(usd(3.30)) {
		t.Errorf("Add() = %s, want %s", got, usd(3.30))
	}
	if got := b.Sub(a); !got.Equal(usd(1.10)) {
		t.Errorf("Sub() = %s, want %s", got, usd(1.10))
	}
	if got := a.MulInt(300); !got.Equal(usd(330)) {
		t.Errorf("MulInt() = %s, want %s", got, usd(330))
	}
	if got := a.Neg(); !got.Equal(usd(-1.10)) {
		t.Errorf("Neg() = %s, want %s", got, usd(-1.10))
	}
}

func TestMoney_NoBinaryDrift(t *testing.T) {
	// 0.1 added ten times must be exactly 1, which float64 cannot do.
	sum := M(0, USD)
	for range 10 {
		sum = sum.Add(usd(0.1))
	}
	if !sum.Equal(usd(1)) {
		t.Errorf("ten times 0.1 = %s, want exactly %s", sum, usd(1))
	}
}

func TestMoney_SignedString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{usd(0), "-"},
		{usd(200), "+$200.00"},
		{usd(-300), "-$300.00"},
	}
	for _, tc := range tests {
		if got := tc.in.SignedString(); got != tc.want {
			t.Errorf("SignedString(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	// The empty currency is weak: it adopts the other operand's currency.
	got := Money{}.Add(usd(5))
	if got.Currency() != USD || !got.Equal(usd(5)) {
		t.Errorf("zero value + USD = %s (%s), want %s", got, got.Currency(), usd(5))
	}
}
