package theta

import (
	"fmt"
	"time"
)

// AssetType identifies the kind of instrument a trade was filled on.
type AssetType string

const (
	Equity AssetType = "EQUITY"
	Option AssetType = "OPTION"
)

// Instruction is the direction of a fill.
type Instruction string

const (
	Buy  Instruction = "BUY"
	Sell Instruction = "SELL"
)

// PositionEffect tells whether a fill opened a new position or closed an
// existing one. It is meaningless for equity trades.
type PositionEffect string

const (
	OpenPosition  PositionEffect = "OPEN"
	ClosePosition PositionEffect = "CLOSE"
)

// OptionKind distinguishes calls from puts. It is meaningless for equity trades.
type OptionKind string

const (
	Call OptionKind = "CALL"
	Put  OptionKind = "PUT"
)

// contractMultiplier is the number of shares one standard US option contract
// controls.
const contractMultiplier = 100

// Trade represents a single executed fill, normalized away from any broker's
// payload shape. It is an immutable value: the engine only ever reads it.
type Trade struct {
	AssetType    AssetType
	Instruction  Instruction
	Effect       PositionEffect // options only
	Kind         OptionKind     // options only
	Symbol       string         // underlying symbol
	OptionSymbol string         // broker display symbol for the contract, optional
	Strike       Money          // options only
	Expiration   Date           // options only
	Quantity     int64          // number of contracts or shares, always positive
	Price        Money          // per-unit price as traded
	Time         time.Time      // transaction time, drives chronological replay
	Fees         Money          // informational, not folded into profit
}

// ContractKey identifies one specific option contract. Grouping and equality
// are defined on this key, never on the broker's display string.
type ContractKey string

// ContractKey derives the contract identity from the trade's own fields.
// Equity trades have no contract and yield the empty key.
func (t Trade) ContractKey() ContractKey {
	if t.AssetType != Option {
		return ""
	}
	return ContractKey(fmt.Sprintf("%s %s %s %s", t.Symbol, t.Expiration, t.Kind, t.Strike))
}

// Contract returns the display form of the traded contract: the broker's
// symbol when one was supplied, the derived key otherwise.
func (t Trade) Contract() string {
	if t.OptionSymbol != "" {
		return t.OptionSymbol
	}
	return string(t.ContractKey())
}

// Cost returns the signed notional of the trade: price x quantity x multiplier,
// negative for a buy (cash out) and positive for a sell (cash in). This is the
// fundamental unit folded into realized profit.
func (t Trade) Cost() Money {
	mult := int64(1)
	if t.AssetType == Option {
		mult = contractMultiplier
	}
	cost := t.Price.MulInt(t.Quantity * mult)
	if t.Instruction == Buy {
		return cost.Neg()
	}
	return cost
}

// Label is the conventional shorthand for the trade's direction and effect
// (BTO, STC, ...). Equity trades only carry the direction.
func (t Trade) Label() string {
	if t.AssetType != Option {
		return string(t.Instruction)
	}
	switch {
	case t.Instruction == Buy && t.Effect == OpenPosition:
		return "BTO"
	case t.Instruction == Buy && t.Effect == ClosePosition:
		return "BTC"
	case t.Instruction == Sell && t.Effect == OpenPosition:
		return "STO"
	case t.Instruction == Sell && t.Effect == ClosePosition:
		return "STC"
	}
	return string(t.Instruction)
}

// String renders the fill in the compact form used by grid rows.
func (t Trade) String() string {
	if t.AssetType == Equity {
		return fmt.Sprintf("[%s] %s %d @%s", t.Symbol, t.Instruction, t.Quantity, t.Price)
	}
	return fmt.Sprintf("[%s] %s to %s %d %s %s @%s",
		t.Symbol, t.Instruction, t.Effect, t.Quantity, t.Kind, t.Expiration, t.Price)
}
