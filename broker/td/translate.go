package td

import (
	"fmt"
	"strings"
	"time"

	theta "github.com/mgalgs/thetactl"
	"github.com/shopspring/decimal"
)

// transaction mirrors the fields of a TD Ameritrade transaction payload the
// translation needs; everything else in the payload is ignored.
type transaction struct {
	Type            string                     `json:"type"`
	TransactionDate string                     `json:"transactionDate"`
	Fees            map[string]decimal.Decimal `json:"fees"`
	Item            struct {
		Amount      int64           `json:"amount"`
		Price       decimal.Decimal `json:"price"`
		Instruction string          `json:"instruction"`
		Effect      string          `json:"positionEffect"`
		Instrument  struct {
			AssetType        string `json:"assetType"`
			Symbol           string `json:"symbol"`
			UnderlyingSymbol string `json:"underlyingSymbol"`
			PutCall          string `json:"putCall"`
			ExpirationDate   string `json:"optionExpirationDate"`
		} `json:"instrument"`
	} `json:"transactionItem"`
}

// TD timestamps use a zone offset without a colon ("+0000"), which RFC3339
// does not accept.
const tdTimeFormat = "2006-01-02T15:04:05-0700"

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(tdTimeFormat, s)
}

// translate converts one TD transaction into the canonical trade record.
// Records that are not trade fills, and option fills missing the fields the
// accounting engine depends on, are rejected here rather than defaulted
// inside the fold.
func translate(tx transaction) (theta.Trade, error) {
	var zero theta.Trade
	if tx.Type != "TRADE" {
		return zero, fmt.Errorf("transaction type %q is not a trade", tx.Type)
	}

	when, err := parseTime(tx.TransactionDate)
	if err != nil {
		return zero, fmt.Errorf("invalid transaction date %q: %w", tx.TransactionDate, err)
	}

	fees := decimal.Zero
	for _, f := range tx.Fees {
		fees = fees.Add(f)
	}

	trade := theta.Trade{
		Instruction: theta.Sell,
		Quantity:    tx.Item.Amount,
		Price:       theta.M(tx.Item.Price, theta.USD),
		Fees:        theta.M(fees, theta.USD),
		Time:        when,
	}
	if tx.Item.Instruction == "BUY" {
		trade.Instruction = theta.Buy
	}
	if trade.Quantity <= 0 {
		return zero, fmt.Errorf("invalid quantity %d", tx.Item.Amount)
	}

	instrument := tx.Item.Instrument
	if instrument.AssetType != "OPTION" {
		trade.AssetType = theta.Equity
		trade.Symbol = instrument.Symbol
		if trade.Symbol == "" {
			return zero, fmt.Errorf("equity trade is missing its symbol")
		}
		return trade, nil
	}

	trade.AssetType = theta.Option
	trade.Symbol = instrument.UnderlyingSymbol
	trade.OptionSymbol = instrument.Symbol
	if trade.Symbol == "" {
		return zero, fmt.Errorf("option trade %q is missing its underlying symbol", instrument.Symbol)
	}

	if instrument.ExpirationDate == "" {
		return zero, fmt.Errorf("option trade %q is missing its expiration", instrument.Symbol)
	}
	expiration, err := parseTime(instrument.ExpirationDate)
	if err != nil {
		return zero, fmt.Errorf("option trade %q has invalid expiration %q: %w", instrument.Symbol, instrument.ExpirationDate, err)
	}
	trade.Expiration = theta.DateOf(expiration)

	trade.Kind = theta.Put
	if instrument.PutCall == "CALL" {
		trade.Kind = theta.Call
	}

	trade.Effect = theta.ClosePosition
	if tx.Item.Effect == "OPENING" {
		trade.Effect = theta.OpenPosition
	}

	strike, err := parseStrike(instrument.Symbol)
	if err != nil {
		return zero, fmt.Errorf("option trade %q: %w", instrument.Symbol, err)
	}
	trade.Strike = strike

	return trade, nil
}

// parseStrike extracts the strike from a TD option symbol such as
// "AAPL_061821C130" or "SPY_123121P455.5": the digits after the final C or P.
func parseStrike(symbol string) (theta.Money, error) {
	_, tail, found := strings.Cut(symbol, "_")
	if !found {
		return theta.Money{}, fmt.Errorf("no strike in option symbol")
	}
	i := strings.LastIndexAny(tail, "CP")
	if i < 0 || i == len(tail)-1 {
		return theta.Money{}, fmt.Errorf("no strike in option symbol")
	}
	strike, err := decimal.NewFromString(tail[i+1:])
	if err != nil {
		return theta.Money{}, fmt.Errorf("invalid strike %q: %w", tail[i+1:], err)
	}
	return theta.M(strike, theta.USD), nil
}
