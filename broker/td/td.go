// Package td implements the broker abstraction for TD Ameritrade accounts.
package td

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	theta "github.com/mgalgs/thetactl"
	"github.com/mgalgs/thetactl/broker"
)

// ProviderName identifies this implementation in the provider registry and
// in stored configuration.
const ProviderName = "td"

// Broker is a TD Ameritrade account.
type Broker struct {
	name string
	api  *api

	// testData short-circuits the API with a canned transactions payload.
	testData json.RawMessage

	trades []theta.Trade // cached after the first fetch
}

// Option customizes a broker, mostly for tests.
type Option func(*Broker)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(base string) Option {
	return func(b *Broker) { b.api.base = strings.TrimSuffix(base, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Broker) { b.api.client = c }
}

// WithTransactions short-circuits the API with a canned transactions payload,
// in the shape of the transactions endpoint response.
func WithTransactions(raw json.RawMessage) Option {
	return func(b *Broker) { b.testData = raw }
}

// New returns a TD broker for the given account name and API access token.
func New(name, accessToken string, opts ...Option) *Broker {
	b := &Broker{name: name, api: newAPI(accessToken)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Broker) Name() string     { return b.name }
func (b *Broker) Provider() string { return ProviderName }

// GetTrades fetches and translates the account's transaction history. The
// result is cached for the broker's lifetime.
func (b *Broker) GetTrades(ctx context.Context) ([]theta.Trade, error) {
	if b.trades != nil {
		return b.trades, nil
	}

	var transactions []transaction
	if b.testData != nil {
		if err := json.Unmarshal(b.testData, &transactions); err != nil {
			return nil, fmt.Errorf("invalid canned transactions payload: %w", err)
		}
	} else {
		fetched, err := b.fetchTransactions(ctx)
		if err != nil {
			return nil, err
		}
		transactions = fetched
	}

	trades := make([]theta.Trade, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Type != "TRADE" {
			continue
		}
		trade, err := translate(tx)
		if err != nil {
			return nil, fmt.Errorf("rejecting transaction: %w", err)
		}
		trades = append(trades, trade)
	}
	b.trades = trades
	return trades, nil
}

// fetchTransactions resolves the account id and pulls its full transaction
// history.
func (b *Broker) fetchTransactions(ctx context.Context) ([]transaction, error) {
	var accounts any
	if err := b.api.get(ctx, "accounts", &accounts); err != nil {
		return nil, fmt.Errorf("fetching accounts: %w", err)
	}
	jval, err := jsonpath.Get("$[0].accountId", accounts)
	if err != nil {
		return nil, fmt.Errorf("no account id in accounts payload: %w", err)
	}
	var accountID string
	switch v := jval.(type) {
	case string:
		accountID = v
	case float64: // a bare json number
		accountID = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return nil, fmt.Errorf("unexpected account id %v in accounts payload", jval)
	}
	log.Printf("td: using account %s", accountID)

	var transactions []transaction
	if err := b.api.get(ctx, "accounts/"+accountID+"/transactions", &transactions); err != nil {
		return nil, fmt.Errorf("fetching transactions for account %s: %w", accountID, err)
	}
	return transactions, nil
}

// tdConfig is the opaque configuration stored for a TD account.
type tdConfig struct {
	AccessToken string `json:"access_token"`
}

// Config serializes the broker settings for the configuration layer.
func (b *Broker) Config() (json.RawMessage, error) {
	return json.Marshal(tdConfig{AccessToken: b.api.token})
}

// Provider returns this implementation's registry entry.
func Provider() broker.Provider {
	return broker.Provider{
		FromConfig: func(name string, data json.RawMessage) (broker.Broker, error) {
			var cfg tdConfig
			if err := json.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("invalid td configuration: %w", err)
			}
			if cfg.AccessToken == "" {
				return nil, fmt.Errorf("td configuration is missing the access token")
			}
			return New(name, cfg.AccessToken), nil
		},
		Setup: func(name string, r io.Reader, w io.Writer) (broker.Broker, error) {
			fmt.Fprintln(w, "Please enter your TD API access token:")
			fmt.Fprint(w, " >> ")
			scanner := bufio.NewScanner(r)
			if !scanner.Scan() {
				return nil, fmt.Errorf("no access token entered: %w", scanner.Err())
			}
			token := strings.TrimSpace(scanner.Text())
			if token == "" {
				return nil, fmt.Errorf("no access token entered")
			}
			return New(name, token), nil
		},
	}
}
