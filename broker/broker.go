// Package broker defines the abstraction over trading account providers and
// the explicit registry through which accounts are configured and restored.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	theta "github.com/mgalgs/thetactl"
)

// Broker is a configured trading account that can produce canonical trades.
type Broker interface {
	// Name is the user-chosen account name.
	Name() string
	// Provider identifies the broker implementation (e.g. "td").
	Provider() string
	// GetTrades fetches the account's trade history. Implementations should
	// cache the result for the lifetime of the broker.
	GetTrades(ctx context.Context) ([]theta.Trade, error)
	// Config serializes the broker's settings for the configuration layer.
	Config() (json.RawMessage, error)
}

// Provider is one registry entry: the factories needed to restore a broker
// from stored configuration or to set one up interactively.
type Provider struct {
	// FromConfig restores a broker from the opaque data previously returned
	// by its Config method.
	FromConfig func(name string, data json.RawMessage) (Broker, error)
	// Setup interactively collects whatever the provider needs (access
	// token, ...) from r/w and returns a configured broker.
	Setup func(name string, r io.Reader, w io.Writer) (Broker, error)
}

// Registry maps provider identifiers to their factories. It is built
// explicitly at startup and passed to whoever needs to materialize brokers;
// there is no implicit self-registration.
type Registry map[string]Provider

// Names returns the registered provider identifiers in a stable order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Restore materializes a broker from its stored provider id and data.
func (r Registry) Restore(provider, name string, data json.RawMessage) (Broker, error) {
	p, ok := r[provider]
	if !ok {
		return nil, fmt.Errorf("unknown broker provider %q", provider)
	}
	return p.FromConfig(name, data)
}

// OptionsTrades filters a broker's history down to option fills, the only
// asset type the profitability engine accounts for.
func OptionsTrades(ctx context.Context, b Broker) ([]theta.Trade, error) {
	trades, err := b.GetTrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching trades from %q: %w", b.Name(), err)
	}
	options := make([]theta.Trade, 0, len(trades))
	for _, t := range trades {
		if t.AssetType == theta.Option {
			options = append(options, t)
		}
	}
	return options, nil
}
