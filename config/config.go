// Package config stores the user's configured broker accounts on disk and
// materializes them through an explicitly supplied provider registry.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mgalgs/thetactl/broker"
)

// DefaultPath returns the location of the user configuration file,
// <user-config-dir>/thetactl/config.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate the user configuration directory: %w", err)
	}
	return filepath.Join(dir, "thetactl", "config.json"), nil
}

// Account is one stored broker account: the user-chosen name, the provider
// identifier, and the provider's opaque settings.
type Account struct {
	Name     string          `json:"name"`
	Provider string          `json:"provider"`
	Data     json.RawMessage `json:"data"`
}

// Config is the on-disk configuration document.
type Config struct {
	Accounts []Account `json:"brokers"`

	path     string
	registry broker.Registry
}

// Load reads the configuration file at path. A missing file is not an error:
// it reads as an empty configuration that Save will create.
func Load(path string, registry broker.Registry) (*Config, error) {
	cfg := &Config{path: path, registry: registry}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration %q: %w", path, err)
	}
	if err := json.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("format error in configuration %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration back to its file, creating the parent
// directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("cannot create configuration directory: %w", err)
	}
	content, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, content, 0o600); err != nil {
		return fmt.Errorf("cannot write configuration %q: %w", c.path, err)
	}
	return nil
}

// Account returns the stored account with the given name, or nil.
func (c *Config) Account(name string) *Account {
	for i := range c.Accounts {
		if c.Accounts[i].Name == name {
			return &c.Accounts[i]
		}
	}
	return nil
}

// AddBroker stores a configured broker under its account name. The name must
// not already be taken.
func (c *Config) AddBroker(b broker.Broker) error {
	if c.Account(b.Name()) != nil {
		return fmt.Errorf("a broker named %q already exists", b.Name())
	}
	data, err := b.Config()
	if err != nil {
		return fmt.Errorf("cannot serialize broker %q: %w", b.Name(), err)
	}
	c.Accounts = append(c.Accounts, Account{Name: b.Name(), Provider: b.Provider(), Data: data})
	return nil
}

// RemoveBroker drops the account with the given name.
func (c *Config) RemoveBroker(name string) error {
	for i := range c.Accounts {
		if c.Accounts[i].Name == name {
			c.Accounts = append(c.Accounts[:i], c.Accounts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no broker named %q", name)
}

// Broker materializes the stored account with the given name through the
// provider registry.
func (c *Config) Broker(name string) (broker.Broker, error) {
	acc := c.Account(name)
	if acc == nil {
		return nil, fmt.Errorf("no broker named %q", name)
	}
	return c.registry.Restore(acc.Provider, acc.Name, acc.Data)
}

// FirstBroker materializes the first configured account, the default when no
// account is named on the command line.
func (c *Config) FirstBroker() (broker.Broker, error) {
	if len(c.Accounts) == 0 {
		return nil, fmt.Errorf("no brokers configured, use the add-broker command first")
	}
	return c.Broker(c.Accounts[0].Name)
}
