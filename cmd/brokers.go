package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
)

// listBrokersCmd implements the 'list-brokers' subcommand.
type listBrokersCmd struct{}

func (*listBrokersCmd) Name() string     { return "list-brokers" }
func (*listBrokersCmd) Synopsis() string { return "list the configured broker accounts" }
func (*listBrokersCmd) Usage() string {
	return `thetactl list-brokers

  Lists the configured broker accounts and their providers.
`
}
func (*listBrokersCmd) SetFlags(*flag.FlagSet) {}

func (c *listBrokersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	if len(cfg.Accounts) == 0 {
		fmt.Println("No brokers configured. Use the add-broker command.")
		return subcommands.ExitSuccess
	}
	fmt.Println("Brokers:")
	for _, acc := range cfg.Accounts {
		fmt.Printf("  - %s (%s)\n", acc.Name, acc.Provider)
	}
	return subcommands.ExitSuccess
}

// addBrokerCmd implements the interactive 'add-broker' subcommand.
type addBrokerCmd struct{}

func (*addBrokerCmd) Name() string     { return "add-broker" }
func (*addBrokerCmd) Synopsis() string { return "interactively configure a new broker account" }
func (*addBrokerCmd) Usage() string {
	return `thetactl add-broker

  Picks a broker provider, collects its settings (access token, ...) and
  stores the new account in the configuration.
`
}
func (*addBrokerCmd) SetFlags(*flag.FlagSet) {}

func (c *addBrokerCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}

	reg := registry()
	names := reg.Names()
	fmt.Println("Please make a selection:")
	for i, name := range names {
		fmt.Printf("  (%d) %s\n", i+1, name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	var provider string
	for {
		fmt.Print(" >> ")
		if !scanner.Scan() {
			return fail(fmt.Errorf("no selection made"))
		}
		idx, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && idx >= 1 && idx <= len(names) {
			provider = names[idx-1]
			break
		}
		fmt.Println("Invalid choice")
	}

	var account string
	for {
		fmt.Println("Please enter a name for the new account:")
		fmt.Print(" >> ")
		if !scanner.Scan() {
			return fail(fmt.Errorf("no account name entered"))
		}
		account = strings.TrimSpace(scanner.Text())
		if account == "" {
			continue
		}
		if cfg.Account(account) == nil {
			break
		}
		fmt.Println("A broker with that name already exists. Please pick another name.")
	}

	b, err := reg[provider].Setup(account, os.Stdin, os.Stdout)
	if err != nil {
		return fail(err)
	}
	if err := cfg.AddBroker(b); err != nil {
		return fail(err)
	}
	if err := cfg.Save(); err != nil {
		return fail(err)
	}
	fmt.Println("Saved")
	return subcommands.ExitSuccess
}

// removeBrokerCmd implements the 'remove-broker' subcommand.
type removeBrokerCmd struct {
	account string
}

func (*removeBrokerCmd) Name() string     { return "remove-broker" }
func (*removeBrokerCmd) Synopsis() string { return "remove a configured broker account" }
func (*removeBrokerCmd) Usage() string {
	return `thetactl remove-broker -account <name>

  Removes the named broker account from the configuration.
`
}

func (c *removeBrokerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Broker account to remove.")
}

func (c *removeBrokerCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "You must specify an account to remove with -account")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	if err := cfg.RemoveBroker(c.account); err != nil {
		return fail(err)
	}
	if err := cfg.Save(); err != nil {
		return fail(err)
	}
	fmt.Println("Saved")
	return subcommands.ExitSuccess
}
