package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	theta "github.com/mgalgs/thetactl"
	"github.com/mgalgs/thetactl/broker"
	"github.com/mgalgs/thetactl/renderer"
)

// analyzeCmd holds the flags for the 'analyze-options' subcommand.
type analyzeCmd struct {
	account string
	asOf    string
}

func (*analyzeCmd) Name() string     { return "analyze-options" }
func (*analyzeCmd) Synopsis() string { return "options profitability tracking" }
func (*analyzeCmd) Usage() string {
	return `thetactl analyze-options [-account <name>] [-d <date>] [symbols...]

  Replays the account's options trades and reports open interest and realized
  profit per symbol and per contract. With symbols, restricts the report to
  those underlyings.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Broker account to analyze. Defaults to the first configured one.")
	f.StringVar(&c.asOf, "d", theta.Today().String(), "Date to evaluate expirations against, in ISO-8601 format.")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := theta.ParseDate(c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -d date: %v\n", err)
		return subcommands.ExitUsageError
	}

	trades, status := fetchOptionsTrades(ctx, c.account)
	if status != subcommands.ExitSuccess {
		return status
	}

	report := theta.NewReport(trades, asOf, f.Args()...)
	printMarkdown(renderer.AnalysisMarkdown(report))
	return subcommands.ExitSuccess
}

// fetchOptionsTrades loads the configuration, picks the requested account
// (or the first one), and fetches its options trades.
func fetchOptionsTrades(ctx context.Context, account string) ([]theta.Trade, subcommands.ExitStatus) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fail(err)
	}

	var b broker.Broker
	if account != "" {
		b, err = cfg.Broker(account)
	} else {
		b, err = cfg.FirstBroker()
	}
	if err != nil {
		return nil, fail(err)
	}

	trades, err := broker.OptionsTrades(ctx, b)
	if err != nil {
		return nil, fail(err)
	}
	return trades, subcommands.ExitSuccess
}
