package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	theta "github.com/mgalgs/thetactl"
	"github.com/mgalgs/thetactl/agent"
	"github.com/mgalgs/thetactl/renderer"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	account string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an analyst about your options report" }
func (*assistCmd) Usage() string {
	return `thetactl assist [-account <name>]

  Builds the options profitability report for the account and starts an
  interactive chat session with an analyst primed with it. Requires the
  GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Broker account to analyze. Defaults to the first configured one.")
}

func (c *assistCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Fprintln(os.Stderr, "assist requires the GEMINI_API_KEY environment variable")
		return subcommands.ExitUsageError
	}

	trades, status := fetchOptionsTrades(ctx, c.account)
	if status != subcommands.ExitSuccess {
		return status
	}

	report := theta.NewReport(trades, theta.Today())
	md := renderer.AnalysisMarkdown(report)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}

	analyst := agent.NewAnalyst(md)
	if err := analyst.Run(ctx, client, os.Stdout, os.Stdin); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
