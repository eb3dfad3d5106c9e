// Package cmd implements the CLI application to track options profitability.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mgalgs/thetactl/broker"
	"github.com/mgalgs/thetactl/broker/td"
	"github.com/mgalgs/thetactl/config"
)

// Commands lists the subcommands of the application. A main package
// registers each of them on a commander and executes the selected one.
var Commands = []subcommands.Command{
	&listBrokersCmd{},
	&addBrokerCmd{},
	&removeBrokerCmd{},
	&analyzeCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (defaults to the user config dir)")

// registry builds the provider registry once at startup. New broker
// implementations are added here, and only here.
func registry() broker.Registry {
	return broker.Registry{
		td.ProviderName: td.Provider(),
	}
}

// loadConfig opens the user configuration with the provider registry wired in.
func loadConfig() (*config.Config, error) {
	path := *configFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path, registry())
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the terminal renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail reports an error on stderr and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
