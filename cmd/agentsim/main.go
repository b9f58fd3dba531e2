// Command agentsim runs random-walker demo scenarios from a YAML
// configuration file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "agentsim",
		Short:         "Agent-based simulation engine",
		Long:          "agentsim advances populations of stateful agents through discrete simulation steps inside grid or continuous spaces.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newRunCmd())

	return cmd
}
