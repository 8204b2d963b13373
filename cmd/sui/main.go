package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sui",
		Short: "Component instance container for the SUI kit",
		Long: `sui runs the component instance Container of the SUI kit.

The Container tracks live widgets (Accordion, Modal, Dropdown, ...) by
component kind and instance id, and can publish itself to a host page
as a small JSON surface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		serveCmd(),
		kindsCmd(),
		versionCmd(),
	)
	return root
}
