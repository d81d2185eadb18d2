package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "argtypes",
		Short: "Inspect component docs-JSON as control descriptors",
		Long: `argtypes translates the docs-JSON metadata a UI-component compiler emits
into the control-descriptor mapping an interactive documentation tool
consumes. This binary is a debugging surface over the library of the
same name.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file supplying flag defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newTagsCommand())
	rootCmd.AddCommand(newDescribeCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
