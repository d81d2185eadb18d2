package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wcdocs/argtypes"
)

var describeDocs string

func newDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <tag>",
		Short: "Print a component's free-text description",
		Long: `Print the readme of a component, falling back to its short doc comment
when no readme is present.`,
		Args: cobra.ExactArgs(1),
		RunE: runDescribe,
	}

	cmd.Flags().StringVar(&describeDocs, "docs", "", "Path to the docs-JSON file")

	return cmd
}

func runDescribe(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	setupLogger()
	if err := loadDocument(describeDocs); err != nil {
		return err
	}

	tag := args[0]
	desc, err := argtypes.Description(tag)
	if err != nil {
		return err
	}
	if desc == "" {
		warnf("no description for component %q", tag)
		return nil
	}
	fmt.Println(desc)
	return nil
}
