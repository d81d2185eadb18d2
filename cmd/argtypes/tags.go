package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wcdocs/argtypes"
	"github.com/wcdocs/argtypes/metadata"
)

var tagsDocs string

func newTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the component tags in a docs-JSON file",
		Args:  cobra.NoArgs,
		RunE:  runTags,
	}

	cmd.Flags().StringVar(&tagsDocs, "docs", "", "Path to the docs-JSON file")

	return cmd
}

func runTags(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	setupLogger()
	if err := loadDocument(tagsDocs); err != nil {
		return err
	}

	tags := metadata.Tags(argtypes.RegisteredDocument())
	color.New(color.FgCyan, color.Bold).Printf("%d components\n", len(tags))
	for _, tag := range tags {
		fmt.Println("  " + tag)
	}
	return nil
}
