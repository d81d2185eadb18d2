package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/wcdocs/argtypes"
)

var (
	extractDocs     string
	extractDashCase bool
	extractFormat   string
)

func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <tag>",
		Short: "Print the control descriptors for a component tag",
		Long: `Resolve a component by tag in a docs-JSON file and print the merged
control-descriptor mapping its six facets produce.

Examples:
  argtypes extract my-card --docs docs.json
  argtypes extract my-card --docs docs.json --dash-case
  argtypes extract my-card --docs docs.json --format=yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().StringVar(&extractDocs, "docs", "", "Path to the docs-JSON file")
	cmd.Flags().BoolVar(&extractDashCase, "dash-case", false, "Derive hyphenated descriptor keys")
	cmd.Flags().StringVar(&extractFormat, "format", "json", "Output format: json, yaml")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	setupLogger()
	if err := loadDocument(extractDocs); err != nil {
		return err
	}

	dashCase := extractDashCase || viper.GetBool("dash-case")
	extractor := argtypes.NewExtractor(argtypes.Options{DashCase: dashCase})

	tag := args[0]
	result, err := extractor(tag)
	if err != nil {
		return err
	}
	if result == nil {
		warnf("component %q not found", tag)
		return nil
	}
	return printDescriptors(result)
}

func printDescriptors(result map[string]argtypes.ArgType) error {
	format := extractFormat
	if format == "json" && viper.GetString("format") != "" {
		format = viper.GetString("format")
	}

	switch format {
	case "yaml":
		out, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode descriptors: %w", err)
		}
		fmt.Print(string(out))
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode descriptors: %w", err)
		}
		fmt.Println(string(out))
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
	return nil
}
