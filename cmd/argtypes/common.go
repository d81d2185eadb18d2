package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wcdocs/argtypes/metadata"
)

// loadConfig reads the optional config file named by --config. Config
// keys (docs, dash-case, format, verbose) supply defaults for the
// matching flags.
func loadConfig() error {
	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	return nil
}

// setupLogger wires the library's lookup-miss warnings. Verbose runs get
// a development logger on stderr; everything else stays quiet.
func setupLogger() {
	if !verbose && !viper.GetBool("verbose") {
		metadata.SetLogger(zap.NewNop())
		return
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	metadata.SetLogger(logger)
}

// loadDocument reads a docs-JSON file and registers it as the current
// document. The config key "docs" backs an empty path flag.
func loadDocument(path string) error {
	if path == "" {
		path = viper.GetString("docs")
	}
	if path == "" {
		return fmt.Errorf("no docs-JSON file given (use --docs)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := metadata.RegisterJSON(data); err != nil {
		return fmt.Errorf("failed to register %s: %w", path, err)
	}
	return nil
}

func warnf(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}
