package main

import (
	"encoding/json"
	"fmt"
	"os"

	"charm.land/log/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var logger = log.New(os.Stderr)

var rootCmd = &cobra.Command{
	Use:   "svaluedump",
	Short: "Inspect and build svalue structured-value images",
	Long: `svaluedump decodes finalized svalue images, walks them by key
path, and converts YAML documents into finalized images.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case quiet:
			logger.SetLevel(log.ErrorLevel)
		case verbose:
			logger.SetLevel(log.DebugLevel)
		default:
			logger.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON.
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
