package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/colinmarc/svalue"
)

var (
	buildOut string
)

func init() {
	cmd := newBuildCmd()
	cmd.Flags().StringVarP(&buildOut, "out", "o", "", "output path for the finalized image (default: stdout)")
	rootCmd.AddCommand(cmd)
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <document.yaml>",
		Short: "Finalize a YAML document into a svalue image",
		Long: `build parses a YAML document, converts it into the value
model via svalue.Convert, and writes the finalized image to --out (or
stdout when --out is omitted).

Example:
  svaluedump build config.yaml -o config.sval`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args)
		},
	}
}

func runBuild(args []string) error {
	path := args[0]
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	v, err := svalue.Convert(doc)
	if err != nil {
		return fmt.Errorf("converting document: %w", err)
	}
	logger.Debug("converted document", "kind", v.Kind())

	data, err := svalue.Finalize(v)
	if err != nil {
		return fmt.Errorf("finalizing: %w", err)
	}

	if buildOut == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(buildOut, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", buildOut, err)
	}
	printInfo("wrote %d bytes to %s\n", len(data), buildOut)
	return nil
}
