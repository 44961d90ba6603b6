package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colinmarc/svalue"
	"github.com/colinmarc/svalue/buffer"
)

var (
	dumpKey string
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpKey, "key", "", "dot-separated path to a nested value")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <image>",
		Short: "Print a finalized image's contents",
		Long: `dump memory-maps a finalized image and renders it, optionally
restricted to the value found at --key (a dot-separated path).

Example:
  svaluedump dump sample.sval
  svaluedump dump sample.sval --key "a.b.c"
  svaluedump dump sample.sval --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	path := args[0]
	logger.Debug("opening image", "path", path)

	bv, closeFn, err := buffer.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer closeFn()

	v := svalue.FromBuffer(bv)
	if dumpKey != "" {
		v = v.GetNested(dumpKey, '.')
	}

	if jsonOut {
		out, err := valueToAny(v)
		if err != nil {
			return err
		}
		return printJSON(out)
	}

	printInfo("%s\n", v.String())
	return nil
}

// valueToAny converts a svalue.Value into plain Go data (bool, int64,
// float64, string, []any, map[string]any, or nil) for JSON output.
func valueToAny(v svalue.Value) (any, error) {
	switch v.Kind() {
	case svalue.KindNull:
		return nil, nil
	case svalue.KindBoolean:
		return v.Bool()
	case svalue.KindInteger:
		return v.Int()
	case svalue.KindDecimal:
		return v.Decimal()
	case svalue.KindString:
		return v.Strv()
	case svalue.KindArray:
		n, err := v.Size()
		if err != nil {
			return nil, err
		}
		out := make([]any, n)
		for i := 0; i < n; i++ {
			elem, err := v.At(i)
			if err != nil {
				return nil, err
			}
			out[i], err = valueToAny(elem)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case svalue.KindObject:
		pairs, err := v.Fields()
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(pairs))
		for _, p := range pairs {
			av, err := valueToAny(p.Value)
			if err != nil {
				return nil, err
			}
			out[p.Key] = av
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unrenderable kind %v", v.Kind())
	}
}
