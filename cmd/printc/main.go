// Package main implements the printc command, a shell front end for the
// clean-print formatter: each label=value argument becomes one
// "label = rendering" paragraph on stdout.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"printc"
	"printc/internal/trace"
)

var (
	colorize bool
	compact  bool
	verbose  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "printc [label=value]...",
	Short: "Clean debug printing from the shell",
	Long: `printc prints each label=value argument as a "label = rendering"
paragraph followed by a blank line, the same format the printc library
produces for Go values.

Values are parsed as YAML literals (JSON works too, it is a YAML subset);
anything that does not parse is printed as a raw string.

Example:
  printc user='{name: Ada, admin: true}' retries=3`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.OutputPaths = []string{"stderr"}
		logger, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		trace.Set(logger)
		return nil
	},
	RunE: runPrint,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parse diagnostics to stderr")
	rootCmd.Flags().BoolVar(&colorize, "color", false, "style labels for terminal output")
	rootCmd.Flags().BoolVar(&compact, "compact", false, "render values on a single line")
}

func runPrint(cmd *cobra.Command, args []string) error {
	entries, err := parseArgs(args)
	if err != nil {
		return err
	}

	opts := []printc.Option{printc.WithWriter(cmd.OutOrStdout())}
	if colorize {
		opts = append(opts, printc.WithColor(true))
	}
	if compact {
		opts = append(opts, printc.WithCompact(true))
	}
	printc.New(opts...).Print(entries...)
	return nil
}

// parseArgs converts label=value arguments into entries, in argument order.
func parseArgs(args []string) ([]printc.Entry, error) {
	entries := make([]printc.Entry, 0, len(args))
	for _, arg := range args {
		label, value, ok := strings.Cut(arg, "=")
		if !ok || label == "" {
			return nil, fmt.Errorf("argument %q is not label=value", arg)
		}
		entries = append(entries, printc.E(label, parseValue(value)))
	}
	return entries, nil
}

// parseValue decodes a YAML literal, keeping the raw string when it does
// not parse.
func parseValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		trace.L().Debug("value is not YAML, keeping raw string",
			zap.String("value", s), zap.Error(err))
		return s
	}
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
