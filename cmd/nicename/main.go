// Command nicename prints inspector display labels for field identifiers.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fieldlabel/internal/inspector"
	"fieldlabel/internal/nicename"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "nicename [identifier...]",
		Short: "Print inspector display labels for field identifiers",
		Long: `Converts identifiers such as "_moveSpeed" into the label the inspector
shows ("Move Speed"). With no arguments, identifiers are read from stdin,
one per line.`,
		Example: `  nicename _fieldNameValue castShadows
  grep -o '[A-Za-z_]*' fields.txt | nicename`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := inspector.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			lggr, err := inspector.NewLogger(verbose || cfg.Debug)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = lggr.Sync() }()

			if len(args) > 0 {
				return formatAll(cmd.OutOrStdout(), args, lggr)
			}
			return formatLines(cmd.InOrStdin(), cmd.OutOrStdout(), lggr)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every conversion")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to an inspector config file")

	return cmd
}

func formatAll(w io.Writer, idents []string, lggr *zap.SugaredLogger) error {
	for _, ident := range idents {
		label := nicename.Format(ident)
		lggr.Debugw("Formatted identifier", "identifier", ident, "label", label)
		if _, err := fmt.Fprintln(w, label); err != nil {
			return err
		}
	}
	return nil
}

func formatLines(r io.Reader, w io.Writer, lggr *zap.SugaredLogger) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ident := strings.TrimSpace(scanner.Text())
		if ident == "" {
			continue
		}
		if err := formatAll(w, []string{ident}, lggr); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read identifiers: %w", err)
	}
	return nil
}
