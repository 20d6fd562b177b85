// Command carbon-mrv computes greenhouse-gas emission reports for
// agriculture and alloy/steel scenarios and renders them as MRV documents.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string

	logger zerolog.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "carbon-mrv",
		Short: "MRV carbon footprint and carbon credit reporting",
		Long: "carbon-mrv converts activity data (fuel, electricity, fertilizer, crops,\n" +
			"livestock, steel production) into CO2e emission estimates and renders a\n" +
			"structured Measurement / Reporting / Verification document.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	root.AddCommand(newReportCmd())
	root.AddCommand(newFactorsCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setupLogging() error {
	level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	switch logFormat {
	case "console":
		logger = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
		})).Level(level).With().Timestamp().Logger()
	case "json":
		logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	default:
		return fmt.Errorf("invalid log format %q (expected console or json)", logFormat)
	}
	return nil
}
