package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbon-mrv/internal/report"
	"github.com/rshade/carbon-mrv/internal/scenario"
)

func newReportCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute an emission report from a scenario file",
		Long: "Reads a YAML scenario file, computes per-source emissions and totals,\n" +
			"and renders the MRV report as text, markdown, or JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(inputPath)
			if err != nil {
				return err
			}

			r, err := report.NewBuilder(logger).Build(s)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "text":
				out = []byte(report.RenderText(r))
			case "markdown":
				out = []byte(report.RenderMarkdown(r))
			case "json":
				out, err = report.MarshalJSON(r)
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				out = append(out, '\n')
			default:
				return fmt.Errorf("invalid format %q (expected text, markdown, or json)", format)
			}

			if outputPath == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			logger.Info().Str("path", outputPath).Msg("report written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "scenario YAML file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, markdown, json)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
