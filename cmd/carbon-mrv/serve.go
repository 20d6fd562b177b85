package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbon-mrv/internal/api"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP report API",
		Long: "Serves POST /api/v1/report, GET /api/v1/factors, GET /health, and\n" +
			"GET /metrics. CORS policy is read from CARBONMRV_CORS_* environment\n" +
			"variables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if envAddr := os.Getenv("CARBONMRV_ADDR"); envAddr != "" && !cmd.Flags().Changed("addr") {
				addr = envAddr
			}

			server, err := api.NewServer(addr, logger)
			if err != nil {
				return err
			}
			return server.Run()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
