package main

import (
	"log/slog"

	"finance-tracker/internal/database"
	"finance-tracker/internal/server"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Connects to the configured database, brings the schema up to date and
serves the API until SIGINT or SIGTERM, then drains in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.Initialize(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			logger := slog.Default()
			srv := server.New(cfg, db, server.NewServices(db, logger), logger)
			return srv.Run(cmd.Context())
		},
	}
}

func closeDatabase(db *database.DB) {
	if err := db.Close(); err != nil {
		slog.Warn("failed to close database", "error", err)
	}
}
