package main

import (
	"fmt"
	"log/slog"

	"finance-tracker/internal/database"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/spf13/cobra"
)

func netWorthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networth",
		Short: "Net worth snapshot maintenance",
	}
	cmd.AddCommand(recalculateCmd())
	return cmd
}

func recalculateCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Rebuild one month's snapshot from its asset and liability line items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.Initialize(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			svc := services.NewNetWorthService(
				repositories.NewNetWorthRepository(db.DB),
				services.NewFinanceLogger(slog.Default()),
				services.NewPrometheusMetrics(),
			)

			snapshot, err := svc.RecalculateFromLineItems(cmd.Context(), year, month)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%04d-%02d assets=%s liabilities=%s net_worth=%s\n",
				snapshot.Year, snapshot.Month,
				snapshot.Assets.StringFixed(2), snapshot.Liabilities.StringFixed(2), snapshot.NetValue().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "calendar year of the snapshot")
	cmd.Flags().IntVar(&month, "month", 0, "month of the snapshot (1-12)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}
