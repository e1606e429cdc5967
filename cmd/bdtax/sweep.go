package main

import (
	"fmt"

	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/rgehrsitz/bdtax/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSweepCmd(a *app) *cobra.Command {
	var from, to, step, format string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate tax across a range of incomes",
		Long: `Tabulate total tax, effective rate and marginal rate across a range of
annual incomes.

Examples:
  bdtax sweep --from 0 --to 5000000 --step 250000
  bdtax sweep --to 2000000 --step 100000 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := domain.ParseAmount(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := domain.ParseAmount(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			increment, err := domain.ParseAmount(step)
			if err != nil {
				return fmt.Errorf("--step: %w", err)
			}

			table, _, err := a.loadTable()
			if err != nil {
				return err
			}

			points, err := calculation.Sweep(start, end, increment, table.Brackets)
			if err != nil {
				return err
			}
			a.logger.Debug("sweep computed", zap.Int("points", len(points)))

			data, err := output.FormatSweep(points, format, a.lang, table.Currency)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "0", "First annual income")
	cmd.Flags().StringVar(&to, "to", "5000000", "Last annual income")
	cmd.Flags().StringVar(&step, "step", "500000", "Income increment")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, csv, json)")
	return cmd
}
