package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/rgehrsitz/bdtax/internal/output"
	"github.com/spf13/cobra"
)

func newCalculateCmd(a *app) *cobra.Command {
	var (
		monthly bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "calculate <amount>",
		Short: "Calculate income tax for an annual (or monthly) income",
		Long: `Calculate income tax for an amount and print the slab-by-slab breakdown.

Examples:
  bdtax calculate 900000
  bdtax calculate 75,000 --monthly
  bdtax calculate 5000000 --format json
  bdtax calculate 1200000 --lang bn`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseAmount(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				format = a.settings.Format
			}
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unsupported format: %s (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
			}

			table, _, err := a.loadTable()
			if err != nil {
				return err
			}

			calc := calculation.NewBracketTaxCalculator(*table)
			calc.SetLogger(a.logger.Sugar())

			var result domain.TaxCalculationResult
			if monthly {
				result = calc.CalculateMonthly(amount)
			} else {
				result = calc.Calculate(amount)
			}

			data, err := formatter.Format(output.Report{Config: *table, Result: result, Language: a.lang})
			if err != nil {
				return fmt.Errorf("failed to format result: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVarP(&monthly, "monthly", "m", false, "Treat the amount as a monthly salary")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format ("+strings.Join(output.FormatterNames(), ", ")+")")
	return cmd
}
