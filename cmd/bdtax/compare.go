package main

import (
	"fmt"
	"path/filepath"

	"github.com/rgehrsitz/bdtax/internal/compare"
	"github.com/rgehrsitz/bdtax/internal/config"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		with    []string
		monthly bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "compare <amount>",
		Short: "Compare the tax on one income under several bracket tables",
		Long: `Compare the tax on one income under the active bracket table and one or
more alternative tables, e.g. two fiscal years.

Examples:
  bdtax compare 900000 --with fy2023-2024.yaml
  bdtax compare 75000 --monthly --with a.yaml --with b.yaml --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseAmount(args[0])
			if err != nil {
				return err
			}
			if monthly {
				amount = domain.AnnualFromMonthly(amount)
			}

			table, builtin, err := a.loadTable()
			if err != nil {
				return err
			}
			base := compare.NamedTable{Name: filepath.Base(a.settings.Brackets), Config: *table}
			if builtin {
				base.Name = "built-in"
			}

			parser := config.NewInputParser()
			alternatives := make([]compare.NamedTable, 0, len(with))
			for _, path := range with {
				cfg, err := parser.LoadFromFile(path)
				if err != nil {
					return err
				}
				alternatives = append(alternatives, compare.NamedTable{Name: filepath.Base(path), Config: *cfg})
			}

			engine := compare.NewCompareEngine()
			engine.Logger = a.logger.Sugar()
			compSet, err := engine.Compare(cmd.Context(), amount, base, alternatives)
			if err != nil {
				return err
			}

			var out string
			switch format {
			case "table", "console":
				out = (&compare.TableFormatter{Language: a.lang}).Format(compSet)
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			default:
				return fmt.Errorf("unsupported format: %s (available: table, csv, json)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringArrayVar(&with, "with", nil, "Bracket table file to compare against (repeatable)")
	cmd.Flags().BoolVarP(&monthly, "monthly", "m", false, "Treat the amount as a monthly salary")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, csv, json)")
	_ = cmd.MarkFlagRequired("with")
	return cmd
}
