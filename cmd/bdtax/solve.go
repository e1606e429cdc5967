package main

import (
	"fmt"

	"github.com/rgehrsitz/bdtax/internal/breakeven"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		goal    string
		monthly bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "solve <amount>",
		Short: "Find the income that results in a given tax or take-home pay",
		Long: `Find the annual income at which the total tax, or the income left after
tax, reaches the given amount.

Examples:
  bdtax solve 52500
  bdtax solve 847500 --goal take_home
  bdtax solve 70000 --goal take_home --monthly`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := domain.ParseAmount(args[0])
			if err != nil {
				return err
			}
			if monthly {
				target = domain.AnnualFromMonthly(target)
			}
			g, err := breakeven.ParseGoal(goal)
			if err != nil {
				return err
			}

			table, _, err := a.loadTable()
			if err != nil {
				return err
			}

			result, err := breakeven.Solve(breakeven.Request{Goal: g, Target: target, Brackets: table.Brackets})
			if err != nil {
				return err
			}
			a.logger.Debug("break-even income solved",
				zap.String("goal", string(g)),
				zap.String("target", target.String()),
				zap.String("income", result.Income.String()),
			)

			var out string
			switch format {
			case "table", "console":
				out = (&breakeven.TableFormatter{Language: a.lang, Currency: table.Currency}).Format(result)
			case "json":
				out, err = (&breakeven.JSONFormatter{}).Format(result)
				if err != nil {
					return err
				}
				out += "\n"
			default:
				return fmt.Errorf("unsupported format: %s (available: table, json)", format)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", string(breakeven.GoalTotalTax), "What the amount is (tax, take_home)")
	cmd.Flags().BoolVarP(&monthly, "monthly", "m", false, "Treat the amount as a monthly figure")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}
