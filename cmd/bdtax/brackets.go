package main

import (
	"fmt"

	"github.com/rgehrsitz/bdtax/internal/config"
	"github.com/rgehrsitz/bdtax/internal/output"
	"github.com/spf13/cobra"
)

func newBracketsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "brackets",
		Short: "Show the active bracket table",
		Long: `Show the active bracket table.

--format yaml prints the table in the file format accepted by --brackets,
which is a convenient starting point for a custom table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := a.loadTable()
			if err != nil {
				return err
			}

			switch format {
			case "console", "table":
				_, err = fmt.Fprint(cmd.OutOrStdout(), output.RenderBracketTable(*table, a.lang))
				return err
			case "yaml":
				data, err := config.Marshal(*table)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			default:
				return fmt.Errorf("unsupported format: %s (available: console, yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, yaml)")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a bracket table file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("bracket table valid")
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (FY %s, %s, %d brackets)\n",
				args[0], table.FiscalYear, table.Currency, len(table.Brackets))
			return nil
		},
	}
}
