package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/bdtax/internal/config"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/rgehrsitz/bdtax/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTUICmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive calculator",
		Long: `Start the interactive calculator.

With --watch, edits to the --brackets file are picked up while the
calculator is running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && a.settings.Brackets == "" {
				return errors.New("--watch requires a bracket table file (--brackets)")
			}

			table, builtin, err := a.loadTable()
			if err != nil {
				return err
			}

			logger := a.logger
			if a.settings.Logging.OutputFile == "" {
				// stderr would draw over the alternate screen
				logger = zap.NewNop()
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			model := tui.NewModel(*table, a.lang, builtin).WithLogger(logger.Sugar())
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

			if watch {
				go func() {
					err := config.Watch(ctx, a.settings.Brackets, logger, func(cfg *domain.TaxConfig) {
						p.Send(tui.TableReloadedMsg{Config: cfg})
					})
					if err != nil {
						p.Send(tui.ErrorMsg{Err: fmt.Errorf("watch %s: %w", a.settings.Brackets, err)})
					}
				}()
			}

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the bracket table file when it changes")
	return cmd
}
