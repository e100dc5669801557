package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/briefd/internal/tui"
)

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Plan a day and browse the schedule interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			log := newLogger()
			ctx := cmd.Context()

			days, _ := cmd.Flags().GetInt("days")
			dateFlag, _ := cmd.Flags().GetString("date")
			fixtures, _ := cmd.Flags().GetString("fixtures")

			date, err := resolvePlanDate(dateFlag, days, time.Now())
			if err != nil {
				return err
			}
			src, err := resolveDataSource(ctx, prefs, fixtures)
			if err != nil {
				return err
			}
			res, err := runPlan(ctx, prefs, src, date, log)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.New(res.Schedule, res.Brief.Markdown), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Int("days", 1, "plan this many days ahead")
	cmd.Flags().String("date", "", "plan an explicit date (YYYY-MM-DD)")
	cmd.Flags().String("fixtures", "", "read items from a JSON fixture file instead of Google")
	return cmd
}
