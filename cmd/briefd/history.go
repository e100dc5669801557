package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/briefd/internal/history"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past planning runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			limit, _ := cmd.Flags().GetInt("limit")
			sentOnly, _ := cmd.Flags().GetBool("sent")
			dateFlag, _ := cmd.Flags().GetString("date")

			filter := history.RunListFilter{Limit: limit, SentOnly: sentOnly}
			if dateFlag != "" {
				date, err := time.Parse(dateFlagLayout, dateFlag)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", dateFlag, err)
				}
				filter.PlanDate = &date
			}

			repo, err := openHistory(prefs)
			if err != nil {
				return err
			}
			defer repo.Close()

			runs, err := repo.ListRuns(ctx, filter)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tBLOCKS\tMEETING\tTASK\tDEEP WORK\tALIGNMENT\tBALANCE\tSENT")
			for _, run := range runs {
				sent := "-"
				if run.SentAt != nil {
					sent = run.SentAt.Local().Format("Jan 2 15:04")
				}
				fmt.Fprintf(w, "%s\t%d\t%dm\t%dm\t%dm\t%.0f\t%.0f\t%s\n",
					run.PlanDate.Format(dateFlagLayout),
					run.BlockCount,
					run.MeetingMinutes,
					run.TaskMinutes,
					run.DeepWorkMinutes,
					run.NorthStarAlignment,
					run.BalanceScore,
					sent)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int("limit", 20, "maximum runs to list")
	cmd.Flags().Bool("sent", false, "only show runs whose brief was sent")
	cmd.Flags().String("date", "", "only show runs for a plan date (YYYY-MM-DD)")
	return cmd
}
