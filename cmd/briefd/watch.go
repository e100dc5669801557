package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/briefd/internal/daemon"
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run as a daemon, sending the brief at the configured time each day",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := loadPreferences(cmd)
			if err != nil {
				return err
			}
			log := newLogger()
			ctx := cmd.Context()

			offset, _ := cmd.Flags().GetInt("days")
			fixtures, _ := cmd.Flags().GetString("fixtures")
			send, _ := cmd.Flags().GetBool("send")

			src, err := resolveDataSource(ctx, prefs, fixtures)
			if err != nil {
				return err
			}
			repo, err := openHistory(prefs)
			if err != nil {
				return err
			}
			defer repo.Close()

			alarm := daemon.NewAlarm(1)
			alarm.Start()
			defer alarm.Stop()

			next := daemon.NextSendTime(time.Now(), prefs.Brief.SendTime)
			if err := alarm.Schedule(daemon.Fire{At: next, PlanDate: daemon.PlanDateFor(next, offset)}); err != nil {
				return err
			}
			log.Info("watching", "next_send", next.Format(time.RFC3339))

			for {
				select {
				case <-ctx.Done():
					return nil
				case fire := <-alarm.C():
					res, err := runPlan(ctx, prefs, src, fire.PlanDate, log)
					if err != nil {
						log.Error("plan failed", "error", err)
					} else {
						runID, err := recordRun(ctx, repo, prefs, res)
						if err != nil {
							log.Error("record run failed", "error", err)
						} else if send {
							if err := sendBrief(ctx, src, repo, prefs, res, runID, false); err != nil {
								log.Error("send failed", "error", err)
							} else {
								log.Info("sent brief", "plan_date", fire.PlanDate.Format(dateFlagLayout))
							}
						}
					}
					next := daemon.NextSendTime(time.Now(), prefs.Brief.SendTime)
					if err := alarm.Schedule(daemon.Fire{At: next, PlanDate: daemon.PlanDateFor(next, offset)}); err != nil {
						return err
					}
					log.Info("scheduled next send", "next_send", next.Format(time.RFC3339))
				}
			}
		},
	}

	cmd.Flags().Int("days", 0, "plan this many days past the send date")
	cmd.Flags().String("fixtures", "", "read items from a JSON fixture file instead of Google")
	cmd.Flags().Bool("send", true, "email each brief to the configured recipient")
	return cmd
}
