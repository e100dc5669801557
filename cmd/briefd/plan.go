package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/briefd/internal/brief"
	"github.com/sandeepkv93/briefd/internal/config"
	"github.com/sandeepkv93/briefd/internal/energy"
	"github.com/sandeepkv93/briefd/internal/history"
	"github.com/sandeepkv93/briefd/internal/meeting"
	"github.com/sandeepkv93/briefd/internal/model"
	"github.com/sandeepkv93/briefd/internal/priority"
	"github.com/sandeepkv93/briefd/internal/schedule"
	"github.com/sandeepkv93/briefd/internal/source"
	"github.com/sandeepkv93/briefd/internal/source/google"
)

const dateFlagLayout = "2006-01-02"

// planResult bundles everything one planning run produces.
type planResult struct {
	Schedule model.Schedule
	Inputs   schedule.Inputs
	Brief    brief.Brief
}

// runPlan is the core pipeline: fetch, score, build, render. Scoring
// completes for every item before the builder runs.
func runPlan(ctx context.Context, prefs config.Preferences, src source.DataSource, date time.Time, log *slog.Logger) (planResult, error) {
	lookahead := int(date.Sub(time.Now().UTC()).Hours()/24) + 2
	if lookahead < 1 {
		lookahead = 1
	}
	events, err := src.Events(ctx, lookahead)
	if err != nil {
		return planResult{}, err
	}
	tasks, err := src.Tasks(ctx)
	if err != nil {
		return planResult{}, err
	}
	emails, err := src.Emails(ctx)
	if err != nil {
		return planResult{}, err
	}
	log.Info("fetched items", "events", len(events), "tasks", len(tasks), "emails", len(emails))

	energyModel := energy.NewModel(prefs.EnergyPatterns)
	goals := priority.NewKeywordClassifier(prefs.Goals.NorthStarKeywords, prefs.Goals.Secondary)
	scorer := priority.NewScorer(energyModel, goals)
	evaluator := meeting.NewEvaluator(scorer)

	in := schedule.Inputs{
		Events: scorer.ScoreEvents(events, evaluator),
		Tasks:  scorer.ScoreTasks(tasks, time.Now().UTC()),
		Emails: scorer.ScoreEmails(emails),
	}

	builder := schedule.NewBuilder(prefs, energyModel)
	sched := builder.Build(date, in)
	log.Info("built schedule",
		"date", sched.Date.Format(dateFlagLayout),
		"blocks", len(sched.Blocks),
		"reschedule_candidates", len(sched.RescheduleCandidates))

	gen := brief.Generator{SubjectTemplate: prefs.Brief.SubjectTemplate}
	b := gen.Generate(brief.Inputs{
		Schedule: sched,
		Events:   in.Events,
		Tasks:    in.Tasks,
		Emails:   in.Emails,
	})
	return planResult{Schedule: sched, Inputs: in, Brief: b}, nil
}

// resolveDataSource picks fixtures when a path is given, the Google
// APIs otherwise.
func resolveDataSource(ctx context.Context, prefs config.Preferences, fixtures string) (source.DataSource, error) {
	if fixtures != "" {
		return source.LoadFixtures(fixtures)
	}
	return google.New(ctx, prefs.DataDir)
}

// resolvePlanDate prefers an explicit --date; otherwise today plus the
// --days offset.
func resolvePlanDate(dateFlag string, days int, now time.Time) (time.Time, error) {
	if dateFlag != "" {
		date, err := time.Parse(dateFlagLayout, dateFlag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q: %w", dateFlag, err)
		}
		return date.UTC(), nil
	}
	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, days), nil
}

func openHistory(prefs config.Preferences) (*history.SQLiteRepository, error) {
	repo, err := history.OpenSQLite(filepath.Join(prefs.DataDir, "briefd.db"))
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func recordRun(ctx context.Context, repo history.Repository, prefs config.Preferences, res planResult) (string, error) {
	id := uuid.NewString()
	m := res.Schedule.Metrics
	err := repo.CreateRun(ctx, history.Run{
		ID:                   id,
		PlanDate:             res.Schedule.Date,
		WorkLocation:         res.Schedule.WorkLocation,
		BlockCount:           len(res.Schedule.Blocks),
		MeetingMinutes:       m.MeetingMinutes,
		TaskMinutes:          m.TaskMinutes,
		ProtectedMinutes:     m.ProtectedMinutes,
		DeepWorkMinutes:      m.DeepWorkMinutes,
		NorthStarAlignment:   m.NorthStarAlignment,
		BalanceScore:         m.BalanceScore,
		RescheduleCandidates: len(res.Schedule.RescheduleCandidates),
		Recipient:            prefs.Brief.Recipient,
		GeneratedAt:          time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// sendBrief delivers the brief by email and records it, refusing a
// second send for the same plan date unless forced.
func sendBrief(ctx context.Context, src source.DataSource, repo history.Repository, prefs config.Preferences, res planResult, runID string, force bool) error {
	sender, ok := src.(*google.Source)
	if !ok {
		return errors.New("sending requires the Google data source")
	}
	if prefs.Brief.Recipient == "" {
		return errors.New("no brief recipient configured")
	}
	if !force {
		sent, err := repo.SentForDate(ctx, res.Schedule.Date)
		if err != nil {
			return err
		}
		if sent {
			return fmt.Errorf("%w; use --force to resend", history.ErrAlreadySent)
		}
	}
	if err := sender.SendEmail(ctx, prefs.Brief.Recipient, res.Brief.Subject, res.Brief.Markdown, res.Brief.HTML); err != nil {
		return err
	}
	return repo.MarkSent(ctx, runID, time.Now().UTC())
}

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a day and print the morning brief",
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
			send, _ := cmd.Flags().GetBool("send")
			apply, _ := cmd.Flags().GetBool("apply")
			force, _ := cmd.Flags().GetBool("force")

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

			repo, err := openHistory(prefs)
			if err != nil {
				return err
			}
			defer repo.Close()
			runID, err := recordRun(ctx, repo, prefs, res)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), brief.RenderMarkdown(res.Brief.Markdown))

			if apply {
				writer, ok := src.(*google.Source)
				if !ok {
					return errors.New("applying blocks requires the Google data source")
				}
				if err := writer.ApplyBlocks(ctx, res.Schedule.Blocks); err != nil {
					return err
				}
				log.Info("applied blocks to calendar", "blocks", len(res.Schedule.Blocks))
			}
			if send {
				if err := sendBrief(ctx, src, repo, prefs, res, runID, force); err != nil {
					return err
				}
				log.Info("sent brief", "recipient", prefs.Brief.Recipient)
			}
			return nil
		},
	}

	cmd.Flags().Int("days", 1, "plan this many days ahead")
	cmd.Flags().String("date", "", "plan an explicit date (YYYY-MM-DD)")
	cmd.Flags().String("fixtures", "", "read items from a JSON fixture file instead of Google")
	cmd.Flags().Bool("send", false, "email the brief to the configured recipient")
	cmd.Flags().Bool("apply", false, "write planned blocks to the calendar")
	cmd.Flags().Bool("force", false, "send even if a brief for the date was already sent")
	return cmd
}
