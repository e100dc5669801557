// Package brief turns a finished schedule and the prioritized items
// behind it into the morning brief: a markdown body for terminals and
// an HTML body for email delivery.
package brief

import (
	"fmt"
	"html"
	"strings"

	"github.com/sandeepkv93/briefd/internal/model"
	"github.com/sandeepkv93/briefd/internal/schedule"
)

const (
	dateLayout  = "Monday, January 2, 2006"
	clockLayout = "15:04"

	visualStartHour = 6
	visualEndHour   = 24

	topTaskLimit      = 3
	recentEmailLimit  = 5
	largeMeetingCount = 5
)

// Brief is the rendered morning brief.
type Brief struct {
	Subject  string
	Markdown string
	HTML     string
}

// Generator assembles briefs. SubjectTemplate must contain one %s verb
// for the formatted date.
type Generator struct {
	SubjectTemplate string
}

// Inputs carries the planner output the brief is written from.
type Inputs struct {
	Schedule model.Schedule
	Events   []model.ScoredEvent
	Tasks    []model.ScoredTask
	Emails   []model.ScoredEmail
}

// Generate builds the subject line and both body renditions.
func (g Generator) Generate(in Inputs) Brief {
	date := in.Schedule.Date.Format(dateLayout)
	return Brief{
		Subject:  fmt.Sprintf(g.SubjectTemplate, date),
		Markdown: g.markdown(date, in),
		HTML:     g.html(date, in),
	}
}

func (g Generator) markdown(date string, in Inputs) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Daily Schedule: %s\n\n", date)

	m := in.Schedule.Metrics
	b.WriteString("## Key Metrics\n\n")
	fmt.Fprintf(&b, "- Deep work: %d minutes\n", m.DeepWorkMinutes)
	fmt.Fprintf(&b, "- North-star goal progress: %.0f%%\n", m.NorthStarAlignment)
	fmt.Fprintf(&b, "- Work-life balance: %.0f%%\n\n", m.BalanceScore)

	b.WriteString("## Critical Tasks\n\n")
	tasks := topTasks(in.Tasks, topTaskLimit)
	if len(tasks) == 0 {
		b.WriteString("Nothing urgent on the task list.\n\n")
	}
	for i, task := range tasks {
		fmt.Fprintf(&b, "%d. %s (%d min)\n", i+1, task.Task.Title, estimateMinutes(task.Task))
		if task.Task.Notes != "" {
			fmt.Fprintf(&b, "   Notes: %s\n", task.Task.Notes)
		}
	}
	if len(tasks) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("## Meeting Intelligence\n\n")
	intel := meetingIntel(in)
	if len(intel.decisions) > 0 {
		b.WriteString("### Decisions Expected Today\n\n")
		for _, mi := range intel.decisions {
			fmt.Fprintf(&b, "- %s: %s\n", mi.clock, mi.title)
		}
		b.WriteString("\n")
	}
	if len(intel.prep) > 0 {
		b.WriteString("### Meeting Preparation\n\n")
		for _, mi := range intel.prep {
			fmt.Fprintf(&b, "- %s: %s\n", mi.clock, mi.title)
			for _, note := range mi.notes {
				fmt.Fprintf(&b, "  - %s\n", note)
			}
		}
		b.WriteString("\n")
	}
	if len(in.Schedule.RescheduleCandidates) > 0 {
		b.WriteString("### Reschedule Candidates\n\n")
		for _, rc := range in.Schedule.RescheduleCandidates {
			fmt.Fprintf(&b, "- %s: %s\n", rc.Start.UTC().Format(clockLayout), rc.Title)
			for _, reason := range rc.Reasons {
				fmt.Fprintf(&b, "  - %s\n", reason)
			}
		}
		b.WriteString("\n")
	}
	if len(intel.decisions) == 0 && len(intel.prep) == 0 && len(in.Schedule.RescheduleCandidates) == 0 {
		b.WriteString("No meetings need special attention.\n\n")
	}

	emails := recentEmails(in.Emails, recentEmailLimit)
	if len(emails) > 0 {
		b.WriteString("## Recent Context\n\n")
		for _, e := range emails {
			fmt.Fprintf(&b, "- %s (from %s)\n", e.Email.Subject, e.Email.From)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Today's Schedule\n\n")
	b.WriteString(visualization(in.Schedule.Blocks))
	return b.String()
}

// visualization renders the day hour by hour from 06:00 to 23:00, one
// marker per block type.
func visualization(blocks []model.Block) string {
	byHour := make(map[int][]model.Block)
	for _, blk := range blocks {
		h := blk.Start.UTC().Hour()
		byHour[h] = append(byHour[h], blk)
	}

	var b strings.Builder
	for hour := visualStartHour; hour < visualEndHour; hour++ {
		hourBlocks := byHour[hour]
		if len(hourBlocks) == 0 {
			fmt.Fprintf(&b, "**%02d:00** - *Open*\n", hour)
			continue
		}
		fmt.Fprintf(&b, "**%02d:00**\n", hour)
		for _, blk := range hourBlocks {
			fmt.Fprintf(&b, "- %s - %s: %s %s\n",
				blk.Start.UTC().Format(clockLayout), blk.End.UTC().Format(clockLayout),
				marker(blk), blk.Title)
		}
	}
	return b.String()
}

func marker(b model.Block) string {
	switch b.Type {
	case model.BlockTypeProtected:
		return "🛡️"
	case model.BlockTypeMeeting:
		if b.Priority != nil {
			switch b.Priority.Quadrant {
			case model.QuadrantUrgentImportant:
				return "🔴"
			case model.QuadrantImportant:
				return "🟠"
			}
		}
		return "📅"
	case model.BlockTypeTask:
		return "✅"
	case model.BlockTypeEmail:
		return "📧"
	default:
		return "•"
	}
}

type meetingNote struct {
	clock string
	title string
	notes []string
}

type intel struct {
	decisions []meetingNote
	prep      []meetingNote
}

// meetingIntel pulls the meetings worth calling out: ones where
// decisions are expected and important ones worth preparing for.
func meetingIntel(in Inputs) intel {
	var out intel
	for _, se := range in.Events {
		if se.Meeting == nil || !se.Event.IsTimed() || !se.Event.OnDate(in.Schedule.Date) {
			continue
		}
		clock := se.Event.Start.UTC().Format(clockLayout)
		if se.Meeting.DecisionAuthority {
			out.decisions = append(out.decisions, meetingNote{clock: clock, title: se.Event.Title})
		}
		switch se.Priority.Quadrant {
		case model.QuadrantUrgentImportant, model.QuadrantImportant:
			out.prep = append(out.prep, meetingNote{
				clock: clock,
				title: se.Event.Title,
				notes: prepNotes(se),
			})
		}
	}
	return out
}

func prepNotes(se model.ScoredEvent) []string {
	var notes []string
	if se.Meeting.StrategicAlignment >= 4 {
		notes = append(notes, "Highly aligned with your strategic goals.")
	}
	if se.Meeting.DecisionAuthority {
		notes = append(notes, "Decisions are expected to be made.")
	}
	if n := len(se.Event.Attendees); n > largeMeetingCount {
		notes = append(notes, fmt.Sprintf("Large meeting with %d attendees.", n))
	}
	if len(notes) == 0 {
		notes = append(notes, "Review the agenda and prepare key talking points.")
	}
	return notes
}

// topTasks assumes the input is already sorted by score descending,
// which is what the scorer produces.
func topTasks(tasks []model.ScoredTask, limit int) []model.ScoredTask {
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}
	return tasks
}

func recentEmails(emails []model.ScoredEmail, limit int) []model.ScoredEmail {
	if len(emails) > limit {
		emails = emails[:limit]
	}
	return emails
}

// estimateMinutes is the allocator's duration guess, so the brief and
// the schedule agree about the same task.
func estimateMinutes(t model.Task) int {
	return schedule.EstimateTaskMinutes(t)
}

const htmlStyle = `body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
h1 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
h2 { color: #2980b9; margin-top: 30px; }
.metric { display: inline-block; text-align: center; padding: 15px; background: #f8f9fa; border-radius: 5px; margin-right: 10px; }
.task { background: #e8f4f8; margin-bottom: 10px; padding: 10px; border-radius: 5px; }
.meeting { background: #fff4e6; margin-bottom: 10px; padding: 10px; border-radius: 5px; }
.decision { background: #ffe8e8; }
.reschedule { background: #ffecb3; margin-bottom: 10px; padding: 10px; border-radius: 5px; }
.email { background: #f0f4c3; margin-bottom: 10px; padding: 10px; border-radius: 5px; }
.hour-label { font-weight: bold; margin-top: 10px; }
.block { margin-left: 20px; }`

func (g Generator) html(date string, in Inputs) string {
	esc := html.EscapeString
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<style>\n")
	b.WriteString(htmlStyle)
	b.WriteString("\n</style>\n</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>Daily Schedule: %s</h1>\n", esc(date))

	m := in.Schedule.Metrics
	fmt.Fprintf(&b, "<div class='metric'><h3>Deep Work</h3><p>%d min</p></div>\n", m.DeepWorkMinutes)
	fmt.Fprintf(&b, "<div class='metric'><h3>Goal Progress</h3><p>%.0f%%</p></div>\n", m.NorthStarAlignment)
	fmt.Fprintf(&b, "<div class='metric'><h3>Balance</h3><p>%.0f%%</p></div>\n", m.BalanceScore)

	b.WriteString("<h2>Critical Tasks</h2>\n")
	for _, task := range topTasks(in.Tasks, topTaskLimit) {
		fmt.Fprintf(&b, "<div class='task'><h3>%s (%d min)</h3>", esc(task.Task.Title), estimateMinutes(task.Task))
		if task.Task.Notes != "" {
			fmt.Fprintf(&b, "<p>%s</p>", esc(task.Task.Notes))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("<h2>Meeting Intelligence</h2>\n")
	it := meetingIntel(in)
	for _, mi := range it.decisions {
		fmt.Fprintf(&b, "<div class='meeting decision'><p><strong>%s:</strong> %s</p></div>\n", mi.clock, esc(mi.title))
	}
	for _, mi := range it.prep {
		fmt.Fprintf(&b, "<div class='meeting'><p><strong>%s:</strong> %s</p><ul>", mi.clock, esc(mi.title))
		for _, note := range mi.notes {
			fmt.Fprintf(&b, "<li>%s</li>", esc(note))
		}
		b.WriteString("</ul></div>\n")
	}
	for _, rc := range in.Schedule.RescheduleCandidates {
		fmt.Fprintf(&b, "<div class='reschedule'><p><strong>%s:</strong> %s</p><ul>",
			rc.Start.UTC().Format(clockLayout), esc(rc.Title))
		for _, reason := range rc.Reasons {
			fmt.Fprintf(&b, "<li>%s</li>", esc(reason))
		}
		b.WriteString("</ul></div>\n")
	}

	if emails := recentEmails(in.Emails, recentEmailLimit); len(emails) > 0 {
		b.WriteString("<h2>Recent Context</h2>\n")
		for _, e := range emails {
			fmt.Fprintf(&b, "<div class='email'><p><strong>%s</strong><br>From: %s</p></div>\n",
				esc(e.Email.Subject), esc(e.Email.From))
		}
	}

	b.WriteString("<h2>Today's Schedule</h2>\n")
	byHour := make(map[int][]model.Block)
	for _, blk := range in.Schedule.Blocks {
		h := blk.Start.UTC().Hour()
		byHour[h] = append(byHour[h], blk)
	}
	for hour := visualStartHour; hour < visualEndHour; hour++ {
		fmt.Fprintf(&b, "<div class='hour-label'>%02d:00</div>\n", hour)
		for _, blk := range byHour[hour] {
			fmt.Fprintf(&b, "<div class='block'>%s - %s: %s %s</div>\n",
				blk.Start.UTC().Format(clockLayout), blk.End.UTC().Format(clockLayout),
				marker(blk), esc(blk.Title))
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
