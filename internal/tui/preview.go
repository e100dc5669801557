// Package tui is the interactive schedule preview: a table of the
// day's blocks with a metrics footer, and the rendered morning brief
// in a scrollable pane.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/briefd/internal/brief"
	"github.com/sandeepkv93/briefd/internal/model"
)

const clockLayout = "15:04"

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	metricsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type pane int

const (
	paneBlocks pane = iota
	paneBrief
)

// Model is the bubbletea model for the preview.
type Model struct {
	schedule  model.Schedule
	blocks    table.Model
	briefView viewport.Model
	active    pane
	quitting  bool
}

func New(s model.Schedule, briefMarkdown string) Model {
	cols := []table.Column{
		{Title: "Start", Width: 7},
		{Title: "End", Width: 7},
		{Title: "Kind", Width: 10},
		{Title: "Score", Width: 6},
		{Title: "Title", Width: 40},
	}
	blocks := table.New(
		table.WithColumns(cols),
		table.WithRows(blockRows(s.Blocks)),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	view := viewport.New(80, 16)
	view.SetContent(brief.RenderMarkdown(briefMarkdown))

	return Model{schedule: s, blocks: blocks, briefView: view}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.active == paneBlocks {
				m.active = paneBrief
			} else {
				m.active = paneBlocks
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.briefView.Width = msg.Width - 4
		m.briefView.Height = msg.Height - 10
		m.blocks.SetHeight(msg.Height - 10)
		return m, nil
	}

	var cmd tea.Cmd
	if m.active == paneBlocks {
		m.blocks, cmd = m.blocks.Update(msg)
	} else {
		m.briefView, cmd = m.briefView.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(fmt.Sprintf("Schedule for %s (%s)",
		m.schedule.Date.Format("Monday, January 2, 2006"), m.schedule.WorkLocation))

	var body string
	if m.active == paneBlocks {
		body = panelStyle.Render(m.blocks.View())
	} else {
		body = panelStyle.Render(m.briefView.View())
	}

	lines := []string{
		header,
		body,
		metricsStyle.Render(metricsLine(m.schedule.Metrics)),
	}
	if n := len(m.schedule.RescheduleCandidates); n > 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("%d meeting(s) suggested for rescheduling", n)))
	}
	lines = append(lines, footerStyle.Render("tab: switch pane • q: quit"))
	return strings.Join(lines, "\n")
}

func blockRows(blocks []model.Block) []table.Row {
	rows := make([]table.Row, 0, len(blocks))
	for _, b := range blocks {
		score := "-"
		if b.Priority != nil {
			score = fmt.Sprintf("%.0f", b.Priority.Score)
		}
		title := b.Title
		if b.HasConflict {
			title += " (conflict)"
		}
		rows = append(rows, table.Row{
			b.Start.UTC().Format(clockLayout),
			b.End.UTC().Format(clockLayout),
			string(b.Type),
			score,
			title,
		})
	}
	return rows
}

func metricsLine(m model.Metrics) string {
	return fmt.Sprintf("deep work %dm • meetings %dm • tasks %dm • protected %dm • goal %.0f%% • balance %.0f%%",
		m.DeepWorkMinutes, m.MeetingMinutes, m.TaskMinutes, m.ProtectedMinutes,
		m.NorthStarAlignment, m.BalanceScore)
}
