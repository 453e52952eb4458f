package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"mindquest/internal/engine"
	"mindquest/internal/storage"
	"mindquest/internal/ui"
)

// boardMode tracks which input surface has focus.
type boardMode int

const (
	modeBrowse boardMode = iota
	modeReport
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile *storage.Profile
	quests  []storage.Quest
	focus   storage.FocusProgress

	selected int
	mode     boardMode
	report   textarea.Model
	reportID string

	spin    spinner.Model
	busy    bool
	lastLog string
	notice  string
	err     error
}

type loadedMsg struct {
	profile *storage.Profile
	quests  []storage.Quest
	focus   storage.FocusProgress
	err     error
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
	err error
}

type submittedMsg struct {
	id  string
	res *engine.SubmitResult
	err error
}

type refreshedMsg struct {
	quests []storage.Quest
	err    error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	ta := textarea.New()
	ta.Placeholder = "What did you do? Be specific!"
	ta.SetHeight(4)
	ta.CharLimit = 1000

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return boardModel{
		ctx:     ctx,
		svc:     svc,
		report:  ta,
		spin:    sp,
		busy:    true,
		lastLog: "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spin.Tick)
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		quests, err := m.svc.QuestRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		focus, err := m.svc.QuestRepo().FocusProgress(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, quests: quests, focus: focus}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) submitCmd(id, report string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.SubmitReport(m.ctx, id, report)
		return submittedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		quests, err := m.svc.RefreshQuests(m.ctx)
		return refreshedMsg{quests: quests, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.report.SetWidth(min(msg.Width-4, 72))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		m.busy = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.quests = msg.quests
		m.focus = msg.focus
		m.lastLog = "Ready."
		m.clampSelection()
		return m, nil

	case completedMsg:
		m.busy = false
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("%s +%d XP", ui.IconDone, msg.res.XPAwarded)
		m.notice = awardNotice(msg.res)
		return m, m.loadCmd()

	case submittedMsg:
		m.busy = false
		if msg.err != nil {
			m.lastLog = "Evaluation failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		if msg.res.Stale {
			m.lastLog = "That quest was already finished elsewhere."
			return m, m.loadCmd()
		}
		if msg.res.Completed {
			m.lastLog = fmt.Sprintf("%s +%d XP", ui.IconDone, msg.res.XPAwarded)
		} else {
			m.lastLog = "Not quite yet. Check the feedback and try again!"
		}
		m.notice = msg.res.Feedback
		if msg.res.Award != nil {
			if n := awardNotice(msg.res.Award); n != "" {
				m.notice = msg.res.Feedback + "\n" + n
			}
		}
		return m, m.loadCmd()

	case refreshedMsg:
		m.busy = false
		if msg.err != nil {
			m.lastLog = "Refresh failed: " + msg.err.Error()
			return m, nil
		}
		if msg.quests == nil {
			m.lastLog = "No new quests this time."
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("%s %d new quests!", ui.IconSparkle, len(msg.quests))
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.mode == modeReport {
			return m.updateReport(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m boardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.busy = true
		m.lastLog = "Loading…"
		return m, tea.Batch(m.loadCmd(), m.spin.Tick)
	case "g":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.lastLog = "Summoning new quests…"
		return m, tea.Batch(m.refreshCmd(), m.spin.Tick)
	case "x":
		m.notice = ""
		return m, nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.quests)-1 {
			m.selected++
		}
		return m, nil
	case "c", " ", "enter":
		q := m.selectedQuest()
		if q == nil || m.busy {
			return m, nil
		}
		if q.IsCompleted {
			m.lastLog = "Already completed."
			return m, nil
		}
		if q.IsEvaluating {
			m.lastLog = "Evaluation already in progress."
			return m, nil
		}
		if q.RequiresInput {
			m.mode = modeReport
			m.reportID = q.ID
			m.report.Reset()
			m.lastLog = "Write your report, then press ctrl+s to submit."
			return m, m.report.Focus()
		}
		m.busy = true
		m.lastLog = "Completing…"
		return m, tea.Batch(m.completeCmd(q.ID), m.spin.Tick)
	}
	return m, nil
}

func (m boardModel) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.report.Blur()
		m.lastLog = "Report cancelled."
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.report.Value())
		if text == "" {
			m.lastLog = "Write something first!"
			return m, nil
		}
		m.mode = modeBrowse
		m.report.Blur()
		m.busy = true
		m.lastLog = "Evaluating your report…"
		return m, tea.Batch(m.submitCmd(m.reportID, text), m.spin.Tick)
	}
	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}

func (m *boardModel) selectedQuest() *storage.Quest {
	if m.selected < 0 || m.selected >= len(m.quests) {
		return nil
	}
	return &m.quests[m.selected]
}

func (m *boardModel) clampSelection() {
	if m.selected >= len(m.quests) {
		m.selected = len(m.quests) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func awardNotice(res *engine.CompleteResult) string {
	var parts []string
	if res.LevelUp {
		parts = append(parts, fmt.Sprintf("%s %s Level %d!", ui.IconBolt, ui.BadgeLevelUp, res.LevelAfter))
	}
	if res.Notify != nil {
		parts = append(parts, fmt.Sprintf("%s Badge earned: %s %s", ui.IconTrophy, res.Notify.Icon, res.Notify.Name))
	}
	return strings.Join(parts, "\n")
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderQuests())
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(ui.Gold.Render(m.notice))
	}
	if m.mode == modeReport {
		b.WriteString("\n\n")
		b.WriteString(ui.H2.Render("Quest Report"))
		b.WriteString("\n")
		b.WriteString(m.report.View())
		b.WriteString("\n")
		b.WriteString(ui.Muted.Render("ctrl+s: submit  esc: cancel"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	if m.profile == nil {
		return ui.Heading(ui.IconQuest, "MindQuest") + "  loading…"
	}
	bar := ui.XPBar(m.profile.XP, m.profile.XPToNextLevel, 24)
	line1 := fmt.Sprintf("%s  %s  %s",
		ui.Heading(ui.IconQuest, "MindQuest"),
		ui.Key.Render(m.profile.Name),
		ui.Gold.Render(fmt.Sprintf("Level %d", m.profile.Level)),
	)
	line2 := fmt.Sprintf("XP %s   %s %d badges   Focus %d/%d",
		bar, ui.IconTrophy, len(m.profile.Badges), m.focus.Done, m.focus.Total)
	return line1 + "\n" + line2
}

func (m boardModel) renderQuests() string {
	if m.busy && len(m.quests) == 0 {
		return m.spin.View() + " Loading…"
	}
	if len(m.quests) == 0 {
		return ui.Muted.Render("(no quests yet; press g to generate some)")
	}
	var out []string
	out = append(out, ui.H2.Render("Quest Log"))
	for i, q := range m.quests {
		cursor := "  "
		if i == m.selected {
			cursor = ui.Gold.Render("> ")
		}
		title := q.Title
		if q.IsCompleted {
			title = ui.Muted.Render(title)
		}
		tag := ""
		if q.RequiresInput && !q.IsCompleted {
			tag = ui.Muted.Render(" [report]")
		}
		out = append(out, fmt.Sprintf("%s%s %s %s%s",
			cursor, ui.QuestIcon(q.IsCompleted, q.IsEvaluating), title,
			ui.Dim.Render(fmt.Sprintf("(%d XP)", q.XP)), tag))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	status := m.lastLog
	if m.busy {
		status = m.spin.View() + " " + status
	}
	keys := ui.Muted.Render("j/k: move  c: complete/submit  g: new quests  x: dismiss  r: reload  q: quit")
	return status + "\n" + keys
}
