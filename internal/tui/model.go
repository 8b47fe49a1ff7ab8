package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"shadowquest/internal/engine"
	"shadowquest/internal/ui"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
)

// expEvent is the transient +N/-N EXP flash shown after a resolution.
type expEvent struct {
	amount int
	gain   bool
}

// tierEvolution is the rank-change banner shown after a completion crosses a
// threshold.
type tierEvolution struct {
	from int
	to   int
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state    engine.PlayerState
	selected int
	showAll  bool
	showEval bool

	mode      inputMode
	draft     string
	draftDiff int

	expEvent  *expEvent
	evolution *tierEvolution

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state engine.PlayerState
	err   error
}

type completedMsg struct {
	res   engine.CompleteResult
	state engine.PlayerState
	err   error
}

type failedMsg struct {
	res   engine.FailResult
	state engine.PlayerState
	err   error
}

type changedMsg struct {
	log string
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:       ctx,
		svc:       svc,
		loading:   true,
		lastLog:   "Loaded.",
		draftDiff: indexOfDifficulty(engine.DefaultDifficulty),
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.State(m.ctx)
		return loadedMsg{state: st, err: err}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, st, err := m.svc.CompleteQuest(m.ctx, id)
		return completedMsg{res: res, state: st, err: err}
	}
}

func (m boardModel) failCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, st, err := m.svc.FailQuest(m.ctx, id)
		return failedMsg{res: res, state: st, err: err}
	}
}

func (m boardModel) addCmd(title string, d engine.Difficulty) tea.Cmd {
	return func() tea.Msg {
		q, err := m.svc.AddQuest(m.ctx, title, d)
		return changedMsg{log: fmt.Sprintf("Added %s %q (%s).", engine.ShortID(q.ID), q.Title, d), err: err}
	}
}

func (m boardModel) deleteCmd(q engine.Quest) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.DeleteQuest(m.ctx, q.ID)
		return changedMsg{log: fmt.Sprintf("Deleted %q.", q.Title), err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.clampSelection()
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.QuestID == "" {
			m.lastLog = "Already resolved."
			return m, m.loadCmd()
		}
		m.state = msg.state
		m.clampSelection()
		if msg.res.ExpGained > 0 {
			m.expEvent = &expEvent{amount: msg.res.ExpGained, gain: true}
		}
		if msg.res.TierChanged {
			m.evolution = &tierEvolution{from: msg.res.TierBefore, to: msg.res.TierAfter}
		}
		m.lastLog = fmt.Sprintf("Quest cleared. Streak %d.", msg.state.CurrentStreak)
		return m, nil
	case failedMsg:
		if msg.err != nil {
			m.lastLog = "Fail failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.QuestID == "" {
			m.lastLog = "Already resolved."
			return m, m.loadCmd()
		}
		m.state = msg.state
		m.clampSelection()
		if msg.res.ExpLost > 0 {
			m.expEvent = &expEvent{amount: msg.res.ExpLost}
		}
		if msg.res.StreakLost > 0 {
			m.lastLog = fmt.Sprintf("Quest failed. %d-day streak lost.", msg.res.StreakLost)
		} else {
			m.lastLog = "Quest failed."
		}
		return m, nil
	case changedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		m.lastLog = msg.log
		return m, m.loadCmd()
	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateAdd(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m boardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the transient overlays.
	if m.evolution != nil || m.expEvent != nil {
		m.evolution = nil
		m.expEvent = nil
		if msg.String() != "ctrl+c" {
			return m, nil
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.visibleQuests())-1 {
			m.selected++
		}
	case "tab":
		m.showAll = !m.showAll
		m.clampSelection()
	case "e":
		m.showEval = !m.showEval
	case "a":
		m.mode = modeAdd
		m.draft = ""
		m.lastLog = "New quest: type a title, tab cycles difficulty, enter saves, esc cancels."
	case "c", " ", "enter":
		q, ok := m.selectedQuest()
		if !ok {
			return m, nil
		}
		if q.IsTerminal() {
			m.lastLog = "Already resolved."
			return m, nil
		}
		return m, m.completeCmd(q.ID)
	case "f", "x":
		q, ok := m.selectedQuest()
		if !ok {
			return m, nil
		}
		if q.IsTerminal() {
			m.lastLog = "Already resolved."
			return m, nil
		}
		return m, m.failCmd(q.ID)
	case "d":
		q, ok := m.selectedQuest()
		if !ok {
			return m, nil
		}
		return m, m.deleteCmd(q)
	}
	return m, nil
}

func (m boardModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.lastLog = "Cancelled."
		return m, nil
	case tea.KeyEnter:
		m.mode = modeBrowse
		title := strings.TrimSpace(m.draft)
		if title == "" {
			m.lastLog = engine.ErrEmptyTitle.Error()
			return m, nil
		}
		return m, m.addCmd(title, engine.Difficulties[m.draftDiff])
	case tea.KeyTab:
		m.draftDiff = (m.draftDiff + 1) % len(engine.Difficulties)
	case tea.KeyBackspace:
		if r := []rune(m.draft); len(r) > 0 {
			m.draft = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.draft += " "
	case tea.KeyRunes:
		m.draft += string(msg.Runes)
	}
	return m, nil
}

// visibleQuests lists active quests in list order, followed by resolved ones
// when showAll is set.
func (m boardModel) visibleQuests() []engine.Quest {
	out := engine.ActiveQuests(m.state)
	if !m.showAll {
		return out
	}
	for _, q := range m.state.Quests {
		if q.IsTerminal() {
			out = append(out, q)
		}
	}
	return out
}

func (m boardModel) selectedQuest() (engine.Quest, bool) {
	qs := m.visibleQuests()
	if m.selected < 0 || m.selected >= len(qs) {
		return engine.Quest{}, false
	}
	return qs[m.selected], true
}

func (m *boardModel) clampSelection() {
	n := len(m.visibleQuests())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return "shadowquest — loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	if m.evolution != nil {
		b.WriteString(m.renderEvolution())
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderQuests())
	if m.showEval {
		b.WriteString("\n")
		b.WriteString(m.renderEvaluation())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	st := m.state
	progress := engine.TierProgress(st.TotalExp, st.TierIndex)
	line := fmt.Sprintf("%s  %s  EXP %d %s",
		ui.Title.Render("shadowquest"),
		ui.TierLabel(st.TierIndex),
		st.TotalExp,
		ui.ProgressBar(progress, 24),
	)
	if missing, ok := engine.ExpToNextTier(st.TotalExp); ok {
		line += ui.Muted.Render(fmt.Sprintf(" %d to next", missing))
	} else {
		line += ui.Gold.Render(" MAX")
	}
	streak := fmt.Sprintf("%s streak %d (best %d) ×%.2f",
		ui.IconFire, st.CurrentStreak, st.LongestStreak, engine.StreakMultiplier(st.CurrentStreak))
	if m.expEvent != nil {
		exp := m.expEvent.amount
		if !m.expEvent.gain {
			exp = -exp
		}
		streak += "   " + ui.SignedExp(exp)
	}
	return line + "\n" + streak
}

func (m boardModel) renderEvolution() string {
	from := engine.Tiers[m.evolution.from]
	body := fmt.Sprintf("%s\n%s → %s",
		ui.BadgeRankUp,
		ui.TierStyle(m.evolution.from).Render(from.Badge+" "+from.Name),
		ui.TierLabel(m.evolution.to),
	)
	return ui.Panel.Render(body)
}

func (m boardModel) renderQuests() string {
	title := "Active quests"
	if m.showAll {
		title = "All quests"
	}
	lines := []string{ui.H2.Render(title)}

	qs := m.visibleQuests()
	if len(qs) == 0 {
		lines = append(lines, ui.Muted.Render("(no quests — press a to add one)"))
	}
	for i, q := range qs {
		cursor := "  "
		row := fmt.Sprintf("%s %s %s %s", ui.StatusIcon(q.Status()), ui.Muted.Render(engine.ShortID(q.ID)), q.Title, ui.DifficultyText(q.Difficulty))
		if i == m.selected {
			cursor = "> "
			row = ui.SelectedRow.Render(fmt.Sprintf("%s %s %s", ui.StatusIcon(q.Status()), engine.ShortID(q.ID), q.Title)) + " " + ui.DifficultyText(q.Difficulty)
		}
		lines = append(lines, cursor+row)
	}

	if m.mode == modeAdd {
		lines = append(lines, "",
			fmt.Sprintf("%s %s▌ %s", ui.IconPlus, m.draft, ui.DifficultyText(engine.Difficulties[m.draftDiff])))
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderEvaluation() string {
	r := engine.GenerateEvaluation(m.state, m.svc.Now())
	body := strings.Join([]string{
		ui.H2.Render(ui.IconEye + " Daily evaluation " + r.Date),
		ui.LabelValue("Gained", ui.SignedExp(r.ExpGained)),
		ui.LabelValue("Lost", ui.SignedExp(-r.ExpLost)),
		ui.LabelValue("Weak zone", r.WeakZone),
		ui.LabelValue("Suggestion", r.Suggestion),
	}, "\n")
	return ui.Panel.Render(body)
}

func (m boardModel) renderFooter() string {
	keys := ui.Muted.Render("j/k move · c complete · f fail · a add · d delete · tab all · e evaluation · r refresh · q quit")
	return keys + "\n" + m.lastLog
}

func indexOfDifficulty(d engine.Difficulty) int {
	for i, v := range engine.Difficulties {
		if v == d {
			return i
		}
	}
	return 0
}
