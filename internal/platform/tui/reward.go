package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vovakirdan/zukko-arcade/internal/buddy"
	"github.com/vovakirdan/zukko-arcade/internal/nav"
	"github.com/vovakirdan/zukko-arcade/internal/storage"
)

const recentResults = 8

// BuddyStatus is the state of the buddy panel's request.
type BuddyStatus int

const (
	BuddyIdle BuddyStatus = iota
	BuddyPending
	BuddyResolved
	BuddyFallback
)

// buddyReplyMsg carries a buddy reply back to the reward screen that asked.
type buddyReplyMsg struct {
	Session uuid.UUID
	Request int
	Reply   buddy.Reply
}

// requestCmd runs one buddy request off the event loop.
func requestCmd(ctx context.Context, svc *buddy.Service, session uuid.UUID, request int, kind buddy.Kind, score int) tea.Cmd {
	return func() tea.Msg {
		return buddyReplyMsg{
			Session: session,
			Request: request,
			Reply:   svc.Request(ctx, kind, score),
		}
	}
}

// RewardModel is the buddy screen shown after a game, or from the menu.
type RewardModel struct {
	ctx     context.Context
	session uuid.UUID
	svc     *buddy.Service

	score    int
	from     nav.Activity // the game just finished, or Home
	status   BuddyStatus
	text     string
	request  int
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	results []storage.Result
	table   table.Model
	keys    RewardKeyMap
	help    help.Model

	width, height int
	goHome        bool
}

// NewRewardModel creates the reward screen for one mount.
func NewRewardModel(ctx context.Context, session uuid.UUID, svc *buddy.Service, from nav.Activity, score int, results []storage.Result, width, height int) RewardModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("212"))),
	)

	m := RewardModel{
		ctx:     ctx,
		session: session,
		svc:     svc,
		score:   score,
		from:    from,
		spinner: sp,
		results: results,
		keys:    DefaultRewardKeyMap(),
		help:    help.New(),
	}
	if svc != nil {
		m.text = svc.Greeting()
	}
	return m.Resize(width, height)
}

// Init asks for praise right away when arriving from a finished game.
func (m RewardModel) Init() (RewardModel, tea.Cmd) {
	if m.from.IsGame() {
		return m.Ask(buddy.KindPraise)
	}
	return m, nil
}

// Ask starts a new buddy request. An earlier request still in flight is
// superseded; its reply will be dropped.
func (m RewardModel) Ask(kind buddy.Kind) (RewardModel, tea.Cmd) {
	if m.svc == nil {
		return m, nil
	}
	m.request++
	m.status = BuddyPending
	return m, tea.Batch(
		m.spinner.Tick,
		requestCmd(m.ctx, m.svc, m.session, m.request, kind, m.score),
	)
}

// Resolve applies a reply if it answers the latest request.
func (m RewardModel) Resolve(msg buddyReplyMsg) (RewardModel, bool) {
	if msg.Session != m.session || msg.Request != m.request || m.status != BuddyPending {
		return m, false
	}
	m.text = msg.Reply.Text
	m.status = BuddyResolved
	if msg.Reply.Fallback {
		m.status = BuddyFallback
	}
	return m, true
}

// Update handles keys and spinner ticks.
func (m RewardModel) Update(msg tea.Msg) (RewardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Riddle):
			return m.Ask(buddy.KindRiddle)
		case key.Matches(msg, m.keys.Praise):
			return m.Ask(buddy.KindPraise)
		case key.Matches(msg, m.keys.Fact):
			return m.Ask(buddy.KindFunFact)
		case key.Matches(msg, m.keys.Home):
			m.goHome = true
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case spinner.TickMsg:
		if m.status != BuddyPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// Resize rebuilds the width-dependent parts.
func (m RewardModel) Resize(width, height int) RewardModel {
	m.width, m.height = width, height
	m.help.Width = width

	wrap := max(min(width-8, 72), 20)
	if r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	); err == nil {
		m.renderer = r
	}

	m.table = m.createTable()
	return m
}

// createTable builds the recent results table.
func (m RewardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 10},
		{Title: "Time", Width: 8},
	}

	rows := make([]table.Row, 0, len(m.results))
	for _, r := range m.results {
		rows = append(rows, table.Row{
			r.Activity,
			fmt.Sprintf("%d", r.Score),
			r.Reason,
			r.CreatedAt.Format("15:04:05"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, recentResults+1)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// View renders the screen.
func (m RewardModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("🦉 WISE OWL"), m.width))
	b.WriteString("\n\n")

	if m.from.IsGame() {
		line := fmt.Sprintf("You scored %d points in %s!", m.score, m.from)
		b.WriteString(centerText(scoreStyle.Render(line), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(panelStyle.Render(m.buddyView()), m.width))
	b.WriteString("\n")

	if len(m.results) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(subtleStyle.Render("Recent results"), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(panelStyle.Render(m.table.View()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m RewardModel) buddyView() string {
	if m.status == BuddyPending {
		return m.spinner.View() + " Wise Owl is thinking..."
	}

	text := m.text
	if m.renderer != nil {
		if out, err := m.renderer.Render(text); err == nil {
			text = strings.Trim(out, "\n")
		}
	}
	if m.status == BuddyFallback {
		text = lipgloss.JoinVertical(lipgloss.Left, text, subtleStyle.Render("(offline reply)"))
	}
	return text
}

// Status returns the state of the buddy request.
func (m RewardModel) Status() BuddyStatus { return m.status }

// Text returns the current buddy text, unrendered.
func (m RewardModel) Text() string { return m.text }

// WantsHome reports whether the player asked to leave.
func (m RewardModel) WantsHome() bool { return m.goHome }
