package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zukko-arcade/internal/nav"
	"github.com/vovakirdan/zukko-arcade/internal/registry"
)

// HomeItem is one selectable activity on the home menu.
type HomeItem struct {
	Activity nav.Activity
	Title    string
	Blurb    string
}

// HomeModel is the activity picker.
type HomeModel struct {
	items  []HomeItem
	cursor int
	width  int
	height int
	keys   HomeKeyMap
	help   help.Model

	lastScore int
}

// homeResult is what a key press on the home menu asks the host to do.
type homeResult struct {
	selected bool
	target   nav.Activity
	quit     bool
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(44)

	activeCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("212"))
)

// NewHomeModel lists the registered games followed by the buddy.
func NewHomeModel(width, height, lastScore int) HomeModel {
	games := registry.List()
	items := make([]HomeItem, 0, len(games)+1)
	for _, g := range games {
		items = append(items, HomeItem{Activity: g.Activity, Title: g.Title, Blurb: g.Blurb})
	}
	items = append(items, HomeItem{
		Activity: nav.BuddyReward,
		Title:    "Wise Owl",
		Blurb:    "Ask your buddy for a riddle or a fun fact.",
	})

	h := help.New()
	h.Width = width

	return HomeModel{
		items:     items,
		width:     width,
		height:    height,
		keys:      DefaultHomeKeyMap(),
		help:      h,
		lastScore: lastScore,
	}
}

// Update handles one key press.
func (m HomeModel) Update(msg tea.KeyMsg) (HomeModel, homeResult) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, homeResult{quit: true}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			return m, homeResult{selected: true, target: m.items[m.cursor].Activity}
		}

	default:
		// Digits pick an item directly.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(m.items) {
				m.cursor = i
				return m, homeResult{selected: true, target: m.items[i].Activity}
			}
		}
	}

	return m, homeResult{}
}

// Resize updates the layout width.
func (m HomeModel) Resize(width, height int) HomeModel {
	m.width, m.height = width, height
	m.help.Width = width
	return m
}

// View renders the menu.
func (m HomeModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Z U K K O   A R C A D E"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Pick a game and have fun learning!"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		style := cardStyle
		title := fmt.Sprintf("%d. %s", i+1, item.Title)
		if i == m.cursor {
			style = activeCardStyle
			title = "▶ " + title
		}
		card := style.Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(title),
			subtleStyle.Render(item.Blurb),
		))
		b.WriteString(centerText(card, m.width))
		b.WriteString("\n")
	}

	if m.lastScore > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(scoreStyle.Render(fmt.Sprintf("Last score: %d ⭐", m.lastScore)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Cursor returns the highlighted item index.
func (m HomeModel) Cursor() int { return m.cursor }

// Items returns the menu entries.
func (m HomeModel) Items() []HomeItem { return m.items }
