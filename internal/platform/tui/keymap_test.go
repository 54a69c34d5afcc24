package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/zukko-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.InputEvent
	}{
		{runes("a"), core.Press(core.ActionLeft)},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.Press(core.ActionLeft)},
		{runes("l"), core.Press(core.ActionRight)},
		{runes("w"), core.Press(core.ActionUp)},
		{tea.KeyMsg{Type: tea.KeyDown}, core.Press(core.ActionDown)},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.Press(core.ActionConfirm)},
		{runes("r"), core.Press(core.ActionRestart)},
		{runes("7"), core.Choice(7)},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			got, ok := km.MapKey(tt.msg)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := km.MapKey(runes("x"))
	assert.False(t, ok)
	_, ok = km.MapKey(runes("0"))
	assert.False(t, ok)
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	ev, ok := km.MapMouse(tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionMotion})
	assert.True(t, ok)
	assert.Equal(t, core.Pointer(4, 9), ev)

	ev, ok = km.MapMouse(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, ok)
	assert.Equal(t, core.InputClick, ev.Kind)
	assert.Equal(t, 2, ev.X)
	assert.Equal(t, 3, ev.Y)

	_, ok = km.MapMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, ok)
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawTextColor(0, 0, "hi", core.ColorGreen)

	out := RenderScreen(s)
	assert.Contains(t, out, "hi")
}
