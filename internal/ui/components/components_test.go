package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdiazbas/norwegian-quiz/internal/session"
)

type pickedMsg string

func testMenu() Menu {
	pick := func(s string) func() tea.Cmd {
		return func() tea.Cmd { return func() tea.Msg { return pickedMsg(s) } }
	}
	return NewMenu([]MenuItem{
		{Label: "Nueva pregunta", Action: pick("new")},
		{Label: "Continuar", Action: pick("continue"), Disabled: true},
		{Label: "Salir", Action: pick("quit")},
	})
}

func TestMenu_SkipsDisabledItems(t *testing.T) {
	m := testMenu()

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 0, m.Selected)
}

func TestMenu_FirstEnabledSelected(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}, {Label: "b"}})
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg("quit"), cmd())
}

func TestMenu_SetLabelAndView(t *testing.T) {
	m := testMenu()
	m.SetLabel(2, "Adiós")
	m.SetLabel(9, "ignored")

	view := m.View()
	assert.Contains(t, view, "▸ Nueva pregunta")
	assert.Contains(t, view, "Adiós")
	assert.Equal(t, 3, strings.Count(view, "\n"))
}

func testOptions() []session.DisplayOption {
	return []session.DisplayOption{
		{Text: "to sleep"},
		{Text: "to go", IsCorrect: true},
		{Text: "to eat"},
	}
}

func TestMultiChoice_CursorBounds(t *testing.T) {
	mc := NewMultiChoice(testOptions())

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, mc.Cursor)

	for i := 0; i < 5; i++ {
		mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 2, mc.Cursor)
	assert.Equal(t, "to eat", mc.Current())
}

func TestMultiChoice_DirectKeys(t *testing.T) {
	mc := NewMultiChoice(testOptions())

	mc, _ = mc.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Equal(t, "to go", mc.Current())

	mc, _ = mc.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	assert.Equal(t, "to eat", mc.Current())

	mc, _ = mc.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	assert.Equal(t, "to eat", mc.Current(), "out-of-range key is ignored")
}

func TestMultiChoice_RevealFreezesAndMarks(t *testing.T) {
	mc := NewMultiChoice(testOptions())
	mc.Reveal("to sleep")

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, mc.Cursor)

	view := mc.View()
	assert.Contains(t, view, "B)  to go  ✓")
	assert.Contains(t, view, "A)  to sleep  ✗")
	assert.NotContains(t, view, "to eat  ✗")
}

func TestMultiChoice_EmptyCurrent(t *testing.T) {
	assert.Equal(t, "", NewMultiChoice(nil).Current())
}

func TestProgressBar_ShowsPercent(t *testing.T) {
	bar := NewProgressBar("Precisión", 66.666, true, 40)
	view := bar.View()
	assert.Contains(t, view, "Precisión")
	assert.Contains(t, view, "66.7%")
}

func TestButton_View(t *testing.T) {
	assert.Contains(t, NewButton("Evaluar", "Enter", true).View(), "Evaluar [Enter]")
	assert.Contains(t, NewButton("Nueva pregunta", "", false).View(), "Nueva pregunta")
}
