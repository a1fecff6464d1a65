package noteview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapp/internal/notes"
	"notesapp/internal/tui/messages"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			Label:      "Note: n" + string(rune('0'+i)) + "\nReminder: 2024-01-01 00:00:00",
			Background: notes.White,
		}
	}
	return rows
}

func focusedList(rows []Row) ListModel {
	l := NewListModel()
	l.SetSize(40, 20)
	l.SetRows(rows, notes.NoSelection)
	l.Focus()
	return l
}

func TestList_CursorMovement(t *testing.T) {
	l := focusedList(sampleRows(3))

	l, _ = l.Update(keyRunes("j"))
	l, _ = l.Update(keyRunes("j"))
	l, _ = l.Update(keyRunes("j"))
	assert.Equal(t, 2, l.Cursor())

	l, _ = l.Update(keyRunes("k"))
	assert.Equal(t, 1, l.Cursor())

	l, _ = l.Update(keyRunes("G"))
	assert.Equal(t, 2, l.Cursor())
	l, _ = l.Update(keyRunes("g"))
	assert.Equal(t, 0, l.Cursor())
}

func TestList_EnterClicksRow(t *testing.T) {
	l := focusedList(sampleRows(3))
	l, _ = l.Update(keyRunes("j"))
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.RowClickMsg{Index: 1}, cmd())
}

func TestList_EnterOnEmptyListDoesNothing(t *testing.T) {
	l := focusedList(nil)
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, l.View(), "No notes yet")
}

func TestList_ButtonKeys(t *testing.T) {
	tests := map[string]messages.Gesture{
		"e": messages.GestureEdit,
		"d": messages.GestureDelete,
		"x": messages.GestureDelete,
		"c": messages.GestureChooseColor,
	}
	for k, want := range tests {
		l := focusedList(sampleRows(1))
		_, cmd := l.Update(keyRunes(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, messages.ButtonMsg{Gesture: want}, cmd(), k)
	}
}

func TestList_IgnoresKeysWhenBlurred(t *testing.T) {
	l := focusedList(sampleRows(2))
	l.Blur()
	l, cmd := l.Update(keyRunes("j"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, l.Cursor())
}

func TestList_SetRowsClampsCursor(t *testing.T) {
	l := focusedList(sampleRows(3))
	l, _ = l.Update(keyRunes("G"))
	l.SetRows(sampleRows(1), notes.NoSelection)
	assert.Equal(t, 0, l.Cursor())

	l.SetRows(nil, notes.NoSelection)
	assert.Equal(t, 0, l.Cursor())
}

func TestList_ViewRendersEveryLabel(t *testing.T) {
	l := focusedList(sampleRows(3))
	l.SetRows(sampleRows(3), 1)
	view := l.View()

	for _, row := range sampleRows(3) {
		for _, line := range strings.Split(row.Label, "\n") {
			assert.Contains(t, view, line)
		}
	}
	assert.Contains(t, view, "*")
	assert.Contains(t, view, ">")
	assert.Equal(t, 20, len(strings.Split(view, "\n")))
}

func TestList_ScrollsToKeepCursorVisible(t *testing.T) {
	l := NewListModel()
	l.SetSize(40, 5)
	l.SetRows(sampleRows(6), notes.NoSelection)
	l.Focus()

	for i := 0; i < 5; i++ {
		l, _ = l.Update(keyRunes("j"))
	}
	view := l.View()
	assert.Contains(t, view, "Note: n5")
	assert.NotContains(t, view, "Note: n0")

	l, _ = l.Update(keyRunes("g"))
	assert.Contains(t, l.View(), "Note: n0")
}
