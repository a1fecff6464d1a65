package notes

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = Color{0xff, 0x00, 0x00}
	green = Color{0x00, 0xff, 0x00}
	blue  = Color{0x00, 0x00, 0xff}
)

func mustReminder(t *testing.T, s string) time.Time {
	t.Helper()
	r, err := ParseReminder(s)
	require.NoError(t, err)
	return r
}

func checkSelection(t *testing.T, s *Store) {
	t.Helper()
	sel := s.Selected()
	if sel != NoSelection && (sel < 0 || sel >= s.Len()) {
		t.Fatalf("selection %d out of range for len %d", sel, s.Len())
	}
}

func TestStore_AppendTwoDeleteFirst(t *testing.T) {
	s := NewStore()
	s.Append("a", mustReminder(t, "2024-01-01 00:00:00"), red)
	s.Append("b", mustReminder(t, "2024-01-02 00:00:00"), blue)
	require.NoError(t, s.Select(0))
	require.NoError(t, s.Delete(0))

	assert.Equal(t, 1, s.Len())
	n, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "b", n.Text)
	assert.Equal(t, blue, n.Color)
	assert.Equal(t, NoSelection, s.Selected())
}

func TestStore_EditPreservesReminderAndColor(t *testing.T) {
	s := NewStore()
	s.Append("hello", mustReminder(t, "2024-06-01 12:00:00"), green)
	require.NoError(t, s.Select(0))
	require.NoError(t, s.EditText(0, "world"))

	n, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "world", n.Text)
	assert.Equal(t, "2024-06-01 12:00:00", n.FormattedReminder())
	assert.Equal(t, green, n.Color)
}

func TestStore_SelectionAdjustsAcrossEarlierDelete(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.Append("first", now, red)
	s.Append("second", now, green)
	third := s.Append("third", now, blue)
	original, err := s.Get(third)
	require.NoError(t, err)

	require.NoError(t, s.Select(2))
	require.NoError(t, s.Delete(0))

	assert.Equal(t, 1, s.Selected())
	n, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, original, n)
}

func TestStore_DeleteSelectionRules(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		deleted  int
		want     int
	}{
		{"selected equals deleted", 1, 1, NoSelection},
		{"selected after deleted", 2, 0, 1},
		{"selected before deleted", 0, 2, 0},
		{"no selection", NoSelection, 1, NoSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			for _, text := range []string{"a", "b", "c"} {
				s.Append(text, time.Now(), red)
			}
			require.NoError(t, s.Select(tt.selected))
			require.NoError(t, s.Delete(tt.deleted))
			assert.Equal(t, tt.want, s.Selected())
		})
	}
}

func TestStore_DeleteShiftsLaterNotes(t *testing.T) {
	for i := 0; i < 5; i++ {
		s := NewStore()
		for j := 0; j < 5; j++ {
			s.Append(string(rune('a'+j)), time.Now(), red)
		}
		before := s.All()
		require.NoError(t, s.Delete(i))

		assert.Equal(t, len(before)-1, s.Len())
		for j := i + 1; j < len(before); j++ {
			n, err := s.Get(j - 1)
			require.NoError(t, err)
			assert.Equal(t, before[j], n, "note formerly at %d", j)
		}
	}
}

func TestStore_AppendDoesNotTouchSelection(t *testing.T) {
	s := NewStore()
	s.Append("a", time.Now(), red)
	require.NoError(t, s.Select(0))

	idx := s.Append("b", time.Now(), blue)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 0, s.Selected())

	last, err := s.Get(s.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, "b", last.Text)
}

func TestStore_DuplicatesPermitted(t *testing.T) {
	s := NewStore()
	r := time.Now()
	s.Append("same", r, red)
	s.Append("same", r, red)
	assert.Equal(t, 2, s.Len())

	a, _ := s.Get(0)
	b, _ := s.Get(1)
	assert.Equal(t, a.Text, b.Text)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStore_OutOfRange(t *testing.T) {
	s := NewStore()
	s.Append("only", time.Now(), red)

	assert.ErrorIs(t, s.EditText(1, "x"), ErrOutOfRange)
	assert.ErrorIs(t, s.EditText(-1, "x"), ErrOutOfRange)
	assert.ErrorIs(t, s.Delete(1), ErrOutOfRange)
	assert.ErrorIs(t, s.Delete(-1), ErrOutOfRange)
	assert.ErrorIs(t, s.Select(1), ErrOutOfRange)
	assert.ErrorIs(t, s.Select(-2), ErrOutOfRange)
	_, err := s.Get(3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.NoError(t, s.Select(NoSelection))
	assert.Equal(t, 1, s.Len())
}

func TestStore_EditRejectsEmptyText(t *testing.T) {
	s := NewStore()
	s.Append("keep", time.Now(), red)
	assert.ErrorIs(t, s.EditText(0, ""), ErrEmptyText)

	n, _ := s.Get(0)
	assert.Equal(t, "keep", n.Text)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append("a", time.Now(), red)
	all := s.All()
	all[0].Text = "mutated"

	n, _ := s.Get(0)
	assert.Equal(t, "a", n.Text)
}

// Random operation sequences must never break the selection invariant or
// the per-operation guarantees.
func TestStore_RandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	palette := []Color{red, green, blue}

	for round := 0; round < 200; round++ {
		s := NewStore()
		for step := 0; step < 50; step++ {
			switch op := rng.Intn(4); {
			case op == 0 || s.Len() == 0:
				text := string(rune('a' + rng.Intn(26)))
				s.Append(text, time.Now(), palette[rng.Intn(len(palette))])
				last, err := s.Get(s.Len() - 1)
				require.NoError(t, err)
				require.Equal(t, text, last.Text)
			case op == 1:
				i := rng.Intn(s.Len())
				before, _ := s.Get(i)
				require.NoError(t, s.EditText(i, "edited"))
				after, _ := s.Get(i)
				require.Equal(t, before.Reminder, after.Reminder)
				require.Equal(t, before.Color, after.Color)
			case op == 2:
				i := rng.Intn(s.Len())
				n := s.Len()
				sel := s.Selected()
				require.NoError(t, s.Delete(i))
				require.Equal(t, n-1, s.Len())
				switch {
				case sel == NoSelection || sel == i:
					require.Equal(t, NoSelection, s.Selected())
				case sel > i:
					require.Equal(t, sel-1, s.Selected())
				default:
					require.Equal(t, sel, s.Selected())
				}
			default:
				require.NoError(t, s.Select(rng.Intn(s.Len()+1)-1))
			}
			checkSelection(t, s)
		}
	}
}
