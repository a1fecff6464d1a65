// Package noteview keeps the rendered note list in lockstep with a notes.Store.
//
// View is the presenter: every gesture is translated into store operations
// and every mutation replaces the whole row slice. ListModel and
// ComposerModel are the bubbletea widgets the presenter's rows and inputs
// flow through.
package noteview

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"notesapp/internal/notes"
)

// Row is one rendered list entry
type Row struct {
	Label      string
	Background notes.Color
}

// RowLabel is the two-line display string of a note.
func RowLabel(n notes.Note) string {
	return "Note: " + n.Text + "\n" + "Reminder: " + n.FormattedReminder()
}

// Store is the note sequence the presenter drives. *notes.Store implements it.
type Store interface {
	Append(text string, reminder time.Time, color notes.Color) int
	EditText(index int, text string) error
	Delete(index int) error
	Select(index int) error
	Selected() int
	HasSelection() bool
	Len() int
	Get(index int) (notes.Note, error)
	All() []notes.Note
}

// View owns the store exclusively and holds the pending color.
type View struct {
	store   Store
	pending notes.Color
	rows    []Row
}

// New creates a presenter over store with the given initial pending color.
func New(store Store, pending notes.Color) *View {
	v := &View{store: store, pending: pending}
	v.render()
	return v
}

// Add appends a note with the pending color. Empty or blank text is a no-op.
// The caller clears the composition area when Add reports true.
func (v *View) Add(text string, reminder time.Time) (bool, error) {
	if strings.TrimSpace(text) == "" {
		log.Debug().Msg("add ignored: empty text")
		return false, nil
	}

	idx := v.store.Append(text, reminder, v.pending)
	n, err := v.store.Get(idx)
	if err != nil {
		return false, err
	}
	log.Info().
		Int("index", idx).
		Str("id", n.ID).
		Str("color", n.Color.Hex()).
		Str("reminder", n.FormattedReminder()).
		Msg("note appended")

	v.render()
	return true, nil
}

// Click selects row i.
func (v *View) Click(i int) error {
	if err := v.store.Select(i); err != nil {
		return err
	}
	log.Debug().Int("index", i).Msg("row selected")
	return nil
}

// BeginEdit returns the text to seed the edit dialog with. ok is false when
// nothing is selected, in which case no dialog should open.
func (v *View) BeginEdit() (seed string, ok bool, err error) {
	if !v.store.HasSelection() {
		log.Debug().Msg("edit ignored: no selection")
		return "", false, nil
	}
	n, err := v.store.Get(v.store.Selected())
	if err != nil {
		return "", false, err
	}
	return n.Text, true, nil
}

// FinishEdit applies the edit dialog's result to the selected note. A
// cancelled dialog or blank text leaves the note untouched.
func (v *View) FinishEdit(text string, ok bool) (bool, error) {
	if !ok || strings.TrimSpace(text) == "" {
		log.Debug().Bool("ok", ok).Msg("edit cancelled")
		return false, nil
	}
	if !v.store.HasSelection() {
		return false, nil
	}

	idx := v.store.Selected()
	if err := v.store.EditText(idx, text); err != nil {
		return false, err
	}
	log.Info().Int("index", idx).Msg("note edited")

	v.render()
	return true, nil
}

// Delete removes the selected note. Without a selection it is a no-op.
func (v *View) Delete() (bool, error) {
	if !v.store.HasSelection() {
		log.Debug().Msg("delete ignored: no selection")
		return false, nil
	}

	idx := v.store.Selected()
	n, err := v.store.Get(idx)
	if err != nil {
		return false, err
	}
	if err := v.store.Delete(idx); err != nil {
		return false, err
	}
	log.Info().Int("index", idx).Str("id", n.ID).Int("len", v.store.Len()).Msg("note deleted")

	v.render()
	return true, nil
}

// ChooseColor replaces the pending color when the chooser returned a valid
// color. Existing notes keep their colors.
func (v *View) ChooseColor(c notes.Color, valid bool) bool {
	if !valid {
		return false
	}
	v.pending = c
	log.Debug().Str("color", c.Hex()).Msg("pending color changed")
	return true
}

// Pending returns the color the next appended note will get.
func (v *View) Pending() notes.Color {
	return v.pending
}

// Selected returns the store's selection cursor.
func (v *View) Selected() int {
	return v.store.Selected()
}

// Len returns the number of notes.
func (v *View) Len() int {
	return v.store.Len()
}

// Rows returns the rows produced by the last re-render.
func (v *View) Rows() []Row {
	return v.rows
}

// render replaces every row with one derived from the current store contents.
func (v *View) render() {
	all := v.store.All()
	rows := make([]Row, len(all))
	for i, n := range all {
		rows[i] = Row{Label: RowLabel(n), Background: n.Color}
	}
	v.rows = rows
}

