package notes

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NoSelection is the selection cursor value when no note is selected.
const NoSelection = -1

var (
	// ErrOutOfRange means an index did not address a stored note.
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmptyText means an edit would leave a note without text.
	ErrEmptyText = errors.New("empty note text")
)

// Store is the ordered in-memory note collection plus a selection cursor.
// It is not safe for concurrent use; a single owner drives it.
type Store struct {
	notes    []Note
	selected int
}

// NewStore returns an empty store with no selection.
func NewStore() *Store {
	return &Store{selected: NoSelection}
}

// Append adds a note at the end and returns its index. The selection is untouched.
func (s *Store) Append(text string, reminder time.Time, color Color) int {
	s.notes = append(s.notes, Note{
		ID:       uuid.NewString(),
		Text:     text,
		Reminder: reminder,
		Color:    color,
	})
	return len(s.notes) - 1
}

// EditText replaces the text of the note at index. Reminder and color are kept.
func (s *Store) EditText(index int, text string) error {
	if err := s.checkIndex(index); err != nil {
		return fmt.Errorf("edit note: %w", err)
	}
	if text == "" {
		return fmt.Errorf("edit note %d: %w", index, ErrEmptyText)
	}
	s.notes[index].Text = text
	return nil
}

// Delete removes the note at index, shifting later notes down by one and
// moving the selection with them. Deleting the selected note clears the selection.
func (s *Store) Delete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	s.notes = append(s.notes[:index], s.notes[index+1:]...)

	switch {
	case s.selected == index:
		s.selected = NoSelection
	case s.selected > index:
		s.selected--
	}
	return nil
}

// Select moves the selection cursor. NoSelection clears it.
func (s *Store) Select(index int) error {
	if index != NoSelection {
		if err := s.checkIndex(index); err != nil {
			return fmt.Errorf("select note: %w", err)
		}
	}
	s.selected = index
	return nil
}

// Selected returns the selection cursor, or NoSelection.
func (s *Store) Selected() int {
	return s.selected
}

// HasSelection reports whether a note is selected.
func (s *Store) HasSelection() bool {
	return s.selected != NoSelection
}

// Len returns the number of stored notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// Get returns the note at index.
func (s *Store) Get(index int) (Note, error) {
	if err := s.checkIndex(index); err != nil {
		return Note{}, fmt.Errorf("get note: %w", err)
	}
	return s.notes[index], nil
}

// All returns a copy of the notes in order.
func (s *Store) All() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.notes) {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, index, len(s.notes))
	}
	return nil
}
