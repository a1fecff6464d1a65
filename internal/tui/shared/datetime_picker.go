package shared

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"notesapp/internal/notes"
)

type dateTimeMode int

const (
	segmentMode dateTimeMode = iota
	textEntryMode
)

type dateTimeSegment int

const (
	segYear dateTimeSegment = iota
	segMonth
	segDay
	segHour
	segMinute
	segSecond
	segCount
)

// DateTimePickerModel edits a local date and time one segment at a time,
// or by typing it in. It starts at the clock's current time.
type DateTimePickerModel struct {
	mode      dateTimeMode
	value     time.Time
	segment   dateTimeSegment
	textInput textinput.Model
	focused   bool
	err       string
	now       func() time.Time
}

// NewDateTimePicker creates a picker initialized to now().
func NewDateTimePicker(now func() time.Time) DateTimePickerModel {
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "2026-03-15 09:30:00, +5, tomorrow"
	ti.CharLimit = 19
	ti.Width = 30

	return DateTimePickerModel{
		mode:      segmentMode,
		value:     now().Truncate(time.Second),
		segment:   segDay,
		textInput: ti,
		now:       now,
	}
}

// Value returns the picked time.
func (m DateTimePickerModel) Value() time.Time {
	return m.value
}

// Formatted returns the picked time in reminder form.
func (m DateTimePickerModel) Formatted() string {
	return notes.FormatReminder(m.value)
}

// InTextEntry reports whether the picker is capturing typed text.
func (m DateTimePickerModel) InTextEntry() bool {
	return m.mode == textEntryMode
}

func (m *DateTimePickerModel) Focus() {
	m.focused = true
}

func (m *DateTimePickerModel) Blur() {
	m.focused = false
	m.mode = segmentMode
	m.textInput.Blur()
	m.err = ""
}

func (m DateTimePickerModel) Update(msg tea.KeyMsg) (DateTimePickerModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.mode == textEntryMode {
		return m.updateTextEntry(msg)
	}
	return m.updateSegments(msg)
}

func (m DateTimePickerModel) updateSegments(msg tea.KeyMsg) (DateTimePickerModel, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.segment > segYear {
			m.segment--
		}
	case "l", "right":
		if m.segment < segCount-1 {
			m.segment++
		}
	case "k", "up", "+", "=":
		m.value = m.step(1)
	case "j", "down", "-":
		m.value = m.step(-1)
	case "n":
		m.value = m.now().Truncate(time.Second)
	case "i":
		m.mode = textEntryMode
		m.err = ""
		m.textInput.SetValue(m.Formatted())
		m.textInput.CursorEnd()
		return m, m.textInput.Focus()
	}
	return m, nil
}

func (m DateTimePickerModel) step(delta int) time.Time {
	switch m.segment {
	case segYear:
		return m.value.AddDate(delta, 0, 0)
	case segMonth:
		return m.value.AddDate(0, delta, 0)
	case segDay:
		return m.value.AddDate(0, 0, delta)
	case segHour:
		return m.value.Add(time.Duration(delta) * time.Hour)
	case segMinute:
		return m.value.Add(time.Duration(delta) * time.Minute)
	case segSecond:
		return m.value.Add(time.Duration(delta) * time.Second)
	}
	return m.value
}

func (m DateTimePickerModel) updateTextEntry(msg tea.KeyMsg) (DateTimePickerModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = segmentMode
		m.err = ""
		m.textInput.Blur()
		return m, nil
	case "enter":
		parsed, err := m.parseTextInput(m.textInput.Value())
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.value = parsed
		m.mode = segmentMode
		m.err = ""
		m.textInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.err = ""
	return m, cmd
}

func (m DateTimePickerModel) parseTextInput(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	now := m.now().Truncate(time.Second)

	// Relative days keep the current time of day
	if strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-") {
		days, err := strconv.Atoi(input[1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day offset %q", input)
		}
		if input[0] == '-' {
			days = -days
		}
		return now.AddDate(0, 0, days), nil
	}

	switch strings.ToLower(input) {
	case "now", "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}

	for _, layout := range []string{notes.ReminderLayout, "2006-01-02 15:04", "2006-01-02"} {
		if parsed, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date format, use yyyy-MM-dd HH:mm:ss")
}

func (m DateTimePickerModel) View() string {
	if m.mode == textEntryMode {
		return m.viewTextEntry()
	}
	return m.viewSegments()
}

func (m DateTimePickerModel) viewSegments() string {
	parts := []string{
		fmt.Sprintf("%04d", m.value.Year()),
		fmt.Sprintf("%02d", int(m.value.Month())),
		fmt.Sprintf("%02d", m.value.Day()),
		fmt.Sprintf("%02d", m.value.Hour()),
		fmt.Sprintf("%02d", m.value.Minute()),
		fmt.Sprintf("%02d", m.value.Second()),
	}
	seps := []string{"-", "-", " ", ":", ":", ""}

	var s strings.Builder
	for i, part := range parts {
		if m.focused && dateTimeSegment(i) == m.segment {
			s.WriteString(pickerCursorStyle.Render(part))
		} else {
			s.WriteString(pickerSegmentStyle.Render(part))
		}
		s.WriteString(seps[i])
	}

	if m.focused {
		s.WriteString("\n")
		s.WriteString(dialogHelpStyle.Render("h/l: field • j/k: -/+ • n: now • i: type"))
	}
	return s.String()
}

func (m DateTimePickerModel) viewTextEntry() string {
	var s strings.Builder
	s.WriteString(m.textInput.View())
	s.WriteString("\n")
	if m.err != "" {
		s.WriteString(dialogErrorStyle.Render("Error: " + m.err))
		s.WriteString("\n")
	}
	s.WriteString(pickerExamplesStyle.Render("Examples: 2026-03-15 09:30:00, 2026-03-15, +5, tomorrow"))
	s.WriteString("\n")
	s.WriteString(dialogHelpStyle.Render("enter: set • esc: back"))
	return s.String()
}
