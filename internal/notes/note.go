package notes

import (
	"fmt"
	"strings"
	"time"
)

// ReminderLayout is the display form of a reminder: local civil time, no offset.
const ReminderLayout = "2006-01-02 15:04:05"

// Note represents a single text note with a reminder and a background color
type Note struct {
	ID       string    // Random UUID, only used to correlate log lines
	Text     string    // Free-form, embedded newlines preserved
	Reminder time.Time // Captured when the note was appended
	Color    Color     // Row background, fixed at append time
}

// FormatReminder renders t in the local zone using ReminderLayout.
func FormatReminder(t time.Time) string {
	return t.In(time.Local).Format(ReminderLayout)
}

// ParseReminder parses a ReminderLayout string as local time.
func ParseReminder(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ReminderLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder %q, use yyyy-MM-dd HH:mm:ss", s)
	}
	return t, nil
}

// FormattedReminder returns the note's reminder in display form.
func (n Note) FormattedReminder() string {
	return FormatReminder(n.Reminder)
}
