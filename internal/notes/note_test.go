package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReminder(t *testing.T) {
	r := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.Local)
	assert.Equal(t, "2024-03-05 07:08:09", FormatReminder(r))
}

func TestParseReminder(t *testing.T) {
	r, err := ParseReminder(" 2024-12-31 23:59:58 ")
	require.NoError(t, err)
	assert.Equal(t, time.Local, r.Location())
	assert.Equal(t, "2024-12-31 23:59:58", FormatReminder(r))

	_, err = ParseReminder("2024-12-31")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#ff0000", Color{0xff, 0, 0}},
		{"00ff00", Color{0, 0xff, 0}},
		{"#00f", Color{0, 0, 0xff}},
		{" #FFFFFF ", White},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "red"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#0a0b0c", Color{0x0a, 0x0b, 0x0c}.Hex())
	assert.Equal(t, "#ffffff", White.String())
}

func TestColorContrast(t *testing.T) {
	assert.Equal(t, Black, White.Contrast())
	assert.Equal(t, Black, MustParseColor("#ffe066").Contrast())
	assert.Equal(t, White, Black.Contrast())
	assert.Equal(t, White, MustParseColor("#1c3faa").Contrast())
}
