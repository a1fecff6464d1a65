package shared

import "strings"

// FitHeight pads content with blank lines, or cuts it, to exactly height lines.
func FitHeight(content string, height int) string {
	if height <= 0 {
		return ""
	}
	content = strings.TrimRight(content, "\n")

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// CenterContent renders content vertically centered in the available height.
func CenterContent(content string, height int) string {
	content = strings.TrimRight(content, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	if len(contentLines) >= height {
		return content
	}

	topPad := (height - len(contentLines)) / 2
	lines := make([]string, topPad, height)
	lines = append(lines, contentLines...)
	return FitHeight(strings.Join(lines, "\n"), height)
}
