// Package message prepares text for the face renderers: it normalizes raw
// input into lines separated by '\n' and hands it out one rune at a time.
package message

import (
	"strings"
	"unicode/utf8"
)

// Normalize turns raw input into renderable text.
//
// Tabs become spaces, trailing newlines are dropped, every line boundary
// ("\r\n", "\r", "\v", "\f", "\x1c"-"\x1e", U+0085, U+2028, U+2029) becomes
// '\n' and the remaining C0 controls and DEL are removed. The result never
// ends in '\n'. Normalize is idempotent.
func Normalize(raw string) string {
	raw = strings.ReplaceAll(raw, "\t", " ")
	raw = strings.TrimRight(raw, "\n")

	lines := splitLines(raw)
	for i, l := range lines {
		lines[i] = strings.Map(dropControl, l)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// Lines returns the number of lines in normalized text. Empty text still
// counts as one line.
func Lines(msg string) int {
	if msg == "" {
		return 1
	}
	return strings.Count(msg, "\n") + 1
}

// Chars returns the number of runes in msg, newlines included.
func Chars(msg string) int {
	return utf8.RuneCountInString(msg)
}

// Terminated returns the rune count of msg with every line, the last one
// included, ended by a newline. Empty text has no lines to end.
func Terminated(msg string) int {
	if msg == "" {
		return 0
	}
	return Chars(msg) + 1
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

func dropControl(r rune) rune {
	if r < 0x20 || r == 0x7f {
		return -1
	}
	return r
}
