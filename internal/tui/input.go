package tui

import "unicode/utf8"

// maxInputLen caps review text input; the API rejects longer reviews.
const maxInputLen = 400

// editRune processes a keystroke for inline text editing.
// Handles backspace (rune-aware) and single printable characters, and
// returns the text unchanged for non-printable keys (enter, esc, etc.).
func editRune(text, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	case " ", "space":
		if utf8.RuneCountInString(text) >= maxInputLen {
			return text
		}
		return text + " "
	default:
		if utf8.RuneCountInString(key) == 1 {
			if utf8.RuneCountInString(text) >= maxInputLen {
				return text
			}
			return text + key
		}
		return text
	}
}

// truncStr shortens a string to max runes, adding an ellipsis.
func truncStr(s string, max int) string {
	if max <= 1 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
