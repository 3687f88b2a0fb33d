// Package format renders values for display.
package format

import (
	"strings"
	"time"
)

// Date formats t in the long Australian style, e.g. "1 March 2025". The zero
// time formats as "".
func Date(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	switch strings.ToLower(lang) {
	case "en-us":
		return t.Format("January 2, 2006")
	default:
		return t.Format("2 January 2006")
	}
}

// Phone strips everything but digits and a leading plus, for tel: links.
func Phone(display string) string {
	var sb strings.Builder
	for i, r := range display {
		if r >= '0' && r <= '9' || r == '+' && i == 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
