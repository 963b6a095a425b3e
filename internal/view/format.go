package view

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Initials falls back to "AU" (anonymous user) when a name part is missing.
func Initials(firstname, lastname string) string {
	return firstInitial(firstname, "A") + firstInitial(lastname, "U")
}

func firstInitial(name, fallback string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return strings.ToUpper(string(r))
}

// RelativeTime renders a timestamp the way a feed shows it: recent entries
// as an age, older ones as a date.
func RelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
