// Package uiutil formats dates and text for templates.
package uiutil

import (
	"strconv"
	"strings"
	"time"
)

// Display layouts.
const (
	FriendlyDateTimeLayout = "Jan 2, 2006 3:04 PM"
	FriendlyDateLayout     = "Jan 2, 2006"
)

// FriendlyRelativeTime describes t relative to now ("3 hours ago", "in 2 days").
// Anything more than a week away is shown as a date.
func FriendlyRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	future := diff < 0
	if future {
		diff = -diff
	}

	var unit string
	var n int
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		n, unit = int(diff.Minutes()), "minute"
	case diff < 24*time.Hour:
		n, unit = int(diff.Hours()), "hour"
	case diff < 7*24*time.Hour:
		n, unit = int(diff.Hours()/24), "day"
	default:
		return FormatFriendlyDate(t)
	}

	phrase := strconv.Itoa(n) + " " + unit
	if n != 1 {
		phrase += "s"
	}
	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

// FormatFriendlyDateTime returns a consistent, user-friendly local timestamp representation.
func FormatFriendlyDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(FriendlyDateTimeLayout)
}

// FormatFriendlyDate formats the calendar date of t without converting zones.
func FormatFriendlyDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(FriendlyDateLayout)
}

// TruncateWithEllipsis shortens text to the provided rune limit and appends an ellipsis when truncated.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
