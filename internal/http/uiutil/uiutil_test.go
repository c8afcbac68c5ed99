package uiutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"seconds", now.Add(-20 * time.Second), "just now"},
		{"one minute", now.Add(-time.Minute), "1 minute ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days", now.Add(-49 * time.Hour), "2 days ago"},
		{"future", now.Add(26 * time.Hour), "in 1 day"},
		{"old", time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC), "Dec 24, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyRelativeTime(tt.at, now))
		})
	}
}

func TestFormatFriendlyDate(t *testing.T) {
	assert.Empty(t, FormatFriendlyDate(time.Time{}))
	assert.Equal(t, "Apr 30, 2026", FormatFriendlyDate(time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, FormatFriendlyDateTime(time.Time{}))
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "Backend…", TruncateWithEllipsis("Backend Engineer", 8))
	assert.Equal(t, "…", TruncateWithEllipsis("abc", 1))
}
