package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/NUWildHacks/guide2026/internal/calendar"
)

// formatEventList formats events for the terminal, sorted by start time and
// grouped under day separators.
func formatEventList(events []calendar.Event, now time.Time) []string {
	sorted := make([]calendar.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var lines []string
	var lastDay string
	for i := range sorted {
		e := &sorted[i]
		day := getDayLabel(e.Start, now)
		if day != lastDay {
			if lastDay != "" {
				lines = append(lines, "")
			}
			lines = append(lines, fmt.Sprintf("━━━━ %s ━━━━", day))
			lastDay = day
		}
		lines = append(lines, formatEventLine(e))
		if e.Location != "" {
			lines = append(lines, fmt.Sprintf("         📍 %s", truncate(e.Location, 50)))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "No events")
	}
	return lines
}

// formatEventLine formats a single event for the list.
func formatEventLine(e *calendar.Event) string {
	timeStr := e.Start.Local().Format("15:04")
	if d := e.Duration(); d > 0 {
		return fmt.Sprintf("  %s  %s (%s)", timeStr, e.Title, formatDuration(d))
	}
	return fmt.Sprintf("  %s  %s", timeStr, e.Title)
}

// getDayLabel returns a human-readable day label.
func getDayLabel(t time.Time, now time.Time) string {
	localTime := t.Local()
	localNow := now.Local()

	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, time.Local)
	eventDay := time.Date(localTime.Year(), localTime.Month(), localTime.Day(), 0, 0, 0, 0, time.Local)

	switch {
	case eventDay.Equal(today):
		return "Today"
	case eventDay.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return localTime.Format("Mon, Jan 2")
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := d.Hours()
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}

// truncate truncates a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
