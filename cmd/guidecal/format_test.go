package main

import (
	"strings"
	"testing"
	"time"

	"github.com/NUWildHacks/guide2026/internal/calendar"
)

func TestGetDayLabel(t *testing.T) {
	now := time.Date(2026, 4, 4, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", time.Date(2026, 4, 4, 18, 0, 0, 0, time.Local), "Today"},
		{"tomorrow", time.Date(2026, 4, 5, 9, 0, 0, 0, time.Local), "Tomorrow"},
		{"later", time.Date(2026, 4, 6, 13, 0, 0, 0, time.Local), "Mon, Apr 6"},
		{"earlier", time.Date(2026, 4, 2, 18, 0, 0, 0, time.Local), "Thu, Apr 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getDayLabel(tt.t, now); got != tt.want {
				t.Errorf("getDayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Minute, "45m"},
		{time.Hour, "1h"},
		{90 * time.Minute, "1.5h"},
		{2 * time.Hour, "2h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.in); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatEventList(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	at := func(day, h, m int) time.Time {
		return time.Date(2026, 4, day, h, m, 0, 0, time.Local)
	}

	events := []calendar.Event{
		{Title: "Closing Ceremony", Start: at(6, 16, 30), End: at(6, 17, 0), Location: "Tech Auditorium"},
		{Title: "Movie Night!", Start: at(5, 22, 0), End: at(6, 0, 0), Location: "TCH L3"},
		{Title: "Hacking Starts", Start: at(5, 10, 45), End: at(5, 10, 45)},
	}

	got := formatEventList(events, now)
	want := []string{
		"━━━━ Sun, Apr 5 ━━━━",
		"  10:45  Hacking Starts",
		"  22:00  Movie Night! (2h)",
		"         📍 TCH L3",
		"",
		"━━━━ Mon, Apr 6 ━━━━",
		"  16:30  Closing Ceremony (30m)",
		"         📍 Tech Auditorium",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("formatEventList() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	if events[0].Title != "Closing Ceremony" {
		t.Error("formatEventList reordered its input")
	}
}

func TestFormatEventList_Empty(t *testing.T) {
	got := formatEventList(nil, time.Now())
	if len(got) != 1 || got[0] != "No events" {
		t.Errorf("formatEventList(nil) = %v", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("TCH L3", 50); got != "TCH L3" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate(strings.Repeat("x", 60), 10); got != "xxxxxxx..." {
		t.Errorf("truncate() = %q", got)
	}
}
