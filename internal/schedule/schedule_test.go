package schedule

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if s.Name != "WildHacks 2026" {
		t.Errorf("Name = %q", s.Name)
	}

	events := s.Events()
	if len(events) != len(s.Entries) {
		t.Fatalf("got %d events from %d entries", len(events), len(s.Entries))
	}
	if len(events) != 25 {
		t.Errorf("got %d events, want 25", len(events))
	}

	first := events[0]
	if first.Title != "Emerging Coders: Web Development" {
		t.Errorf("first title = %q", first.Title)
	}
	if want := time.Date(2026, 4, 2, 23, 0, 0, 0, time.UTC); !first.Start.Equal(want) {
		t.Errorf("first start = %v, want %v", first.Start, want)
	}
	if first.Duration() != time.Hour {
		t.Errorf("first duration = %v", first.Duration())
	}

	for _, e := range events {
		if e.End.Before(e.Start) {
			t.Errorf("%q ends before it starts", e.Title)
		}
		if e.Title == "Movie Night!" {
			if want := time.Date(2026, 4, 6, 5, 0, 0, 0, time.UTC); !e.End.Equal(want) {
				t.Errorf("movie night end = %v, want %v", e.End, want)
			}
		}
		if e.Title == "Hacking Starts" && e.Duration() != 0 {
			t.Errorf("hacking starts duration = %v, want 0", e.Duration())
		}
	}
}

func TestEvents_Entries(t *testing.T) {
	s, err := Parse([]byte(`
name: Test
timezone: America/Chicago
events:
  - title: Ranged
    date: April 3, 2026
    time: 6:00 PM - 7:00 PM
    location: TCH L168
    url: /workshops/#disc-react
  - title: Single
    date: April 5, 2026
    time: 10:00 AM
  - title: Explicit
    start: 2026-04-06T13:00:00-05:00
    end: 2026-04-06T13:00:00-05:00
  - title: Open ended
    start: 2026-04-06T16:30:00-05:00
  - title: Bad date
    date: sometime
    time: 6:00 PM
  - title: Bad time
    date: April 5, 2026
    time: after lunch
  - title: Bad start
    start: tomorrow
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	events := s.Events()
	var titles []string
	for _, e := range events {
		titles = append(titles, e.Title)
	}
	want := []string{"Ranged", "Single", "Explicit", "Open ended"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}

	ranged := events[0]
	if want := time.Date(2026, 4, 3, 23, 0, 0, 0, time.UTC); !ranged.Start.Equal(want) {
		t.Errorf("ranged start = %v, want %v", ranged.Start, want)
	}
	if ranged.Location != "TCH L168" || ranged.URL != "/workshops/#disc-react" {
		t.Errorf("ranged fields = %+v", ranged)
	}
	if events[1].Duration() != time.Hour {
		t.Errorf("single duration = %v, want 1h", events[1].Duration())
	}
	if events[2].Duration() != 0 {
		t.Errorf("explicit duration = %v, want 0", events[2].Duration())
	}
	if events[3].Duration() != time.Hour {
		t.Errorf("open ended duration = %v, want 1h", events[3].Duration())
	}
}

func TestParse_BadTimezone(t *testing.T) {
	if _, err := Parse([]byte("timezone: Mars/Olympus_Mons\n")); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	data := `name: Workshops
events:
  - title: "IEEE: GitHub"
    date: April 3, 2026
    time: 7:00 PM - 8:00 PM
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	events := s.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Start.Location() != time.Local {
		t.Errorf("expected local time without a timezone, got %v", events[0].Start.Location())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
