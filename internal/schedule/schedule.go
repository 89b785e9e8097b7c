// Package schedule loads the hackathon schedule and turns it into calendar
// events.
package schedule

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/NUWildHacks/guide2026/internal/calendar"
)

//go:embed wildhacks2026.yaml
var defaultData []byte

// Schedule is a named list of schedule entries.
type Schedule struct {
	Name     string  `yaml:"name"`
	Timezone string  `yaml:"timezone"`
	Entries  []Entry `yaml:"events"`
}

// Entry is a single schedule row. It carries either Start and End as RFC 3339
// timestamps, or Date and Time as written on the schedule page
// ("April 5, 2026", "9:00 AM - 10:00 AM").
type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Location    string `yaml:"location,omitempty"`
	URL         string `yaml:"url,omitempty"`

	Date string `yaml:"date,omitempty"`
	Time string `yaml:"time,omitempty"`

	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`
}

// Default returns the embedded WildHacks 2026 schedule.
func Default() (*Schedule, error) {
	return Parse(defaultData)
}

// Load reads a schedule file.
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML schedule.
func Parse(data []byte) (*Schedule, error) {
	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	if _, err := s.location(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Schedule) location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Events converts the entries to calendar events in schedule order. Entries
// whose times cannot be parsed are skipped.
func (s *Schedule) Events() []calendar.Event {
	loc, err := s.location()
	if err != nil {
		slog.Warn("falling back to local time", "error", err)
		loc = time.Local
	}

	events := make([]calendar.Event, 0, len(s.Entries))
	for i, e := range s.Entries {
		start, end, err := e.times(loc)
		if err != nil {
			slog.Warn("skipping schedule entry", "index", i, "title", e.Title, "error", err)
			continue
		}
		events = append(events, calendar.Event{
			Title:       e.Title,
			Description: e.Description,
			Start:       start,
			End:         end,
			Location:    e.Location,
			URL:         e.URL,
		})
	}
	return events
}

// times resolves the entry's start and end in loc.
func (e *Entry) times(loc *time.Location) (start, end time.Time, err error) {
	if e.Start != "" {
		start, err = time.Parse(time.RFC3339, e.Start)
		if err != nil {
			return start, end, fmt.Errorf("parse start: %w", err)
		}
		if e.End == "" {
			return start, start.Add(time.Hour), nil
		}
		end, err = time.Parse(time.RFC3339, e.End)
		if err != nil {
			return start, end, fmt.Errorf("parse end: %w", err)
		}
		return start, end, nil
	}

	day, ok := ParseDateIn(e.Date, loc)
	if !ok {
		return start, end, fmt.Errorf("unrecognized date %q", e.Date)
	}
	start, end, ok = ParseTimeRange(e.Time, day)
	if !ok {
		return start, end, fmt.Errorf("unrecognized time %q", e.Time)
	}
	return start, end, nil
}
