package calendar

import (
	"fmt"
	"io"
	"os"
	"time"

	ics "github.com/emersion/go-ical"
)

const propCalendarName = "X-WR-CALNAME"

// ReadICS reads events from an ICS file.
func ReadICS(path string) ([]Event, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open ICS file: %w", err)
	}
	defer f.Close()

	return ParseICS(f)
}

// ParseICS parses events and the calendar display name from an ICS reader.
// Events are returned in document order.
func ParseICS(r io.Reader) ([]Event, string, error) {
	dec := ics.NewDecoder(r)

	var (
		events []Event
		name   string
	)

	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("decode ICS: %w", err)
		}

		if prop := cal.Props.Get(propCalendarName); prop != nil && name == "" {
			name = UnescapeText(prop.Value)
		}

		for _, comp := range cal.Children {
			if comp.Name != ics.CompEvent {
				continue
			}

			event, err := parseEventComponent(comp)
			if err != nil {
				// Skip events we can't parse
				continue
			}

			events = append(events, event)
		}
	}

	return events, name, nil
}

// parseEventComponent converts an ICS VEVENT component to our Event type.
func parseEventComponent(comp *ics.Component) (Event, error) {
	event := Event{}

	if prop := comp.Props.Get(ics.PropSummary); prop != nil {
		event.Title = UnescapeText(prop.Value)
	}
	if prop := comp.Props.Get(ics.PropDescription); prop != nil {
		event.Description = UnescapeText(prop.Value)
	}
	if prop := comp.Props.Get(ics.PropLocation); prop != nil {
		event.Location = UnescapeText(prop.Value)
	}
	// URL is a URI value and is never escaped
	if prop := comp.Props.Get(ics.PropURL); prop != nil {
		event.URL = prop.Value
	}

	prop := comp.Props.Get(ics.PropDateTimeStart)
	if prop == nil {
		return event, fmt.Errorf("missing %s", ics.PropDateTimeStart)
	}
	start, err := prop.DateTime(time.Local)
	if err != nil {
		return event, fmt.Errorf("parse start time: %w", err)
	}
	event.Start = start

	if prop := comp.Props.Get(ics.PropDateTimeEnd); prop != nil {
		end, err := prop.DateTime(time.Local)
		if err != nil {
			return event, fmt.Errorf("parse end time: %w", err)
		}
		event.End = end
	} else {
		event.End = event.Start
	}

	return event, nil
}
