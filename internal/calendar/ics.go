package calendar

import (
	"strings"
	"time"
)

const (
	// DefaultCalendarName is the display name used when none is given.
	DefaultCalendarName = "WildHacks 2026"

	// DefaultProductID identifies the generator in the PRODID header.
	DefaultProductID = "-//WildHacks//Guide 2026//EN"

	// ContentType is the MIME type of generated documents.
	ContentType = "text/calendar;charset=utf-8"

	// Extension is the file extension of generated documents.
	Extension = ".ics"
)

const crlf = "\r\n"

// Generator renders events as an iCalendar document.
type Generator struct {
	// ProductID is written to the PRODID header.
	ProductID string

	// IDs supplies the UID of each event block.
	IDs IDSource

	// Now supplies the DTSTAMP of each event block.
	Now func() time.Time
}

// NewGenerator returns a generator with random identifiers under domain and
// wall-clock stamps.
func NewGenerator(domain string) *Generator {
	return &Generator{
		ProductID: DefaultProductID,
		IDs:       NewRandomIDs(domain),
		Now:       time.Now,
	}
}

var defaultGenerator = NewGenerator(DefaultUIDDomain)

// Generate renders events with the default generator.
func Generate(events []Event, calendarName string) string {
	return defaultGenerator.Generate(events, calendarName)
}

// Generate renders events, in order, as a complete calendar document.
// Optional fields that are empty are left out. An empty name falls back to
// DefaultCalendarName.
func (g *Generator) Generate(events []Event, calendarName string) string {
	if calendarName == "" {
		calendarName = DefaultCalendarName
	}
	productID := g.ProductID
	if productID == "" {
		productID = DefaultProductID
	}
	ids := g.IDs
	if ids == nil {
		ids = NewRandomIDs(DefaultUIDDomain)
	}
	now := g.Now
	if now == nil {
		now = time.Now
	}

	var b strings.Builder
	line := func(name, value string) {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteString(crlf)
	}

	line("BEGIN", "VCALENDAR")
	line("VERSION", "2.0")
	line("PRODID", productID)
	line("X-WR-CALNAME", EscapeText(calendarName))
	line("CALSCALE", "GREGORIAN")
	line("METHOD", "PUBLISH")

	for i, event := range events {
		line("BEGIN", "VEVENT")
		line("UID", ids.ID(i))
		// DTSTAMP is when the document was generated, not when the event happens
		line("DTSTAMP", FormatUTC(now()))
		line("DTSTART", FormatUTC(event.Start))
		line("DTEND", FormatUTC(event.End))
		line("SUMMARY", EscapeText(event.Title))

		if event.Description != "" {
			line("DESCRIPTION", EscapeText(event.Description))
		}
		if event.Location != "" {
			line("LOCATION", EscapeText(event.Location))
		}
		if event.URL != "" {
			line("URL", event.URL)
		}

		line("END", "VEVENT")
	}

	line("END", "VCALENDAR")
	return b.String()
}
