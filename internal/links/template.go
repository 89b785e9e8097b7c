// Package links builds deep links into the Google Calendar web app.
package links

import (
	"net/url"
	"strings"

	"github.com/NUWildHacks/guide2026/internal/calendar"
)

const (
	// LandingURL is the calendar app's render endpoint without a template.
	LandingURL = "https://calendar.google.com/calendar/render"

	// ImportURL is the calendar app's settings page for importing a file.
	ImportURL = "https://calendar.google.com/calendar/u/0/r/settings/import"
)

// TemplateURL returns a link that opens the calendar app with the event
// pre-filled. Text fields are form-encoded as is; the app does not understand
// iCalendar escapes. Empty optional fields are left out of the query.
func TemplateURL(event calendar.Event) string {
	var q query
	q.add("action", "TEMPLATE")
	q.add("text", event.Title)
	q.add("dates", calendar.FormatLocal(event.Start)+"/"+calendar.FormatLocal(event.End))
	if event.Location != "" {
		q.add("location", event.Location)
	}
	if event.Description != "" {
		q.add("details", event.Description)
	}
	return LandingURL + "?" + q.encode()
}

// ForEvents returns the template link for the first event. The calendar app
// has no link form for several events, so the rest are ignored; callers that
// need all of them should export a file instead. With no events it returns
// LandingURL.
func ForEvents(events []calendar.Event) string {
	if len(events) == 0 {
		return LandingURL
	}
	return TemplateURL(events[0])
}

// query keeps parameters in insertion order, unlike url.Values.
type query []string

func (q *query) add(key, value string) {
	*q = append(*q, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q query) encode() string {
	return strings.Join(q, "&")
}
