// Package calendar provides the schedule event type and the calendar file
// generator and parser.
package calendar

import (
	"strings"
	"time"
)

// Event represents a calendar event.
type Event struct {
	// Title is the event summary. Required by convention.
	Title string

	// Description is the optional long text.
	Description string

	// Start is when the event begins.
	Start time.Time

	// End is when the event ends.
	End time.Time

	// Location is the optional room or venue.
	Location string

	// URL links to the guide page for the event. It may be relative to the
	// guide's origin.
	URL string
}

// Duration returns the duration of the event.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// WithAbsoluteURL returns a copy of the event whose URL is resolved against base.
func (e Event) WithAbsoluteURL(base string) Event {
	e.URL = AbsoluteURL(e.URL, base)
	return e
}

// AbsoluteURL resolves a guide-relative link against the site origin.
// Empty and already absolute http(s) links are returned unchanged.
func AbsoluteURL(link, base string) string {
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return base + link
}
