// Package export implements the two schedule export actions: saving the
// schedule as a calendar file and opening it in the calendar web app.
package export

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/NUWildHacks/guide2026/internal/calendar"
	"github.com/NUWildHacks/guide2026/internal/links"
)

// Sink performs the host side effects of an export. Both calls are fire and
// forget: nothing is retried.
type Sink interface {
	// Save hands a generated document to the user under filename.
	Save(data []byte, filename string) error

	// OpenExternal opens url in a new browsing context.
	OpenExternal(url string) error
}

// Informer shows the user a short message next to an export.
type Informer interface {
	Inform(summary, body string) error
}

// Exporter runs export actions for one calendar.
type Exporter struct {
	sink     Sink
	gen      *calendar.Generator
	name     string
	baseURL  string
	informer Informer
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithCalendarName sets the calendar display name, which also names the file.
func WithCalendarName(name string) Option {
	return func(e *Exporter) {
		if name != "" {
			e.name = name
		}
	}
}

// WithBaseURL sets the origin relative event links are resolved against.
func WithBaseURL(base string) Option {
	return func(e *Exporter) {
		e.baseURL = base
	}
}

// WithGenerator replaces the document generator.
func WithGenerator(gen *calendar.Generator) Option {
	return func(e *Exporter) {
		if gen != nil {
			e.gen = gen
		}
	}
}

// WithInformer sets where the import instructions are shown when several
// events are sent to the calendar app.
func WithInformer(informer Informer) Option {
	return func(e *Exporter) {
		e.informer = informer
	}
}

// New creates an Exporter that writes through sink.
func New(sink Sink, opts ...Option) *Exporter {
	e := &Exporter{
		sink: sink,
		gen:  calendar.NewGenerator(calendar.DefaultUIDDomain),
		name: calendar.DefaultCalendarName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the calendar display name.
func (e *Exporter) Name() string {
	return e.name
}

// Filename returns the name the saved document is offered under.
func (e *Exporter) Filename() string {
	return Filename(e.name)
}

// Document renders events the way SaveFile does, with relative links resolved.
func (e *Exporter) Document(events []calendar.Event) []byte {
	resolved := make([]calendar.Event, len(events))
	for i, ev := range events {
		resolved[i] = ev.WithAbsoluteURL(e.baseURL)
	}
	return []byte(e.gen.Generate(resolved, e.name))
}

// SaveFile generates a document with every event and saves it.
func (e *Exporter) SaveFile(events []calendar.Event) error {
	filename := e.Filename()
	slog.Debug("saving calendar file", "filename", filename, "events", len(events))

	if err := e.sink.Save(e.Document(events), filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// OpenInCalendar sends events to the calendar web app. A single event opens
// a pre-filled template. Several events cannot be expressed as one link, so
// the file is saved and the app's import page is opened instead. With no
// events it does nothing.
func (e *Exporter) OpenInCalendar(events []calendar.Event) error {
	switch len(events) {
	case 0:
		return nil
	case 1:
		link := links.ForEvents(events)
		slog.Debug("opening event template", "url", link)
		if err := e.sink.OpenExternal(link); err != nil {
			return fmt.Errorf("open %s: %w", link, err)
		}
		return nil
	}

	if err := e.SaveFile(events); err != nil {
		return err
	}
	slog.Debug("opening calendar import page", "url", links.ImportURL)
	if err := e.sink.OpenExternal(links.ImportURL); err != nil {
		return fmt.Errorf("open %s: %w", links.ImportURL, err)
	}

	if e.informer != nil {
		if err := e.informer.Inform("Import "+e.Filename(), Hint(len(events))); err != nil {
			slog.Warn("failed to show import instructions", "error", err)
		}
	}
	return nil
}

// Hint returns the text shown next to the export actions for n events.
func Hint(n int) string {
	if n > 1 {
		return fmt.Sprintf("The .ics file contains %d events and can be imported into Google Calendar, "+
			"Apple Calendar, Outlook, and other calendar apps. Clicking \"Add to Google Calendar\" "+
			"will download the file and open Google Calendar's import page.", n)
	}
	return "Click to add this event to your Google Calendar."
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename derives a file name from a calendar name: lower case, whitespace
// runs replaced by a hyphen, with the calendar file extension.
func Filename(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-") + calendar.Extension
}
