package sink

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	ics "github.com/emersion/go-ical"
	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"

	"github.com/NUWildHacks/guide2026/internal/calendar"
)

// CalDAV saves documents straight into a CalDAV calendar, one calendar
// object per event, so they show up without a manual import.
type CalDAV struct {
	client     *caldav.Client
	collection string // Discovered when empty
	timeout    time.Duration
}

// NewCalDAV creates a Saver for the CalDAV server at endpoint. If calendarPath
// is empty the calendar is looked up by name on each save.
func NewCalDAV(endpoint, calendarPath, username, password string, timeout time.Duration) (*CalDAV, error) {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	var httpClient webdav.HTTPClient = &http.Client{Timeout: timeout}
	if username != "" {
		httpClient = webdav.HTTPClientWithBasicAuth(httpClient, username, password)
	}

	client, err := caldav.NewClient(httpClient, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create caldav client: %w", err)
	}

	return &CalDAV{client: client, collection: calendarPath, timeout: timeout}, nil
}

// Save splits the document into its events and puts each one into the
// calendar, keyed by UID.
func (c *CalDAV) Save(data []byte, filename string) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	doc, err := ics.NewDecoder(bytes.NewReader(data)).Decode()
	if err != nil {
		return fmt.Errorf("decode %s: %w", filename, err)
	}

	calPath := c.collection
	if calPath == "" {
		name := ""
		if p := doc.Props.Get("X-WR-CALNAME"); p != nil {
			name = calendar.UnescapeText(p.Value)
		}
		calPath, err = c.findCalendar(ctx, name)
		if err != nil {
			return err
		}
	}

	productID := ics.NewProp(ics.PropProductID)
	productID.Value = calendar.DefaultProductID
	if p := doc.Props.Get(ics.PropProductID); p != nil {
		productID = p
	}

	var n int
	for _, comp := range doc.Children {
		if comp.Name != ics.CompEvent {
			continue
		}
		uid := comp.Props.Get(ics.PropUID)
		if uid == nil {
			return fmt.Errorf("%s: event without UID", filename)
		}

		obj := ics.NewCalendar()
		obj.Props.SetText(ics.PropVersion, "2.0")
		obj.Props.Set(productID)
		obj.Children = append(obj.Children, comp)

		objPath := path.Join(calPath, objectName(uid.Value))
		if _, err := c.client.PutCalendarObject(ctx, objPath, obj); err != nil {
			return fmt.Errorf("put %s: %w", objPath, err)
		}
		n++
	}

	slog.Info("added events to calendar", "calendar", calPath, "events", n)
	return nil
}

// findCalendar returns the path of the user's calendar called name, or of
// the first calendar when none matches.
func (c *CalDAV) findCalendar(ctx context.Context, name string) (string, error) {
	principal, err := c.client.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return "", fmt.Errorf("find principal: %w", err)
	}

	homeSet, err := c.client.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return "", fmt.Errorf("find calendar home: %w", err)
	}

	cals, err := c.client.FindCalendars(ctx, homeSet)
	if err != nil {
		return "", fmt.Errorf("find calendars: %w", err)
	}
	if len(cals) == 0 {
		return "", fmt.Errorf("no calendars in %s", homeSet)
	}

	for _, cal := range cals {
		if strings.EqualFold(cal.Name, name) {
			return cal.Path, nil
		}
	}
	slog.Debug("no calendar named like the export, using the first", "name", name, "calendar", cals[0].Path)
	return cals[0].Path, nil
}

// objectName maps a UID to a resource name safe to use in a URL path.
func objectName(uid string) string {
	var b strings.Builder
	for _, r := range uid {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + ".ics"
}
