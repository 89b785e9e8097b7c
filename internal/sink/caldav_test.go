package sink

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	ics "github.com/emersion/go-ical"
)

const caldavDoc = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//WildHacks//Guide 2026//EN\r\n" +
	"X-WR-CALNAME:WildHacks 2026\r\n" +
	"CALSCALE:GREGORIAN\r\n" +
	"METHOD:PUBLISH\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1775170800000-0-abcdef012@wildhacks.net\r\n" +
	"DTSTAMP:20260301T120000Z\r\n" +
	"DTSTART:20260402T230000Z\r\n" +
	"DTEND:20260403T000000Z\r\n" +
	"SUMMARY:Emerging Coders: Web Development\r\n" +
	"LOCATION:TCH LR5\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1775170800000-1-0123abcde@wildhacks.net\r\n" +
	"DTSTAMP:20260301T120000Z\r\n" +
	"DTSTART:20260405T154500Z\r\n" +
	"DTEND:20260405T154500Z\r\n" +
	"SUMMARY:Hacking Starts\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

type putRecorder struct {
	mu     sync.Mutex
	bodies map[string]string
}

func (p *putRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "unexpected method", http.StatusMethodNotAllowed)
		return
	}
	body, _ := io.ReadAll(r.Body)

	p.mu.Lock()
	p.bodies[r.URL.Path] = string(body)
	p.mu.Unlock()

	w.Header().Set("ETag", `"1"`)
	w.WriteHeader(http.StatusCreated)
}

func TestCalDAVSave(t *testing.T) {
	rec := &putRecorder{bodies: make(map[string]string)}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	c, err := NewCalDAV(srv.URL, "/calendars/attendee/wildhacks/", "", "", 5*time.Second)
	if err != nil {
		t.Fatalf("NewCalDAV() error: %v", err)
	}

	if err := c.Save([]byte(caldavDoc), "wildhacks-2026.ics"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if len(rec.bodies) != 2 {
		t.Fatalf("got %d objects, want 2: %v", len(rec.bodies), rec.bodies)
	}

	body, ok := rec.bodies["/calendars/attendee/wildhacks/1775170800000-0-abcdef012_wildhacks.net.ics"]
	if !ok {
		t.Fatalf("missing object for first event, got paths %v", rec.bodies)
	}

	obj, err := ics.NewDecoder(strings.NewReader(body)).Decode()
	if err != nil {
		t.Fatalf("decode object: %v", err)
	}
	if obj.Props.Get("METHOD") != nil {
		t.Error("calendar object must not carry METHOD")
	}
	events := obj.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events in object, want 1", len(events))
	}
	if got := events[0].Props.Get(ics.PropSummary).Value; got != "Emerging Coders: Web Development" {
		t.Errorf("SUMMARY = %q", got)
	}
}

func TestCalDAVSave_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "read only", http.StatusForbidden)
	}))
	defer srv.Close()

	c, err := NewCalDAV(srv.URL, "/calendars/attendee/wildhacks/", "", "", 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Save([]byte(caldavDoc), "wildhacks-2026.ics"); err == nil {
		t.Error("expected error from server")
	}
}

func TestCalDAVSave_BadDocument(t *testing.T) {
	c, err := NewCalDAV("http://127.0.0.1:1", "/cal/", "", "", time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Save([]byte("not a calendar"), "x.ics"); err == nil {
		t.Error("expected decode error")
	}
}

func TestObjectName(t *testing.T) {
	tests := []struct {
		uid  string
		want string
	}{
		{"1775170800000-3-abcdef012@wildhacks.net", "1775170800000-3-abcdef012_wildhacks.net.ics"},
		{"a/b c", "a_b_c.ics"},
	}
	for _, tt := range tests {
		if got := objectName(tt.uid); got != tt.want {
			t.Errorf("objectName(%q) = %q, want %q", tt.uid, got, tt.want)
		}
	}
}
