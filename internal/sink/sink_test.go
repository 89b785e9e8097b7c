package sink

import (
	"bytes"
	"testing"
)

type memSaver map[string]string

func (m memSaver) Save(data []byte, filename string) error {
	m[filename] = string(data)
	return nil
}

func TestSink(t *testing.T) {
	saved := memSaver{}
	var out bytes.Buffer
	s := New(saved, Print(&out))

	if err := s.Save([]byte("doc"), "wildhacks-2026.ics"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := s.OpenExternal("https://calendar.google.com/calendar/render"); err != nil {
		t.Fatalf("OpenExternal() error: %v", err)
	}

	if saved["wildhacks-2026.ics"] != "doc" {
		t.Errorf("saved = %v", saved)
	}
	if got, want := out.String(), "https://calendar.google.com/calendar/render\n"; got != want {
		t.Errorf("printed %q, want %q", got, want)
	}
}
