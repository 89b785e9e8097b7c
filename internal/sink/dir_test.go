package sink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirSave(t *testing.T) {
	root := filepath.Join(t.TempDir(), "downloads", "nested")
	d := NewDir(root)

	if err := d.Save([]byte("BEGIN:VCALENDAR\r\n"), "wildhacks-2026.ics"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := d.Save([]byte("second"), "wildhacks-2026.ics"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(root, "wildhacks-2026.ics"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("file content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the saved file, got %d entries", len(entries))
	}
}

func TestDirPathStaysInside(t *testing.T) {
	d := NewDir("/tmp/out")
	if got, want := d.Path("../../etc/wildhacks.ics"), "/tmp/out/wildhacks.ics"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
