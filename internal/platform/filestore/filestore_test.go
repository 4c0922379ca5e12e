package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	s, err := New(t.TempDir(), maxBytes)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestSave_WritesFile(t *testing.T) {
	s := newTestStore(t, 1024)

	name, err := s.Save("scan.png", strings.NewReader("pngdata"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !strings.HasPrefix(name, "file-") {
		t.Errorf("expected generated name with file- prefix, got %s", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("expected original extension preserved, got %s", name)
	}

	data, err := os.ReadFile(filepath.Join(s.Dir(), name))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "pngdata" {
		t.Errorf("unexpected stored content: %q", data)
	}
}

func TestSave_UniqueNames(t *testing.T) {
	s := newTestStore(t, 1024)

	a, err := s.Save("scan.dcm", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	b, err := s.Save("scan.dcm", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if a == b {
		t.Errorf("expected distinct stored names, both were %s", a)
	}
}

func TestSave_RejectsDisallowedExtension(t *testing.T) {
	s := newTestStore(t, 1024)

	for _, name := range []string{"notes.txt", "report.pdf", "script.exe"} {
		if _, err := s.Save(name, strings.NewReader("x")); !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("Save(%q): expected ErrInvalidExtension, got %v", name, err)
		}
	}
}

func TestSave_AcceptsDicomExtensions(t *testing.T) {
	s := newTestStore(t, 1024)

	for _, name := range []string{"study.dcm", "study.DICOM", "study.dic"} {
		if _, err := s.Save(name, strings.NewReader("x")); err != nil {
			t.Errorf("Save(%q): unexpected error: %v", name, err)
		}
	}
}

func TestSave_RejectsOversizedFile(t *testing.T) {
	s := newTestStore(t, 8)

	_, err := s.Save("big.jpg", strings.NewReader("0123456789"))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	// The partial file must not linger.
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty upload dir after rejection, found %d entries", len(entries))
	}
}

func TestSave_MissingName(t *testing.T) {
	s := newTestStore(t, 1024)

	if _, err := s.Save("", strings.NewReader("x")); !errors.Is(err, ErrMissingFileName) {
		t.Errorf("expected ErrMissingFileName, got %v", err)
	}
}
