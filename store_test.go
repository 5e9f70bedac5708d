package millbook

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	got, err := s.Get("absent")
	if err != nil || got != nil {
		t.Errorf("Get(absent) = %v, %v, want nil, nil", got, err)
	}

	if err := s.Put("k", []byte("v1")); err != nil {
		t.Fatalf("Put() returned an unexpected error: %v", err)
	}
	if got, _ := s.Get("k"); string(got) != "v1" {
		t.Errorf("Get(k) = %q, want %q", got, "v1")
	}

	// Put overwrites.
	if err := s.Put("k", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Get("k"); string(got) != "v2" {
		t.Errorf("Get(k) after overwrite = %q, want %q", got, "v2")
	}
}

func TestMemoryStorePutCopies(t *testing.T) {
	s := NewMemoryStore()
	value := []byte("original")
	if err := s.Put("k", value); err != nil {
		t.Fatal(err)
	}
	value[0] = 'X'
	if got, _ := s.Get("k"); !bytes.Equal(got, []byte("original")) {
		t.Errorf("stored value aliases the caller's slice: %q", got)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "millbook.db")

	s, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore() returned an unexpected error: %v", err)
	}

	got, err := s.Get("absent")
	if err != nil || got != nil {
		t.Errorf("Get(absent) = %v, %v, want nil, nil", got, err)
	}

	if err := s.Put("k", []byte("v1")); err != nil {
		t.Fatalf("Put() returned an unexpected error: %v", err)
	}
	if err := s.Put("k", []byte("v2")); err != nil {
		t.Fatalf("Put() overwrite returned an unexpected error: %v", err)
	}
	if got, _ := s.Get("k"); string(got) != "v2" {
		t.Errorf("Get(k) = %q, want %q", got, "v2")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() returned an unexpected error: %v", err)
	}

	// Values survive reopening the file.
	s, err = OpenStore(path)
	if err != nil {
		t.Fatalf("reopen returned an unexpected error: %v", err)
	}
	defer s.Close()
	if got, _ := s.Get("k"); string(got) != "v2" {
		t.Errorf("Get(k) after reopen = %q, want %q", got, "v2")
	}
}

func TestOpenStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "millbook.db")
	s, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore() returned an unexpected error: %v", err)
	}
	s.Close()
}
