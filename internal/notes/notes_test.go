package notes

import (
	"testing"
	"time"

	"github.com/ckarenz/bodybuddy/internal/errors"
	"github.com/ckarenz/bodybuddy/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(storage.NewMemoryBackend(), nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func TestAppendAndList(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.Append(Note{
		SubtaskID:       "sub-1",
		TaskTitle:       "Write essay",
		SubtaskTitle:    "Write first draft",
		Teachback:       "Thesis statements anchor the argument.",
		DurationMinutes: 25,
	})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if saved.ID == "" {
		t.Error("note should get an ID")
	}
	if saved.Timestamp.IsZero() {
		t.Error("note should get a timestamp")
	}

	notes := s.List()
	if len(notes) != 1 {
		t.Fatalf("List() returned %d notes, want 1", len(notes))
	}
	if notes[0].Teachback != "Thesis statements anchor the argument." {
		t.Errorf("Teachback = %q", notes[0].Teachback)
	}
}

func TestAppendRejectsEmptyTeachback(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Append(Note{SubtaskID: "sub-1"})
	var vErr *errors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if s.Len() != 0 {
		t.Error("rejected note should not be stored")
	}
}

func TestAppendRejectsMissingSubtask(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Append(Note{Teachback: "learned a thing"}); err == nil {
		t.Error("note without a subtask should be rejected")
	}
}

func TestNotesPersistAcrossStores(t *testing.T) {
	backend := storage.NewMemoryBackend()

	first := NewStore(backend, nil)
	if err := first.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := first.Append(Note{SubtaskID: "sub-1", Teachback: "ok"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	second := NewStore(backend, nil)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if second.Len() != 1 {
		t.Errorf("Len() = %d, notes should survive a reload", second.Len())
	}
}

func TestListIsOldestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.Append(Note{
			SubtaskID: "sub-1",
			Teachback: "entry",
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	notes := s.List()
	for i := 1; i < len(notes); i++ {
		if notes[i].Timestamp.Before(notes[i-1].Timestamp) {
			t.Error("notes should stay in append order")
		}
	}
}

func TestForSubtask(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Append(Note{SubtaskID: "a", Teachback: "one"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := s.Append(Note{SubtaskID: "b", Teachback: "two"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := s.Append(Note{SubtaskID: "a", Teachback: "three"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got := s.ForSubtask("a")
	if len(got) != 2 {
		t.Fatalf("ForSubtask(a) returned %d notes, want 2", len(got))
	}
}

func TestCorruptLogStartsEmpty(t *testing.T) {
	backend := storage.NewMemoryBackend()
	if err := backend.Write("session-notes.json", []byte("[broken")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	s := NewStore(backend, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load should tolerate corrupt data: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
