package session

import (
	"testing"
	"time"

	"github.com/nguyentantai21042004/textai/internal/highlight"
	"github.com/nguyentantai21042004/textai/internal/normalizer"
	"github.com/nguyentantai21042004/textai/internal/speech"
	"github.com/nguyentantai21042004/textai/internal/summarizer"
)

func TestStoreGet(t *testing.T) {
	st := NewStore(time.Minute)

	s, created := st.Get("")
	if !created || s.ID == "" {
		t.Fatalf("Get(\"\") = %v, %v", s, created)
	}

	again, created := st.Get(s.ID)
	if created || again != s {
		t.Error("Get() did not return the existing session")
	}

	other, created := st.Get("unknown-id")
	if !created || other.ID == "unknown-id" {
		t.Error("Get() should mint a fresh id for unknown sessions")
	}
	if st.Len() != 2 {
		t.Errorf("Len() = %d, want 2", st.Len())
	}
}

func TestStoreExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore(10 * time.Minute)
	st.now = func() time.Time { return now }

	s, _ := st.Get("")
	now = now.Add(11 * time.Minute)

	if _, ok := st.Lookup(s.ID); !ok {
		t.Fatal("Lookup() should not sweep")
	}
	now = now.Add(11 * time.Minute)
	fresh, created := st.Get(s.ID)
	if !created || fresh.ID == s.ID {
		t.Error("expired session was reused")
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
}

func TestSetDocumentClearsResults(t *testing.T) {
	st := NewStore(time.Minute)
	s, _ := st.Get("")

	s.SetDocument(normalizer.KindText, "first document")
	s.SetSummary(summarizer.Summary{Text: "sum", Path: summarizer.PathLocal})
	s.SetSpeech(speech.AudioClip{Data: []byte("mp3"), Duration: 2}, "first document")
	sub := s.Controller().Subscribe(func(highlight.State) {})

	// Same document keeps results.
	s.SetDocument(normalizer.KindText, "first document")
	snap := s.Snapshot()
	if snap.Summary == nil || snap.Speech == nil {
		t.Fatal("results cleared for an unchanged document")
	}
	if len(snap.Speech.Words) != 2 {
		t.Errorf("Words = %v", snap.Speech.Words)
	}

	s.SetDocument(normalizer.KindURL, "second document")
	snap = s.Snapshot()
	if snap.Summary != nil || snap.Speech != nil {
		t.Error("results kept for a new document")
	}
	if snap.Kind != normalizer.KindURL {
		t.Errorf("Kind = %v", snap.Kind)
	}
	select {
	case <-sub.Done:
	default:
		t.Error("highlight listener not detached on new document")
	}
}

func TestSetSpeechAttachesController(t *testing.T) {
	st := NewStore(time.Minute)
	s, _ := st.Get("")

	s.SetSpeech(speech.AudioClip{Duration: 10}, "one two three four five")
	first := s.Controller().Generation()
	if got := s.Controller().Handle(highlight.EventTimeUpdate, 5, 0); got.Index != 2 {
		t.Errorf("Index = %d, want 2", got.Index)
	}

	s.SetSpeech(speech.AudioClip{Duration: 10}, "a b")
	if s.Controller().Generation() == first {
		t.Error("controller not reattached")
	}
	if got := len(s.Controller().Words()); got != 2 {
		t.Errorf("Words = %d, want 2", got)
	}
}

func TestFlashIsConsumed(t *testing.T) {
	s := newSession("id", time.Now())
	s.Flash("Please provide input")

	if got := s.Snapshot().Flash; got != "Please provide input" {
		t.Errorf("Flash = %q", got)
	}
	if got := s.Snapshot().Flash; got != "" {
		t.Errorf("Flash not consumed: %q", got)
	}
}
