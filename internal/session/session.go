// Package session holds the per-user state of the interactive UI.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/textai/internal/highlight"
	"github.com/nguyentantai21042004/textai/internal/normalizer"
	"github.com/nguyentantai21042004/textai/internal/speech"
	"github.com/nguyentantai21042004/textai/internal/summarizer"
)

// Speech is an audio clip together with the words it was synthesized from.
type Speech struct {
	Clip  speech.AudioClip
	Words []string
}

// Session is one user's state. Every result is replaced by the next action
// and cleared when the document changes.
type Session struct {
	ID string

	mu        sync.Mutex
	kind      normalizer.Kind
	document  string
	summary   *summarizer.Summary
	speech    *Speech
	highlight bool
	flash     string
	lastSeen  time.Time

	controller *highlight.Controller
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		kind:       normalizer.KindText,
		lastSeen:   now,
		controller: highlight.NewController(),
	}
}

// Controller is the session's highlight controller.
func (s *Session) Controller() *highlight.Controller {
	return s.controller
}

// SetDocument stores the normalized input. A document that differs from
// the current one clears the summary and speech and detaches highlighting.
func (s *Session) SetDocument(kind normalizer.Kind, doc string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kind = kind
	if doc == s.document {
		return
	}
	s.document = doc
	s.summary = nil
	s.speech = nil
	s.controller.Detach()
}

// SetSummary replaces the summary.
func (s *Session) SetSummary(sum summarizer.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = &sum
}

// SetSpeech stores a clip with the word sequence of the document it was
// made from and reattaches the highlight controller to the pair.
func (s *Session) SetSpeech(clip speech.AudioClip, text string) {
	words := strings.Fields(text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.speech = &Speech{Clip: clip, Words: words}
	s.controller.Attach(words, clip.Duration)
}

func (s *Session) SetHighlight(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highlight = on
}

// Flash stores a one-shot message for the next page render.
func (s *Session) Flash(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = msg
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Kind      normalizer.Kind
	Document  string
	Summary   *summarizer.Summary
	Speech    *Speech
	Highlight bool
	Flash     string
}

// Snapshot copies the state and consumes the flash message.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Kind:      s.kind,
		Document:  s.document,
		Summary:   s.summary,
		Speech:    s.speech,
		Highlight: s.highlight,
		Flash:     s.flash,
	}
	s.flash = ""
	return snap
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
