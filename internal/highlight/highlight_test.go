package highlight

import (
	"math"
	"testing"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		duration float64
		words    int
		want     int
	}{
		{"start", 0, 100, 10, 0},
		{"middle", 50, 100, 10, 5},
		{"just before end", 99.99, 100, 10, 9},
		{"at end is capped", 100, 100, 10, 9},
		{"past end is capped", 250, 100, 10, 9},
		{"zero duration defaults to one", 0.55, 0, 10, 5},
		{"nan duration defaults to one", 0.25, math.NaN(), 4, 1},
		{"negative time", -3, 100, 10, 0},
		{"single word", 42, 100, 1, 0},
		{"no words", 10, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.t, tt.duration, tt.words); got != tt.want {
				t.Errorf("Index(%v, %v, %d) = %d, want %d", tt.t, tt.duration, tt.words, got, tt.want)
			}
		})
	}
}

func TestIndexIsIdempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Index(33.3, 100, 10); got != 3 {
			t.Fatalf("Index() = %d, want 3", got)
		}
	}
}

func TestControllerEvents(t *testing.T) {
	c := NewController()
	gen := c.Attach([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, 100)

	var seen []State
	c.Subscribe(func(s State) { seen = append(seen, s) })

	tests := []struct {
		ev     Event
		t      float64
		want   int
		active bool
	}{
		{EventPlay, 0, 0, true},
		{EventTimeUpdate, 50, 5, true},
		{EventTimeUpdate, 50, 5, true},
		{EventPause, 50, 0, false},
		{EventPlay, 70, 7, true},
		{EventEnded, 100, 0, false},
	}

	for _, tt := range tests {
		got := c.Handle(tt.ev, tt.t, 0)
		if got.Index != tt.want || got.Active != tt.active || got.Generation != gen {
			t.Errorf("Handle(%s, %v) = %+v, want index %d active %v", tt.ev, tt.t, got, tt.want, tt.active)
		}
	}
	if len(seen) != len(tests) {
		t.Errorf("listener saw %d states, want %d", len(seen), len(tests))
	}
}

func TestControllerDurationOverride(t *testing.T) {
	c := NewController()
	c.Attach([]string{"a", "b", "c", "d"}, 0)

	if got := c.Handle(EventTimeUpdate, 5, 10); got.Index != 2 {
		t.Errorf("Index = %d, want 2", got.Index)
	}
	// Unknown duration everywhere falls back to 1 second.
	if got := c.Handle(EventTimeUpdate, 0.5, 0); got.Index != 2 {
		t.Errorf("Index = %d, want 2", got.Index)
	}
}

func TestControllerReattachRemovesListeners(t *testing.T) {
	c := NewController()
	c.Attach([]string{"old", "words"}, 10)

	oldCalls := 0
	oldSub := c.Subscribe(func(State) { oldCalls++ })

	gen := c.Attach([]string{"new", "list", "of", "words"}, 4)

	select {
	case <-oldSub.Done:
	default:
		t.Fatal("old subscription not closed on reattach")
	}

	newCalls := 0
	newSub := c.Subscribe(func(State) { newCalls++ })
	if newSub.Generation != gen {
		t.Errorf("Generation = %d, want %d", newSub.Generation, gen)
	}

	got := c.Handle(EventTimeUpdate, 3, 0)
	if oldCalls != 0 {
		t.Errorf("stale listener called %d times", oldCalls)
	}
	if newCalls != 1 {
		t.Errorf("new listener called %d times, want 1", newCalls)
	}
	if got.Index != 3 {
		t.Errorf("Index = %d, want 3", got.Index)
	}

	newSub.Unsubscribe()
	newSub.Unsubscribe()
	c.Handle(EventTimeUpdate, 1, 0)
	if newCalls != 1 {
		t.Error("unsubscribed listener still called")
	}
}

func TestControllerDetached(t *testing.T) {
	c := NewController()
	got := c.Handle(EventPlay, 1, 2)
	if got.Active {
		t.Errorf("detached controller reports active highlight %+v", got)
	}

	c.Attach([]string{"x"}, 1)
	c.Detach()
	if len(c.Words()) != 0 {
		t.Error("Detach() kept the word list")
	}
}
