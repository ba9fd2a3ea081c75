package highlight

import "sync"

// Event is a playback event from the audio element.
type Event string

const (
	EventPlay       Event = "play"
	EventTimeUpdate Event = "timeupdate"
	EventPause      Event = "pause"
	EventEnded      Event = "ended"
)

// State is the current highlight. Active is false when nothing should be
// highlighted.
type State struct {
	Index      int    `json:"index"`
	Active     bool   `json:"active"`
	Generation uint64 `json:"generation"`
}

// Listener is notified of every evaluated state.
type Listener func(State)

// Subscription is one listener bound to the current attachment. Done is
// closed when the listener is removed, either by Unsubscribe or because
// the controller was attached to a new word list.
type Subscription struct {
	Generation uint64
	Done       <-chan struct{}

	id int
	c  *Controller
}

// Unsubscribe removes the listener. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.c.remove(s.id)
}

type subscriber struct {
	fn   Listener
	done chan struct{}
}

// Controller tracks playback of one (words, audio) pair.
type Controller struct {
	mu         sync.Mutex
	words      []string
	duration   float64
	generation uint64
	state      State
	subs       map[int]subscriber
	nextID     int
}

// NewController returns a detached controller.
func NewController() *Controller {
	return &Controller{subs: make(map[int]subscriber)}
}

// Attach binds the controller to a new word list and clip duration. Every
// listener of the previous attachment is removed first.
func (c *Controller) Attach(words []string, duration float64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detachLocked()
	c.words = append([]string(nil), words...)
	c.duration = duration
	c.generation++
	c.state = State{Generation: c.generation}
	return c.generation
}

// Detach removes every listener and forgets the word list.
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detachLocked()
	c.words = nil
	c.duration = 0
	c.generation++
	c.state = State{Generation: c.generation}
}

func (c *Controller) detachLocked() {
	for id, s := range c.subs {
		close(s.done)
		delete(c.subs, id)
	}
}

// Subscribe adds a listener to the current attachment.
func (c *Controller) Subscribe(fn Listener) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	done := make(chan struct{})
	c.subs[c.nextID] = subscriber{fn: fn, done: done}
	return &Subscription{Generation: c.generation, Done: done, id: c.nextID, c: c}
}

func (c *Controller) remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.subs[id]; ok {
		close(s.done)
		delete(c.subs, id)
	}
}

// Handle applies a playback event at time t. duration overrides the
// attached duration when positive, since the player usually knows the
// exact length. play and timeupdate recompute the index; pause and ended
// reset to no highlight.
func (c *Controller) Handle(ev Event, t, duration float64) State {
	c.mu.Lock()
	switch ev {
	case EventPlay, EventTimeUpdate:
		if duration <= 0 {
			duration = c.duration
		}
		n := len(c.words)
		c.state = State{
			Index:      Index(t, duration, n),
			Active:     n > 0,
			Generation: c.generation,
		}
	case EventPause, EventEnded:
		c.state = State{Generation: c.generation}
	}
	state := c.state
	listeners := make([]Listener, 0, len(c.subs))
	for _, s := range c.subs {
		listeners = append(listeners, s.fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
	return state
}

// State returns the last evaluated state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Words returns the attached word list.
func (c *Controller) Words() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.words...)
}

// Generation identifies the current attachment.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}
