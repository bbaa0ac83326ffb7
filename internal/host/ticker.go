package host

// TickFunc receives the elapsed time of the frame in seconds.
type TickFunc func(dt float64)

// TickID identifies a registered callback for removal.
type TickID uint64

type tickEntry struct {
	id      TickID
	fn      TickFunc
	removed bool
}

// Ticker is the frame clock shared by every animation in the window.
// Callbacks run in registration order, once per Tick.
// Not safe for concurrent use; the window drives it from its update loop.
type Ticker struct {
	entries []*tickEntry
	nextID  TickID
	frame   uint64
}

func NewTicker() *Ticker {
	return &Ticker{}
}

// Add registers fn and returns the id needed to remove it.
func (t *Ticker) Add(fn TickFunc) TickID {
	t.nextID++
	t.entries = append(t.entries, &tickEntry{id: t.nextID, fn: fn})
	return t.nextID
}

// Remove deregisters the callback. Removing an unknown id is a no-op.
func (t *Ticker) Remove(id TickID) {
	for i, e := range t.entries {
		if e.id == id {
			e.removed = true
			t.entries = append(t.entries[:i:i], t.entries[i+1:]...)
			return
		}
	}
}

// Tick runs every registered callback. Callbacks may add or remove others
// while ticking: a callback removed earlier in the tick does not run, one
// added during the tick first runs on the next.
func (t *Ticker) Tick(dt float64) {
	t.frame++
	entries := t.entries
	for _, e := range entries {
		if e.removed {
			continue
		}
		e.fn(dt)
	}
}

func (t *Ticker) Len() int { return len(t.entries) }

// Frame returns the number of ticks run so far.
func (t *Ticker) Frame() uint64 { return t.frame }
