package host

// ResizeFunc is notified with the new viewport after the window changes size.
type ResizeFunc func(Viewport)

// ScrollFunc is notified with the current scroll offset.
type ScrollFunc func(offset float64)

// Subscription deregisters a listener. Cancel is idempotent.
type Subscription interface {
	Cancel()
}

type subscription struct {
	cancel func()
	done   bool
}

func (s *subscription) Cancel() {
	if s.done {
		return
	}
	s.done = true
	s.cancel()
}

type listeners[F any] struct {
	nextID uint64
	byID   map[uint64]F
	order  []uint64
}

func (l *listeners[F]) add(fn F) uint64 {
	if l.byID == nil {
		l.byID = make(map[uint64]F)
	}
	l.nextID++
	l.byID[l.nextID] = fn
	l.order = append(l.order, l.nextID)
	return l.nextID
}

func (l *listeners[F]) remove(id uint64) {
	if _, ok := l.byID[id]; !ok {
		return
	}
	delete(l.byID, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *listeners[F]) each(call func(F)) {
	for _, id := range l.order {
		if fn, ok := l.byID[id]; ok {
			call(fn)
		}
	}
}

// Input dispatches resize and scroll notifications to subscribers in
// registration order. Listeners only record raw values; heavier work belongs
// in a ticker callback.
type Input struct {
	resize listeners[ResizeFunc]
	scroll listeners[ScrollFunc]
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) OnResize(fn ResizeFunc) Subscription {
	id := in.resize.add(fn)
	return &subscription{cancel: func() { in.resize.remove(id) }}
}

func (in *Input) OnScroll(fn ScrollFunc) Subscription {
	id := in.scroll.add(fn)
	return &subscription{cancel: func() { in.scroll.remove(id) }}
}

func (in *Input) EmitResize(vp Viewport) {
	in.resize.each(func(fn ResizeFunc) { fn(vp) })
}

func (in *Input) EmitScroll(offset float64) {
	in.scroll.each(func(fn ScrollFunc) { fn(offset) })
}

// ListenerCount returns the number of live resize and scroll listeners.
func (in *Input) ListenerCount() int {
	return len(in.resize.byID) + len(in.scroll.byID)
}
