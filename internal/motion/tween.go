package motion

// Tween moves a scalar from its current value to a target over a fixed
// duration following a Curve. Starting a new transition replaces the one in
// flight, beginning from wherever the value currently is.
type Tween struct {
	value    float64
	from     float64
	to       float64
	elapsed  float64
	duration float64
	curve    Curve
	active   bool
}

func NewTween(v float64) Tween {
	return Tween{value: v, from: v, to: v}
}

// Set snaps to v and cancels any transition.
func (t *Tween) Set(v float64) {
	*t = NewTween(v)
}

// Start begins a transition toward to. A non-positive duration snaps.
func (t *Tween) Start(to, duration float64, curve Curve) {
	if duration <= 0 || curve == nil {
		t.Set(to)
		return
	}
	t.from = t.value
	t.to = to
	t.elapsed = 0
	t.duration = duration
	t.curve = curve
	t.active = true
}

// Advance moves the transition forward by dt seconds and reports whether it
// finished during this call.
func (t *Tween) Advance(dt float64) bool {
	if !t.active {
		return false
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.duration {
		t.value = t.to
		t.active = false
		return true
	}
	t.value = t.from + (t.to-t.from)*t.curve(t.elapsed/t.duration)
	return false
}

func (t *Tween) Value() float64  { return t.value }
func (t *Tween) Target() float64 { return t.to }
func (t *Tween) Active() bool    { return t.active }
