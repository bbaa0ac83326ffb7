package motion

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAttack
	PhaseDecay
)

func (p Phase) String() string {
	switch p {
	case PhaseAttack:
		return "attack"
	case PhaseDecay:
		return "decay"
	}
	return "idle"
}

// Envelope is an attack/decay response around a baseline: Trigger drives the
// value quickly toward a peak, then it returns to baseline along the decay
// curve. Trigger during either phase restarts the attack from the current
// value; boosts never stack.
type Envelope struct {
	tween Tween
	phase Phase

	base     float64
	min, max float64

	attack      float64
	decay       float64
	attackCurve Curve
	decayCurve  Curve
}

type EnvelopeConfig struct {
	Base, Min, Max float64

	AttackSeconds float64
	DecaySeconds  float64
	AttackCurve   Curve
	DecayCurve    Curve
}

func NewEnvelope(cfg EnvelopeConfig) Envelope {
	return Envelope{
		tween:       NewTween(cfg.Base),
		base:        cfg.Base,
		min:         cfg.Min,
		max:         cfg.Max,
		attack:      cfg.AttackSeconds,
		decay:       cfg.DecaySeconds,
		attackCurve: cfg.AttackCurve,
		decayCurve:  cfg.DecayCurve,
	}
}

// Trigger cancels whatever is in flight and starts the attack toward peak
// from the visible value, so a retrigger during overshoot rises at once.
func (e *Envelope) Trigger(peak float64) {
	e.tween.Set(e.Value())
	e.tween.Start(e.clamp(peak), e.attack, e.attackCurve)
	e.phase = PhaseAttack
	if !e.tween.Active() {
		e.startDecay()
	}
}

func (e *Envelope) Advance(dt float64) {
	switch e.phase {
	case PhaseAttack:
		if e.tween.Advance(dt) {
			e.startDecay()
		}
	case PhaseDecay:
		if e.tween.Advance(dt) {
			e.phase = PhaseIdle
		}
	}
}

func (e *Envelope) startDecay() {
	e.tween.Start(e.base, e.decay, e.decayCurve)
	e.phase = PhaseDecay
	if !e.tween.Active() {
		e.phase = PhaseIdle
	}
}

// Value is the current output, clamped to the envelope's bounds so elastic
// overshoot cannot run away.
func (e *Envelope) Value() float64 { return e.clamp(e.tween.Value()) }

func (e *Envelope) Phase() Phase { return e.phase }

func (e *Envelope) Base() float64 { return e.base }

func (e *Envelope) clamp(v float64) float64 {
	if v < e.min {
		return e.min
	}
	if v > e.max {
		return e.max
	}
	return v
}
