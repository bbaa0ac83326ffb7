package scene

import "github.com/iburimskiy/vortex-background/internal/config"

// ScrollKey is a paging key understood by ScrollSource.
type ScrollKey int

const (
	KeyLineDown ScrollKey = iota
	KeyLineUp
	KeyPageDown
	KeyPageUp
	KeyHome
	KeyEnd
)

// ScrollSource emulates a page scroll offset for a window that has no page.
// The offset stays within [0, PageLength].
type ScrollSource struct {
	cfg    config.Scroll
	offset float64
}

func NewScrollSource(cfg config.Scroll) *ScrollSource {
	return &ScrollSource{cfg: cfg}
}

// Wheel applies a wheel movement. Positive dy scrolls toward the top, as
// reported by ebiten. It reports whether the offset changed.
func (s *ScrollSource) Wheel(dy float64) bool {
	return s.set(s.offset - dy*s.cfg.WheelStep)
}

// Key applies one paging key press; pageHeight is the visible height.
func (s *ScrollSource) Key(k ScrollKey, pageHeight float64) bool {
	switch k {
	case KeyLineDown:
		return s.set(s.offset + s.cfg.KeyStep)
	case KeyLineUp:
		return s.set(s.offset - s.cfg.KeyStep)
	case KeyPageDown:
		return s.set(s.offset + pageHeight)
	case KeyPageUp:
		return s.set(s.offset - pageHeight)
	case KeyHome:
		return s.set(0)
	case KeyEnd:
		return s.set(s.cfg.PageLength)
	}
	return false
}

func (s *ScrollSource) Offset() float64 { return s.offset }

func (s *ScrollSource) set(v float64) bool {
	if v < 0 {
		v = 0
	}
	if v > s.cfg.PageLength {
		v = s.cfg.PageLength
	}
	if v == s.offset {
		return false
	}
	s.offset = v
	return true
}
