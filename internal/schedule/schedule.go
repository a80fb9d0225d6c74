// Package schedule models the multi-step learning rate decay used during
// training. The rate starts at the configured initial value and is multiplied
// by the decay factor at every boundary step.
package schedule

import (
	"github.com/MasonSBrown/NeXtSRGAN/internal/config"
)

// MultiStep is a piecewise-constant learning rate schedule.
type MultiStep struct {
	Initial    float64
	Boundaries []int
	Rate       float64
}

// FromConfig builds a schedule from the validated configuration section.
func FromConfig(lr *config.LearningRateSchedule) *MultiStep {
	boundaries := make([]int, len(lr.Steps))
	copy(boundaries, lr.Steps)

	return &MultiStep{
		Initial:    lr.Initial,
		Boundaries: boundaries,
		Rate:       lr.Rate,
	}
}

// LRAt returns the learning rate in effect at the given step.
// The decayed rate takes effect at the boundary step itself.
func (s *MultiStep) LRAt(step int) float64 {
	lr := s.Initial
	for _, boundary := range s.Boundaries {
		if step < boundary {
			break
		}
		lr *= s.Rate
	}
	return lr
}

// Segment is a half-open step interval [From, To) with a constant learning rate.
// The final segment has To equal to the total iteration count.
type Segment struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	LR   float64 `json:"lr"`
}

// Segments expands the schedule into the constant-rate intervals covering
// [0, niter). Boundaries at or beyond niter never take effect.
func (s *MultiStep) Segments(niter int) []Segment {
	var segments []Segment

	from := 0
	lr := s.Initial
	for _, boundary := range s.Boundaries {
		if boundary >= niter {
			break
		}
		segments = append(segments, Segment{From: from, To: boundary, LR: lr})
		from = boundary
		lr *= s.Rate
	}
	segments = append(segments, Segment{From: from, To: niter, LR: lr})

	return segments
}
