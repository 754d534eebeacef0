package trending

import "time"

// Zoom transition defaults
const (
	EmphasizedScale   float32 = 1.0
	DeemphasizedScale float32 = 0.9

	DefaultTransitionDuration = 500 * time.Millisecond
)

// Emphasis is the visual weight of a card
type Emphasis int

const (
	Deemphasized Emphasis = iota
	Emphasized
)

// String returns the emphasis name
func (e Emphasis) String() string {
	if e == Emphasized {
		return "emphasized"
	}
	return "de-emphasized"
}

// Presentation describes the zoom transition a card runs
type Presentation struct {
	Emphasis  Emphasis
	FromScale float32
	ToScale   float32
	Duration  time.Duration
}

// ScaleAt interpolates the scale for progress in [0,1]
func (p Presentation) ScaleAt(progress float32) float32 {
	if progress <= 0 {
		return p.FromScale
	}
	if progress >= 1 {
		return p.ToScale
	}
	return p.FromScale + (p.ToScale-p.FromScale)*progress
}

// TransitionPresenter maps activation to per-card zoom transitions. It keeps
// no animation state; every call re-derives the transition.
type TransitionPresenter struct {
	tracker  *ActivationTracker
	duration time.Duration
}

// NewTransitionPresenter creates a presenter. A negative duration falls back
// to DefaultTransitionDuration.
func NewTransitionPresenter(tracker *ActivationTracker, duration time.Duration) *TransitionPresenter {
	if duration < 0 {
		duration = DefaultTransitionDuration
	}
	return &TransitionPresenter{tracker: tracker, duration: duration}
}

// PresentationFor returns zoom-in for the active card and zoom-out otherwise
func (p *TransitionPresenter) PresentationFor(id string) Presentation {
	if p.tracker.IsActive(id) {
		return Presentation{
			Emphasis:  Emphasized,
			FromScale: DeemphasizedScale,
			ToScale:   EmphasizedScale,
			Duration:  p.duration,
		}
	}
	return Presentation{
		Emphasis:  Deemphasized,
		FromScale: EmphasizedScale,
		ToScale:   DeemphasizedScale,
		Duration:  p.duration,
	}
}
