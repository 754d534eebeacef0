package trending

import (
	"fmt"
	"log"
	"time"

	"github.com/ytget/reelfeed/internal/model"
)

// Event is an input to the carousel. Events are applied strictly in the
// order they are passed to Apply.
type Event interface {
	apply(c *Carousel) error
}

// VisibilityEvent reports the cards currently visible in the viewport.
// Epoch, when non-zero, is the carousel epoch observed when the visibility
// was computed; events computed before a later tap are discarded.
type VisibilityEvent struct {
	Items []VisibleItem
	Epoch uint64
}

// PlayRequest is a tap on a card's thumbnail
type PlayRequest struct {
	ID string
}

// PlaybackFinished reports the natural end of playback for a card.
// Surface identifies the reporting surface; zero means the host reported it.
type PlaybackFinished struct {
	ID      string
	Surface uint64
}

func (e VisibilityEvent) apply(c *Carousel) error {
	if e.Epoch != 0 && e.Epoch < c.epoch {
		log.Printf("Discarding visibility computed at epoch %d (current %d)", e.Epoch, c.epoch)
		return nil
	}
	prev, changed := c.tracker.OnVisibilityChanged(e.Items)
	if changed {
		active, _ := c.tracker.ActiveID()
		log.Printf("Activation moved from %s to %s by scroll", prev, active)
		c.playback.OnActivated(active)
	}
	return nil
}

func (e PlayRequest) apply(c *Carousel) error {
	idx, ok := c.index[e.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRecord, e.ID)
	}
	c.epoch++
	return c.playback.RequestPlay(c.records[idx])
}

func (e PlaybackFinished) apply(c *Carousel) error {
	if _, ok := c.index[e.ID]; !ok {
		return nil
	}
	c.playback.OnPlaybackFinished(e.ID, e.Surface)
	return nil
}

// Options configures a Carousel
type Options struct {
	// Provider acquires video surfaces; nil tracks modes only
	Provider SurfaceProvider
	// TransitionDuration of the zoom animation. Zero uses the default and a
	// negative value switches the animation off.
	TransitionDuration time.Duration
	// OnChange receives the keys of cards whose render instruction changed
	OnChange func(keys []string)
}

// Carousel composes activation, playback and transitions for an ordered
// list of records. It is not safe for concurrent use: every method must be
// called from the goroutine that owns the UI.
type Carousel struct {
	records []model.VideoRecord
	index   map[string]int

	tracker   *ActivationTracker
	playback  *PlaybackCoordinator
	presenter *TransitionPresenter

	epoch     uint64
	onChange  func(keys []string)
	unmounted bool
}

// NewCarousel mounts a carousel over records. The first record becomes
// active.
func NewCarousel(records []model.VideoRecord, opts Options) *Carousel {
	duration := opts.TransitionDuration
	switch {
	case duration == 0:
		duration = DefaultTransitionDuration
	case duration < 0:
		duration = 0
	}

	c := &Carousel{
		epoch:    1,
		onChange: opts.OnChange,
	}
	c.setRecords(records)
	c.tracker = NewActivationTracker(model.RecordIDs(c.records))
	c.playback = NewPlaybackCoordinator(c.tracker, opts.Provider, func(id string, token uint64) {
		if err := c.Apply(PlaybackFinished{ID: id, Surface: token}); err != nil {
			log.Printf("Playback completion for %s not applied: %v", id, err)
		}
	})
	c.presenter = NewTransitionPresenter(c.tracker, duration)
	return c
}

// Apply processes one event and notifies OnChange with the affected keys
func (c *Carousel) Apply(ev Event) error {
	if c.unmounted {
		return ErrUnmounted
	}

	before := c.snapshot()
	err := ev.apply(c)
	c.notify(before)
	return err
}

// OnVisibilityChanged applies an unstamped visibility event
func (c *Carousel) OnVisibilityChanged(items []VisibleItem) {
	_ = c.Apply(VisibilityEvent{Items: items})
}

// RequestPlay applies a tap on the card for id
func (c *Carousel) RequestPlay(id string) error {
	return c.Apply(PlayRequest{ID: id})
}

// OnPlaybackFinished applies a host-reported end of playback for id
func (c *Carousel) OnPlaybackFinished(id string) {
	_ = c.Apply(PlaybackFinished{ID: id})
}

// SetRecords replaces the list. The active card is kept if it is still
// present, otherwise the first record becomes active. Play state of removed
// records is dropped and their surfaces released.
func (c *Carousel) SetRecords(records []model.VideoRecord) {
	if c.unmounted {
		return
	}
	before := c.snapshot()
	prev, _ := c.tracker.ActiveID()
	c.setRecords(records)
	c.tracker.Reset(model.RecordIDs(c.records))
	if active, ok := c.tracker.ActiveID(); ok && active != prev {
		log.Printf("Activation moved from %s to %s by list change", prev, active)
		c.playback.OnActivated(active)
	}
	c.playback.Retain()
	c.notify(before)
}

// Unmount releases every surface. The carousel ignores events afterwards.
func (c *Carousel) Unmount() {
	if c.unmounted {
		return
	}
	c.playback.ReleaseAll()
	c.unmounted = true
}

// Epoch returns the current event epoch. Hosts stamp visibility events with
// it when the computation may be delivered late.
func (c *Carousel) Epoch() uint64 {
	return c.epoch
}

// ActiveID returns the active record id and whether one exists
func (c *Carousel) ActiveID() (string, bool) {
	return c.tracker.ActiveID()
}

// Records returns the normalized records in display order
func (c *Carousel) Records() []model.VideoRecord {
	out := make([]model.VideoRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of cards
func (c *Carousel) Len() int {
	return len(c.records)
}

// Card returns the render instruction for id
func (c *Carousel) Card(id string) (CardView, bool) {
	idx, ok := c.index[id]
	if !ok {
		return CardView{}, false
	}
	return c.cardAt(idx), true
}

// Cards returns render instructions for all cards in order
func (c *Carousel) Cards() []CardView {
	views := make([]CardView, len(c.records))
	for i := range c.records {
		views[i] = c.cardAt(i)
	}
	return views
}

func (c *Carousel) cardAt(idx int) CardView {
	rec := c.records[idx]
	return CardView{
		Key:          rec.ID,
		Index:        idx,
		Record:       rec,
		Active:       c.tracker.IsActive(rec.ID),
		Mode:         c.playback.Mode(rec.ID),
		Presentation: c.presenter.PresentationFor(rec.ID),
	}
}

func (c *Carousel) setRecords(records []model.VideoRecord) {
	c.records = model.NormalizeRecords(records)
	c.index = make(map[string]int, len(c.records))
	for i, rec := range c.records {
		c.index[rec.ID] = i
	}
}

type cardSnapshot struct {
	index  int
	active bool
	mode   CardMode
}

func (c *Carousel) snapshot() map[string]cardSnapshot {
	if c.onChange == nil {
		return nil
	}
	snap := make(map[string]cardSnapshot, len(c.records))
	for i, rec := range c.records {
		snap[rec.ID] = cardSnapshot{
			index:  i,
			active: c.tracker.IsActive(rec.ID),
			mode:   c.playback.Mode(rec.ID),
		}
	}
	return snap
}

func (c *Carousel) notify(before map[string]cardSnapshot) {
	if c.onChange == nil {
		return
	}
	after := c.snapshot()

	var keys []string
	for _, rec := range c.records {
		prev, existed := before[rec.ID]
		if !existed || prev != after[rec.ID] {
			keys = append(keys, rec.ID)
		}
	}
	if len(keys) > 0 {
		c.onChange(keys)
	}
}
