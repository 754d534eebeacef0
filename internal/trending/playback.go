package trending

import (
	"errors"
	"fmt"
	"log"

	"github.com/ytget/reelfeed/internal/model"
)

// Errors returned by playback operations
var (
	ErrUnknownRecord = errors.New("trending: unknown record")
	ErrUnmounted     = errors.New("trending: carousel unmounted")
)

// Surface is a live video surface playing one record
type Surface interface {
	// Release stops playback and frees the surface. It must be safe to call
	// after playback has already finished.
	Release()
}

// SurfaceProvider acquires video surfaces. onFinished must be invoked at most
// once, on the goroutine that drives the carousel, when playback reaches the
// natural end of the stream, and never from within Open itself.
type SurfaceProvider interface {
	Open(record model.VideoRecord, onFinished func()) (Surface, error)
}

// SurfaceProviderFunc adapts a function to SurfaceProvider
type SurfaceProviderFunc func(record model.VideoRecord, onFinished func()) (Surface, error)

// Open calls f
func (f SurfaceProviderFunc) Open(record model.VideoRecord, onFinished func()) (Surface, error) {
	return f(record, onFinished)
}

type heldSurface struct {
	surface Surface
	token   uint64
}

// PlaybackCoordinator keeps the per-card play flags and the video surfaces.
// A card renders video only while its flag is set and it is the active card,
// so activation can move by any path without touching the flags.
type PlaybackCoordinator struct {
	tracker  *ActivationTracker
	provider SurfaceProvider
	states   map[string]*PlaybackState
	surfaces map[string]heldSurface

	nextToken uint64
	finished  func(id string, token uint64)
}

// NewPlaybackCoordinator creates a coordinator bound to tracker. provider may
// be nil, in which case modes are tracked without acquiring surfaces.
// finished receives completion reports from surfaces.
func NewPlaybackCoordinator(tracker *ActivationTracker, provider SurfaceProvider, finished func(id string, token uint64)) *PlaybackCoordinator {
	return &PlaybackCoordinator{
		tracker:  tracker,
		provider: provider,
		states:   make(map[string]*PlaybackState),
		surfaces: make(map[string]heldSurface),
		finished: finished,
	}
}

// IsPlaying returns the local flag for id, which may be stale
func (c *PlaybackCoordinator) IsPlaying(id string) bool {
	st, ok := c.states[id]
	return ok && st.Playing
}

// IsRenderingVideo reports whether the card for id shows a video surface
func (c *PlaybackCoordinator) IsRenderingVideo(id string) bool {
	return c.IsPlaying(id) && c.tracker.IsActive(id)
}

// Mode returns the card mode for id
func (c *PlaybackCoordinator) Mode(id string) CardMode {
	if c.IsRenderingVideo(id) {
		return ModePlaying
	}
	return ModeThumbnail
}

// HasSurface reports whether a surface is held for id
func (c *PlaybackCoordinator) HasSurface(id string) bool {
	_, ok := c.surfaces[id]
	return ok
}

// RequestPlay handles a tap on the thumbnail of id. The card becomes active
// and starts playing.
func (c *PlaybackCoordinator) RequestPlay(record model.VideoRecord) error {
	id := record.ID
	if !c.tracker.Contains(id) {
		return fmt.Errorf("%w: %s", ErrUnknownRecord, id)
	}

	if prev, changed := c.tracker.Select(id); changed {
		log.Printf("Activation moved from %s to %s by tap", prev, id)
	}
	c.state(id).Playing = true

	c.releaseInactive()

	if err := c.acquire(record); err != nil {
		c.state(id).Playing = false
		return err
	}
	return nil
}

// OnPlaybackFinished clears the play flag of id. token identifies the
// surface that reported completion; reports from a surface that has already
// been released are ignored. A zero token is always accepted.
func (c *PlaybackCoordinator) OnPlaybackFinished(id string, token uint64) bool {
	held, ok := c.surfaces[id]
	if token != 0 && (!ok || held.token != token) {
		log.Printf("Ignoring completion from released surface %d of %s", token, id)
		return false
	}

	if st, ok := c.states[id]; ok {
		st.Playing = false
	}
	c.release(id)
	return true
}

// OnActivated is called after activation moved to id by scrolling or a list
// change. Surfaces of cards that are no longer active are released, and a
// play flag left over from an earlier activation of id is cleared.
func (c *PlaybackCoordinator) OnActivated(id string) {
	c.releaseInactive()
	c.clearStale(id)
}

// Retain drops state and surfaces for ids no longer in the tracked set. An
// active card left without a surface falls back to its thumbnail.
func (c *PlaybackCoordinator) Retain() {
	for id := range c.states {
		if !c.tracker.Contains(id) {
			delete(c.states, id)
		}
	}
	for id := range c.surfaces {
		if !c.tracker.Contains(id) {
			c.release(id)
		}
	}
	c.releaseInactive()

	if id, ok := c.tracker.ActiveID(); ok && c.provider != nil {
		c.clearStale(id)
	}
}

// ReleaseAll frees every surface and forgets all play flags
func (c *PlaybackCoordinator) ReleaseAll() {
	for id := range c.surfaces {
		c.release(id)
	}
	c.states = make(map[string]*PlaybackState)
}

func (c *PlaybackCoordinator) state(id string) *PlaybackState {
	st, ok := c.states[id]
	if !ok {
		st = &PlaybackState{}
		c.states[id] = st
	}
	return st
}

func (c *PlaybackCoordinator) clearStale(id string) {
	if c.IsPlaying(id) && !c.HasSurface(id) {
		log.Printf("Clearing stale play flag of %s", id)
		c.states[id].Playing = false
	}
}

func (c *PlaybackCoordinator) releaseInactive() {
	for id := range c.surfaces {
		if !c.IsRenderingVideo(id) {
			c.release(id)
		}
	}
}

func (c *PlaybackCoordinator) acquire(record model.VideoRecord) error {
	id := record.ID
	if c.provider == nil || c.HasSurface(id) {
		return nil
	}

	c.nextToken++
	token := c.nextToken
	surface, err := c.provider.Open(record, func() {
		if c.finished != nil {
			c.finished(id, token)
		}
	})
	if err != nil {
		return fmt.Errorf("open video surface for %s: %w", id, err)
	}

	c.surfaces[id] = heldSurface{surface: surface, token: token}
	log.Printf("Acquired video surface %d for %s", token, id)
	return nil
}

func (c *PlaybackCoordinator) release(id string) {
	held, ok := c.surfaces[id]
	if !ok {
		return
	}
	delete(c.surfaces, id)
	if held.surface != nil {
		held.surface.Release()
	}
	log.Printf("Released video surface %d for %s", held.token, id)
}
