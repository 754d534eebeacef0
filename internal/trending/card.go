package trending

import (
	"github.com/ytget/reelfeed/internal/model"
)

// CardMode is what a card renders
type CardMode int

const (
	// ModeThumbnail shows the thumbnail with a play overlay
	ModeThumbnail CardMode = iota
	// ModePlaying shows the video surface
	ModePlaying
)

// String returns the mode name
func (m CardMode) String() string {
	switch m {
	case ModeThumbnail:
		return "thumbnail"
	case ModePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// PlaybackState is the local play flag of one card
type PlaybackState struct {
	Playing bool
}

// CardView is the render instruction for a single card
type CardView struct {
	Key          string
	Index        int
	Record       model.VideoRecord
	Active       bool
	Mode         CardMode
	Presentation Presentation
}
