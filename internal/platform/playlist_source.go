package platform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/reelfeed/internal/model"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// ErrNoPlaylist is returned when a playlist id cannot be extracted
var ErrNoPlaylist = errors.New("no playlist id")

// PlaylistSource loads a YouTube playlist as a feed
type PlaylistSource struct {
	playlistID string
	timeout    time.Duration
}

// NewPlaylistSource accepts either a bare playlist id or a URL carrying list=
func NewPlaylistSource(idOrURL string) (*PlaylistSource, error) {
	id := extractPlaylistID(idOrURL)
	if id == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoPlaylist, idOrURL)
	}
	return &PlaylistSource{playlistID: id, timeout: DefaultParseTimeout}, nil
}

// SetTimeout sets the timeout for loading the playlist
func (p *PlaylistSource) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// PlaylistID returns the playlist id
func (p *PlaylistSource) PlaylistID() string {
	return p.playlistID
}

// Name returns a label for logs
func (p *PlaylistSource) Name() string {
	return "playlist " + p.playlistID
}

// Load fetches all playlist items
func (p *PlaylistSource) Load(ctx context.Context) ([]model.VideoRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, p.playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	records := make([]model.VideoRecord, 0, len(items))
	for _, it := range items {
		records = append(records, playlistRecord(it.VideoID, it.Title))
	}
	return records, nil
}

func playlistRecord(videoID, title string) model.VideoRecord {
	return model.VideoRecord{
		ID:              videoID,
		Title:           title,
		VideoSource:     fmt.Sprintf(YouTubeVideoURLTemplate, videoID),
		ThumbnailSource: fmt.Sprintf(YouTubeThumbnailURLTemplate, videoID),
	}
}

// extractPlaylistID returns the value of list= from a URL, or the input
// itself when it is a bare id
func extractPlaylistID(idOrURL string) string {
	s := strings.TrimSpace(idOrURL)
	if strings.Contains(s, PlaylistParam) {
		parts := strings.Split(s, PlaylistParam)
		playlistPart := parts[1]
		if strings.Contains(playlistPart, ParamSeparator) {
			playlistPart = strings.Split(playlistPart, ParamSeparator)[0]
		}
		return playlistPart
	}
	if strings.ContainsAny(s, "/?=& ") {
		return ""
	}
	return s
}
