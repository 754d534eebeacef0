package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Timeout constants
const (
	DefaultThumbnailTimeout = 10 * time.Second
)

// URL templates
const (
	YouTubeVideoURLTemplate     = "https://www.youtube.com/watch?v=%s"
	YouTubeThumbnailURLTemplate = "https://i.ytimg.com/vi/%s/hqdefault.jpg"
)

// ErrNoThumbnail is returned when a page advertises no preview image
var ErrNoThumbnail = errors.New("no thumbnail found")

// thumbnailSelectors are tried in order; the first non-empty value wins
var thumbnailSelectors = []struct {
	selector string
	attr     string
}{
	{`meta[property="og:image"]`, "content"},
	{`meta[property="og:image:url"]`, "content"},
	{`meta[name="twitter:image"]`, "content"},
	{`link[rel="image_src"]`, "href"},
}

// ThumbnailResolver finds a preview image for a video page
type ThumbnailResolver struct {
	client  *http.Client
	timeout time.Duration
}

// NewThumbnailResolver creates a resolver; a nil client uses http.DefaultClient
func NewThumbnailResolver(client *http.Client) *ThumbnailResolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &ThumbnailResolver{client: client, timeout: DefaultThumbnailTimeout}
}

// SetTimeout sets the timeout for a single lookup
func (r *ThumbnailResolver) SetTimeout(timeout time.Duration) {
	r.timeout = timeout
}

// Resolve returns the thumbnail locator for pageURL. YouTube links are
// mapped without a request; other pages are fetched and their Open Graph
// metadata is read.
func (r *ThumbnailResolver) Resolve(ctx context.Context, pageURL string) (string, error) {
	if id := YouTubeVideoID(pageURL); id != "" {
		return fmt.Sprintf(YouTubeThumbnailURLTemplate, id), nil
	}

	base, err := url.Parse(pageURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") {
		return "", fmt.Errorf("%w: %s is not a web page", ErrNoThumbnail, pageURL)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") {
		return "", fmt.Errorf("%w: %s serves %s", ErrNoThumbnail, pageURL, ct)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", pageURL, err)
	}

	for _, sel := range thumbnailSelectors {
		value, ok := doc.Find(sel.selector).First().Attr(sel.attr)
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			continue
		}
		ref, err := url.Parse(value)
		if err != nil {
			continue
		}
		return base.ResolveReference(ref).String(), nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoThumbnail, pageURL)
}

// YouTubeVideoID extracts the video id from watch, short and youtu.be links
func YouTubeVideoID(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "m.")
	path := strings.Trim(u.Path, "/")

	switch host {
	case "youtu.be":
		return firstSegment(path)
	case "youtube.com", "music.youtube.com":
		if path == "watch" {
			return u.Query().Get("v")
		}
		if rest, ok := strings.CutPrefix(path, "shorts/"); ok {
			return firstSegment(rest)
		}
		if rest, ok := strings.CutPrefix(path, "embed/"); ok {
			return firstSegment(rest)
		}
	}
	return ""
}

func firstSegment(path string) string {
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}
