package platform

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/reelfeed/internal/model"
)

// FeedSource supplies an ordered list of video records
type FeedSource interface {
	Name() string
	Load(ctx context.Context) ([]model.VideoRecord, error)
}

// LoadFeeds loads all sources concurrently and concatenates their records in
// source order. The merged list is normalized, so the first occurrence of an
// id wins. Any source error cancels the rest and is returned.
func LoadFeeds(ctx context.Context, sources ...FeedSource) ([]model.VideoRecord, error) {
	results := make([][]model.VideoRecord, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			records, err := src.Load(ctx)
			if err != nil {
				return fmt.Errorf("load feed %s: %w", src.Name(), err)
			}
			log.Printf("Loaded %d records from %s", len(records), src.Name())
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []model.VideoRecord
	for _, records := range results {
		merged = append(merged, records...)
	}
	return model.NormalizeRecords(merged), nil
}

// StaticSource serves a fixed list of records
type StaticSource struct {
	Label   string
	Records []model.VideoRecord
}

// Name returns the source label
func (s StaticSource) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

// Load returns a copy of the records
func (s StaticSource) Load(ctx context.Context) ([]model.VideoRecord, error) {
	out := make([]model.VideoRecord, len(s.Records))
	copy(out, s.Records)
	return out, nil
}
