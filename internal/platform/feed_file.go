package platform

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/reelfeed/internal/model"
)

// FeedFile is the on-disk layout of a YAML feed
type FeedFile struct {
	Videos []model.VideoRecord `yaml:"videos"`
}

// FileSource reads records from a YAML feed file. Records without a
// thumbnail are completed through Resolver when one is set.
type FileSource struct {
	Path     string
	Resolver *ThumbnailResolver
}

// NewFileSource creates a file source for path
func NewFileSource(path string, resolver *ThumbnailResolver) *FileSource {
	return &FileSource{Path: ExpandHome(path), Resolver: resolver}
}

// Name returns the file path
func (f *FileSource) Name() string {
	return f.Path
}

// Load parses the feed file. A missing file yields an empty feed.
func (f *FileSource) Load(ctx context.Context) ([]model.VideoRecord, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Feed file %s does not exist, using empty feed", f.Path)
			return nil, nil
		}
		return nil, fmt.Errorf("read feed: %w", err)
	}

	var feed FeedFile
	if err := yaml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	if f.Resolver != nil {
		for i := range feed.Videos {
			rec := &feed.Videos[i]
			if rec.HasThumbnail() || rec.VideoSource == "" {
				continue
			}
			thumb, err := f.Resolver.Resolve(ctx, rec.VideoSource)
			if err != nil {
				log.Printf("No thumbnail for %s: %v", rec.VideoSource, err)
				continue
			}
			rec.ThumbnailSource = thumb
		}
	}

	return feed.Videos, nil
}
