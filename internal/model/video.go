package model

import (
	"log"
	"strings"

	"github.com/google/uuid"
)

// VideoRecord is a single item of a video feed. Records are read-only once
// handed to the UI.
type VideoRecord struct {
	ID              string `yaml:"id" json:"id"`
	Title           string `yaml:"title,omitempty" json:"title,omitempty"`
	VideoSource     string `yaml:"video" json:"video"`
	ThumbnailSource string `yaml:"thumbnail" json:"thumbnail"`
}

// DerivedIDPrefix marks ids that were computed from the video locator
const DerivedIDPrefix = "src-"

// DeriveID returns a stable id for a video locator. The same locator always
// yields the same id, so keys survive reordering of the feed.
func DeriveID(videoSource string) string {
	src := strings.TrimSpace(videoSource)
	if src == "" {
		return ""
	}
	return DerivedIDPrefix + uuid.NewSHA1(uuid.NameSpaceURL, []byte(src)).String()
}

// GetDisplayTitle returns title or the video locator
func (r VideoRecord) GetDisplayTitle() string {
	if t := strings.TrimSpace(r.Title); t != "" {
		return t
	}
	return r.VideoSource
}

// HasThumbnail reports whether the record carries a thumbnail locator
func (r VideoRecord) HasThumbnail() bool {
	return strings.TrimSpace(r.ThumbnailSource) != ""
}

// NormalizeRecords cleans a feed for display. Records without id get one
// derived from their video locator; records with neither are dropped, as are
// repeated ids after their first occurrence. Input order is preserved.
func NormalizeRecords(records []VideoRecord) []VideoRecord {
	out := make([]VideoRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, rec := range records {
		rec.ID = strings.TrimSpace(rec.ID)
		rec.VideoSource = strings.TrimSpace(rec.VideoSource)
		rec.ThumbnailSource = strings.TrimSpace(rec.ThumbnailSource)
		rec.Title = strings.Join(strings.Fields(rec.Title), " ")

		if rec.ID == "" {
			rec.ID = DeriveID(rec.VideoSource)
			if rec.ID == "" {
				log.Printf("Dropping record %d: no id and no video source", i)
				continue
			}
		}

		if _, dup := seen[rec.ID]; dup {
			log.Printf("Dropping record %d: duplicate id %s", i, rec.ID)
			continue
		}
		seen[rec.ID] = struct{}{}
		out = append(out, rec)
	}

	return out
}

// RecordIDs returns the ids of records in order
func RecordIDs(records []VideoRecord) []string {
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	return ids
}

// FilterByTitle returns records whose display title contains query,
// case-insensitively. An empty query returns all records.
func FilterByTitle(records []VideoRecord, query string) []VideoRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}

	var matched []VideoRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.GetDisplayTitle()), q) {
			matched = append(matched, rec)
		}
	}
	return matched
}
