package trending

// DefaultVisibilityThreshold is the fraction of a card that must be inside
// the viewport for it to count as visible
const DefaultVisibilityThreshold float32 = 0.70

// ItemBounds is the position of one card along the scroll axis
type ItemBounds struct {
	ID    string
	Start float32
	Size  float32
}

// VisibleItem is a card that passed the visibility threshold
type VisibleItem struct {
	ID       string
	Fraction float32
}

// VisibleItems returns the items whose visible fraction within the viewport
// [offset, offset+extent) is at least threshold, in the order of items.
// A threshold outside (0,1] falls back to DefaultVisibilityThreshold.
func VisibleItems(items []ItemBounds, offset, extent, threshold float32) []VisibleItem {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultVisibilityThreshold
	}
	if extent <= 0 {
		return nil
	}

	end := offset + extent
	var visible []VisibleItem
	for _, it := range items {
		if it.Size <= 0 {
			continue
		}
		lo := max(it.Start, offset)
		hi := min(it.Start+it.Size, end)
		if hi <= lo {
			continue
		}
		fraction := (hi - lo) / it.Size
		if fraction >= threshold {
			visible = append(visible, VisibleItem{ID: it.ID, Fraction: fraction})
		}
	}
	return visible
}
