package trending

import "testing"

func TestNewActivationTracker_Seed(t *testing.T) {
	tests := []struct {
		name       string
		ids        []string
		wantID     string
		wantActive bool
	}{
		{"empty list has no active id", nil, "", false},
		{"single record is active", []string{"a"}, "a", true},
		{"first of many is active", []string{"x", "y", "z"}, "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewActivationTracker(tt.ids)
			id, ok := tracker.ActiveID()
			if id != tt.wantID || ok != tt.wantActive {
				t.Errorf("ActiveID() = (%q, %v), expected (%q, %v)", id, ok, tt.wantID, tt.wantActive)
			}
		})
	}
}

func TestActivationTracker_OnVisibilityChanged(t *testing.T) {
	tests := []struct {
		name        string
		visible     []VisibleItem
		wantID      string
		wantChanged bool
	}{
		{
			name:        "first visible item wins",
			visible:     []VisibleItem{{ID: "b", Fraction: 0.8}, {ID: "c", Fraction: 1}},
			wantID:      "b",
			wantChanged: true,
		},
		{
			name:        "order beats fraction",
			visible:     []VisibleItem{{ID: "c", Fraction: 0.71}, {ID: "b", Fraction: 1}},
			wantID:      "c",
			wantChanged: true,
		},
		{
			name:        "empty keeps previous",
			visible:     nil,
			wantID:      "a",
			wantChanged: false,
		},
		{
			name:        "already active is not a change",
			visible:     []VisibleItem{{ID: "a", Fraction: 1}},
			wantID:      "a",
			wantChanged: false,
		},
		{
			name:        "unknown ids are skipped",
			visible:     []VisibleItem{{ID: "zzz", Fraction: 1}, {ID: "c", Fraction: 0.9}},
			wantID:      "c",
			wantChanged: true,
		},
		{
			name:        "only unknown ids keeps previous",
			visible:     []VisibleItem{{ID: "zzz", Fraction: 1}},
			wantID:      "a",
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewActivationTracker([]string{"a", "b", "c"})
			prev, changed := tracker.OnVisibilityChanged(tt.visible)

			if prev != "a" {
				t.Errorf("prev = %q, expected 'a'", prev)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, expected %v", changed, tt.wantChanged)
			}
			if id, _ := tracker.ActiveID(); id != tt.wantID {
				t.Errorf("ActiveID() = %q, expected %q", id, tt.wantID)
			}
		})
	}
}

func TestActivationTracker_Reset(t *testing.T) {
	tracker := NewActivationTracker([]string{"a", "b", "c"})
	tracker.Select("c")

	tracker.Reset([]string{"c", "d"})
	if id, _ := tracker.ActiveID(); id != "c" {
		t.Errorf("Active id should survive reset when present, got %q", id)
	}

	tracker.Reset([]string{"e", "f"})
	if id, _ := tracker.ActiveID(); id != "e" {
		t.Errorf("Active id should fall back to first id, got %q", id)
	}

	tracker.Reset(nil)
	if id, ok := tracker.ActiveID(); ok || id != "" {
		t.Errorf("Empty reset should clear active id, got (%q, %v)", id, ok)
	}

	tracker.Reset([]string{"g"})
	if id, ok := tracker.ActiveID(); !ok || id != "g" {
		t.Errorf("Reset after empty should seed first id, got (%q, %v)", id, ok)
	}
}

func TestActivationTracker_SelectUnknown(t *testing.T) {
	tracker := NewActivationTracker([]string{"a"})
	if _, changed := tracker.Select("missing"); changed {
		t.Error("Selecting an unknown id should not change activation")
	}
	if !tracker.IsActive("a") {
		t.Error("Expected 'a' to remain active")
	}
}
