package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/reelfeed/internal/model"
)

func TestCreateScreen_Submit(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))

	var got []model.VideoRecord
	s := NewCreateScreen(w, NewLocalization(), func(rec model.VideoRecord) error {
		got = append(got, rec)
		return nil
	})

	s.titleEntry.SetText("  My clip ")
	s.videoEntry.SetText(" https://cdn.example.com/clip.mp4 ")
	s.Submit()

	if len(got) != 1 {
		t.Fatalf("onSubmit called %d times, expected 1", len(got))
	}
	expected := model.VideoRecord{Title: "My clip", VideoSource: "https://cdn.example.com/clip.mp4"}
	if got[0] != expected {
		t.Errorf("record = %+v, expected %+v", got[0], expected)
	}
	if s.titleEntry.Text != "" || s.videoEntry.Text != "" {
		t.Error("form should be cleared after a successful submit")
	}
}

func TestCreateScreen_RequiresVideo(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))

	called := false
	s := NewCreateScreen(w, NewLocalization(), func(model.VideoRecord) error {
		called = true
		return nil
	})

	s.titleEntry.SetText("No source")
	s.Submit()

	if called {
		t.Error("onSubmit must not be called without a video source")
	}
	if s.videoEntry.Validate() == nil {
		t.Error("empty video source should fail validation")
	}
}

func TestCreateScreen_KeepsFormOnError(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))

	s := NewCreateScreen(w, NewLocalization(), func(model.VideoRecord) error {
		return errors.New("duplicate")
	})

	s.videoEntry.SetText("clip.mp4")
	s.Submit()

	if s.videoEntry.Text != "clip.mp4" {
		t.Error("form should keep its values when publishing fails")
	}
}

func TestCreateScreen_Localized(t *testing.T) {
	test.NewTempApp(t)
	loc := NewLocalization()
	s := NewCreateScreen(test.NewTempWindow(t, widget.NewLabel("")), loc, nil)

	if s.form.SubmitText != "Submit & Publish" {
		t.Errorf("SubmitText = %q", s.form.SubmitText)
	}
	if len(s.form.Items) != 3 {
		t.Errorf("form has %d items, expected 3", len(s.form.Items))
	}

	loc.SetLanguage("ru")
	s.RefreshTexts()
	if s.heading.Text != loc.GetText(KeyUploadVideo) {
		t.Errorf("heading = %q after language change", s.heading.Text)
	}
}
