package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/reelfeed/internal/model"
)

// CreateScreen is the Create tab: a form that adds a video to the feed
type CreateScreen struct {
	window       fyne.Window
	localization *Localization
	onSubmit     func(model.VideoRecord) error

	heading    *widget.Label
	titleEntry *widget.Entry
	videoEntry *widget.Entry
	thumbEntry *widget.Entry
	browseBtn  *widget.Button
	form       *widget.Form
	content    *fyne.Container
}

// NewCreateScreen creates the form. onSubmit receives the new record; an
// error keeps the form filled.
func NewCreateScreen(window fyne.Window, localization *Localization, onSubmit func(model.VideoRecord) error) *CreateScreen {
	s := &CreateScreen{
		window:       window,
		localization: localization,
		onSubmit:     onSubmit,
	}

	s.heading = widget.NewLabel("")
	s.heading.TextStyle = fyne.TextStyle{Bold: true}

	s.titleEntry = widget.NewEntry()
	s.videoEntry = widget.NewEntry()
	s.videoEntry.Validator = s.required
	s.thumbEntry = widget.NewEntry()

	s.browseBtn = widget.NewButton("", s.onBrowse)

	s.form = widget.NewForm()
	s.form.OnSubmit = s.Submit
	s.RefreshTexts()

	s.content = container.NewVBox(s.heading, s.form)
	return s
}

// Content returns the tab content
func (s *CreateScreen) Content() fyne.CanvasObject {
	return container.NewPadded(s.content)
}

// RefreshTexts reapplies localized texts
func (s *CreateScreen) RefreshTexts() {
	s.heading.SetText(s.localization.GetText(KeyUploadVideo))
	s.browseBtn.SetText(s.localization.GetText(KeyBrowse))
	s.form.SubmitText = s.localization.GetText(KeyPublish)
	s.form.Items = []*widget.FormItem{
		widget.NewFormItem(s.localization.GetText(KeyVideoTitle), s.titleEntry),
		widget.NewFormItem(s.localization.GetText(KeyVideoSource), container.NewBorder(nil, nil, nil, s.browseBtn, s.videoEntry)),
		widget.NewFormItem(s.localization.GetText(KeyThumbnailSource), s.thumbEntry),
	}
	s.form.Refresh()
}

// Record returns the record described by the form
func (s *CreateScreen) Record() model.VideoRecord {
	return model.VideoRecord{
		Title:           strings.TrimSpace(s.titleEntry.Text),
		VideoSource:     strings.TrimSpace(s.videoEntry.Text),
		ThumbnailSource: strings.TrimSpace(s.thumbEntry.Text),
	}
}

// Submit validates the form and hands the record over
func (s *CreateScreen) Submit() {
	if err := s.required(s.videoEntry.Text); err != nil {
		dialog.ShowError(err, s.window)
		return
	}
	if s.onSubmit == nil {
		return
	}
	if err := s.onSubmit(s.Record()); err != nil {
		dialog.ShowError(err, s.window)
		return
	}
	s.Clear()
}

// Clear empties the form
func (s *CreateScreen) Clear() {
	s.titleEntry.SetText("")
	s.videoEntry.SetText("")
	s.thumbEntry.SetText("")
}

func (s *CreateScreen) required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(s.localization.GetText(KeyRequiredField))
	}
	return nil
}

func (s *CreateScreen) onBrowse() {
	dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer r.Close()
		s.videoEntry.SetText(r.URI().Path())
	}, s.window)
}
