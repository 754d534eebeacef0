package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/reelfeed/internal/model"
)

// SearchResultsView lists the videos whose title matches a query
type SearchResultsView struct {
	localization *Localization
	onSelect     func(model.VideoRecord)
	onBack       func()

	query   string
	matches []model.VideoRecord

	heading *widget.Label
	search  *SearchInput
	list    *widget.List
	empty   *widget.Label
	content *fyne.Container
}

// NewSearchResultsView creates the results page. Its own search box lets the
// user refine the query in place.
func NewSearchResultsView(navigator Navigator, localization *Localization, alert func(title, message string), onSelect func(model.VideoRecord), onBack func()) *SearchResultsView {
	v := &SearchResultsView{
		localization: localization,
		onSelect:     onSelect,
		onBack:       onBack,
	}

	v.heading = widget.NewLabel("")
	v.heading.TextStyle = fyne.TextStyle{Bold: true}
	v.heading.Truncation = fyne.TextTruncateEllipsis

	v.search = NewSearchInput("", navigator, localization, alert)

	v.list = widget.NewList(
		func() int { return len(v.matches) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.TextStyle = fyne.TextStyle{Bold: true}
			title.Truncation = fyne.TextTruncateEllipsis
			source := widget.NewLabel("")
			source.Truncation = fyne.TextTruncateEllipsis
			source.Importance = widget.LowImportance
			return container.NewBorder(nil, nil, widget.NewIcon(theme.MediaPlayIcon()), nil, container.NewVBox(title, source))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(v.matches) {
				return
			}
			rec := v.matches[id]
			labels := obj.(*fyne.Container).Objects[0].(*fyne.Container).Objects
			labels[0].(*widget.Label).SetText(rec.GetDisplayTitle())
			labels[1].(*widget.Label).SetText(rec.VideoSource)
		},
	)
	v.list.OnSelected = func(id widget.ListItemID) {
		v.list.UnselectAll()
		if id < 0 || id >= len(v.matches) || v.onSelect == nil {
			return
		}
		v.onSelect(v.matches[id])
	}

	v.empty = widget.NewLabel("")
	v.empty.Alignment = fyne.TextAlignCenter

	backBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if v.onBack != nil {
			v.onBack()
		}
	})
	backBtn.Importance = widget.LowImportance

	header := container.NewVBox(
		container.NewBorder(nil, nil, backBtn, nil, v.heading),
		v.search,
	)
	v.content = container.NewBorder(header, nil, nil, nil, container.NewStack(v.list, v.empty))
	return v
}

// Show displays the records of feed that match query
func (v *SearchResultsView) Show(query string, feed []model.VideoRecord) {
	v.query = query
	v.matches = model.FilterByTitle(feed, query)
	v.search.SetQuery(query)
	v.refreshTexts()
	v.list.Refresh()
}

// Matches returns the records currently listed
func (v *SearchResultsView) Matches() []model.VideoRecord {
	return v.matches
}

// RefreshTexts reapplies localized texts
func (v *SearchResultsView) RefreshTexts() {
	v.search.RefreshTexts()
	v.refreshTexts()
}

func (v *SearchResultsView) refreshTexts() {
	v.heading.SetText(v.localization.Format(KeySearchResults, v.query))
	v.empty.SetText(v.localization.GetText(KeyNoVideosFound))
	if len(v.matches) == 0 {
		v.empty.Show()
	} else {
		v.empty.Hide()
	}
}

// Content returns the page
func (v *SearchResultsView) Content() fyne.CanvasObject {
	return v.content
}
