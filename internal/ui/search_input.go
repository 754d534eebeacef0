package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SearchInput is the rounded search box with a search button
type SearchInput struct {
	widget.BaseWidget

	entry        *widget.Entry
	button       *widget.Button
	navigator    Navigator
	localization *Localization
	alert        func(title, message string)
}

// NewSearchInput creates a search box prefilled with initialQuery. alert
// shows a titled message to the user.
func NewSearchInput(initialQuery string, navigator Navigator, localization *Localization, alert func(title, message string)) *SearchInput {
	s := &SearchInput{
		navigator:    navigator,
		localization: localization,
		alert:        alert,
	}

	s.entry = widget.NewEntry()
	s.entry.SetPlaceHolder(localization.GetText(KeySearchPlaceholder))
	s.entry.SetText(initialQuery)
	s.entry.OnSubmitted = func(string) { s.Submit() }

	s.button = widget.NewButtonWithIcon("", theme.SearchIcon(), s.Submit)
	s.button.Importance = widget.LowImportance

	s.ExtendBaseWidget(s)
	return s
}

// Query returns the current text
func (s *SearchInput) Query() string {
	return s.entry.Text
}

// SetQuery replaces the current text
func (s *SearchInput) SetQuery(query string) {
	s.entry.SetText(query)
}

// RefreshTexts reapplies localized texts
func (s *SearchInput) RefreshTexts() {
	s.entry.SetPlaceHolder(s.localization.GetText(KeySearchPlaceholder))
}

// Submit runs the search. An empty query raises the missing query alert.
// On a search route the query parameter is replaced, elsewhere the search
// route is pushed.
func (s *SearchInput) Submit() {
	query := s.entry.Text
	if query == "" {
		if s.alert != nil {
			s.alert(s.localization.GetText(KeyMissingQuery), s.localization.GetText(KeyMissingQueryMessage))
		}
		return
	}

	if isSearchRoute(s.navigator.Pathname()) {
		s.navigator.SetParams(map[string]string{"query": query})
		return
	}
	s.navigator.Push(SearchRoute(query))
}

func isSearchRoute(route string) bool {
	return strings.HasPrefix(route, RouteSearch)
}

// MinSize keeps the box at least one touch row high
func (s *SearchInput) MinSize() fyne.Size {
	min := s.BaseWidget.MinSize()
	if min.Height < SearchInputHeight {
		min.Height = SearchInputHeight
	}
	return min
}

// CreateRenderer creates the widget renderer
func (s *SearchInput) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, s.button, s.entry))
}
