package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

type fakeNavigator struct {
	path   string
	pushed []string
	params []map[string]string
}

func (n *fakeNavigator) Pathname() string { return n.path }

func (n *fakeNavigator) Push(route string) { n.pushed = append(n.pushed, route) }

func (n *fakeNavigator) SetParams(params map[string]string) {
	n.params = append(n.params, params)
}

type alertRecorder struct {
	titles   []string
	messages []string
}

func (a *alertRecorder) show(title, message string) {
	a.titles = append(a.titles, title)
	a.messages = append(a.messages, message)
}

func TestSearchInput_EmptyQueryAlerts(t *testing.T) {
	test.NewTempApp(t)
	nav := &fakeNavigator{path: RouteHome}
	alerts := &alertRecorder{}

	s := NewSearchInput("", nav, NewLocalization(), alerts.show)
	s.Submit()

	if len(alerts.titles) != 1 {
		t.Fatalf("got %d alerts, expected 1", len(alerts.titles))
	}
	if alerts.titles[0] != "Missing Query" {
		t.Errorf("alert title = %q", alerts.titles[0])
	}
	if alerts.messages[0] != "Please input something to search results across database" {
		t.Errorf("alert message = %q", alerts.messages[0])
	}
	if len(nav.pushed) != 0 || len(nav.params) != 0 {
		t.Error("empty query must not navigate")
	}
}

func TestSearchInput_PushesSearchRoute(t *testing.T) {
	test.NewTempApp(t)
	nav := &fakeNavigator{path: RouteHome}

	s := NewSearchInput("", nav, NewLocalization(), nil)
	test.Type(s.entry, "funny cats")
	s.Submit()

	if len(nav.pushed) != 1 || nav.pushed[0] != "/search/funny%20cats" {
		t.Errorf("pushed = %v, expected [/search/funny%%20cats]", nav.pushed)
	}
	if len(nav.params) != 0 {
		t.Error("SetParams should not be used outside a search route")
	}
}

func TestSearchInput_ReplacesQueryOnSearchRoute(t *testing.T) {
	test.NewTempApp(t)
	nav := &fakeNavigator{path: "/search/dogs"}

	s := NewSearchInput("dogs", nav, NewLocalization(), nil)
	if s.Query() != "dogs" {
		t.Errorf("Query() = %q, expected initial query", s.Query())
	}

	s.SetQuery("cats")
	s.Submit()

	if len(nav.params) != 1 || nav.params[0]["query"] != "cats" {
		t.Errorf("params = %v, expected query=cats", nav.params)
	}
	if len(nav.pushed) != 0 {
		t.Error("Push should not be used on a search route")
	}
}

func TestSearchInput_Placeholder(t *testing.T) {
	test.NewTempApp(t)
	loc := NewLocalization()
	s := NewSearchInput("", &fakeNavigator{}, loc, nil)

	if s.entry.PlaceHolder != "Search a video topic" {
		t.Errorf("PlaceHolder = %q", s.entry.PlaceHolder)
	}

	loc.SetLanguage("pt")
	s.RefreshTexts()
	if s.entry.PlaceHolder != loc.GetText(KeySearchPlaceholder) {
		t.Errorf("PlaceHolder = %q after language change", s.entry.PlaceHolder)
	}
	if s.MinSize().Height < SearchInputHeight {
		t.Errorf("MinSize().Height = %v, expected at least %v", s.MinSize().Height, SearchInputHeight)
	}
}
