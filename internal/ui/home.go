package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/reelfeed/internal/model"
)

// HomeScreen is the Home tab: greeting, search box and the trending
// carousel. Search routes swap the page for the results view.
type HomeScreen struct {
	localization *Localization
	navigator    *StackNavigator

	records  []model.VideoRecord
	trending *TrendingView

	welcome       *widget.Label
	title         *canvas.Text
	trendingLabel *widget.Label
	search        *SearchInput
	trendingSlot  *fyne.Container
	feedPage      *fyne.Container
	results       *SearchResultsView
	pages         *fyne.Container
}

// NewHomeScreen creates the Home tab around tv
func NewHomeScreen(navigator *StackNavigator, localization *Localization, tv *TrendingView, alert func(title, message string)) *HomeScreen {
	h := &HomeScreen{
		localization: localization,
		navigator:    navigator,
		trending:     tv,
		records:      tv.Carousel().Records(),
	}

	h.welcome = widget.NewLabel("")
	h.welcome.Importance = widget.LowImportance
	h.title = canvas.NewText("", ColorActiveTint)
	h.title.TextSize = 24
	h.title.TextStyle = fyne.TextStyle{Bold: true}

	logo := canvas.NewImageFromResource(LoadLogoResource())
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSquareSize(36))

	h.search = NewSearchInput("", navigator, localization, alert)
	h.trendingLabel = widget.NewLabel("")
	h.trendingSlot = container.NewStack(tv)

	header := container.NewBorder(nil, nil, nil, logo, container.NewVBox(h.welcome, h.title))
	h.feedPage = container.NewVBox(header, h.search, h.trendingLabel, h.trendingSlot)

	h.results = NewSearchResultsView(navigator, localization, alert, h.playFromResults, func() { navigator.Back() })
	h.pages = container.NewStack(container.NewVScroll(h.feedPage), h.results.Content())

	navigator.OnChange(h.onRoute)
	h.RefreshTexts()
	h.onRoute(navigator.Pathname())
	return h
}

// Content returns the tab content
func (h *HomeScreen) Content() fyne.CanvasObject {
	return h.pages
}

// Trending returns the carousel view
func (h *HomeScreen) Trending() *TrendingView {
	return h.trending
}

// Results returns the search results view
func (h *HomeScreen) Results() *SearchResultsView {
	return h.results
}

// Search returns the home search box
func (h *HomeScreen) Search() *SearchInput {
	return h.search
}

// SetRecords replaces the feed
func (h *HomeScreen) SetRecords(records []model.VideoRecord) {
	h.trending.SetRecords(records)
	h.records = h.trending.Carousel().Records()
	h.onRoute(h.navigator.Pathname())
}

// SetTrending swaps the carousel view, unmounting the previous one
func (h *HomeScreen) SetTrending(tv *TrendingView) {
	if h.trending != nil {
		h.trending.Unmount()
	}
	h.trending = tv
	h.records = tv.Carousel().Records()
	h.trendingSlot.Objects = []fyne.CanvasObject{tv}
	h.trendingSlot.Refresh()
}

// RefreshTexts reapplies localized texts
func (h *HomeScreen) RefreshTexts() {
	h.welcome.SetText(h.localization.GetText(KeyWelcomeBack))
	h.title.Text = h.localization.GetText(KeyAppTitle)
	h.title.Refresh()
	h.trendingLabel.SetText(h.localization.GetText(KeyTrendingVideos))
	h.search.RefreshTexts()
	h.results.RefreshTexts()
}

func (h *HomeScreen) onRoute(route string) {
	if query, ok := QueryFromRoute(route); ok {
		log.Printf("Showing search results for %q", query)
		h.results.Show(query, h.records)
		h.pages.Objects[0].Hide()
		h.pages.Objects[1].Show()
		return
	}
	h.pages.Objects[1].Hide()
	h.pages.Objects[0].Show()
}

func (h *HomeScreen) playFromResults(rec model.VideoRecord) {
	h.navigator.Reset()
	h.trending.ScrollToAndPlay(rec.ID)
}
