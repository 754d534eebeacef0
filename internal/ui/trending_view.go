package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/reelfeed/internal/model"
	"github.com/ytget/reelfeed/internal/trending"
)

// carouselGeometry places cards at fixed slots along the scroll axis
type carouselGeometry struct {
	card    fyne.Size
	gap     float32
	padding float32
}

func (g carouselGeometry) slotHeight() float32 {
	return g.card.Height + 2*CardVerticalMargin
}

func (g carouselGeometry) cardStart(index int) float32 {
	return g.padding + float32(index)*(g.card.Width+g.gap)
}

func (g carouselGeometry) contentSize(n int) fyne.Size {
	width := 2 * g.padding
	if n > 0 {
		width += float32(n)*g.card.Width + float32(n-1)*g.gap
	}
	return fyne.NewSize(width, g.slotHeight())
}

func (g carouselGeometry) bounds(ids []string) []trending.ItemBounds {
	items := make([]trending.ItemBounds, len(ids))
	for i, id := range ids {
		items[i] = trending.ItemBounds{ID: id, Start: g.cardStart(i), Size: g.card.Width}
	}
	return items
}

// Layout implements fyne.Layout
func (g carouselGeometry) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	for i, o := range objects {
		o.Move(fyne.NewPos(g.cardStart(i), CardVerticalMargin))
		o.Resize(g.card)
	}
}

// MinSize implements fyne.Layout
func (g carouselGeometry) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return g.contentSize(len(objects))
}

// TrendingOptions configures a TrendingView
type TrendingOptions struct {
	Records            []model.VideoRecord
	Provider           trending.SurfaceProvider
	Threshold          float32
	TransitionDuration time.Duration
	CardSize           fyne.Size
	Padding            float32
	Localization       *Localization
	OnError            func(error)
}

// TrendingView is the horizontally scrolling carousel of trending videos
type TrendingView struct {
	widget.BaseWidget

	carousel     *trending.Carousel
	geometry     carouselGeometry
	threshold    float32
	localization *Localization
	onError      func(error)

	cards   map[string]*VideoCard
	content *fyne.Container
	scroll  *container.Scroll
	empty   *widget.Label

	debounce *time.Timer
}

// NewTrendingView mounts a carousel over opts.Records
func NewTrendingView(opts TrendingOptions) *TrendingView {
	if opts.CardSize.Width <= 0 || opts.CardSize.Height <= 0 {
		opts.CardSize = fyne.NewSize(CardWidth, CardHeight)
	}

	tv := &TrendingView{
		geometry:     carouselGeometry{card: opts.CardSize, gap: CardGap, padding: opts.Padding},
		threshold:    opts.Threshold,
		localization: opts.Localization,
		onError:      opts.OnError,
		cards:        make(map[string]*VideoCard),
	}
	tv.carousel = trending.NewCarousel(opts.Records, trending.Options{
		Provider:           opts.Provider,
		TransitionDuration: opts.TransitionDuration,
		OnChange:           tv.onCardsChanged,
	})

	tv.content = container.New(tv.geometry)
	tv.scroll = container.NewHScroll(tv.content)
	tv.scroll.OnScrolled = tv.onScrolled
	tv.empty = widget.NewLabel(tv.text(KeyNoVideosFound))
	tv.empty.Alignment = fyne.TextAlignCenter

	tv.ExtendBaseWidget(tv)
	tv.rebuild()
	return tv
}

// Carousel returns the underlying coordinator
func (tv *TrendingView) Carousel() *trending.Carousel {
	return tv.carousel
}

// Card returns the widget for key
func (tv *TrendingView) Card(key string) (*VideoCard, bool) {
	c, ok := tv.cards[key]
	return c, ok
}

// SetRecords replaces the videos. Cards of surviving records are kept.
func (tv *TrendingView) SetRecords(records []model.VideoRecord) {
	tv.carousel.SetRecords(records)
	tv.rebuild()
}

// RequestPlay handles a tap on the card for id
func (tv *TrendingView) RequestPlay(id string) {
	if err := tv.carousel.RequestPlay(id); err != nil {
		log.Printf("Play request for %s failed: %v", id, err)
		if tv.onError != nil {
			tv.onError(err)
		}
	}
}

// ScrollToAndPlay brings the card for id to the leading edge and plays it.
// Visibility computed by the scroll is older than the tap and gets dropped.
func (tv *TrendingView) ScrollToAndPlay(id string) {
	if view, ok := tv.carousel.Card(id); ok {
		tv.scroll.ScrollToOffset(fyne.NewPos(tv.geometry.cardStart(view.Index), 0))
	}
	tv.RequestPlay(id)
}

// Unmount stops pending work and releases every video surface
func (tv *TrendingView) Unmount() {
	if tv.debounce != nil {
		tv.debounce.Stop()
	}
	for _, c := range tv.cards {
		c.StopAnimation()
	}
	tv.carousel.Unmount()
}

// visibleAt computes the visible cards for a viewport
func (tv *TrendingView) visibleAt(offset, extent float32) []trending.VisibleItem {
	ids := model.RecordIDs(tv.carousel.Records())
	return trending.VisibleItems(tv.geometry.bounds(ids), offset, extent, tv.threshold)
}

// onScrolled stamps the visibility with the current epoch and applies it
// after the scroll settles. A tap in between makes it stale.
func (tv *TrendingView) onScrolled(pos fyne.Position) {
	items := tv.visibleAt(pos.X, tv.scroll.Size().Width)
	epoch := tv.carousel.Epoch()

	if tv.debounce != nil {
		tv.debounce.Stop()
	}
	tv.debounce = time.AfterFunc(VisibilityDebounce, func() {
		fyne.Do(func() {
			tv.applyVisibility(items, epoch)
		})
	})
}

func (tv *TrendingView) applyVisibility(items []trending.VisibleItem, epoch uint64) {
	if err := tv.carousel.Apply(trending.VisibilityEvent{Items: items, Epoch: epoch}); err != nil {
		log.Printf("Visibility not applied: %v", err)
	}
}

func (tv *TrendingView) onCardsChanged(keys []string) {
	for _, key := range keys {
		card, ok := tv.cards[key]
		if !ok {
			continue
		}
		if view, ok := tv.carousel.Card(key); ok {
			card.SetView(view)
		}
	}
}

func (tv *TrendingView) rebuild() {
	views := tv.carousel.Cards()
	objects := make([]fyne.CanvasObject, len(views))
	next := make(map[string]*VideoCard, len(views))

	for i, view := range views {
		card, ok := tv.cards[view.Key]
		if ok {
			card.SetView(view)
		} else {
			card = NewVideoCard(view, tv.geometry.card, tv.localization, tv.RequestPlay)
		}
		next[view.Key] = card
		objects[i] = card
	}
	for key, card := range tv.cards {
		if _, ok := next[key]; !ok {
			card.StopAnimation()
		}
	}

	tv.cards = next
	tv.content.Objects = objects
	tv.content.Refresh()

	if len(views) == 0 {
		tv.empty.Show()
	} else {
		tv.empty.Hide()
	}
}

func (tv *TrendingView) text(key string) string {
	if tv.localization == nil {
		return key
	}
	return tv.localization.GetText(key)
}

// CreateRenderer creates the widget renderer
func (tv *TrendingView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(tv.scroll, tv.empty))
}
