package ui

import (
	"io"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/reelfeed/internal/trending"
)

// VideoCard is one card of the trending carousel. It shows the thumbnail
// with a play overlay, or a now-playing panel while the card renders video.
// The card is scaled inside its slot by the zoom transition.
type VideoCard struct {
	widget.BaseWidget

	view         trending.CardView
	size         fyne.Size
	localization *Localization
	onTap        func(key string)

	scale     float32
	anim      *fyne.Animation
	thumbnail fyne.Resource
	thumbSrc  string
}

// NewVideoCard creates a card for view. The card starts at the target scale
// of its presentation, without animating.
func NewVideoCard(view trending.CardView, size fyne.Size, localization *Localization, onTap func(key string)) *VideoCard {
	c := &VideoCard{
		view:         view,
		size:         size,
		localization: localization,
		onTap:        onTap,
		scale:        view.Presentation.ToScale,
	}
	c.ExtendBaseWidget(c)
	c.loadThumbnail()
	return c
}

// View returns the render instruction the card shows
func (c *VideoCard) View() trending.CardView {
	return c.view
}

// Scale returns the current zoom factor
func (c *VideoCard) Scale() float32 {
	return c.scale
}

// SetView updates the card. A change of emphasis starts the zoom transition
// from the current scale.
func (c *VideoCard) SetView(view trending.CardView) {
	prev := c.view
	c.view = view

	if prev.Presentation.Emphasis != view.Presentation.Emphasis {
		c.animate(view.Presentation)
	}
	if prev.Record.ThumbnailSource != view.Record.ThumbnailSource {
		c.loadThumbnail()
	}
	c.Refresh()
}

func (c *VideoCard) animate(p trending.Presentation) {
	if c.anim != nil {
		c.anim.Stop()
		c.anim = nil
	}
	if p.Duration <= 0 {
		c.scale = p.ToScale
		return
	}

	p.FromScale = c.scale
	c.anim = fyne.NewAnimation(p.Duration, func(progress float32) {
		c.scale = p.ScaleAt(progress)
		c.Refresh()
	})
	c.anim.Curve = fyne.AnimationEaseInOut
	c.anim.Start()
}

// StopAnimation jumps to the end of a running transition
func (c *VideoCard) StopAnimation() {
	if c.anim == nil {
		return
	}
	c.anim.Stop()
	c.anim = nil
	c.scale = c.view.Presentation.ToScale
	c.Refresh()
}

// Tapped requests playback while the thumbnail is shown
func (c *VideoCard) Tapped(*fyne.PointEvent) {
	if c.view.Mode != trending.ModeThumbnail || c.onTap == nil {
		return
	}
	c.onTap(c.view.Key)
}

// Cursor shows a pointer over tappable cards
func (c *VideoCard) Cursor() desktop.Cursor {
	if c.view.Mode == trending.ModeThumbnail {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// MinSize returns the unscaled card size
func (c *VideoCard) MinSize() fyne.Size {
	return c.size
}

func (c *VideoCard) loadThumbnail() {
	src := c.view.Record.ThumbnailSource
	c.thumbSrc = src
	c.thumbnail = nil
	if src == "" {
		return
	}

	uri, err := locatorURI(src)
	if err != nil {
		log.Printf("Invalid thumbnail %s for %s: %v", src, c.view.Key, err)
		return
	}

	go func() {
		r, err := storage.Reader(uri)
		if err != nil {
			log.Printf("Failed to open thumbnail %s: %v", src, err)
			return
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			log.Printf("Failed to read thumbnail %s: %v", src, err)
			return
		}

		res := fyne.NewStaticResource(uri.Name(), data)
		fyne.Do(func() {
			if c.thumbSrc != src {
				return
			}
			c.thumbnail = res
			c.Refresh()
		})
	}()
}

// locatorURI accepts URIs and plain file paths
func locatorURI(locator string) (fyne.URI, error) {
	if strings.Contains(locator, "://") {
		return storage.ParseURI(locator)
	}
	return storage.NewFileURI(locator), nil
}

// CreateRenderer creates the widget renderer
func (c *VideoCard) CreateRenderer() fyne.WidgetRenderer {
	r := &videoCardRenderer{card: c}
	r.createObjects()
	r.Refresh()
	return r
}

type videoCardRenderer struct {
	card *VideoCard

	frame    *canvas.Rectangle
	image    *canvas.Image
	playIcon *canvas.Image
	title    *canvas.Text

	playingIcon  *canvas.Image
	playingLabel *canvas.Text
}

func (r *videoCardRenderer) createObjects() {
	r.frame = canvas.NewRectangle(ColorCardShade)
	r.frame.CornerRadius = CardCornerRadius

	r.image = canvas.NewImageFromResource(nil)
	r.image.FillMode = canvas.ImageFillContain

	r.playIcon = canvas.NewImageFromResource(theme.MediaPlayIcon())
	r.playIcon.FillMode = canvas.ImageFillContain

	r.title = canvas.NewText("", ColorInactiveTint)
	r.title.TextSize = theme.CaptionTextSize()
	r.title.Alignment = fyne.TextAlignCenter

	r.playingIcon = canvas.NewImageFromResource(theme.NewPrimaryThemedResource(theme.MediaVideoIcon()))
	r.playingIcon.FillMode = canvas.ImageFillContain

	r.playingLabel = canvas.NewText("", ColorActiveTint)
	r.playingLabel.Alignment = fyne.TextAlignCenter
	r.playingLabel.TextStyle = fyne.TextStyle{Bold: true}
}

// Layout centres the scaled card inside the widget
func (r *videoCardRenderer) Layout(size fyne.Size) {
	scale := r.card.scale
	if scale <= 0 {
		scale = trending.DeemphasizedScale
	}
	scaled := fyne.NewSize(size.Width*scale, size.Height*scale)
	origin := fyne.NewPos((size.Width-scaled.Width)/2, (size.Height-scaled.Height)/2)

	r.frame.Move(origin)
	r.frame.Resize(scaled)
	r.image.Move(origin)
	r.image.Resize(scaled)

	icon := fyne.NewSquareSize(PlayIconSize * scale)
	center := fyne.NewPos(origin.X+(scaled.Width-icon.Width)/2, origin.Y+(scaled.Height-icon.Height)/2)
	r.playIcon.Move(center)
	r.playIcon.Resize(icon)
	r.playingIcon.Move(center)
	r.playingIcon.Resize(icon)

	textH := r.title.MinSize().Height
	r.title.Move(fyne.NewPos(origin.X, origin.Y+scaled.Height-textH-theme.Padding()*2))
	r.title.Resize(fyne.NewSize(scaled.Width, textH))

	labelH := r.playingLabel.MinSize().Height
	r.playingLabel.Move(fyne.NewPos(origin.X, center.Y+icon.Height+theme.Padding()))
	r.playingLabel.Resize(fyne.NewSize(scaled.Width, labelH))
}

// MinSize returns the card size
func (r *videoCardRenderer) MinSize() fyne.Size {
	return r.card.size
}

// Refresh switches between the thumbnail and playing presentation
func (r *videoCardRenderer) Refresh() {
	c := r.card
	playing := c.view.Mode == trending.ModePlaying

	r.image.Resource = c.thumbnail
	r.title.Text = c.view.Record.GetDisplayTitle()
	if c.localization != nil {
		r.playingLabel.Text = c.localization.GetText(KeyNowPlaying)
	}

	if playing {
		r.image.Hide()
		r.playIcon.Hide()
		r.title.Hide()
		r.playingIcon.Show()
		r.playingLabel.Show()
	} else {
		if c.thumbnail != nil {
			r.image.Show()
		} else {
			r.image.Hide()
		}
		r.playIcon.Show()
		r.title.Show()
		r.playingIcon.Hide()
		r.playingLabel.Hide()
	}

	r.Layout(c.Size())
	for _, o := range r.Objects() {
		o.Refresh()
	}
}

// Objects returns the card layers from back to front
func (r *videoCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.frame, r.image, r.playIcon, r.title, r.playingIcon, r.playingLabel}
}

// Destroy stops a running transition
func (r *videoCardRenderer) Destroy() {
	if r.card.anim != nil {
		r.card.anim.Stop()
	}
}
