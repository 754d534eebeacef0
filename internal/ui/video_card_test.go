package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/reelfeed/internal/model"
	"github.com/ytget/reelfeed/internal/trending"
)

func cardView(key string, emphasis trending.Emphasis, mode trending.CardMode) trending.CardView {
	p := trending.Presentation{
		Emphasis:  trending.Deemphasized,
		FromScale: trending.EmphasizedScale,
		ToScale:   trending.DeemphasizedScale,
	}
	if emphasis == trending.Emphasized {
		p = trending.Presentation{
			Emphasis:  trending.Emphasized,
			FromScale: trending.DeemphasizedScale,
			ToScale:   trending.EmphasizedScale,
		}
	}
	return trending.CardView{
		Key:          key,
		Record:       model.VideoRecord{ID: key, Title: "Clip " + key, VideoSource: key + ".mp4"},
		Active:       emphasis == trending.Emphasized,
		Mode:         mode,
		Presentation: p,
	}
}

func TestVideoCard_InitialScale(t *testing.T) {
	test.NewTempApp(t)
	size := fyne.NewSize(CardWidth, CardHeight)

	active := NewVideoCard(cardView("a", trending.Emphasized, trending.ModeThumbnail), size, NewLocalization(), nil)
	if active.Scale() != trending.EmphasizedScale {
		t.Errorf("active Scale() = %v, expected %v", active.Scale(), trending.EmphasizedScale)
	}

	inactive := NewVideoCard(cardView("b", trending.Deemphasized, trending.ModeThumbnail), size, NewLocalization(), nil)
	if inactive.Scale() != trending.DeemphasizedScale {
		t.Errorf("inactive Scale() = %v, expected %v", inactive.Scale(), trending.DeemphasizedScale)
	}

	if active.MinSize() != size {
		t.Errorf("MinSize() = %v, expected %v", active.MinSize(), size)
	}
}

func TestVideoCard_SetViewWithoutAnimation(t *testing.T) {
	test.NewTempApp(t)
	card := NewVideoCard(cardView("a", trending.Deemphasized, trending.ModeThumbnail), fyne.NewSize(CardWidth, CardHeight), NewLocalization(), nil)

	card.SetView(cardView("a", trending.Emphasized, trending.ModeThumbnail))
	if card.Scale() != trending.EmphasizedScale {
		t.Errorf("Scale() = %v, expected %v", card.Scale(), trending.EmphasizedScale)
	}

	card.SetView(cardView("a", trending.Deemphasized, trending.ModeThumbnail))
	if card.Scale() != trending.DeemphasizedScale {
		t.Errorf("Scale() = %v, expected %v", card.Scale(), trending.DeemphasizedScale)
	}
}

func TestVideoCard_StopAnimationJumpsToTarget(t *testing.T) {
	test.NewTempApp(t)
	card := NewVideoCard(cardView("a", trending.Deemphasized, trending.ModeThumbnail), fyne.NewSize(CardWidth, CardHeight), NewLocalization(), nil)

	view := cardView("a", trending.Emphasized, trending.ModeThumbnail)
	view.Presentation.Duration = trending.DefaultTransitionDuration
	card.SetView(view)
	card.StopAnimation()

	if card.Scale() != trending.EmphasizedScale {
		t.Errorf("Scale() = %v, expected %v", card.Scale(), trending.EmphasizedScale)
	}
}

func TestVideoCard_Tapped(t *testing.T) {
	test.NewTempApp(t)

	var tapped []string
	card := NewVideoCard(cardView("a", trending.Emphasized, trending.ModeThumbnail), fyne.NewSize(CardWidth, CardHeight), NewLocalization(), func(key string) {
		tapped = append(tapped, key)
	})

	test.Tap(card)
	if len(tapped) != 1 || tapped[0] != "a" {
		t.Fatalf("tapped = %v, expected [a]", tapped)
	}
	if card.Cursor() != desktop.PointerCursor {
		t.Error("thumbnail card should show a pointer cursor")
	}

	card.SetView(cardView("a", trending.Emphasized, trending.ModePlaying))
	test.Tap(card)
	if len(tapped) != 1 {
		t.Errorf("playing card forwarded a tap: %v", tapped)
	}
	if card.Cursor() != desktop.DefaultCursor {
		t.Error("playing card should show the default cursor")
	}
}

func TestVideoCard_RendersPlayingPanel(t *testing.T) {
	test.NewTempApp(t)
	card := NewVideoCard(cardView("a", trending.Emphasized, trending.ModeThumbnail), fyne.NewSize(CardWidth, CardHeight), NewLocalization(), nil)
	card.Resize(card.MinSize())

	r := test.TempWidgetRenderer(t, card).(*videoCardRenderer)
	if !r.playIcon.Visible() || r.playingLabel.Visible() {
		t.Error("thumbnail mode should show the play overlay only")
	}

	card.SetView(cardView("a", trending.Emphasized, trending.ModePlaying))
	if r.playIcon.Visible() || !r.playingLabel.Visible() {
		t.Error("playing mode should show the now playing panel only")
	}
	if r.playingLabel.Text != NewLocalization().GetText(KeyNowPlaying) {
		t.Errorf("playing label = %q", r.playingLabel.Text)
	}
}

func TestVideoCard_LayoutScalesAroundCentre(t *testing.T) {
	test.NewTempApp(t)
	card := NewVideoCard(cardView("a", trending.Deemphasized, trending.ModeThumbnail), fyne.NewSize(200, 300), NewLocalization(), nil)
	card.Resize(fyne.NewSize(200, 300))

	r := test.TempWidgetRenderer(t, card).(*videoCardRenderer)
	r.Layout(card.Size())

	if got := r.frame.Size(); !near(got.Width, 180) || !near(got.Height, 270) {
		t.Errorf("frame size = %v, expected 180x270", got)
	}
	if got := r.frame.Position(); !near(got.X, 10) || !near(got.Y, 15) {
		t.Errorf("frame position = %v, expected (10,15)", got)
	}
}

func near(a, b float32) bool {
	d := a - b
	return d > -0.01 && d < 0.01
}

func TestLocatorURI(t *testing.T) {
	uri, err := locatorURI("https://cdn.example.com/a.jpg")
	if err != nil {
		t.Fatalf("locatorURI() error = %v", err)
	}
	if uri.Scheme() != "https" {
		t.Errorf("Scheme() = %s, expected https", uri.Scheme())
	}

	file, err := locatorURI("/tmp/thumb.png")
	if err != nil {
		t.Fatalf("locatorURI(path) error = %v", err)
	}
	if file.Scheme() != "file" {
		t.Errorf("Scheme() = %s, expected file", file.Scheme())
	}
}
