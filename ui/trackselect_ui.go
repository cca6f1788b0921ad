package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tracks"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TrackResult is the saved best run shown next to each track entry.
type TrackResult struct {
	BestLines int
	Cleared   bool
}

// TrackSelectUI is the ebitenui widget tree for the track select menu.
type TrackSelectUI struct {
	UI *ebitenui.UI

	OnPlay func(track *tracks.Track)

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTrackSelectUI(trackList []*tracks.Track, results map[string]TrackResult, onPlay func(track *tracks.Track)) *TrackSelectUI {
	ui := &TrackSelectUI{
		OnPlay: onPlay,
	}
	ui.loadFonts()
	ui.buildUI(trackList, results)
	return ui
}

func (ui *TrackSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 13}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *TrackSelectUI) buildUI(trackList []*tracks.Track, results map[string]TrackResult) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{14, 10, 26, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, track := range trackList {
		contentContainer.AddChild(ui.buildTrackButton(track, results[track.Name]))
	}

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Hint, &ui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.HintColor,
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TrackSelectUI) buildTrackButton(track *tracks.Track, result TrackResult) *widget.Button {
	label := fmt.Sprintf("%s - %s", track.Artist, track.Title)
	if result.Cleared {
		label += "  [CLEARED]"
	} else if result.BestLines > 0 {
		label += fmt.Sprintf("  [best %d/%d]", result.BestLines, track.ScoredLineCount())
	}

	idle := image.NewNineSliceColor(color.RGBA{40, 34, 64, 255})
	hover := image.NewNineSliceColor(color.RGBA{70, 58, 110, 255})

	t := track
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    idle,
			Hover:   hover,
			Pressed: hover,
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle: cfg.Menu.SelectedColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPlay != nil {
				ui.OnPlay(t)
			}
		}),
	)
}
