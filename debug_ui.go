package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DebugUI is a small top-left overlay describing the ball each tick.
type DebugUI struct {
	ui    *ebitenui.UI
	label *widget.Text
}

// NewDebugUI builds the overlay. It has no buttons, so it never consumes
// clicks meant for the ball.
func NewDebugUI() *DebugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	var face ebtext.Face = ebtext.NewGoXFace(bitmapfont.Face)

	label := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &DebugUI{
		ui:    &ebitenui.UI{Container: root},
		label: label,
	}
}

func (d *DebugUI) Refresh(g *Game) {
	cursor := "visible"
	if !g.cursorVisible {
		cursor = "hidden"
	}
	d.label.Label = fmt.Sprintf(
		"TPS: %.2f  frame: %d\ncentre: %v\nscale: %v\nbounds: %v\ncursor: %s",
		ebiten.ActualTPS(), g.frames,
		g.ball.Center(), g.ball.Scale(), g.ball.Bounds(), cursor,
	)
	d.ui.Update()
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	d.ui.Draw(screen)
}
