package main

import (
	"image"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mouseball/assets"
	"github.com/milk9111/mouseball/common"
	"github.com/milk9111/mouseball/obj"
)

// Cursor shows or hides the OS mouse cursor.
type Cursor interface {
	SetVisible(visible bool)
}

type ebitenCursor struct {
	known   bool
	visible bool
}

func (c *ebitenCursor) SetVisible(visible bool) {
	if c.known && c.visible == visible {
		return
	}
	c.known, c.visible = true, visible
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

type GameOptions struct {
	Input  obj.Source
	Cursor Cursor
	Ball   image.Image

	// Reloads delivers paths of image files that changed on disk.
	Reloads <-chan string
	// ReloadErrors delivers watcher failures; they are only logged.
	ReloadErrors <-chan error

	Debug bool
}

type Game struct {
	settings common.Settings
	input    obj.Source
	cursor   Cursor

	ball    *obj.Ball
	objects *obj.Group

	reloads      <-chan string
	reloadErrors <-chan error

	cursorVisible bool
	quit          bool
	frames        int

	debug *DebugUI
}

func NewGame(s common.Settings, opts GameOptions) *Game {
	input := opts.Input
	if input == nil {
		input = obj.NewInput()
	}
	cursor := opts.Cursor
	if cursor == nil {
		cursor = &ebitenCursor{}
	}

	ball := obj.NewBall(opts.Ball, s)
	g := &Game{
		settings:      s,
		input:         input,
		cursor:        cursor,
		ball:          ball,
		objects:       obj.NewGroup(ball),
		reloads:       opts.Reloads,
		reloadErrors:  opts.ReloadErrors,
		cursorVisible: true,
	}
	if opts.Debug {
		g.debug = NewDebugUI()
	}
	return g
}

func (g *Game) Update() error {
	g.frames++

	frame := g.input.Poll()
	g.ball.SetCenter(frame.Cursor)
	g.cursorVisible = !g.ball.Center().In(g.settings.InnerRect)
	g.cursor.SetVisible(g.cursorVisible)

	for _, a := range frame.Actions {
		g.apply(a)
	}

	g.drainReloads()
	g.objects.Update()

	if g.debug != nil {
		g.debug.Refresh(g)
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) apply(a obj.Action) {
	switch a {
	case obj.ActionQuit:
		g.quit = true
	case obj.ActionRotateLeft:
		g.ball.RotateLeft()
	case obj.ActionRotateRight:
		g.ball.RotateRight()
	case obj.ActionScaleUp:
		g.ball.ScaleUp()
	case obj.ActionScaleDown:
		g.ball.ScaleDown()
	}
}

// drainReloads applies pending hot reloads without blocking the tick.
func (g *Game) drainReloads() {
	for g.reloads != nil || g.reloadErrors != nil {
		select {
		case path, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				continue
			}
			g.reloadImage(path)
		case err, ok := <-g.reloadErrors:
			if !ok {
				g.reloadErrors = nil
				continue
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadImage(path string) {
	if filepath.Base(path) != g.settings.BallImage {
		return
	}
	img, err := assets.LoadImage(g.settings.ImageDir, g.settings.BallImage)
	if err != nil {
		log.Printf("reload %s: %v", path, err)
		return
	}
	g.ball.SetImage(img)
	log.Printf("reloaded %s", path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.settings.Background)
	g.objects.Draw(screen)

	if g.debug != nil {
		g.debug.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Dim()
}
