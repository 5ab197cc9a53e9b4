package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mouseball/assets"
	"github.com/milk9111/mouseball/common"
	"github.com/milk9111/mouseball/prefabs"
)

func main() {
	settingsPath := flag.String("settings", "", "settings YAML file (defaults to the embedded prefabs/settings.yaml)")
	debug := flag.Bool("debug", false, "show the ball state overlay")
	watch := flag.Bool("watch", false, "reload the ball image when it changes on disk")
	flag.Parse()

	dir, err := assets.ProgramDir()
	if err != nil {
		log.Fatalf("Failed to locate program directory: %v", err)
	}

	settings, err := common.LoadSettings(*settingsPath, dir)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	img, err := assets.LoadImage(settings.ImageDir, settings.BallImage)
	if err != nil {
		log.Fatalf("Failed to load ball image: %v", err)
	}

	opts := GameOptions{Ball: img, Debug: *debug}
	if *watch {
		w, err := prefabs.NewWatcher(settings.ImageDir)
		if err != nil {
			log.Printf("image watcher disabled: %v", err)
		} else {
			defer w.Close()
			opts.Reloads = w.Events
			opts.ReloadErrors = w.Errors
		}
	}

	ebiten.SetWindowSize(settings.Dim())
	ebiten.SetWindowPosition(settings.WindowX, settings.WindowY)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(settings.TPS)

	game := NewGame(settings, opts)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
