package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/xy-pad/internal/config"
	"github.com/iburimskiy/xy-pad/internal/game"
)

func main() {
	scale := flag.Float64("scale", 1, "Window scale factor.")
	debug := flag.Bool("debug", false, "Log every pad position and the parameters derived from it.")
	flag.Parse()

	if *scale <= 0 {
		fmt.Fprintf(os.Stderr, "invalid -scale %v: must be positive\n", *scale)
		os.Exit(2)
	}

	ebiten.SetWindowSize(int(config.WindowWidth * *scale), int(config.WindowHeight * *scale))
	ebiten.SetWindowTitle("XY Pad - drag inside the pad, Esc/Q: Quit")

	g := game.New(game.Options{Debug: *debug})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("xy-pad: %v", err)
		if derr := zenity.Error(err.Error(), zenity.Title("XY Pad")); derr != nil {
			log.Printf("could not show error dialog: %v", derr)
		}
		os.Exit(1)
	}
}
