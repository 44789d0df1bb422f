// Command mapclient is the reference desktop build of the orbital map
// client: an ebiten.Game wiring projection, the anchor cache, transit
// curves, the retained scene graph, LOD, camera, interaction, the sync
// loop, the transfer planner, and panel persistence into one process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"orbitalmap/engine/config"
)

func main() {
	lodProfile := flag.String("lod-profile", "", "optional YAML file overriding LOD tier thresholds")
	layoutPath := flag.String("layout", "", "optional path for the persisted panel layout (default: state/layout.json)")
	displayConfigPath := flag.String("display-config", "state/display.json", "path for the persisted window/display settings")
	flag.Parse()

	cfg, err := config.Load(*lodProfile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mapclient: load config:", err)
		os.Exit(1)
	}

	game, err := NewGame(cfg, *layoutPath, *displayConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mapclient: init:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := game.StartSync(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "mapclient: start sync loop:", err)
		os.Exit(1)
	}
	defer game.StopSync()

	ebiten.SetWindowTitle("Orbital Map")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Println("mapclient:", err)
	}
}
