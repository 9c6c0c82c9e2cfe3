package main

import (
	"flag"
	"log"

	"mirefall.dev/mirefall/config"
	"mirefall.dev/mirefall/internal/game"
	ebitenrender "mirefall.dev/mirefall/internal/render/ebiten"
	"mirefall.dev/mirefall/preload"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "mirefall.yaml", "Path to the config file")
	assetsDir := flag.String("assets", "", "Override the assets directory from the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *assetsDir != "" {
		cfg.Assets.Dir = *assetsDir
	}

	// Manifest: explicit file if configured, built-in roster otherwise
	var manifest *preload.Manifest
	if cfg.Assets.Manifest != "" {
		manifest, err = preload.LoadManifest(cfg.Assets.Manifest)
		if err != nil {
			log.Fatalf("Failed to load manifest: %v", err)
		}
	} else {
		manifest = preload.DefaultManifest(cfg.Assets.Dir, cfg.Sprites.Size)
	}

	log.Printf("Preloading %d sprites from %s", len(manifest.Entries), cfg.Assets.Dir)

	loader, err := preload.NewLoader(preload.FileSource{}, manifest, cfg.Assets.Workers)
	if err != nil {
		log.Fatalf("Failed to create preloader: %v", err)
	}
	loader.Start()

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, renderer, inputMgr, loader)

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title + " - WASD to move, 1-6 to select weapon")

	log.Printf("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
