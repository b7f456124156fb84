package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akmonengine/lander"
	"github.com/akmonengine/lander/internal/assets"
	"github.com/akmonengine/lander/internal/config"
	"github.com/akmonengine/lander/internal/logging"
	"github.com/akmonengine/lander/internal/platform"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	var configPath, assetsDir string
	flag.StringVar(&configPath, "config", config.DefaultPath, "path to the YAML settings file")
	flag.StringVar(&assetsDir, "assets", "", "directory holding the level images, overrides the config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if assetsDir != "" {
		cfg.Assets = assetsDir
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	loader := platform.NewTextureLoader(assets.NewDecoder(os.DirFS(cfg.Assets)))
	game, err := lander.NewGame(loader, lander.WithLogger(log.Named("game")), lander.WithRate(cfg.Rate))
	if err != nil {
		// no partial-asset fallback
		log.Fatal("unable to load level", zap.String("assets", cfg.Assets), zap.Error(err))
	}
	defer game.Close()

	game.Events.Subscribe(lander.CONTACT_ENTER, func(event lander.Event) {
		e := event.(lander.ContactEnterEvent)
		log.Debug("contact", zap.Stringer("kind", e.Kind), zap.Int("index", e.Index))
	})

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	log.Info("starting", zap.String("config", configPath), zap.Int("width", cfg.Window.Width), zap.Int("height", cfg.Window.Height))
	if err := ebiten.RunGame(platform.NewRunner(game, cfg.Window.Width, cfg.Window.Height)); err != nil {
		log.Error("game loop", zap.Error(err))
	}
	log.Info("shutting down")
}
