package main

import (
	"errors"
	"flag"
	"image"
	"os"
	"strings"
	"time"

	"github.com/automoto/jeepdrive/assets"
	"github.com/automoto/jeepdrive/config"
	"github.com/automoto/jeepdrive/fonts"
	"github.com/automoto/jeepdrive/scenes"
	"github.com/automoto/jeepdrive/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame(scene scenes.Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func setupLogging(level string) {
	var logLevelActual zerolog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		logLevelActual = zerolog.DebugLevel
	case "INFO":
		logLevelActual = zerolog.InfoLevel
	case "WARN":
		logLevelActual = zerolog.WarnLevel
	case "ERROR":
		logLevelActual = zerolog.ErrorLevel
	case "TRACE":
		logLevelActual = zerolog.TraceLevel
	default:
		logLevelActual = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevelActual)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func main() {
	configDir := flag.String("config", ".", "directory holding jeepdrive.yaml")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	level := flag.String("level", "", "TMX level path, overrides level.path")
	assetsDir := flag.String("assets", "", "read levels from this directory instead of the embedded assets")
	flag.Parse()

	edits, err := config.Load(*configDir)
	setupLogging(config.C.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *configDir).Msg("failed to load config")
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if *level != "" {
		config.Level.Path = *level
	}

	systems.PendingEdits.Push(edits...)
	err = config.Watch(func(edits []config.ObstacleEdit) {
		systems.PendingEdits.Push(edits...)
	})
	switch {
	case errors.Is(err, config.ErrNoConfigFile):
		log.Debug().Msg("no config file, live obstacle edits disabled")
	case err != nil:
		log.Warn().Err(err).Msg("config watcher not started")
	default:
		log.Info().Str("file", config.ConfigFileUsed()).Msg("watching config for obstacle edits")
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Warn().Err(err).Msg("HUD font unavailable, using debug text")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	scene := scenes.NewDriveScene(assets.Resolve(*assetsDir))
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}
