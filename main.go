package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nvlled/catbounce/lib"
	"github.com/nvlled/catbounce/lib/bouncer"
	"github.com/nvlled/catbounce/lib/config"
)

func main() {
	settingsPath := config.GetPath()
	settings, warnings, err := config.Load(settingsPath)

	logger := lib.NewLogger(settings.LogLevel)
	if err != nil {
		logger.Warn().Err(err).Str("path", settingsPath).Msg("using default settings")
	}
	for _, warning := range warnings {
		logger.Warn().Str("component", "config").Msg(warning)
	}

	bounds := lib.ScreenBounds()
	lib.SetupWindow(bounds, bouncer.PanelTitle)

	game := lib.NewGame(settings, logger, bounds)
	game.Init()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, lib.ErrQuit) {
		logger.Fatal().Err(err).Msg("game loop failed")
	}
}
