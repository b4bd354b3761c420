package lib

import (
	"errors"
	"image"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/nvlled/catbounce/lib/bouncer"
	"github.com/nvlled/catbounce/lib/config"
	"github.com/nvlled/catbounce/lib/loop"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// ErrQuit is returned from Update once the event loop has stopped.
var ErrQuit = errors.New("quit")

const (
	defaultBorder = 20
	maxStep       = 250 * time.Millisecond
)

type Game struct {
	tickCounter int

	hugeFont    font.Face
	largeFont   font.Face
	regularFont font.Face
	smallFont   font.Face
	tinyFont    font.Face

	scrp *ScreenPrint

	settings config.Settings
	log      zerolog.Logger
	screen   image.Rectangle
	rng      *rand.Rand

	loop       *loop.Loop
	app        *bouncer.Application
	prompt     *LimitPrompt
	windows    WindowHost
	panel      *bouncer.ControlPanel
	overlay    *bouncer.CrashOverlay
	decoration *ebiten.Image

	lastUpdate time.Time
}

var boundKeys = []ebiten.Key{ebiten.KeyE, ebiten.KeyQ, ebiten.KeyEscape}

// justPressedKeys names the keys in keys that went down this frame, in
// the lowercase form the control panel binds.
func justPressedKeys(keys []ebiten.Key, justPressed func(ebiten.Key) bool) []string {
	var names []string
	for _, key := range keys {
		if justPressed(key) {
			names = append(names, strings.ToLower(key.String()))
		}
	}
	return names
}

func NewGame(settings config.Settings, log zerolog.Logger, screen image.Rectangle) *Game {
	return &Game{
		scrp:     NewScreenPrint(),
		settings: settings,
		log:      log.With().Str("component", "game").Logger(),
		screen:   screen,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		loop:     loop.New(),
		prompt:   NewLimitPrompt(),
	}
}

func (g *Game) Init() {
	g.loadFonts()
	g.scrp.Font = g.regularFont
	g.scrp.Border = defaultBorder
	g.scrp.Color = ColorWhite
	g.scrp.LineSpacing = 8
	g.lastUpdate = time.Now()
}

func (g *Game) Update() error {
	g.tickCounter++

	now := time.Now()
	step := now.Sub(g.lastUpdate)
	g.lastUpdate = now
	if step > maxStep {
		step = maxStep
	}

	if g.app == nil {
		if g.prompt.Update() {
			g.start(g.prompt.Limit())
		}
		return nil
	}

	for _, name := range justPressedKeys(boundKeys, inpututil.IsKeyJustPressed) {
		name := name
		g.loop.Post(func() { g.app.HandleKey(name) })
	}

	g.loop.Advance(step)
	if g.loop.Stopped() {
		return ErrQuit
	}
	return nil
}

func (g *Game) start(limit int) {
	g.log.Info().Int("limit", limit).Msg("starting")
	g.app = bouncer.NewApplication(g.loop, g, limit, g.rng, g.log)
	g.app.Start(g.settings.ImageDir, g.settings.ScaleFactor)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.app == nil {
		g.prompt.Draw(screen, g)
		return
	}

	if g.overlay != nil && g.overlay.IsVisible() {
		g.drawCrash(screen, g.overlay)
		return
	}

	g.windows.Draw(screen)
	if g.panel != nil && g.panel.IsVisible() {
		g.drawPanel(screen, g.panel)
	}
}

// Layout pins the logical screen to the display bounds sprites bounce in.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screen.Dx(), g.screen.Dy()
}

func (g *Game) OpenWindow(img image.Image) (bouncer.Window, error) {
	return g.windows.Open(img)
}

func (g *Game) ScreenSize() image.Point {
	return g.screen.Size()
}

func (g *Game) Warn(title, message string) {
	g.log.Warn().Str("title", title).Msg(message)
	showWarning(title, message)
}

func (g *Game) ShowPanel(panel *bouncer.ControlPanel) {
	g.panel = panel
}

func (g *Game) ShowOverlay(overlay *bouncer.CrashOverlay) {
	g.overlay = overlay
	ebiten.SetFullscreen(true)
}

func (g *Game) Decoration() (image.Image, error) {
	return bouncer.LoadImage(g.settings.DecorationFile, 1)
}

func (g *Game) loadFonts() {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		g.log.Fatal().Err(err).Msg("cannot parse font")
	}

	const dpi = 72
	newFace := func(size float64) font.Face {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			g.log.Fatal().Err(err).Float64("size", size).Msg("cannot create font face")
		}
		return face
	}

	g.hugeFont = newFace(120)
	g.largeFont = newFace(28)
	g.regularFont = newFace(24)
	g.smallFont = newFace(18)
	g.tinyFont = newFace(15)
}
