package bouncer

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/nvlled/catbounce/lib/loop"
	"github.com/rs/zerolog"
)

type State int

const (
	Running State = iota
	LimitReached
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case LimitReached:
		return "limit-reached"
	case Terminated:
		return "terminated"
	}
	return "invalid-state"
}

// Host is the display side of the application.
type Host interface {
	// OpenWindow creates the borderless window a sprite is drawn in.
	OpenWindow(img image.Image) (Window, error)
	ScreenSize() image.Point
	Warn(title, message string)
	ShowPanel(panel *ControlPanel)
	ShowOverlay(overlay *CrashOverlay)
	// Decoration loads the optional image drawn on the crash overlay.
	Decoration() (image.Image, error)
}

type Application struct {
	loop    *loop.Loop
	host    Host
	rng     *rand.Rand
	log     zerolog.Logger
	catalog *Catalog

	panel   *ControlPanel
	overlay *CrashOverlay

	pick    func() string
	sprites []*Sprite
	spawned int
	limit   int
	state   State
}

func NewApplication(lp *loop.Loop, host Host, limit int, rng *rand.Rand, log zerolog.Logger) *Application {
	app := &Application{
		loop:  lp,
		host:  host,
		rng:   rng,
		log:   log.With().Str("component", "app").Logger(),
		panel: NewControlPanel(),
		limit: ClampLimit(limit),
		state: Running,
	}

	app.panel.Bind(KeySpawn, app.Spawn)
	app.panel.Bind(KeyClear, app.Clear)
	app.panel.Bind(KeyEscape, app.Quit)
	app.panel.SetCount(0, app.limit)
	return app
}

// Start scans the catalog, shows the panel and spawns the first sprite.
func (a *Application) Start(dir string, scale float64) {
	catalog, err := ScanCatalog(dir, scale)
	if err != nil {
		a.log.Warn().Err(err).Msg("cannot read image directory")
	}
	a.catalog = catalog
	a.pick = func() string { return catalog.Pick(a.rng) }

	if catalog.IsEmpty() {
		a.host.Warn("No images", fmt.Sprintf("No PNG or GIF images found in:\n%v", dir))
	} else {
		a.log.Info().Int("images", len(catalog.Paths)).Str("dir", dir).Msg("catalog scanned")
	}

	a.panel.Show()
	a.host.ShowPanel(a.panel)
	a.Spawn()
}

// HandleKey routes a key press. While the crash overlay is up it gets the
// first look at the key; everything else goes through the panel bindings.
func (a *Application) HandleKey(key string) {
	if a.state == Terminated {
		return
	}
	if a.overlay != nil && a.overlay.Press(key) {
		return
	}
	a.panel.Press(key)
}

func (a *Application) Spawn() {
	if a.state != Running || a.catalog.IsEmpty() {
		return
	}

	if a.spawned >= a.limit {
		a.triggerCrash()
		return
	}

	path := a.pick()
	sprite, err := a.newSprite(path)
	if err != nil {
		a.log.Debug().Err(err).Str("path", path).Msg("skipping sprite")
		return
	}

	a.sprites = append(a.sprites, sprite)
	a.spawned++
	a.panel.SetCount(a.spawned, a.limit)

	if a.spawned >= a.limit {
		a.triggerCrash()
	}
}

func (a *Application) newSprite(path string) (*Sprite, error) {
	img, err := a.catalog.Load(path)
	if err != nil {
		return nil, err
	}
	window, err := a.host.OpenWindow(img)
	if err != nil {
		return nil, fmt.Errorf("open window for %v: %w", path, err)
	}
	return NewSprite(a.loop, window, img.Bounds().Size(), a.host.ScreenSize(), a.rng), nil
}

// Clear destroys every live sprite. The counter is left alone.
func (a *Application) Clear() {
	for _, s := range a.sprites {
		s.Destroy()
	}
	a.sprites = nil
}

func (a *Application) Quit() {
	if a.state == Terminated {
		return
	}
	a.Clear()
	if a.overlay != nil {
		a.overlay.Close()
	}
	a.panel.Hide()
	a.state = Terminated
	a.loop.Stop()
	a.log.Info().Int("spawned", a.spawned).Msg("quit")
}

func (a *Application) triggerCrash() {
	if a.state != Running {
		return
	}
	a.Clear()
	a.state = LimitReached

	// The decoration is optional; any load error just means no picture.
	decoration, err := a.host.Decoration()
	if err != nil {
		decoration = nil
	}

	a.overlay = NewCrashOverlay(a.loop, decoration, a.Quit)
	a.overlay.Show()
	a.host.ShowOverlay(a.overlay)
	a.log.Info().Int("limit", a.limit).Msg("limit reached")
}

func (a *Application) State() State           { return a.state }
func (a *Application) Spawned() int           { return a.spawned }
func (a *Application) Limit() int             { return a.limit }
func (a *Application) Live() int              { return len(a.sprites) }
func (a *Application) Panel() *ControlPanel   { return a.panel }
func (a *Application) Overlay() *CrashOverlay { return a.overlay }
