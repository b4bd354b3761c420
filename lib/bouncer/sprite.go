package bouncer

import (
	"image"
	"math/rand"
	"time"

	"github.com/nvlled/catbounce/lib/loop"
)

const (
	SpriteTick = 16 * time.Millisecond

	minSpeed = 3
	maxSpeed = 7
)

// Window is the on-screen surface a sprite moves around.
type Window interface {
	Move(x, y int)
	Close() error
}

type Sprite struct {
	X, Y   int
	VX, VY int
	W, H   int

	ScreenW, ScreenH int

	loop   *loop.Loop
	window Window
	alive  bool
}

// PickSpeed returns a magnitude in [3,7] with a random sign.
func PickSpeed(rng *rand.Rand) int {
	speed := minSpeed + rng.Intn(maxSpeed-minSpeed+1)
	if rng.Float64() < 0.5 {
		return speed
	}
	return -speed
}

// NewSprite places a sprite of the given size at a random spot on screen,
// gives it a random velocity and runs its first tick right away.
func NewSprite(lp *loop.Loop, window Window, size image.Point, screen image.Point, rng *rand.Rand) *Sprite {
	s := &Sprite{
		W:       size.X,
		H:       size.Y,
		ScreenW: screen.X,
		ScreenH: screen.Y,
		loop:    lp,
		window:  window,
		alive:   true,
	}

	s.X = rng.Intn(max(0, s.ScreenW-s.W) + 1)
	s.Y = rng.Intn(max(0, s.ScreenH-s.H) + 1)
	s.VX = PickSpeed(rng)
	s.VY = PickSpeed(rng)

	window.Move(s.X, s.Y)
	s.tick()
	return s
}

func (s *Sprite) IsAlive() bool { return s.alive }

func (s *Sprite) Position() image.Point { return image.Pt(s.X, s.Y) }

// Step advances the sprite by one tick and reflects the velocity of each
// axis that touched or crossed a screen edge.
func (s *Sprite) Step() {
	s.X += s.VX
	s.Y += s.VY

	if s.X <= 0 || s.X+s.W >= s.ScreenW {
		s.VX = -s.VX
	}
	if s.Y <= 0 || s.Y+s.H >= s.ScreenH {
		s.VY = -s.VY
	}
}

func (s *Sprite) tick() {
	if !s.alive {
		return
	}
	s.Step()
	s.window.Move(s.X, s.Y)
	s.loop.After(SpriteTick, s.tick)
}

// Destroy stops the animation and closes the window. A tick that is already
// queued still fires once and returns without rescheduling.
func (s *Sprite) Destroy() {
	if !s.alive {
		return
	}
	s.alive = false
	// Closing is best-effort; a window that fails to close is simply dropped.
	_ = s.window.Close()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
