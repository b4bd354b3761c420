package bouncer

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/nvlled/catbounce/lib/loop"
)

const (
	CrashTick = 50 * time.Millisecond

	CrashFace     = ":("
	CrashMessage  = "Your PC ran into a problem and needs to restart.\nWe're just collecting some error info, and then we'll restart for you."
	CrashStopCode = "Stop Code: TOO_MANY_CATS"
)

// CrashOverlay is the full-screen fake failure screen.
type CrashOverlay struct {
	Decoration image.Image

	loop     *loop.Loop
	onEscape func()
	progress int
	visible  bool
	alive    bool
}

func NewCrashOverlay(lp *loop.Loop, decoration image.Image, onEscape func()) *CrashOverlay {
	return &CrashOverlay{
		Decoration: decoration,
		loop:       lp,
		onEscape:   onEscape,
	}
}

// Show makes the overlay visible and starts counting from 0% to 100%.
func (o *CrashOverlay) Show() {
	if o.visible {
		return
	}
	o.visible = true
	o.alive = true
	o.advance(0)
}

func (o *CrashOverlay) advance(percent int) {
	if !o.alive || percent > 100 {
		return
	}
	o.progress = percent
	o.loop.After(CrashTick, func() { o.advance(percent + 1) })
}

func (o *CrashOverlay) Progress() int { return o.progress }

func (o *CrashOverlay) ProgressText() string {
	return fmt.Sprintf("%v%% complete", o.progress)
}

func (o *CrashOverlay) IsVisible() bool { return o.visible }

// Press handles a key delivered to the overlay. Only Escape is bound.
func (o *CrashOverlay) Press(key string) bool {
	if !o.visible || strings.ToLower(key) != KeyEscape {
		return false
	}
	if o.onEscape != nil {
		o.onEscape()
	}
	return true
}

func (o *CrashOverlay) Close() {
	o.alive = false
	o.visible = false
}
