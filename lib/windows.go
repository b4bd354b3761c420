package lib

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nvlled/catbounce/lib/bouncer"
)

var errWindowClosed = errors.New("window already closed")

// spriteWindow is a borderless tile drawn on the overlay window. It stands
// in for a separate OS window per sprite.
type spriteWindow struct {
	host   *WindowHost
	image  *ebiten.Image
	x, y   int
	closed bool
}

func (w *spriteWindow) Move(x, y int) {
	w.x, w.y = x, y
}

func (w *spriteWindow) Close() error {
	if w.closed {
		return errWindowClosed
	}
	w.closed = true
	w.image.Dispose()
	w.host.dirty = true
	return nil
}

// WindowHost keeps the sprite windows in creation order and draws them.
type WindowHost struct {
	windows []*spriteWindow
	dirty   bool
}

// Open copies img onto a black backed tile of the same size.
func (host *WindowHost) Open(img image.Image) (bouncer.Window, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, bouncer.ErrEmptyImage
	}

	tile := ebiten.NewImage(b.Dx(), b.Dy())
	tile.Fill(ColorBlack)
	src := ebiten.NewImageFromImage(img)
	tile.DrawImage(src, nil)
	src.Dispose()

	w := &spriteWindow{host: host, image: tile}
	host.windows = append(host.windows, w)
	return w, nil
}

func (host *WindowHost) Draw(screen *ebiten.Image) {
	host.compact()
	for _, w := range host.windows {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(w.x), float64(w.y))
		screen.DrawImage(w.image, op)
	}
}

func (host *WindowHost) compact() {
	if !host.dirty {
		return
	}
	live := host.windows[:0]
	for _, w := range host.windows {
		if !w.closed {
			live = append(live, w)
		}
	}
	for i := len(live); i < len(host.windows); i++ {
		host.windows[i] = nil
	}
	host.windows = live
	host.dirty = false
}
