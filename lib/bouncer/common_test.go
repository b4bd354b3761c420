package bouncer

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/nvlled/catbounce/lib/loop"
	"github.com/rs/zerolog"
)

var errTest = errors.New("test failure")

type fakeWindow struct {
	x, y   int
	moves  int
	closed bool
	err    error
}

func (w *fakeWindow) Move(x, y int) {
	w.x, w.y = x, y
	w.moves++
}

func (w *fakeWindow) Close() error {
	w.closed = true
	return w.err
}

type fakeHost struct {
	screen     image.Point
	windows    []*fakeWindow
	warnings   []string
	panel      *ControlPanel
	overlays   []*CrashOverlay
	decoration image.Image
	closeErr   error
}

func newFakeHost() *fakeHost {
	return &fakeHost{screen: image.Pt(800, 600)}
}

func (h *fakeHost) OpenWindow(img image.Image) (Window, error) {
	w := &fakeWindow{err: h.closeErr}
	h.windows = append(h.windows, w)
	return w, nil
}

func (h *fakeHost) ScreenSize() image.Point           { return h.screen }
func (h *fakeHost) Warn(title, message string)        { h.warnings = append(h.warnings, title) }
func (h *fakeHost) ShowPanel(panel *ControlPanel)     { h.panel = panel }
func (h *fakeHost) ShowOverlay(overlay *CrashOverlay) { h.overlays = append(h.overlays, overlay) }

func (h *fakeHost) Decoration() (image.Image, error) {
	if h.decoration == nil {
		return nil, errors.New("no decoration")
	}
	return h.decoration, nil
}

func (h *fakeHost) liveWindows() int {
	n := 0
	for _, w := range h.windows {
		if !w.closed {
			n++
		}
	}
	return n
}

func writePng(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{200, 100, uint8(x), 255})
		}
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// catalogDir creates a directory with valid pngs and corrupt files.
func catalogDir(t *testing.T, valid, corrupt int) string {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < valid; i++ {
		writePng(t, filepath.Join(dir, "cat"+string(rune('a'+i))+".png"), 40, 30)
	}
	for i := 0; i < corrupt; i++ {
		writeFile(t, filepath.Join(dir, "broken"+string(rune('a'+i))+".gif"), "not an image")
	}
	return dir
}

func newTestApp(limit int) (*Application, *fakeHost, *loop.Loop) {
	lp := loop.New()
	host := newFakeHost()
	app := NewApplication(lp, host, limit, rand.New(rand.NewSource(1)), zerolog.Nop())
	return app, host, lp
}
