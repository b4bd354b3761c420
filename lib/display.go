package lib

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kbinani/screenshot"
	"github.com/sqweek/dialog"
)

// ScreenBounds returns the bounds of the primary display.
func ScreenBounds() image.Rectangle {
	if screenshot.NumActiveDisplays() > 0 {
		if b := screenshot.GetDisplayBounds(0); !b.Empty() {
			return b
		}
	}
	w, h := ebiten.ScreenSizeInFullscreen()
	return image.Rect(0, 0, w, h)
}

// SetupWindow turns the ebiten window into a transparent, borderless,
// always-on-top layer covering bounds.
func SetupWindow(bounds image.Rectangle, title string) {
	ebiten.SetWindowDecorated(false)
	ebiten.SetScreenTransparent(true)
	ebiten.SetWindowFloating(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowPosition(bounds.Min.X, bounds.Min.Y)
	ebiten.SetWindowSize(bounds.Dx(), bounds.Dy())
}

func showWarning(title, message string) {
	dialog.Message("%v", message).Title(title).Info()
}
