package lib

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/nvlled/catbounce/lib/bouncer"
)

var panelRect = image.Rect(50, 50, 50+420, 50+150)

func drawFrame(screen *ebiten.Image, r image.Rectangle, light, dark color.Color) {
	for i, c := range []color.Color{light, dark} {
		n := float64(i)
		x, y := float64(r.Min.X)+n, float64(r.Min.Y)+n
		w, h := float64(r.Dx())-2*n, float64(r.Dy())-2*n
		ebitenutil.DrawRect(screen, x, y, w, 1, c)
		ebitenutil.DrawRect(screen, x, y+h-1, w, 1, c)
		ebitenutil.DrawRect(screen, x, y, 1, h, c)
		ebitenutil.DrawRect(screen, x+w-1, y, 1, h, c)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, panel *bouncer.ControlPanel) {
	r := panelRect
	ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), ColorPanel)
	drawFrame(screen, r, ColorCyan, ColorTealDark)

	scrp := g.scrp
	scrp.Reset(screen, r)
	scrp.AlignX = 0b10

	scrp.Color = ColorGray
	scrp.Font = g.tinyFont
	scrp.Println(panel.Title)

	scrp.Color = ColorWhite
	scrp.Println(panel.Info)

	scrp.Skip(5)
	scrp.Color = ColorCyan
	scrp.Font = g.smallFont
	scrp.Println(panel.Counter())
}
