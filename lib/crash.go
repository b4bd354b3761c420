package lib

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nvlled/catbounce/lib/bouncer"
)

func (g *Game) drawCrash(screen *ebiten.Image, overlay *bouncer.CrashOverlay) {
	screen.Fill(ColorCrashBlue)

	b := screen.Bounds()
	area := image.Rect(b.Min.X+50, b.Min.Y+20, b.Max.X-50, b.Max.Y-20)

	scrp := g.scrp
	scrp.Reset(screen, area)
	scrp.AlignX = 0b10
	scrp.Color = ColorWhite
	scrp.Border = 0

	scrp.Font = g.hugeFont
	scrp.Println(bouncer.CrashFace)
	scrp.Skip(40)

	scrp.Font = g.largeFont
	scrp.Println(bouncer.CrashMessage)
	scrp.Skip(30)

	scrp.Font = g.regularFont
	scrp.Println(overlay.ProgressText())
	scrp.Skip(20)

	if overlay.Decoration != nil {
		if g.decoration == nil {
			g.decoration = ebiten.NewImageFromImage(overlay.Decoration)
		}
		db := g.decoration.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(area.Max.X-db.Dx()), float64(scrp.CurrentY()))
		screen.DrawImage(g.decoration, op)
		scrp.Skip(db.Dy() + 20)
	}

	scrp.Font = g.smallFont
	scrp.Println(bouncer.CrashStopCode)
	scrp.Border = defaultBorder
}
