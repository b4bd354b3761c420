package lib

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScreenPrint writes lines of text top to bottom inside an area of an
// image, keeping track of the current line.
type ScreenPrint struct {
	currentY int
	image    *ebiten.Image
	area     image.Rectangle

	Color color.Color

	// 0b00 - align left
	// 0b10 - align left
	// 0b11 - align center
	// 0b01 - align right
	AlignX byte

	Font font.Face

	Border      int
	LineSpacing int
}

func NewScreenPrint() *ScreenPrint {
	return &ScreenPrint{}
}

// Reset starts printing from the top of area on screen.
func (scrp *ScreenPrint) Reset(screen *ebiten.Image, area image.Rectangle) {
	scrp.currentY = 0
	scrp.image = screen
	scrp.area = area
}

func (scrp *ScreenPrint) Println(str string) {
	for _, line := range strings.Split(str, "\n") {
		if line == "" {
			line = " "
		}
		textB := text.BoundString(scrp.Font, line)

		x := scrp.area.Min.X + scrp.Border/2
		if scrp.AlignX&0b11 == 0b11 {
			x = scrp.area.Min.X + scrp.area.Dx()/2 - textB.Dx()/2
		} else if scrp.AlignX&0b01 == 0b01 {
			x = scrp.area.Max.X - textB.Dx() - scrp.Border/2
		}

		textColor := scrp.Color
		if textColor == nil {
			textColor = color.Black
		}

		// text.Draw takes the baseline, BoundString is relative to it
		y := scrp.area.Min.Y + scrp.currentY + scrp.Border/2 - textB.Min.Y
		text.Draw(scrp.image, line, scrp.Font, x, y, textColor)
		scrp.currentY += textB.Dy() + scrp.LineSpacing
	}
}

// Skip leaves an empty gap of n pixels before the next line.
func (scrp *ScreenPrint) Skip(n int) {
	scrp.currentY += n
}

// CurrentY is the screen y where the next line starts.
func (scrp *ScreenPrint) CurrentY() int {
	return scrp.area.Min.Y + scrp.currentY
}
