package lib

import (
	"fmt"
	"image"
	"strconv"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/nvlled/catbounce/lib/bouncer"
)

const maxPromptDigits = 9

// LimitPrompt asks for the spawn limit before anything else runs.
type LimitPrompt struct {
	input string
	done  bool
	limit int

	// the default answer is selected until the first edit replaces it
	selected bool

	runes []rune
}

func NewLimitPrompt() *LimitPrompt {
	return &LimitPrompt{input: strconv.Itoa(bouncer.DefaultLimit), selected: true}
}

// Update reads the keyboard. It reports true once the user answered or
// cancelled; Limit is valid from then on.
func (p *LimitPrompt) Update() bool {
	if p.done {
		return true
	}

	p.runes = ebiten.AppendInputChars(p.runes[:0])
	for _, r := range p.runes {
		p.insert(r)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		p.erase()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		p.finish(p.input)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		p.finish("")
	}
	return p.done
}

func (p *LimitPrompt) insert(r rune) {
	if !unicode.IsDigit(r) {
		return
	}
	if p.selected {
		p.input = ""
		p.selected = false
	}
	if len(p.input) < maxPromptDigits {
		p.input += string(r)
	}
}

func (p *LimitPrompt) erase() {
	if p.selected {
		p.input = ""
		p.selected = false
		return
	}
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

func (p *LimitPrompt) finish(answer string) {
	p.limit = bouncer.ParseLimit(answer)
	p.done = true
}

func (p *LimitPrompt) Limit() int { return p.limit }

func (p *LimitPrompt) Draw(screen *ebiten.Image, g *Game) {
	sb := screen.Bounds()
	box := image.Rect(0, 0, 460, 170).Add(image.Pt(sb.Dx()/2-230, sb.Dy()/2-85))

	ebitenutil.DrawRect(screen, float64(box.Min.X), float64(box.Min.Y), float64(box.Dx()), float64(box.Dy()), ColorPanel)
	drawFrame(screen, box, ColorCyan, ColorTealDark)

	scrp := g.scrp
	scrp.Reset(screen, box)
	scrp.AlignX = 0b10
	scrp.Color = ColorCyan
	scrp.Font = g.smallFont
	scrp.Println(bouncer.LimitPromptTitle)
	scrp.Color = ColorWhite
	scrp.Font = g.tinyFont
	scrp.Println(bouncer.LimitPromptText)
	scrp.Println(fmt.Sprintf("min %v, max %v", bouncer.MinLimit, bouncer.MaxLimit))

	field := image.Rect(box.Min.X+10, scrp.CurrentY()+6, box.Max.X-10, scrp.CurrentY()+36)
	ebitenutil.DrawRect(screen, float64(field.Min.X), float64(field.Min.Y), float64(field.Dx()), float64(field.Dy()), ColorBlack)
	caret := "_"
	if g.tickCounter/30%2 == 1 {
		caret = " "
	}
	scrp.Skip(8)
	scrp.Font = g.smallFont
	if p.selected {
		scrp.Color = ColorCyan
	}
	scrp.Println(p.input + caret)
	scrp.Color = ColorWhite

	scrp.Font = g.tinyFont
	scrp.Color = ColorGray
	scrp.AlignX = 0b01
	scrp.Println("[enter] OK   [esc] cancel")
}
