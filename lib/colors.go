package lib

import "image/color"

var (
	ColorWhite     = color.White
	ColorCyan      = color.RGBA{0, 255, 255, 255}
	ColorTealDark  = color.RGBA{0, 90, 90, 255}
	ColorPanel     = color.RGBA{0x11, 0x11, 0x11, 255}
	ColorCrashBlue = color.RGBA{0, 0, 0xAA, 255}
	ColorGray      = color.RGBA{90, 90, 90, 255}
	ColorBlack     = color.RGBA{0, 0, 0, 255}
)
