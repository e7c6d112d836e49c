package ui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

var (
	colHeaderSolid       = color.NRGBA{0, 0, 0, 204}
	colHeaderTranslucent = color.NRGBA{0, 0, 0, 77}
	colButtonTextHover   = color.NRGBA{255, 255, 255, 255}
)

const (
	blurSolid       = "blur(15px)"
	blurTranslucent = "blur(10px)"
	transparent     = "transparent"

	glyphPlay  = `<i class="fas fa-play"></i>`
	glyphPause = `<i class="fas fa-pause"></i>`
)

// cssColor renders opaque colours as #RRGGBB and the rest as rgba() with the
// alpha rounded to two places.
func cssColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	a := math.Round(float64(c.A)/255*100) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, num(a))
}

// num formats without trailing zeros and never as "-0".
func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string { return num(v) + "px" }

func percent(v float64) string { return num(v) + "%" }
