package main

import (
	"fmt"
	"image/color"

	css "github.com/mazznoer/csscolorparser"
)

func ColorNormalized(clr color.Color, multiplyAlpha bool) [4]float64 {
	c := ColorToNRGBA(clr)
	r, g, b, a := f64(c.R)/255, f64(c.G)/255, f64(c.B)/255, f64(c.A)/255

	if multiplyAlpha {
		r *= a
		g *= a
		b *= a
	}

	return [4]float64{r, g, b, a}
}

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func ColorFade(c color.Color, a float64) color.NRGBA {
	nc := ColorNormalized(c, false)
	return color.NRGBA{
		uint8(255 * nc[0]),
		uint8(255 * nc[1]),
		uint8(255 * nc[2]),
		uint8(255 * nc[3] * a),
	}
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}

	return nrgba, nil
}
