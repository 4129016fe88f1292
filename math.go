package main

import (
	"math"

	"golang.org/x/exp/constraints"
)

// =================================
// FPoint
// =================================

type FPoint struct {
	X, Y float64
}

func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

func (p FPoint) In(r FRectangle) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// =================================
// FRectangle
// =================================

type FRectangle struct {
	Min, Max FPoint
}

func FRect(x0, y0, x1, y1 float64) FRectangle {
	return FRectangle{
		Min: FPt(x0, y0),
		Max: FPt(x1, y1),
	}
}

func FRectWH(w, h float64) FRectangle {
	return FRectangle{
		Min: FPoint{0, 0},
		Max: FPoint{w, h},
	}
}

// Dx returns r's width.
func (r FRectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r FRectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// =================================
// misc
// =================================

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
