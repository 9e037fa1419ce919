package utils

import (
	"math"
)

// BracketPos is the Macaulay bracket <x>+ = max(x, 0)
func BracketPos(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// BracketNeg is <x>- = min(x, 0)
func BracketNeg(x float64) float64 {
	if x < 0 {
		return x
	}
	return 0
}

// SignPos is 1 for strictly positive x, else 0. No smoothing at x = 0.
func SignPos(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// SignNeg is 1 for strictly negative x, else 0
func SignNeg(x float64) float64 {
	if x < 0 {
		return 1
	}
	return 0
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}
