package game

import (
	"math"
	"strconv"
)

// Score is a fixed point decimal with one fractional digit, stored in tenths.
type Score struct {
	tenths int16
}

func ScoreFromTenths(tenths int16) Score {
	return Score{tenths: tenths}
}

// NewScore rounds value to the nearest tenth.
func NewScore(value float64) Score {
	return Score{tenths: int16(math.Round(value * 10))}
}

func (s Score) Tenths() int16 {
	return s.tenths
}

func (s Score) Float64() float64 {
	return float64(s.tenths) / 10
}

// Sgf is the KM and RE form of the score.
func (s Score) Sgf() string {
	return s.String()
}

// String formats the score without a trailing ".0": 6.5 -> "6.5", 6 -> "6",
// -0.5 -> "-0.5".
func (s Score) String() string {
	v := int(s.tenths)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole, frac := v/10, v%10
	if frac == 0 {
		if whole == 0 {
			return "0"
		}
		return sign + strconv.Itoa(whole)
	}
	return sign + strconv.Itoa(whole) + "." + strconv.Itoa(frac)
}
