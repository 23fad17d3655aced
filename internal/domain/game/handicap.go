package game

import (
	"fmt"

	"gib2sgf/internal/errors"
)

const (
	MinHandicap = 2
	MaxHandicap = 9
)

// starPoints is the placement order of handicap stones on a 19x19 board.
var starPoints = [MaxHandicap]BoardCoordinate{
	{3, 15},  // dp
	{15, 3},  // pd
	{15, 15}, // pp
	{3, 3},   // dd
	{3, 9},   // dj
	{15, 9},  // pj
	{9, 3},   // jd
	{9, 15},  // jp
	{9, 9},   // jj
}

var center = starPoints[MaxHandicap-1]

// Handicap is a number of handicap stones between MinHandicap and MaxHandicap.
type Handicap struct {
	stones uint8
}

func NewHandicap(stones int) (Handicap, error) {
	if stones < MinHandicap || stones > MaxHandicap {
		return Handicap{}, fmt.Errorf("%w: %d stones", errors.ErrInvalidHandicap, stones)
	}
	return Handicap{stones: uint8(stones)}, nil
}

func (h Handicap) Stones() int {
	return int(h.stones)
}

// Points returns where the handicap stones go. Odd counts of 5 and 7 put the
// centre stone first and fill the rest from the table.
func (h Handicap) Points() []BoardCoordinate {
	n := int(h.stones)
	points := make([]BoardCoordinate, 0, n)
	if n == 5 || n == 7 {
		points = append(points, center)
		n--
	}
	return append(points, starPoints[:n]...)
}

func (h Handicap) String() string {
	return fmt.Sprint(h.stones)
}
