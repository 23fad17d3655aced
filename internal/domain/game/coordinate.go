package game

import (
	"fmt"

	"gib2sgf/internal/errors"
)

// BoardSize is the only supported board size.
const BoardSize = 19

// BoardCoordinate is a point on the board, zero-based from the top left corner
// the same way SGF counts.
type BoardCoordinate struct {
	X uint8
	Y uint8
}

func NewBoardCoordinate(x, y uint8) (BoardCoordinate, error) {
	if x >= BoardSize || y >= BoardSize {
		return BoardCoordinate{}, fmt.Errorf("%w: (%d, %d)", errors.ErrCoordinateOutOfRange, x, y)
	}
	return BoardCoordinate{X: x, Y: y}, nil
}

// Sgf encodes the point as two letters, e.g. (4, 8) -> "ei".
func (c BoardCoordinate) Sgf() string {
	return string([]byte{'a' + c.X, 'a' + c.Y})
}

// ParseSgfCoordinate is the inverse of Sgf.
func ParseSgfCoordinate(s string) (BoardCoordinate, error) {
	if len(s) != 2 || s[0] < 'a' || s[1] < 'a' {
		return BoardCoordinate{}, fmt.Errorf("%w: %q", errors.ErrCoordinateOutOfRange, s)
	}
	return NewBoardCoordinate(s[0]-'a', s[1]-'a')
}

// Standard renders the point the way it is printed on a board, e.g. "D16".
// Columns skip the letter I.
func (c BoardCoordinate) Standard() string {
	col := 'A' + rune(c.X)
	if col >= 'I' {
		col++
	}
	return fmt.Sprintf("%c%d", col, BoardSize-int(c.Y))
}

func (c BoardCoordinate) String() string {
	return c.Standard()
}
