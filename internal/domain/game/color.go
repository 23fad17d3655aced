package game

// PlayerColor is the colour a player plays with.
type PlayerColor int

const (
	Black PlayerColor = iota
	White
)

// Pick returns black for Black and white for White.
func Pick[T any](c PlayerColor, black, white T) T {
	if c == Black {
		return black
	}
	return white
}

// SgfColor returns the SGF move property for the colour.
func (c PlayerColor) SgfColor() string {
	return Pick(c, "B", "W")
}

func (c PlayerColor) Opponent() PlayerColor {
	return Pick(c, White, Black)
}

func (c PlayerColor) String() string {
	return Pick(c, "black", "white")
}
