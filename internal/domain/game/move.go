package game

// Move is either a stone placed on Point or a pass.
type Move struct {
	Color PlayerColor
	Pass  bool
	Point BoardCoordinate
}

func PlaceStone(color PlayerColor, point BoardCoordinate) Move {
	return Move{Color: color, Point: point}
}

func PassMove(color PlayerColor) Move {
	return Move{Color: color, Pass: true}
}

func (m Move) String() string {
	if m.Pass {
		return m.Color.String() + " pass"
	}
	return m.Color.String() + " " + m.Point.Standard()
}
