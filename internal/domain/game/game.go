package game

// Player is what a game record knows about one side. Empty strings mean the
// record did not say.
type Player struct {
	Nick string
	Rank string
}

// Record is a game as read from a game record file. Everything but the moves
// is optional.
type Record struct {
	Black    Player
	White    Player
	Komi     *Score
	Date     *LocalDate
	Result   *Result
	Place    string
	Handicap *Handicap
	Moves    []Move

	// Warnings lists metadata that was present but unusable and was dropped.
	Warnings []string
}

// Player returns the player of the given colour.
func (r *Record) Player(c PlayerColor) *Player {
	return Pick(c, &r.Black, &r.White)
}
