package game

// ResultKind tells how a game ended.
type ResultKind int

const (
	ResultJigo ResultKind = iota
	ResultCount
	ResultResign
	ResultTime
	ResultForfeit
)

func (k ResultKind) String() string {
	switch k {
	case ResultJigo:
		return "jigo"
	case ResultCount:
		return "count"
	case ResultResign:
		return "resign"
	case ResultTime:
		return "time"
	case ResultForfeit:
		return "forfeit"
	default:
		return "unknown"
	}
}

// Result is the outcome of a game. Winner is meaningless for a jigo and Score
// is only ever set for a counted game.
type Result struct {
	Kind   ResultKind
	Winner PlayerColor
	Score  *Score
}

func Jigo() Result {
	return Result{Kind: ResultJigo}
}

// Count is a win by counting, with an unknown margin when score is nil.
func Count(winner PlayerColor, score *Score) Result {
	return Result{Kind: ResultCount, Winner: winner, Score: score}
}

func Resign(winner PlayerColor) Result {
	return Result{Kind: ResultResign, Winner: winner}
}

func Time(winner PlayerColor) Result {
	return Result{Kind: ResultTime, Winner: winner}
}

func Forfeit(winner PlayerColor) Result {
	return Result{Kind: ResultForfeit, Winner: winner}
}

// Sgf renders the result as an SGF RE value.
func (r Result) Sgf() string {
	prefix := r.Winner.SgfColor() + "+"
	switch r.Kind {
	case ResultCount:
		if r.Score == nil {
			return prefix + "?"
		}
		return prefix + r.Score.String()
	case ResultResign:
		return prefix + "R"
	case ResultTime:
		return prefix + "T"
	case ResultForfeit:
		return prefix + "F"
	default:
		return "0"
	}
}

func (r Result) String() string {
	return r.Sgf()
}
