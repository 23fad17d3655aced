package gib

import "gib2sgf/internal/domain/game"

// Records of the game section.
const (
	recordInit  = "INI" // INI 0 1 <handicap> &4
	recordStone = "STO" // STO 0 <move> <color> <x> <y>
	recordSkip  = "SKI" // SKI 0 <move> [<color>]
)

const (
	gibBlack = 1
	gibWhite = 2
)

func (p *parser) parseGame() error {
	if _, found := p.lex.ReadUntil(gameStart); !found {
		return nil
	}
	p.lex.Optional(gameStart)

	for {
		p.lex.SkipWhitespace()
		if p.lex.AtEnd() || p.lex.Optional(gameEnd) {
			return nil
		}
		word := p.lex.ReadWhile(func(r rune) bool { return r != ' ' && r != '\t' && r != '\r' && r != '\n' })
		var err error
		switch word {
		case recordInit:
			err = p.parseInit()
		case recordStone:
			err = p.parseStone()
		case recordSkip:
			err = p.parseSkip()
		}
		if err != nil {
			return err
		}
		p.skipLine()
	}
}

func (p *parser) skipLine() {
	p.lex.ReadWhile(func(r rune) bool { return r != '\n' })
}

// field reads the next number on the current line.
func (p *parser) field(record, name string) (int, error) {
	p.lex.SkipSpaces()
	n, err := p.lex.ReadInt()
	if err != nil {
		return 0, p.fail("%s record: %s: %v", record, name, err)
	}
	return n, nil
}

func (p *parser) fields(record string, names ...string) ([]int, error) {
	values := make([]int, len(names))
	for i, name := range names {
		n, err := p.field(record, name)
		if err != nil {
			return nil, err
		}
		values[i] = n
	}
	return values, nil
}

func (p *parser) parseInit() error {
	values, err := p.fields(recordInit, "reserved", "setup", "handicap")
	if err != nil {
		return err
	}
	stones := values[2]
	if stones < game.MinHandicap {
		return nil
	}
	handicap, err := game.NewHandicap(stones)
	if err != nil {
		return p.fail("%s record: %v", recordInit, err)
	}
	p.record.Handicap = &handicap
	return nil
}

func (p *parser) parseStone() error {
	values, err := p.fields(recordStone, "reserved", "move number", "color")
	if err != nil {
		return err
	}
	color, err := p.color(recordStone, values[2])
	if err != nil {
		return err
	}
	point, err := p.point(recordStone)
	if err != nil {
		return err
	}
	p.record.Moves = append(p.record.Moves, game.PlaceStone(color, point))
	return nil
}

// point reads the x and y fields of a stone.
func (p *parser) point(record string) (game.BoardCoordinate, error) {
	var xy [2]uint8
	for i, name := range []string{"x", "y"} {
		p.lex.SkipSpaces()
		n, err := p.lex.ReadUint8()
		if err != nil {
			return game.BoardCoordinate{}, p.fail("%s record: %s: %v", record, name, err)
		}
		xy[i] = n
	}
	point, err := game.NewBoardCoordinate(xy[0], xy[1])
	if err != nil {
		return game.BoardCoordinate{}, p.fail("%s record: %v", record, err)
	}
	return point, nil
}

func (p *parser) parseSkip() error {
	if _, err := p.fields(recordSkip, "reserved", "move number"); err != nil {
		return err
	}
	color := p.nextColor()
	p.lex.SkipSpaces()
	if rest := p.lex.Rest(); rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		code, err := p.field(recordSkip, "color")
		if err != nil {
			return err
		}
		if color, err = p.color(recordSkip, code); err != nil {
			return err
		}
	}
	p.record.Moves = append(p.record.Moves, game.PassMove(color))
	return nil
}

func (p *parser) color(record string, code int) (game.PlayerColor, error) {
	switch code {
	case gibBlack:
		return game.Black, nil
	case gibWhite:
		return game.White, nil
	default:
		return 0, p.fail("%s record: unknown color %d", record, code)
	}
}

// nextColor is whoever did not play the last move. White starts handicap games.
func (p *parser) nextColor() game.PlayerColor {
	moves := p.record.Moves
	if len(moves) > 0 {
		return moves[len(moves)-1].Color.Opponent()
	}
	if p.record.Handicap != nil {
		return game.White
	}
	return game.Black
}
