package gib

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"

	"gib2sgf/internal/domain/game"
	"gib2sgf/internal/errors"
	"gib2sgf/internal/lexer"
)

type tagHandler func(p *parser, value string, line int) error

// headerTags lists every header tag that carries data for the record.
var headerTags = map[string]tagHandler{
	"GAMEBLACKNAME":  playerName(game.Black),
	"GAMEWHITENAME":  playerName(game.White),
	"GAMEBLACKNICK":  playerNick(game.Black),
	"GAMEWHITENICK":  playerNick(game.White),
	"GAMEBLACKLEVEL": playerLevel(game.Black),
	"GAMEWHITELEVEL": playerLevel(game.White),
	"GAMEPLACE":      gamePlace,
	"GAMEDATE":       gameDate,
	"GAMEINFOMAIN":   gameInfoMain,
	"GAMETAG":        gameTag,
}

// Keys of GAMEINFOMAIN.
const (
	infoKomi       = "GONGJE" // komi in tenths
	infoResult     = "GRLT"   // result code, see resultCodes
	infoResultDiff = "ZIPSU"  // winning margin in tenths
)

type resultCode struct {
	winner game.PlayerColor
	kind   game.ResultKind
}

var resultCodes = map[int]resultCode{
	0: {game.Black, game.ResultCount},
	1: {game.White, game.ResultCount},
	3: {game.Black, game.ResultResign},
	4: {game.White, game.ResultResign},
	7: {game.Black, game.ResultTime},
	8: {game.White, game.ResultTime},
}

func playerName(c game.PlayerColor) tagHandler {
	return func(p *parser, value string, _ int) error {
		p.names[c] = splitPlayerName(value)
		return nil
	}
}

func playerNick(c game.PlayerColor) tagHandler {
	return func(p *parser, value string, _ int) error {
		p.nicks[c] = value
		return nil
	}
}

func playerLevel(c game.PlayerColor) tagHandler {
	return func(p *parser, value string, line int) error {
		if value == "" {
			return nil
		}
		rank, err := levelToRank(value)
		if err != nil {
			p.warnAt(line, "%s level dropped: %v", c, err)
			return nil
		}
		p.levels[c] = rank
		return nil
	}
}

func gamePlace(p *parser, value string, _ int) error {
	p.record.Place = value
	return nil
}

func gameDate(p *parser, value string, line int) error {
	if value == "" {
		return nil
	}
	date, err := parseGameDate(value)
	if err != nil {
		p.warnAt(line, "GAMEDATE %q dropped: %v", value, err)
		return nil
	}
	p.record.Date = &date
	return nil
}

func gameTag(p *parser, value string, _ int) error {
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if len(field) > 1 && field[0] == 'C' && field[1] >= '0' && field[1] <= '9' {
			p.tagDate = field[1:]
		}
	}
	return nil
}

func gameInfoMain(p *parser, value string, line int) error {
	info := make(map[string]int)
	for _, field := range strings.Split(value, ",") {
		key, raw, ok := strings.Cut(field, ":")
		key = strings.TrimSpace(key)
		if !ok {
			continue
		}
		switch key {
		case infoKomi, infoResult, infoResultDiff:
			n, err := parseSigned(strings.TrimSpace(raw))
			if err != nil {
				return errors.NewParseError(line, "GAMEINFOMAIN %s: %v", key, err)
			}
			info[key] = n
		}
	}

	if komi, ok := info[infoKomi]; ok {
		score := game.ScoreFromTenths(int16(komi))
		p.record.Komi = &score
	}
	if code, ok := info[infoResult]; ok {
		if rc, known := resultCodes[code]; known {
			result := game.Result{Kind: rc.kind, Winner: rc.winner}
			if diff := info[infoResultDiff]; rc.kind == game.ResultCount && diff > 0 {
				score := game.ScoreFromTenths(int16(diff))
				result.Score = &score
			}
			p.record.Result = &result
		}
	}
	return nil
}

// splitPlayerName splits "nick (rank)" into its parts.
func splitPlayerName(value string) game.Player {
	open := strings.LastIndex(value, "(")
	if open < 0 || !strings.HasSuffix(value, ")") {
		return game.Player{Nick: value}
	}
	return game.Player{
		Nick: strings.TrimSpace(value[:open]),
		Rank: strings.TrimSpace(value[open+1 : len(value)-1]),
	}
}

// levelToRank maps Tygem levels to ranks: 18 is 1D, 17 is 1K.
func levelToRank(value string) (string, error) {
	l := lexer.New(value)
	level, err := l.ReadInt()
	if err != nil {
		return "", err
	}
	if !l.AtEnd() {
		return "", fmt.Errorf("trailing characters in %q", value)
	}
	switch {
	case level >= 18 && level <= 26:
		return fmt.Sprintf("%dD", level-17), nil
	case level >= 1 && level < 18:
		return fmt.Sprintf("%dK", 18-level), nil
	default:
		return "", fmt.Errorf("unknown level %d", level)
	}
}

// parseSigned reads an optionally negative number that fits the score range.
func parseSigned(raw string) (int, error) {
	l := lexer.New(raw)
	negative := l.Optional("-")
	n, err := l.ReadInt16()
	if err != nil {
		return 0, err
	}
	if !l.AtEnd() {
		return 0, fmt.Errorf("trailing characters in %q", raw)
	}
	if negative {
		return -int(n), nil
	}
	return int(n), nil
}

// parseGameDate reads GAMEDATE values such as "2020- 4- 7-21-43-52". Other
// layouts are handed to dateparse.
func parseGameDate(value string) (game.LocalDate, error) {
	l := lexer.New(value)
	var parts [3]int
	for i := range parts {
		if i > 0 {
			if err := l.Expect("-"); err != nil {
				return parseAnyDate(value)
			}
		}
		l.SkipSpaces()
		n, err := l.ReadInt()
		if err != nil {
			return parseAnyDate(value)
		}
		parts[i] = n
	}
	return game.NewLocalDate(parts[0], parts[1], parts[2])
}

// parseTagDate reads the C field of GAMETAG, "2020:04:07:21:43".
func parseTagDate(value string) (game.LocalDate, error) {
	l := lexer.New(value)
	var parts [3]int
	for i := range parts {
		if i > 0 {
			if err := l.Expect(":"); err != nil {
				return game.LocalDate{}, err
			}
		}
		n, err := l.ReadInt()
		if err != nil {
			return game.LocalDate{}, err
		}
		parts[i] = n
	}
	return game.NewLocalDate(parts[0], parts[1], parts[2])
}

func parseAnyDate(value string) (game.LocalDate, error) {
	t, err := dateparse.ParseStrict(value)
	if err != nil {
		return game.LocalDate{}, fmt.Errorf("%w: %v", errors.ErrInvalidDate, err)
	}
	return game.NewLocalDate(t.Year(), int(t.Month()), t.Day())
}
