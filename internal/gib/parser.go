// Package gib reads Tygem GIB game records.
//
// A GIB file has a header of \[NAME=VALUE\] tags between \HS and \HE and a
// game section of line records between \GS and \GE. Unknown tags and records
// are skipped.
package gib

import (
	"strings"

	"gib2sgf/internal/domain/game"
	"gib2sgf/internal/errors"
	"gib2sgf/internal/lexer"
)

const (
	headerStart = `\HS`
	headerEnd   = `\HE`
	gameStart   = `\GS`
	gameEnd     = `\GE`
	tagStart    = `\[`
	tagEnd      = `\]`

	byteOrderMark = "\uFEFF"
)

// Parse reads a GIB file. Missing metadata is not an error; malformed
// structure is, and no partial record is returned.
func Parse(text string) (*game.Record, error) {
	p := &parser{
		text: strings.TrimPrefix(text, byteOrderMark),
	}
	p.lex = lexer.New(p.text)
	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	if err := p.parseGame(); err != nil {
		return nil, err
	}
	return p.finish(), nil
}

type parser struct {
	text   string
	lex    *lexer.Lexer
	record game.Record

	// nicks from NICK tags win over the ones split out of NAME tags; ranks
	// from NAME tags win over LEVEL tags.
	names  [2]game.Player
	nicks  [2]string
	levels [2]string

	tagDate string
}

func (p *parser) line() int {
	return strings.Count(p.text[:p.lex.Pos()], "\n") + 1
}

func (p *parser) fail(format string, args ...any) error {
	return errors.NewParseError(p.line(), format, args...)
}

// warnAt records metadata that is dropped instead of failing the parse.
func (p *parser) warnAt(line int, format string, args ...any) {
	p.record.Warnings = append(p.record.Warnings, errors.NewParseError(line, format, args...).Error())
}

func (p *parser) parseHeader() error {
	if _, found := p.lex.ReadUntil(headerStart); !found {
		return errors.NewParseError(0, "missing %s header", headerStart)
	}
	p.lex.Optional(headerStart)

	for {
		p.lex.SkipWhitespace()
		switch {
		case p.lex.AtEnd(), p.lex.Optional(headerEnd), strings.HasPrefix(p.lex.Rest(), gameStart):
			return nil
		case p.lex.Optional(tagStart):
			if err := p.parseTag(); err != nil {
				return err
			}
		default:
			// junk between tags
			p.lex.ReadWhile(func(r rune) bool { return r != '\\' })
			if !strings.HasPrefix(p.lex.Rest(), tagStart) && !strings.HasPrefix(p.lex.Rest(), headerEnd) &&
				!strings.HasPrefix(p.lex.Rest(), gameStart) {
				p.lex.Optional(`\`)
			}
		}
	}
}

func (p *parser) parseTag() error {
	line := p.line()
	body, found := p.lex.ReadUntil(tagEnd)
	if !found {
		return errors.NewParseError(line, "unterminated tag %q", truncate(body, 32))
	}
	p.lex.Optional(tagEnd)

	name, value, ok := strings.Cut(body, "=")
	if !ok {
		return nil
	}
	handler, known := headerTags[strings.TrimSpace(name)]
	if !known {
		return nil
	}
	return handler(p, strings.TrimSpace(value), line)
}

func (p *parser) finish() *game.Record {
	for _, c := range []game.PlayerColor{game.Black, game.White} {
		player := p.record.Player(c)
		*player = p.names[c]
		if p.nicks[c] != "" {
			player.Nick = p.nicks[c]
		}
		if player.Rank == "" {
			player.Rank = p.levels[c]
		}
	}
	if p.record.Date == nil && p.tagDate != "" {
		if date, err := parseTagDate(p.tagDate); err == nil {
			p.record.Date = &date
		} else {
			p.warnAt(0, "GAMETAG date %q dropped: %v", p.tagDate, err)
		}
	}
	return &p.record
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
