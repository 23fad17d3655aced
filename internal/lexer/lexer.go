// Package lexer is a small cursor based scanner used by the GIB parser.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer reads from a string without copying it.
type Lexer struct {
	str string
	pos int
}

func New(str string) *Lexer {
	return &Lexer{str: str}
}

// Pos returns the current byte offset.
func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) AtEnd() bool {
	return l.pos >= len(l.str)
}

// Rest returns the unread input.
func (l *Lexer) Rest() string {
	return l.str[l.pos:]
}

// ReadWhile consumes runes while predicate holds and returns them.
func (l *Lexer) ReadWhile(predicate func(rune) bool) string {
	start := l.pos
	for l.pos < len(l.str) {
		r, size := utf8.DecodeRuneInString(l.str[l.pos:])
		if !predicate(r) {
			break
		}
		l.pos += size
	}
	return l.str[start:l.pos]
}

// ReadUntil consumes everything up to (not including) the first occurrence of
// sep. When sep is missing the rest of the input is consumed and ok is false.
func (l *Lexer) ReadUntil(sep string) (s string, ok bool) {
	idx := strings.Index(l.str[l.pos:], sep)
	if idx < 0 {
		s = l.str[l.pos:]
		l.pos = len(l.str)
		return s, false
	}
	s = l.str[l.pos : l.pos+idx]
	l.pos += idx
	return s, true
}

func (l *Lexer) SkipSpaces() {
	l.ReadWhile(func(r rune) bool { return r == ' ' || r == '\t' })
}

func (l *Lexer) SkipWhitespace() {
	l.ReadWhile(unicode.IsSpace)
}

// Optional advances past str if the input continues with it.
func (l *Lexer) Optional(str string) bool {
	if strings.HasPrefix(l.str[l.pos:], str) {
		l.pos += len(str)
		return true
	}
	return false
}

func (l *Lexer) Expect(str string) error {
	if l.Optional(str) {
		return nil
	}
	return fmt.Errorf("expected %q at offset %d", str, l.pos)
}

func (l *Lexer) readDigits() string {
	return l.ReadWhile(func(r rune) bool { return r >= '0' && r <= '9' })
}

func (l *Lexer) readUnsigned(bitSize int) (uint64, error) {
	start := l.pos
	digits := l.readDigits()
	if digits == "" {
		return 0, fmt.Errorf("expected a number at offset %d", start)
	}
	n, err := strconv.ParseUint(digits, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("not a number %q: %w", digits, err)
	}
	return n, nil
}

// ReadInt reads a run of decimal digits as an int.
func (l *Lexer) ReadInt() (int, error) {
	n, err := l.readUnsigned(strconv.IntSize - 1)
	return int(n), err
}

func (l *Lexer) ReadUint8() (uint8, error) {
	n, err := l.readUnsigned(8)
	return uint8(n), err
}

func (l *Lexer) ReadInt16() (int16, error) {
	n, err := l.readUnsigned(15)
	return int16(n), err
}
