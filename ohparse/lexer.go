// Package ohparse hand-writes a lexer and recursive-descent parser that
// turns opening_hours source text directly into an ohrule.
// OpeningHoursExpression, skipping the intermediate parse-tree stage an
// Earley grammar would otherwise produce (spec.md §4.1).
package ohparse

import (
	"strings"
	"unicode"

	"github.com/Telinage2/opening-hours-osm/oherr"
)

type tokenKind int

const (
	tokWord tokenKind = iota // letters run, e.g. "Mo", "Jan", "PH"
	tokNumber
	tokPunct // single-char structural token
	tokString
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

// lexer splits opening_hours source into tokens, skipping insignificant
// whitespace. Quoted comments are lexed whole (escapes resolved) since
// their content must never be tokenized as structure.
type lexer struct {
	runes []rune
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{runes: []rune(input)}
}

const punctChars = ":-,;|+/[]()"

func (l *lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.runes) {
		return 0, false
	}
	return l.runes[l.pos], true
}

func (l *lexer) skipSpace() {
	for {
		r, ok := l.peekRune()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		l.pos++
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	r, ok := l.peekRune()
	if !ok {
		return token{kind: tokEOF}, nil
	}

	if r == '"' {
		return l.lexString()
	}

	if r == '|' {
		// "||" is a single fallback-operator token; a lone "|" is invalid.
		if l.pos+1 < len(l.runes) && l.runes[l.pos+1] == '|' {
			l.pos += 2
			return token{kind: tokPunct, text: "||"}, nil
		}
		return token{}, oherr.New(`unexpected "|" (fallback operator is "||")`)
	}

	if strings.ContainsRune(punctChars, r) {
		l.pos++
		return token{kind: tokPunct, text: string(r)}, nil
	}

	if unicode.IsDigit(r) {
		start := l.pos
		for {
			r, ok := l.peekRune()
			if !ok || !unicode.IsDigit(r) {
				break
			}
			l.pos++
		}
		return token{kind: tokNumber, text: string(l.runes[start:l.pos])}, nil
	}

	if unicode.IsLetter(r) || r == '_' {
		start := l.pos
		for {
			r, ok := l.peekRune()
			if !ok || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
				break
			}
			l.pos++
		}
		return token{kind: tokWord, text: string(l.runes[start:l.pos])}, nil
	}

	return token{}, oherr.Newf("unexpected character %q", r)
}

func (l *lexer) lexString() (token, error) {
	l.pos++ // consume opening quote
	var b strings.Builder
	for {
		r, ok := l.peekRune()
		if !ok {
			return token{}, oherr.New("unterminated comment string")
		}
		if r == '\\' {
			l.pos++
			esc, ok := l.peekRune()
			if !ok {
				return token{}, oherr.New("unterminated escape in comment string")
			}
			switch esc {
			case '"', '\\':
				b.WriteRune(esc)
			default:
				b.WriteRune('\\')
				b.WriteRune(esc)
			}
			l.pos++
			continue
		}
		if r == '"' {
			l.pos++
			return token{kind: tokString, text: b.String()}, nil
		}
		b.WriteRune(r)
		l.pos++
	}
}

// tokenize fully lexes input into a token stream terminated by tokEOF.
func tokenize(input string) ([]token, error) {
	l := newLexer(input)
	var out []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.kind == tokEOF {
			return out, nil
		}
	}
}
