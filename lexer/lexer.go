/*
File    : rloxj/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer implements the scanner that turns Lox source text into a
// stream of tokens.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/rloxj/errs"
	"github.com/akashmaji946/rloxj/token"
)

// Scanner performs lexical analysis of Lox source code. It scans the
// source byte by byte, tracking 1-based line and column for diagnostics.
//
// Fields mirror the teacher's Lexer (lexer/lexer.go): Src/Current/Position/
// Line/Column, narrowed to single-byte lookahead since Lox's grammar (spec
// section 4.1) needs only one character of lookahead at any position.
type Scanner struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int

	start       int // byte offset of the token currently being scanned
	startLine   int
	startColumn int
	Errors      errs.List
}

// New creates a Scanner positioned at the start of src.
func New(src string) *Scanner {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Scanner{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// ScanTokens tokenizes the entire source and returns either the full token
// list (terminated by EOF) with zero errors, or a nonempty error list — per
// spec section 4.1's output contract, the two are mutually exclusive.
func ScanTokens(src string) ([]token.Token, error) {
	s := New(src)
	var tokens []token.Token
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	if err := s.Errors.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Peek looks at the next byte without consuming it, returning 0 at EOF.
func (s *Scanner) Peek() byte {
	if s.Position+1 >= s.SrcLength {
		return 0
	}
	return s.Src[s.Position+1]
}

// Advance moves to the next byte, updating Position/Column and Line on
// newlines.
func (s *Scanner) Advance() {
	if s.Current == '\n' {
		s.Line++
		s.Column = 1
	} else {
		s.Column++
	}
	s.Position++
	if s.Position >= s.SrcLength {
		s.Current = 0
		s.Position = s.SrcLength
	} else {
		s.Current = s.Src[s.Position]
	}
}

func (s *Scanner) match(want byte) bool {
	if s.Current != want {
		return false
	}
	s.Advance()
	return true
}

func (s *Scanner) errorf(format string, args ...any) {
	s.Errors.Add(errs.Lexical, errs.Position{Line: s.startLine, Column: s.startColumn}, fmt.Sprintf(format, args...))
}

// NextToken scans and returns the next token. Skips whitespace and line
// comments first (spec section 4.1).
func (s *Scanner) NextToken() token.Token {
	s.skipWhitespaceAndComments()

	s.start = s.Position
	s.startLine = s.Line
	s.startColumn = s.Column

	if s.Position >= s.SrcLength {
		return s.make(token.EOF, "")
	}

	c := s.Current
	s.Advance()

	switch c {
	case '(':
		return s.make(token.LeftParen, "(")
	case ')':
		return s.make(token.RightParen, ")")
	case '{':
		return s.make(token.LeftBrace, "{")
	case '}':
		return s.make(token.RightBrace, "}")
	case ',':
		return s.make(token.Comma, ",")
	case '.':
		return s.make(token.Dot, ".")
	case '-':
		return s.make(token.Minus, "-")
	case '+':
		return s.make(token.Plus, "+")
	case ';':
		return s.make(token.Semicolon, ";")
	case '*':
		return s.make(token.Star, "*")
	case '/':
		return s.make(token.Slash, "/")
	case '!':
		if s.match('=') {
			return s.make(token.BangEqual, "!=")
		}
		return s.make(token.Bang, "!")
	case '=':
		if s.match('=') {
			return s.make(token.EqualEqual, "==")
		}
		return s.make(token.Equal, "=")
	case '<':
		if s.match('=') {
			return s.make(token.LessEqual, "<=")
		}
		return s.make(token.Less, "<")
	case '>':
		if s.match('=') {
			return s.make(token.GreaterEqual, ">=")
		}
		return s.make(token.Greater, ">")
	case '"':
		return s.readString()
	default:
		if isDigit(c) {
			return s.readNumber()
		}
		if isAlpha(c) {
			return s.readIdentifier()
		}
		s.errorf("unexpected character '%c'", c)
		return s.make(token.ILLEGAL, string(c))
	}
}

func (s *Scanner) make(typ token.Type, lexeme string) token.Token {
	return token.New(typ, lexeme, nil, s.startLine, s.startColumn)
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch s.Current {
		case ' ', '\t', '\r', '\n':
			s.Advance()
		case '/':
			if s.Peek() == '/' {
				for s.Current != '\n' && s.Position < s.SrcLength {
					s.Advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) readString() token.Token {
	var raw []byte
	for s.Current != '"' && s.Position < s.SrcLength {
		raw = append(raw, s.Current)
		s.Advance()
	}
	if s.Position >= s.SrcLength {
		s.errorf("unterminated string")
		return s.make(token.ILLEGAL, string(raw))
	}
	s.Advance() // closing quote
	lexeme := s.Src[s.start:s.Position]
	return token.New(token.String, lexeme, string(raw), s.startLine, s.startColumn)
}

func (s *Scanner) readNumber() token.Token {
	for isDigit(s.Current) {
		s.Advance()
	}
	if s.Current == '.' && isDigit(s.Peek()) {
		s.Advance()
		for isDigit(s.Current) {
			s.Advance()
		}
	}
	lexeme := s.Src[s.start:s.Position]
	val, _ := strconv.ParseFloat(lexeme, 64)
	return token.New(token.Number, lexeme, val, s.startLine, s.startColumn)
}

func (s *Scanner) readIdentifier() token.Token {
	for isAlpha(s.Current) || isDigit(s.Current) {
		s.Advance()
	}
	lexeme := s.Src[s.start:s.Position]
	if kw, ok := token.Keywords[lexeme]; ok {
		return s.make(kw, lexeme)
	}
	return s.make(token.Identifier, lexeme)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
