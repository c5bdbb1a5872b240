package main

import (
	"strconv"
	"strings"
)

// TokenKind enumerates the tokenizer's output alphabet (§4.1).
type TokenKind uint8

const (
	TokNone TokenKind = iota
	TokLeftBracket
	TokRightBracket
	TokBool
	TokInt
	TokFloat
	TokString
	TokTerm
	TokDeferredTerm
)

// Token is one lexed unit, carrying whichever payload its Kind implies.
type Token struct {
	Kind  TokenKind
	Bool  bool
	Int   int64
	Float float64
	Str   string // string literal content, or identifier for Term/DeferredTerm
	Line  int
}

// Lexer tokenizes a byte buffer lazily, one Token per call to Next.
type Lexer struct {
	src        []byte
	pos        int
	line       int
	atLineHead bool
	syms       symbols
}

// NewLexer returns a Lexer over src.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, atLineHead: true}
}

// NewLexerString is a convenience wrapper for string sources (used by eval).
func NewLexerString(src string) *Lexer {
	return NewLexer([]byte(src))
}

func (lx *Lexer) peek() (byte, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.pos], true
}

func (lx *Lexer) advance() byte {
	c := lx.src[lx.pos]
	lx.pos++
	if c == '\n' {
		lx.line++
		lx.atLineHead = true
	} else if c != ' ' && c != '\t' && c != '\r' {
		lx.atLineHead = false
	}
	return c
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// bareStop is the set of bytes that terminate (without being consumed into)
// a bare token: whitespace, the bracket delimiters, and the string-quote
// character, none of which may appear within an identifier (§6.2).
func isBareStop(c byte) bool {
	return isSpace(c) || c == '[' || c == ']' || c == '"'
}

// skipSpaceAndComments advances past whitespace and, when encountered at
// the head of a line, a `#` comment through its line terminator -- this is
// what makes a shebang line transparent to the tokenizer.
func (lx *Lexer) skipSpaceAndComments() {
	for {
		c, ok := lx.peek()
		if !ok {
			return
		}
		if isSpace(c) {
			lx.advance()
			continue
		}
		if c == '#' && lx.atLineHead {
			for {
				c, ok := lx.peek()
				if !ok || c == '\n' {
					break
				}
				lx.advance()
			}
			continue
		}
		return
	}
}

// Next produces the next token, or a Token{Kind: TokNone} at end of input.
func (lx *Lexer) Next() (Token, error) {
	lx.skipSpaceAndComments()

	line := lx.line
	c, ok := lx.peek()
	if !ok {
		return Token{Kind: TokNone, Line: line}, nil
	}

	switch c {
	case '[':
		lx.advance()
		return Token{Kind: TokLeftBracket, Line: line}, nil
	case ']':
		lx.advance()
		return Token{Kind: TokRightBracket, Line: line}, nil
	case '"':
		return lx.lexString(line)
	}

	raw := lx.lexBare()
	return classifyBare(raw, line, &lx.syms), nil
}

func (lx *Lexer) lexBare() string {
	start := lx.pos
	for {
		c, ok := lx.peek()
		if !ok || isBareStop(c) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.pos])
}

func (lx *Lexer) lexString(line int) (Token, error) {
	lx.advance() // opening quote
	var sb strings.Builder
	for {
		c, ok := lx.peek()
		if !ok {
			return Token{}, &MachineError{Kind: ErrParseError, Message: "unterminated string literal"}
		}
		lx.advance()
		if c == '"' {
			return Token{Kind: TokString, Str: sb.String(), Line: line}, nil
		}
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		ec, ok := lx.peek()
		if !ok {
			return Token{}, &MachineError{Kind: ErrParseError, Message: "unterminated string literal"}
		}
		lx.advance()
		switch ec {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case '0':
			sb.WriteByte(0)
		default:
			return Token{}, &MachineError{Kind: ErrParseError, Message: "invalid escape \\" + string(ec)}
		}
	}
}

// classifyBare implements the classification order of §9's design note:
// deferred term (leading backslash) is structurally unambiguous and checked
// first, then bool, then int, then float, with anything left over becoming
// a plain term identifier.
func classifyBare(raw string, line int, syms *symbols) Token {
	if strings.HasPrefix(raw, `\`) {
		return Token{Kind: TokDeferredTerm, Str: syms.intern(raw[1:]), Line: line}
	}
	switch raw {
	case "true":
		return Token{Kind: TokBool, Bool: true, Line: line}
	case "false":
		return Token{Kind: TokBool, Bool: false, Line: line}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Token{Kind: TokInt, Int: n, Line: line}
	}
	if looksLikeFloat(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Token{Kind: TokFloat, Float: f, Line: line}
		}
	}
	return Token{Kind: TokTerm, Str: syms.intern(raw), Line: line}
}

func looksLikeFloat(raw string) bool {
	return strings.ContainsAny(raw, ".eE") && (raw[0] == '+' || raw[0] == '-' || raw[0] == '.' || (raw[0] >= '0' && raw[0] <= '9'))
}
