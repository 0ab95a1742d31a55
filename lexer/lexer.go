// ----------------------------------------------------------------------------
// FILE: lexer/lexer.go
// ----------------------------------------------------------------------------
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"agam/token"
)

// tamilBlock covers the Tamil Unicode block U+0B80..U+0BFF. tamilDigits is
// the narrower sub-range U+0BE6..U+0BEF (௦-௯) that must be excluded from
// "Tamil letter" classification and tested separately for Tamil numerals.
// tamilDigits is built with golang.org/x/text/unicode/rangetable, which
// exists precisely to assemble a *unicode.RangeTable from an explicit rune
// set rather than by hand-rolled numeric comparison.
var (
	tamilBlock = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x0B80, Hi: 0x0BFF, Stride: 1}},
	}
	tamilDigits = rangetable.New(
		'௦', '௧', '௨', '௩', '௪', '௫', '௬', '௭', '௮', '௯',
	)
)

func isTamilLetter(r rune) bool {
	return unicode.Is(tamilBlock, r) && !unicode.Is(tamilDigits, r)
}

func isTamilNumeral(r rune) bool {
	return unicode.Is(tamilDigits, r)
}

var tamilDigitValue = map[rune]float64{
	'௦': 0, '௧': 1, '௨': 2, '௩': 3, '௪': 4,
	'௫': 5, '௬': 6, '௭': 7, '௮': 8, '௯': 9,
}

// isIdentifierStart reports whether r may begin an identifier: any Unicode
// letter, underscore, or Tamil letter (excluding Tamil digits).
func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || isTamilLetter(r)
}

// isIdentifierContinue reports whether r may continue an identifier already
// under way: anything that can start one, plus ASCII and Tamil digits.
func isIdentifierContinue(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r) || isTamilNumeral(r)
}

// LexError reports a malformed literal, unterminated string, illegal
// character, or mis-aligned dedent, with the 1-based source position it was
// found at.
type LexError struct {
	Line, Column int
	Msg          string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// Lexer turns Agam source text into a stream of Tokens. It tracks an
// indent stack so that block structure is decided once here, never
// re-examined by the parser.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int

	indentStack []int
	atLineStart bool
	pending     []token.Token
}

// New initializes a new Lexer over the given input string.
func New(input string) *Lexer {
	l := &Lexer{
		input:       input,
		line:        1,
		column:      0,
		indentStack: []int{0},
		atLineStart: true,
	}
	l.readChar()
	return l
}

// Tokenize runs a Lexer to completion, returning every token including the
// terminal EOF, or the first LexError encountered. Per the lex error
// policy, scanning aborts at the first malformed token.
func Tokenize(source string) ([]token.Token, error) {
	l := New(source)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			return nil, &LexError{Line: tok.Line, Column: tok.Column, Msg: tok.Literal}
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks, nil
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += size
		l.column++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// NextToken returns the next token in the stream, including synthetic
// NEWLINE/INDENT/DEDENT/EOF tokens. Malformed input is surfaced as an
// ILLEGAL token whose Literal carries the diagnostic message; Tokenize
// turns that into a LexError.
func (l *Lexer) NextToken() token.Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.atLineStart {
		l.handleIndentation()
		l.atLineStart = false
		if len(l.pending) > 0 {
			tok := l.pending[0]
			l.pending = l.pending[1:]
			return tok
		}
	}

	l.skipSpacesAndComment()

	line, column := l.line, l.column
	var tok token.Token

	switch l.ch {
	case '\n':
		tok = token.Token{Type: token.NEWLINE, Literal: "\\n", Line: line, Column: column}
		l.readChar()
		l.line++
		l.column = 1
		l.atLineStart = true
		return tok
	case 0:
		return l.closeRemainingIndents(line, column)
	case '(':
		tok = l.simple(token.LPAREN)
	case ')':
		tok = l.simple(token.RPAREN)
	case '[':
		tok = l.simple(token.LBRACKET)
	case ']':
		tok = l.simple(token.RBRACKET)
	case '{':
		tok = l.simple(token.LBRACE)
	case '}':
		tok = l.simple(token.RBRACE)
	case ',':
		tok = l.simple(token.COMMA)
	case ':':
		tok = l.simple(token.COLON)
	case '.':
		tok = l.simple(token.DOT)
	case '+':
		tok = l.simple(token.PLUS)
	case '-':
		tok = l.simple(token.MINUS)
	case '*':
		tok = l.simple(token.STAR)
	case '/':
		tok = l.simple(token.SLASH)
	case '%':
		tok = l.simple(token.PERCENT)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQUAL_EQUAL, Literal: "==", Line: line, Column: column}
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.ARROW, Literal: "=>", Line: line, Column: column}
		} else {
			tok = token.Token{Type: token.EQUAL, Literal: "=", Line: line, Column: column}
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQUAL, Literal: "!=", Line: line, Column: column}
		} else {
			return l.illegal(line, column, fmt.Sprintf("எதிர்பாராத எழுத்து '%c'", l.ch))
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LESS_EQUAL, Literal: "<=", Line: line, Column: column}
		} else {
			tok = token.Token{Type: token.LESS, Literal: "<", Line: line, Column: column}
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GREATER_EQUAL, Literal: ">=", Line: line, Column: column}
		} else {
			tok = token.Token{Type: token.GREATER, Literal: ">", Line: line, Column: column}
		}
	case '"':
		return l.readString(line, column)
	default:
		switch {
		case unicode.IsDigit(l.ch):
			return l.readNumber(line, column)
		case isTamilNumeral(l.ch):
			return l.readTamilNumber(line, column)
		case isIdentifierStart(l.ch):
			return l.readIdentifierOrFString(line, column)
		default:
			return l.illegal(line, column, fmt.Sprintf("எதிர்பாராத எழுத்து '%c'", l.ch))
		}
	}

	l.readChar()
	return tok
}

func (l *Lexer) simple(tt token.TokenType) token.Token {
	return token.Token{Type: tt, Literal: string(l.ch), Line: l.line, Column: l.column}
}

func (l *Lexer) illegal(line, column int, msg string) token.Token {
	return token.Token{Type: token.ILLEGAL, Literal: msg, Line: line, Column: column}
}

// skipSpacesAndComment consumes spaces, tabs, carriage returns, and a
// trailing "#" comment, but never a newline — newlines are significant
// tokens, not whitespace, in Agam.
func (l *Lexer) skipSpacesAndComment() {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// handleIndentation runs at the start of every logical line: it measures
// leading whitespace (a tab counts as 4 spaces), skips purely blank and
// comment-only lines without emitting layout tokens, and compares the
// result against the indent stack to queue INDENT/DEDENT tokens.
func (l *Lexer) handleIndentation() {
	indent := 0
	for {
		switch l.ch {
		case ' ':
			indent++
			l.readChar()
		case '\t':
			indent += 4
			l.readChar()
		case '\r':
			l.readChar()
		case '\n':
			l.readChar()
			l.line++
			l.column = 1
			indent = 0
		case '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			goto measured
		}
	}
measured:
	if l.ch == 0 {
		return
	}

	top := l.indentStack[len(l.indentStack)-1]
	switch {
	case indent > top:
		l.indentStack = append(l.indentStack, indent)
		l.pending = append(l.pending, token.Token{Type: token.INDENT, Line: l.line, Column: l.column})
	case indent < top:
		for len(l.indentStack) > 1 && l.indentStack[len(l.indentStack)-1] > indent {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			l.pending = append(l.pending, token.Token{Type: token.DEDENT, Line: l.line, Column: l.column})
		}
		if l.indentStack[len(l.indentStack)-1] != indent {
			l.pending = append(l.pending, l.illegal(l.line, l.column, "பொருந்தாத டெடென்ட் (mismatched indentation)"))
		}
	}
}

// closeRemainingIndents runs once, at EOF: it emits one DEDENT per
// remaining indent level above zero, followed by the terminal EOF token.
func (l *Lexer) closeRemainingIndents(line, column int) token.Token {
	for len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		l.pending = append(l.pending, token.Token{Type: token.DEDENT, Line: line, Column: column})
	}
	l.pending = append(l.pending, token.Token{Type: token.EOF, Line: line, Column: column})
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok
}

func (l *Lexer) readNumber(line, column int) token.Token {
	var sb strings.Builder
	for unicode.IsDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		sb.WriteRune(l.ch)
		l.readChar()
		for unicode.IsDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
	return token.Token{Type: token.NUMBER, Literal: sb.String(), Line: line, Column: column}
}

func (l *Lexer) readTamilNumber(line, column int) token.Token {
	var sb strings.Builder
	for isTamilNumeral(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Type: token.NUMBER, Literal: sb.String(), Line: line, Column: column}
}

// TamilToNumber decodes a string of Tamil numerals (௦-௯) as a base-10
// double, mirroring the reference scanner's tamil_to_number.
func TamilToNumber(s string) (float64, error) {
	var result float64
	for _, r := range s {
		digit, ok := tamilDigitValue[r]
		if !ok {
			return 0, fmt.Errorf("தவறான தமிழ் எண் '%c'", r)
		}
		result = result*10 + digit
	}
	return result, nil
}

func (l *Lexer) readIdentifierOrFString(line, column int) token.Token {
	// f"..." / F"..." start an f-string; the prefix letter is otherwise a
	// perfectly ordinary identifier start.
	if (l.ch == 'f' || l.ch == 'F') && l.peekChar() == '"' {
		l.readChar() // consume 'f'/'F'
		l.readChar() // consume opening quote
		return l.readFString(line, column)
	}

	var sb strings.Builder
	for isIdentifierContinue(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	literal := sb.String()
	return token.Token{Type: token.LookupIdent(literal), Literal: literal, Line: line, Column: column}
}

func (l *Lexer) readString(line, column int) token.Token {
	var sb strings.Builder
	for {
		l.readChar()
		if l.ch == '"' {
			break
		}
		if l.ch == 0 {
			return l.illegal(line, column, "முடிவுறாத சரம் (unterminated string)")
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				sb.WriteRune(l.ch)
			}
			continue
		}
		sb.WriteRune(l.ch)
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.STRING, Literal: sb.String(), Line: line, Column: column}
}

// readFString captures the raw body of an f-string; splitting it into
// literal/embedded-expression parts at balanced {...} spans is the
// parser's job, not the lexer's.
func (l *Lexer) readFString(line, column int) token.Token {
	var sb strings.Builder
	for {
		if l.ch == '"' {
			break
		}
		if l.ch == 0 {
			return l.illegal(line, column, "முடிவுறாத f-சரம் (unterminated f-string)")
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.FSTRING, Literal: sb.String(), Line: line, Column: column}
}
