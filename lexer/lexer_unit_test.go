// ==============================================================================================
// FILE: lexer/lexer_unit_test.go
// ==============================================================================================
// PURPOSE: Validates that the Lexer correctly identifies all token types and literals, including
//          bilingual keywords, significant indentation, and Tamil numerals.
// ==============================================================================================

package lexer

import (
	"testing"

	"agam/token"
)

type expectedToken struct {
	expectedType    token.TokenType
	expectedLiteral string
}

// TestNextToken checks that the lexer correctly produces tokens for core
// language surface: assignment, numbers, strings, booleans, operators.
func TestNextToken(t *testing.T) {
	input1 := "let x = 10\nlet name = \"Amogh\"\nlet flag = true\nlet pi = 3.14\n"
	expected1 := []expectedToken{
		{token.MAARI, "let"}, {token.IDENT, "x"}, {token.EQUAL, "="}, {token.NUMBER, "10"}, {token.NEWLINE, "\\n"},
		{token.MAARI, "let"}, {token.IDENT, "name"}, {token.EQUAL, "="}, {token.STRING, "Amogh"}, {token.NEWLINE, "\\n"},
		{token.MAARI, "let"}, {token.IDENT, "flag"}, {token.EQUAL, "="}, {token.UNMAI, "true"}, {token.NEWLINE, "\\n"},
		{token.MAARI, "let"}, {token.IDENT, "pi"}, {token.EQUAL, "="}, {token.NUMBER, "3.14"}, {token.NEWLINE, "\\n"},
		{token.EOF, ""},
	}
	runLexerTest(t, input1, expected1)

	input2 := "a + b\nc - d\ne * f\ng / h\ni % j\n"
	expected2 := []expectedToken{
		{token.IDENT, "a"}, {token.PLUS, "+"}, {token.IDENT, "b"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "c"}, {token.MINUS, "-"}, {token.IDENT, "d"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "e"}, {token.STAR, "*"}, {token.IDENT, "f"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "g"}, {token.SLASH, "/"}, {token.IDENT, "h"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "i"}, {token.PERCENT, "%"}, {token.IDENT, "j"}, {token.NEWLINE, "\\n"},
		{token.EOF, ""},
	}
	runLexerTest(t, input2, expected2)

	input3 := "x == y\na != b\nc > d\ne < f\ng >= h\ni <= j\n"
	expected3 := []expectedToken{
		{token.IDENT, "x"}, {token.EQUAL_EQUAL, "=="}, {token.IDENT, "y"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "a"}, {token.NOT_EQUAL, "!="}, {token.IDENT, "b"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "c"}, {token.GREATER, ">"}, {token.IDENT, "d"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "e"}, {token.LESS, "<"}, {token.IDENT, "f"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "g"}, {token.GREATER_EQUAL, ">="}, {token.IDENT, "h"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "i"}, {token.LESS_EQUAL, "<="}, {token.IDENT, "j"}, {token.NEWLINE, "\\n"},
		{token.EOF, ""},
	}
	runLexerTest(t, input3, expected3)

	input4 := "x and y\na or b\nnot flag\n"
	expected4 := []expectedToken{
		{token.IDENT, "x"}, {token.MATRUM, "and"}, {token.IDENT, "y"}, {token.NEWLINE, "\\n"},
		{token.IDENT, "a"}, {token.ALLADHU, "or"}, {token.IDENT, "b"}, {token.NEWLINE, "\\n"},
		{token.ILLAMAL, "not"}, {token.IDENT, "flag"}, {token.NEWLINE, "\\n"},
		{token.EOF, ""},
	}
	runLexerTest(t, input4, expected4)
}

// TestNextTokenIndentation checks that blocks are bracketed by synthetic
// INDENT/DEDENT tokens derived purely from leading whitespace.
func TestNextTokenIndentation(t *testing.T) {
	input := "if x:\n    print(x)\n    print(y)\nprint(z)\n"
	expected := []expectedToken{
		{token.ENDRAAL, "if"}, {token.IDENT, "x"}, {token.COLON, ":"}, {token.NEWLINE, "\\n"},
		{token.INDENT, ""},
		{token.ACHIDU, "print"}, {token.LPAREN, "("}, {token.IDENT, "x"}, {token.RPAREN, ")"}, {token.NEWLINE, "\\n"},
		{token.ACHIDU, "print"}, {token.LPAREN, "("}, {token.IDENT, "y"}, {token.RPAREN, ")"}, {token.NEWLINE, "\\n"},
		{token.DEDENT, ""},
		{token.ACHIDU, "print"}, {token.LPAREN, "("}, {token.IDENT, "z"}, {token.RPAREN, ")"}, {token.NEWLINE, "\\n"},
		{token.EOF, ""},
	}
	runLexerTest(t, input, expected)
}

// TestNextTokenBilingual checks that Tamil keywords and their ASCII
// aliases both resolve to the same TokenType.
func TestNextTokenBilingual(t *testing.T) {
	input := "செயல் f():\n    திரும்பு 1\n"
	expected := []expectedToken{
		{token.SEYAL, "செயல்"}, {token.IDENT, "f"}, {token.LPAREN, "("}, {token.RPAREN, ")"}, {token.COLON, ":"}, {token.NEWLINE, "\\n"},
		{token.INDENT, ""},
		{token.THIRUMBU, "திரும்பு"}, {token.NUMBER, "1"}, {token.NEWLINE, "\\n"},
		{token.DEDENT, ""},
		{token.EOF, ""},
	}
	runLexerTest(t, input, expected)
}

// TestNextTokenTamilNumerals checks base-10 decoding of Tamil digit
// sequences into the same NUMBER token kind as ASCII digits.
func TestNextTokenTamilNumerals(t *testing.T) {
	input := "let x = ௧௨௩\n"
	expected := []expectedToken{
		{token.MAARI, "let"}, {token.IDENT, "x"}, {token.EQUAL, "="}, {token.NUMBER, "௧௨௩"}, {token.NEWLINE, "\\n"},
		{token.EOF, ""},
	}
	runLexerTest(t, input, expected)

	n, err := TamilToNumber("௧௨௩")
	if err != nil {
		t.Fatalf("TamilToNumber returned error: %v", err)
	}
	if n != 123 {
		t.Errorf("TamilToNumber(௧௨௩) = %v, want 123", n)
	}
}

// TestNextTokenFString checks that f-string bodies are captured raw,
// deferring {...} splitting to the parser.
func TestNextTokenFString(t *testing.T) {
	input := `f"Hello {name}!"` + "\n"
	expected := []expectedToken{
		{token.FSTRING, "Hello {name}!"}, {token.NEWLINE, "\\n"},
		{token.EOF, ""},
	}
	runLexerTest(t, input, expected)
}

// runLexerTest is a helper to iterate expected tokens and check against
// lexer output.
func runLexerTest(t *testing.T, input string, expectedTokens []expectedToken) {
	t.Helper()
	lex := New(input)

	for i, expected := range expectedTokens {
		actual := lex.NextToken()

		if actual.Type != expected.expectedType {
			t.Fatalf(
				"tests[%d] - token type mismatch. expected=%q, got=%q (literal=%q)",
				i, expected.expectedType, actual.Type, actual.Literal,
			)
		}

		if actual.Literal != expected.expectedLiteral {
			t.Fatalf(
				"tests[%d] - token literal mismatch. expected=%q, got=%q",
				i, expected.expectedLiteral, actual.Literal,
			)
		}
	}
}
