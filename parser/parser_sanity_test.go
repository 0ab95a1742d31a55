// ==============================================================================================
// FILE: parser/parser_sanity_test.go
// ==============================================================================================
// PURPOSE: Sanity checks for the Parser.
//          Ensures the parser handles empty input and comments without crashing, and that
//          malformed syntax is reported as a parse error rather than a panic.
// ==============================================================================================

package parser

import (
	"testing"

	"agam/lexer"
)

func TestSanityEmptyProgram(t *testing.T) {
	p := New(lexer.New(""))
	program := p.ParseProgram()
	if len(program.Statements) != 0 {
		t.Errorf("expected no statements, got %d", len(program.Statements))
	}
	if len(p.Errors()) != 0 {
		t.Errorf("expected no errors, got %v", p.Errors())
	}
}

func TestSanityCommentsOnly(t *testing.T) {
	p := New(lexer.New("# just a comment\n# another\n"))
	program := p.ParseProgram()
	if len(program.Statements) != 0 {
		t.Errorf("expected no statements from comment-only input, got %d", len(program.Statements))
	}
}

func TestSanityMissingColonIsParseError(t *testing.T) {
	p := New(lexer.New("if x > 0\n    print(1)\n"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Errorf("expected a parse error for a missing ':'")
	}
}

func TestSanityEmptyBlockIsParseError(t *testing.T) {
	p := New(lexer.New("if x:\n    pass_never_defined_just_ident\nfn f():\n"))
	// fn f(): with nothing indented beneath it should be reported, not panic.
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Errorf("expected a parse error for an empty block")
	}
}

func TestSanityDeeplyNestedGrouping(t *testing.T) {
	input := "let r = " +
		"((((((((((1))))))))))\n"
	p := New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	if len(program.Statements) != 1 {
		t.Errorf("expected 1 statement")
	}
}
