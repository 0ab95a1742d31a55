// ==============================================================================================
// FILE: evaluator/evaluator_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for the Evaluator.
//          Exercises the concrete end-to-end scenarios a complete Agam program relies on:
//          closures sharing captured environments, Tamil-keyword control flow, structs,
//          enum/match, and try/catch around a runtime error.
// ==============================================================================================

package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"agam/lexer"
	"agam/object"
	"agam/parser"
)

// runAndCapture parses and evaluates input with a fresh Evaluator, returning
// everything written via print() so tests can assert on exact output lines.
func runAndCapture(t *testing.T, input string) (object.Object, string) {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors: %v", p.Errors())
	}
	var buf bytes.Buffer
	ev := New(nil)
	ev.SetOutput(&buf)
	result := ev.Run(program)
	return result, buf.String()
}

func TestIntegration_ClosureCapturesOwnCounter(t *testing.T) {
	input := `
fn makeCounter():
    let n = 0
    fn increment():
        n = n + 1
        return n
    return increment

let counter = makeCounter()
print(counter())
print(counter())
print(counter())
`
	_, out := runAndCapture(t, input)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{"1", "2", "3"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestIntegration_TamilForLoopWithContinue(t *testing.T) {
	input := `
ஒவ்வொரு i உள்ள [1, 2, 3]:
    என்றால் i == 2:
        தொடர்
    அச்சிடு(i)
`
	_, out := runAndCapture(t, input)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{"1", "3"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestIntegration_WhileLoopWithBreak(t *testing.T) {
	input := `
let n = 0
while true:
    n = n + 1
    if n == 5:
        break
n
`
	testNumberObject(t, testEval(input), 5)
}

func TestIntegration_StructMutationAndSum(t *testing.T) {
	input := `
struct Pt:
    x
    y

let p = Pt(3, 4)
p.x = p.x + 7
p.x + p.y
`
	testNumberObject(t, testEval(input), 14)
}

func TestIntegration_EnumMatch(t *testing.T) {
	input := `
enum Color:
    Red
    Green
    Blue

let c = Color.Green
match c:
    Color.Red => print("r")
    Color.Green => print("g")
    Color.Blue => print("b")
`
	_, out := runAndCapture(t, input)
	if strings.TrimRight(out, "\n") != "g" {
		t.Errorf("got %q, want %q", out, "g")
	}
}

// TestIntegration_MatchOnEnumSpecScenario mirrors the "Match on enum"
// end-to-end scenario verbatim (an enum, a match over Color.Green, arms
// written as single-line `pattern => body`) and checks the exact output.
func TestIntegration_MatchOnEnumSpecScenario(t *testing.T) {
	input := `
enum Color:
    Red
    Green
    Blue

let c = Color.Green
match c:
    Color.Red => print("r")
    Color.Green => print("g")
    _ => print("?")
`
	_, out := runAndCapture(t, input)
	if strings.TrimRight(out, "\n") != "g" {
		t.Errorf("got %q, want %q", out, "g")
	}
}

func TestIntegration_MatchWildcardAndBinding(t *testing.T) {
	input := `
fn describe(n):
    match n:
        0 => return "zero"
        x => return "other:" + x

describe(0) + "," + describe(5)
`
	result := testEval(input)
	s, ok := result.(*object.String)
	if !ok || s.Value != "zero,other:5" {
		t.Errorf("wrong result: %#v", result)
	}
}

// TestIntegration_MatchArmWithBlockBody exercises the indented-block arm
// body form (a NEWLINE right after '=>'), not just the single-line form.
func TestIntegration_MatchArmWithBlockBody(t *testing.T) {
	input := `
fn classify(n):
    match n:
        0 =>
            return "zero"
        x =>
            let doubled = x * 2
            return "nonzero"

classify(0)
`
	result := testEval(input)
	s, ok := result.(*object.String)
	if !ok || s.Value != "zero" {
		t.Errorf("wrong result: %#v", result)
	}
}

func TestIntegration_TryCatchDivisionByZero(t *testing.T) {
	input := `
try:
    let x = 1 / 0
catch e:
    print("caught:" + e)
`
	_, out := runAndCapture(t, input)
	if !strings.HasPrefix(out, "caught:") {
		t.Errorf("expected output to start with 'caught:', got %q", out)
	}
}

func TestIntegration_TryCatchBindsErrorName(t *testing.T) {
	input := `
let message = ""
try:
    throw "boom"
catch e:
    message = e
message
`
	result := testEval(input)
	s, ok := result.(*object.String)
	if !ok || s.Value != "boom" {
		t.Errorf("wrong result: %#v", result)
	}
}

func TestIntegration_RecursiveFactorial(t *testing.T) {
	input := `
fn fact(n):
    if n <= 1:
        return 1
    return n * fact(n - 1)

fact(6)
`
	testNumberObject(t, testEval(input), 720)
}

func TestIntegration_LambdaAsArgument(t *testing.T) {
	input := `
fn apply(f, x):
    return f(x)

apply(lambda(y): y * 2, 21)
`
	testNumberObject(t, testEval(input), 42)
}

func TestIntegration_ListAndDictLiteralsNested(t *testing.T) {
	input := `
let data = {"nums": [1, 2, 3], "label": "abc"}
data["nums"][1]
`
	testNumberObject(t, testEval(input), 2)
}

func TestIntegration_FStringInterpolation(t *testing.T) {
	input := `
let name = "world"
print(f"hello {name}!")
`
	_, out := runAndCapture(t, input)
	if strings.TrimRight(out, "\n") != "hello world!" {
		t.Errorf("got %q", out)
	}
}
