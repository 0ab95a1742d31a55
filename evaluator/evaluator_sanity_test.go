// ==============================================================================================
// FILE: evaluator/evaluator_sanity_test.go
// ==============================================================================================
// PURPOSE: Sanity checks for the runtime.
//          Ensures invalid programs fail gracefully as runtime *object.Error values instead of
//          panicking, and that the recursion/loop-iteration resource bounds are actually
//          enforced.
// ==============================================================================================

package evaluator

import (
	"testing"

	"agam/object"
)

func TestSanity_EmptyProgram(t *testing.T) {
	evaluated := testEval("")
	if evaluated != NULL {
		t.Errorf("empty program expected null result, got %T (%+v)", evaluated, evaluated)
	}
}

func TestSanity_UndefinedVariable(t *testing.T) {
	testErrorObject(t, testEval("missing"))
}

func TestSanity_CallingNonCallable(t *testing.T) {
	testErrorObject(t, testEval("let x = 5\nx()"))
}

func TestSanity_IndexOutOfRange(t *testing.T) {
	testErrorObject(t, testEval("let l = [1, 2]\nl[5]"))
}

func TestSanity_MissingDictKey(t *testing.T) {
	input := "let d = {\"a\": 1}\nd[\"z\"]"
	testErrorObject(t, testEval(input))
}

func TestSanity_UnknownStructField(t *testing.T) {
	input := "struct Box:\n    item\nlet b = Box(1)\nb.missing"
	testErrorObject(t, testEval(input))
}

func TestSanity_MatchWithNoMatchingArm(t *testing.T) {
	input := "enum Color:\n    Red\n    Green\nmatch Color.Red:\n    Color.Green => 1"
	testErrorObject(t, testEval(input))
}

func TestSanity_ThrowOutsideTryPropagatesAsError(t *testing.T) {
	testErrorObject(t, testEval(`throw "boom"`))
}

func TestSanity_ImportMissingFile(t *testing.T) {
	testErrorObject(t, testEval("import definitely_missing_module_xyz"))
}

func TestSanity_FromImportMissingName(t *testing.T) {
	// Importing an existing builtin's nonexistent sibling from a module that
	// cannot be found should still fail as a runtime error, not a panic.
	testErrorObject(t, testEval("from definitely_missing_module_xyz import whatever"))
}

func TestSanity_RecursionDepthIsBounded(t *testing.T) {
	input := `
fn recurse(n):
    return recurse(n + 1)

recurse(0)
`
	evaluated := testEval(input)
	errObj, ok := evaluated.(*object.Error)
	if !ok {
		t.Fatalf("expected recursion-bound error, got %T (%+v)", evaluated, evaluated)
	}
	if errObj.Message == "" {
		t.Errorf("expected a non-empty error message")
	}
}

func TestSanity_LoopIterationCountIsBounded(t *testing.T) {
	input := `
let n = 0
while true:
    n = n + 1
`
	evaluated := testEval(input)
	if _, ok := evaluated.(*object.Error); !ok {
		t.Fatalf("expected loop-bound error, got %T (%+v)", evaluated, evaluated)
	}
}

func TestSanity_ConstReassignmentFailsCleanly(t *testing.T) {
	testErrorObject(t, testEval("const pi = 3\npi = 4"))
}

func TestSanity_DivisionByZeroDoesNotPanic(t *testing.T) {
	testErrorObject(t, testEval("5 / 0"))
}

func TestSanity_BreakOutsideLoopIsError(t *testing.T) {
	evaluated := testEval("break")
	if _, ok := evaluated.(*object.Error); !ok {
		t.Fatalf("expected error for break outside loop, got %T (%+v)", evaluated, evaluated)
	}
}

func TestSanity_ContinueOutsideLoopIsError(t *testing.T) {
	evaluated := testEval("continue")
	if _, ok := evaluated.(*object.Error); !ok {
		t.Fatalf("expected error for continue outside loop, got %T (%+v)", evaluated, evaluated)
	}
}
