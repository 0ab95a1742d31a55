// ==============================================================================================
// FILE: builtins/builtins_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for the pure, non-networked builtins (type conversion, collections,
//          math, string, JSON). File/process/HTTP/WebSocket builtins touch the outside world
//          and are exercised instead through the evaluator's integration tests where useful.
// ==============================================================================================

package builtins

import (
	"testing"

	"agam/object"
)

func call(t *testing.T, name string, args ...object.Object) (object.Object, error) {
	t.Helper()
	for _, fn := range All() {
		if fn.Name == name {
			return fn.Fn(args)
		}
	}
	t.Fatalf("no builtin registered under %q", name)
	return nil, nil
}

func num(v float64) *object.Number { return &object.Number{Value: v} }
func str(v string) *object.String { return &object.String{Value: v} }

func TestLen(t *testing.T) {
	result, err := call(t, "len", str("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := result.(*object.Number); !ok || n.Value != 5 {
		t.Errorf("got %#v", result)
	}
}

func TestTypeName(t *testing.T) {
	result, err := call(t, "type", num(1))
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := result.(*object.String); !ok || s.Value != object.TypeName(num(1)) {
		t.Errorf("got %#v", result)
	}
}

func TestIntFromString(t *testing.T) {
	result, err := call(t, "int", str("42"))
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := result.(*object.Number); !ok || n.Value != 42 {
		t.Errorf("got %#v", result)
	}
}

func TestIntFromInvalidStringIsError(t *testing.T) {
	_, err := call(t, "int", str("not a number"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRangeSingleArg(t *testing.T) {
	result, err := call(t, "range", num(3))
	if err != nil {
		t.Fatal(err)
	}
	list, ok := result.(*object.List)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("got %#v", result)
	}
}

func TestRangeStartStopStep(t *testing.T) {
	result, err := call(t, "range", num(10), num(0), num(-2))
	if err != nil {
		t.Fatal(err)
	}
	list, ok := result.(*object.List)
	if !ok {
		t.Fatalf("got %#v", result)
	}
	want := []float64{10, 8, 6, 4, 2}
	if len(list.Elements) != len(want) {
		t.Fatalf("got %d elements, want %d", len(list.Elements), len(want))
	}
	for i, w := range want {
		n := list.Elements[i].(*object.Number)
		if n.Value != w {
			t.Errorf("element %d: got %v, want %v", i, n.Value, w)
		}
	}
}

func TestAppendExtendsListInPlace(t *testing.T) {
	original := object.NewList([]object.Object{num(1), num(2)})
	result, err := call(t, "append", original, num(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(original.Elements) != 3 {
		t.Errorf("append did not extend its input list in place")
	}
	list := result.(*object.List)
	if len(list.Elements) != 3 {
		t.Errorf("got %#v", result)
	}
}

func TestSortNumbers(t *testing.T) {
	list := object.NewList([]object.Object{num(3), num(1), num(2)})
	result, err := call(t, "sort", list)
	if err != nil {
		t.Fatal(err)
	}
	sorted := result.(*object.List)
	want := []float64{1, 2, 3}
	for i, w := range want {
		if sorted.Elements[i].(*object.Number).Value != w {
			t.Errorf("element %d: got %v, want %v", i, sorted.Elements[i], w)
		}
	}
}

func TestSumRejectsNonNumbers(t *testing.T) {
	list := object.NewList([]object.Object{num(1), str("oops")})
	_, err := call(t, "sum", list)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSqrtAndPow(t *testing.T) {
	result, err := call(t, "sqrt", num(16))
	if err != nil {
		t.Fatal(err)
	}
	if result.(*object.Number).Value != 4 {
		t.Errorf("got %#v", result)
	}

	result, err = call(t, "pow", num(2), num(10))
	if err != nil {
		t.Fatal(err)
	}
	if result.(*object.Number).Value != 1024 {
		t.Errorf("got %#v", result)
	}
}

func TestMinMax(t *testing.T) {
	result, err := call(t, "max", num(3), num(9), num(1))
	if err != nil {
		t.Fatal(err)
	}
	if result.(*object.Number).Value != 9 {
		t.Errorf("got %#v", result)
	}

	result, err = call(t, "min", num(3), num(9), num(1))
	if err != nil {
		t.Fatal(err)
	}
	if result.(*object.Number).Value != 1 {
		t.Errorf("got %#v", result)
	}
}

func TestStringBuiltins(t *testing.T) {
	result, err := call(t, "upper", str("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if result.(*object.String).Value != "HELLO" {
		t.Errorf("got %#v", result)
	}

	result, err = call(t, "split", str("a,b,c"), str(","))
	if err != nil {
		t.Fatal(err)
	}
	list := result.(*object.List)
	if len(list.Elements) != 3 {
		t.Errorf("got %#v", result)
	}

	result, err = call(t, "join", list, str("-"))
	if err != nil {
		t.Fatal(err)
	}
	if result.(*object.String).Value != "a-b-c" {
		t.Errorf("got %#v", result)
	}
}

func TestContainsOnListUsesStructuralEquality(t *testing.T) {
	list := object.NewList([]object.Object{num(1), num(2), num(3)})
	result, err := call(t, "contains", list, num(2))
	if err != nil {
		t.Fatal(err)
	}
	if !result.(*object.Boolean).Value {
		t.Errorf("expected contains to find 2 in the list")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	input := `{"name":"agam","count":3,"tags":["a","b"]}`
	parsed, err := call(t, "json_parse", str(input))
	if err != nil {
		t.Fatal(err)
	}
	dict, ok := parsed.(*object.Dict)
	if !ok {
		t.Fatalf("got %#v", parsed)
	}
	name, _ := dict.Get("name")
	if s, ok := name.(*object.String); !ok || s.Value != "agam" {
		t.Errorf("got %#v", name)
	}

	stringified, err := call(t, "json_stringify", dict)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := call(t, "json_parse", stringified.(*object.String))
	if err != nil {
		t.Fatal(err)
	}
	reDict := reparsed.(*object.Dict)
	reName, _ := reDict.Get("name")
	if s, ok := reName.(*object.String); !ok || s.Value != "agam" {
		t.Errorf("round trip lost the name field: %#v", reparsed)
	}
}

func TestAllAliasesRegisterBothSpellings(t *testing.T) {
	fns := All()
	seen := map[string]bool{}
	for _, fn := range fns {
		seen[fn.Name] = true
	}
	if !seen["len"] || !seen["நீளம்"] {
		t.Errorf("len/நீளம் not both registered")
	}
	if !seen["sqrt"] || !seen["வர்க்கம்"] {
		t.Errorf("sqrt/வர்க்கம் not both registered")
	}
}
