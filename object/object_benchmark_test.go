// ==============================================================================================
// FILE: object/object_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the Object system.
//          Measures dict access costs, environment access time, and Inspect() overhead.
// ==============================================================================================

package object

import (
	"fmt"
	"testing"
)

// BenchmarkDictSet measures the cost of inserting into a Dict, which must
// also maintain the insertion-order key slice.
func BenchmarkDictSet(b *testing.B) {
	d := NewDict()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Set(fmt.Sprintf("key%d", i%1000), &Number{Value: float64(i)})
	}
}

// BenchmarkDictGet measures lookup cost once the dict has a realistic
// number of entries.
func BenchmarkDictGet(b *testing.B) {
	d := NewDict()
	for i := 0; i < 1000; i++ {
		d.Set(fmt.Sprintf("key%d", i), &Number{Value: float64(i)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Get("key500")
	}
}

// BenchmarkEnvironmentGetDeep measures lookup time in a deeply nested scope.
func BenchmarkEnvironmentGetDeep(b *testing.B) {
	root := NewEnvironment()
	root.Define("target", &Number{Value: 1}, false)

	curr := root
	for i := 0; i < 50; i++ {
		curr = NewEnclosedEnvironment(curr)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curr.Get("target")
	}
}

// BenchmarkObjectInspectLargeList measures Inspect() cost for a sizeable list.
func BenchmarkObjectInspectLargeList(b *testing.B) {
	elements := make([]Object, 100)
	for i := 0; i < 100; i++ {
		elements[i] = &Number{Value: float64(i)}
	}
	list := NewList(elements)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Inspect()
	}
}

// BenchmarkEnvironmentDefine measures repeated Define calls across many
// distinct names, the pattern a function-call-heavy program produces.
func BenchmarkEnvironmentDefine(b *testing.B) {
	env := NewEnvironment()
	val := &Number{Value: 1}
	keys := make([]string, 1000)
	for i := 0; i < 1000; i++ {
		keys[i] = fmt.Sprintf("var%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env.Define(keys[i%1000], val, false)
	}
}
