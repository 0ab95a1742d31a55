// ==============================================================================================
// FILE: parser/parser_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the Parser.
//          Measures parsing throughput for simple statements, large programs, and deeply
//          nested expressions to catch accidental quadratic behavior.
// ==============================================================================================

package parser

import (
	"fmt"
	"strings"
	"testing"

	"agam/lexer"
)

func BenchmarkParseLetStatement(b *testing.B) {
	input := "let x = 1 + 2 * 3\n"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(lexer.New(input)).ParseProgram()
	}
}

func BenchmarkParseLargeProgram(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString(fmt.Sprintf("let x%d = %d + %d\n", i, i, i+1))
	}
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(lexer.New(input)).ParseProgram()
	}
}

func BenchmarkParseDeeplyNestedExpression(b *testing.B) {
	var open, close strings.Builder
	for i := 0; i < 100; i++ {
		open.WriteString("(")
		close.WriteString(")")
	}
	input := "let r = " + open.String() + "1" + close.String() + "\n"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(lexer.New(input)).ParseProgram()
	}
}

func BenchmarkParseFunctionWithBody(b *testing.B) {
	input := "fn fact(n):\n    if n <= 1:\n        return 1\n    return n * fact(n - 1)\n"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(lexer.New(input)).ParseProgram()
	}
}
