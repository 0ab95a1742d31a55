// ==============================================================================================
// FILE: builtins/mathfn.go
// ==============================================================================================
// PURPOSE: sqrt/வர்க்கம், pow/அடி, floor/தளம், ceil/கூரை, abs/முழுமை,
//          min/குறைந்தபட்சம், max/அதிகபட்சம், random/தற்செயல்.
// ==============================================================================================

package builtins

import (
	"fmt"
	"math"
	"math/rand"

	"agam/object"
)

func mathBuiltins() []entry {
	return []entry{
		{names: []string{"sqrt", "வர்க்கம்"}, arity: 1, fn: unaryMath("sqrt", math.Sqrt)},
		{
			names: []string{"pow", "அடி"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				base, ok1 := args[0].(*object.Number)
				exp, ok2 := args[1].(*object.Number)
				if !ok1 || !ok2 {
					return nil, fmt.Errorf("pow இரண்டு எண்களை எதிர்பார்க்கிறது")
				}
				return &object.Number{Value: math.Pow(base.Value, exp.Value)}, nil
			},
		},
		{names: []string{"floor", "தளம்"}, arity: 1, fn: unaryMath("floor", math.Floor)},
		{names: []string{"ceil", "கூரை"}, arity: 1, fn: unaryMath("ceil", math.Ceil)},
		{names: []string{"abs", "முழுமை"}, arity: 1, fn: unaryMath("abs", math.Abs)},
		{
			names:    []string{"min", "குறைந்தபட்சம்"},
			arity:    1,
			variadic: true,
			fn:       extremum("min", func(a, b float64) bool { return a < b }),
		},
		{
			names:    []string{"max", "அதிகபட்சம்"},
			arity:    1,
			variadic: true,
			fn:       extremum("max", func(a, b float64) bool { return a > b }),
		},
		{
			names:    []string{"random", "தற்செயல்"},
			arity:    0,
			variadic: true,
			fn: func(args []object.Object) (object.Object, error) {
				if len(args) == 0 {
					return &object.Number{Value: rand.Float64()}, nil
				}
				if len(args) != 2 {
					return nil, fmt.Errorf("random 0 அல்லது 2 வாதங்கள் எடுக்கும், %d கொடுக்கப்பட்டது", len(args))
				}
				lo, ok1 := args[0].(*object.Number)
				hi, ok2 := args[1].(*object.Number)
				if !ok1 || !ok2 {
					return nil, fmt.Errorf("random இரண்டு எண்களை எதிர்பார்க்கிறது")
				}
				if hi.Value < lo.Value {
					return nil, fmt.Errorf("random-இன் வரம்பு தவறானது")
				}
				return &object.Number{Value: lo.Value + rand.Float64()*(hi.Value-lo.Value)}, nil
			},
		},
	}
}

func unaryMath(name string, f func(float64) float64) object.NativeFn {
	return func(args []object.Object) (object.Object, error) {
		n, ok := args[0].(*object.Number)
		if !ok {
			return nil, fmt.Errorf("%s ஒரு எண்ணை எதிர்பார்க்கிறது, %s கொடுக்கப்பட்டது", name, object.TypeName(args[0]))
		}
		return &object.Number{Value: f(n.Value)}, nil
	}
}

// extremum folds a variadic argument list of numbers, or a single list
// argument of numbers, whichever form the caller used.
func extremum(name string, better func(a, b float64) bool) object.NativeFn {
	return func(args []object.Object) (object.Object, error) {
		values, err := flattenNumbers(args)
		if err != nil {
			return nil, err
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("%s-க்கு குறைந்தது ஒரு எண் தேவை", name)
		}
		best := values[0]
		for _, v := range values[1:] {
			if better(v, best) {
				best = v
			}
		}
		return &object.Number{Value: best}, nil
	}
}

func flattenNumbers(args []object.Object) ([]float64, error) {
	if len(args) == 1 {
		if list, ok := args[0].(*object.List); ok {
			out := make([]float64, len(list.Elements))
			for i, el := range list.Elements {
				n, ok := el.(*object.Number)
				if !ok {
					return nil, fmt.Errorf("எதிர்பார்க்கப்பட்ட எண் பட்டியல், %s கிடைத்தது", object.TypeName(el))
				}
				out[i] = n.Value
			}
			return out, nil
		}
	}
	out := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.(*object.Number)
		if !ok {
			return nil, fmt.Errorf("எதிர்பார்க்கப்பட்ட எண், %s கிடைத்தது", object.TypeName(a))
		}
		out[i] = n.Value
	}
	return out, nil
}
