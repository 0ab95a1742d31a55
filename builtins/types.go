// ==============================================================================================
// FILE: builtins/types.go
// ==============================================================================================
// PURPOSE: Type introspection and conversion: len/நீளம், type/வகை, int/எண்ணாக,
//          float/தசமாக, str/சரமாக.
// ==============================================================================================

package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"agam/object"
)

func typeBuiltins() []entry {
	return []entry{
		{
			names: []string{"len", "நீளம்"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				switch v := args[0].(type) {
				case *object.String:
					return &object.Number{Value: float64(len([]rune(v.Value)))}, nil
				case *object.List:
					return &object.Number{Value: float64(len(v.Elements))}, nil
				case *object.Dict:
					return &object.Number{Value: float64(v.Len())}, nil
				default:
					return nil, fmt.Errorf("len-க்கு சரம், பட்டியல் அல்லது அகராதி தேவை, %s கொடுக்கப்பட்டது", object.TypeName(args[0]))
				}
			},
		},
		{
			names: []string{"type", "வகை"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				return &object.String{Value: object.TypeName(args[0])}, nil
			},
		},
		{
			names: []string{"int", "எண்ணாக"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				switch v := args[0].(type) {
				case *object.Number:
					return &object.Number{Value: float64(int64(v.Value))}, nil
				case *object.String:
					f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
					if err != nil {
						return nil, fmt.Errorf("'%s'-ஐ int ஆக மாற்ற முடியவில்லை", v.Value)
					}
					return &object.Number{Value: float64(int64(f))}, nil
				case *object.Boolean:
					if v.Value {
						return &object.Number{Value: 1}, nil
					}
					return &object.Number{Value: 0}, nil
				default:
					return nil, fmt.Errorf("%s-ஐ int ஆக மாற்ற முடியாது", object.TypeName(args[0]))
				}
			},
		},
		{
			names: []string{"float", "தசமாக"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				switch v := args[0].(type) {
				case *object.Number:
					return &object.Number{Value: v.Value}, nil
				case *object.String:
					f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
					if err != nil {
						return nil, fmt.Errorf("'%s'-ஐ float ஆக மாற்ற முடியவில்லை", v.Value)
					}
					return &object.Number{Value: f}, nil
				default:
					return nil, fmt.Errorf("%s-ஐ float ஆக மாற்ற முடியாது", object.TypeName(args[0]))
				}
			},
		},
		{
			names: []string{"str", "சரமாக"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				return &object.String{Value: displayString(args[0])}, nil
			},
		},
	}
}
