// ==============================================================================================
// FILE: builtins/collections.go
// ==============================================================================================
// PURPOSE: List-building and list-manipulation builtins: range/வரம்பு, append/சேர்,
//          pop/நீக்கு, sort/வரிசை, reverse/தலைகீழ், sum/கூட்டு.
//          Uses github.com/samber/lo for the small functional transform (Reverse)
//          instead of hand-rolled loops, per the Domain Stack's functional-helper choice.
// ==============================================================================================

package builtins

import (
	"fmt"
	"sort"

	"agam/object"

	"github.com/samber/lo"
)

// maxRangeElements bounds range()'s materialized output per the resource
// model's "no unbounded single allocation" rule.
const maxRangeElements = 1_000_000

func collectionBuiltins() []entry {
	return []entry{
		{
			names:    []string{"range", "வரம்பு"},
			arity:    1,
			variadic: true,
			fn:       builtinRange,
		},
		{
			names: []string{"append", "சேர்"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				list, ok := args[0].(*object.List)
				if !ok {
					return nil, fmt.Errorf("append-இன் முதல் வாதம் பட்டியலாக இருக்க வேண்டும், %s கொடுக்கப்பட்டது", object.TypeName(args[0]))
				}
				list.Elements = append(list.Elements, args[1])
				return list, nil
			},
		},
		{
			names: []string{"pop", "நீக்கு"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				list, ok := args[0].(*object.List)
				if !ok {
					return nil, fmt.Errorf("pop-இன் வாதம் பட்டியலாக இருக்க வேண்டும், %s கொடுக்கப்பட்டது", object.TypeName(args[0]))
				}
				if len(list.Elements) == 0 {
					return nil, fmt.Errorf("வெற்றுப் பட்டியலில் pop செய்ய முடியாது")
				}
				last := list.Elements[len(list.Elements)-1]
				list.Elements = list.Elements[:len(list.Elements)-1]
				return last, nil
			},
		},
		{
			names: []string{"sort", "வரிசை"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				list, ok := args[0].(*object.List)
				if !ok {
					return nil, fmt.Errorf("sort-இன் வாதம் பட்டியலாக இருக்க வேண்டும், %s கொடுக்கப்பட்டது", object.TypeName(args[0]))
				}
				sorted := make([]object.Object, len(list.Elements))
				copy(sorted, list.Elements)
				var sortErr error
				sort.SliceStable(sorted, func(i, j int) bool {
					less, err := lessThan(sorted[i], sorted[j])
					if err != nil {
						sortErr = err
					}
					return less
				})
				if sortErr != nil {
					return nil, sortErr
				}
				return object.NewList(sorted), nil
			},
		},
		{
			names: []string{"reverse", "தலைகீழ்"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				list, ok := args[0].(*object.List)
				if !ok {
					return nil, fmt.Errorf("reverse-இன் வாதம் பட்டியலாக இருக்க வேண்டும், %s கொடுக்கப்பட்டது", object.TypeName(args[0]))
				}
				return object.NewList(lo.Reverse(append([]object.Object{}, list.Elements...))), nil
			},
		},
		{
			names: []string{"sum", "கூட்டு"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				list, ok := args[0].(*object.List)
				if !ok {
					return nil, fmt.Errorf("sum-இன் வாதம் பட்டியலாக இருக்க வேண்டும், %s கொடுக்கப்பட்டது", object.TypeName(args[0]))
				}
				total := 0.0
				for _, el := range list.Elements {
					n, ok := el.(*object.Number)
					if !ok {
						return nil, fmt.Errorf("sum-இற்கு எண்களின் பட்டியல் தேவை, %s கிடைத்தது", object.TypeName(el))
					}
					total += n.Value
				}
				return &object.Number{Value: total}, nil
			},
		},
	}
}

// builtinRange implements the 1/2/3-argument forms: range(stop),
// range(start, stop), range(start, stop, step).
func builtinRange(args []object.Object) (object.Object, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.(*object.Number)
		if !ok {
			return nil, fmt.Errorf("range-இன் வாதங்கள் எண்களாக இருக்க வேண்டும்")
		}
		nums[i] = n.Value
	}

	var start, stop, step float64 = 0, 0, 1
	switch len(nums) {
	case 1:
		stop = nums[0]
	case 2:
		start, stop = nums[0], nums[1]
	case 3:
		start, stop, step = nums[0], nums[1], nums[2]
	default:
		return nil, fmt.Errorf("range 1 முதல் 3 வாதங்கள் எடுக்கும், %d கொடுக்கப்பட்டது", len(nums))
	}
	if step == 0 {
		return nil, fmt.Errorf("range-இன் step பூஜ்ஜியமாக இருக்க முடியாது")
	}

	var elements []object.Object
	if step > 0 {
		for v := start; v < stop; v += step {
			if len(elements) >= maxRangeElements {
				return nil, fmt.Errorf("range %d உறுப்புகளுக்கு மேல் உருவாக்க முடியாது", maxRangeElements)
			}
			elements = append(elements, &object.Number{Value: v})
		}
	} else {
		for v := start; v > stop; v += step {
			if len(elements) >= maxRangeElements {
				return nil, fmt.Errorf("range %d உறுப்புகளுக்கு மேல் உருவாக்க முடியாது", maxRangeElements)
			}
			elements = append(elements, &object.Number{Value: v})
		}
	}
	return object.NewList(elements), nil
}

func lessThan(a, b object.Object) (bool, error) {
	switch av := a.(type) {
	case *object.Number:
		bv, ok := b.(*object.Number)
		if !ok {
			return false, fmt.Errorf("sort ஒரே வகையான உறுப்புகளை எதிர்பார்க்கிறது")
		}
		return av.Value < bv.Value, nil
	case *object.String:
		bv, ok := b.(*object.String)
		if !ok {
			return false, fmt.Errorf("sort ஒரே வகையான உறுப்புகளை எதிர்பார்க்கிறது")
		}
		return av.Value < bv.Value, nil
	default:
		return false, fmt.Errorf("sort எண்கள் அல்லது சரங்களை மட்டுமே ஆதரிக்கிறது")
	}
}
