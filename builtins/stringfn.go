// ==============================================================================================
// FILE: builtins/stringfn.go
// ==============================================================================================
// PURPOSE: split/பிரி, join/இணை, upper/மேல், lower/கீழ், trim/ஒழுங்கு,
//          replace/மாற்று, startswith/தொடங்கு, endswith/முடிவு, contains/உள்ளதா.
// ==============================================================================================

package builtins

import (
	"fmt"
	"strings"

	"agam/object"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Upper(language.Und)
var lowerCaser = cases.Lower(language.Und)

func stringBuiltins() []entry {
	return []entry{
		{
			names: []string{"split", "பிரி"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				str, sep, err := twoStrings("split", args)
				if err != nil {
					return nil, err
				}
				parts := strings.Split(str, sep)
				elements := make([]object.Object, len(parts))
				for i, p := range parts {
					elements[i] = &object.String{Value: p}
				}
				return object.NewList(elements), nil
			},
		},
		{
			names: []string{"join", "இணை"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				list, ok1 := args[0].(*object.List)
				sep, ok2 := args[1].(*object.String)
				if !ok1 || !ok2 {
					return nil, fmt.Errorf("join-க்கு (பட்டியல், சரம்) தேவை")
				}
				parts := make([]string, len(list.Elements))
				for i, el := range list.Elements {
					parts[i] = displayString(el)
				}
				return &object.String{Value: strings.Join(parts, sep.Value)}, nil
			},
		},
		{
			names: []string{"upper", "மேல்"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				s, err := oneString("upper", args)
				if err != nil {
					return nil, err
				}
				return &object.String{Value: titleCaser.String(s)}, nil
			},
		},
		{
			names: []string{"lower", "கீழ்"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				s, err := oneString("lower", args)
				if err != nil {
					return nil, err
				}
				return &object.String{Value: lowerCaser.String(s)}, nil
			},
		},
		{
			names: []string{"trim", "ஒழுங்கு"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				s, err := oneString("trim", args)
				if err != nil {
					return nil, err
				}
				return &object.String{Value: strings.TrimSpace(s)}, nil
			},
		},
		{
			names: []string{"replace", "மாற்று"},
			arity: 3,
			fn: func(args []object.Object) (object.Object, error) {
				str, ok1 := args[0].(*object.String)
				old, ok2 := args[1].(*object.String)
				replacement, ok3 := args[2].(*object.String)
				if !ok1 || !ok2 || !ok3 {
					return nil, fmt.Errorf("replace-க்கு மூன்று சரங்கள் தேவை")
				}
				return &object.String{Value: strings.ReplaceAll(str.Value, old.Value, replacement.Value)}, nil
			},
		},
		{
			names: []string{"startswith", "தொடங்கு"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				str, prefix, err := twoStrings("startswith", args)
				if err != nil {
					return nil, err
				}
				return nativeBoolObj(strings.HasPrefix(str, prefix)), nil
			},
		},
		{
			names: []string{"endswith", "முடிவு"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				str, suffix, err := twoStrings("endswith", args)
				if err != nil {
					return nil, err
				}
				return nativeBoolObj(strings.HasSuffix(str, suffix)), nil
			},
		},
		{
			names: []string{"contains", "உள்ளதா"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				switch v := args[0].(type) {
				case *object.String:
					needle, ok := args[1].(*object.String)
					if !ok {
						return nil, fmt.Errorf("contains-க்கு சரத்தில் சரம் தேட வேண்டும்")
					}
					return nativeBoolObj(strings.Contains(v.Value, needle.Value)), nil
				case *object.List:
					for _, el := range v.Elements {
						if object.Equals(el, args[1]) {
							return nativeBoolObj(true), nil
						}
					}
					return nativeBoolObj(false), nil
				default:
					return nil, fmt.Errorf("contains சரம் அல்லது பட்டியலில் மட்டுமே வேலை செய்யும், %s கொடுக்கப்பட்டது", object.TypeName(args[0]))
				}
			},
		},
	}
}

func oneString(name string, args []object.Object) (string, error) {
	s, ok := args[0].(*object.String)
	if !ok {
		return "", fmt.Errorf("%s-க்கு சரம் தேவை, %s கொடுக்கப்பட்டது", name, object.TypeName(args[0]))
	}
	return s.Value, nil
}

func twoStrings(name string, args []object.Object) (string, string, error) {
	a, ok1 := args[0].(*object.String)
	b, ok2 := args[1].(*object.String)
	if !ok1 || !ok2 {
		return "", "", fmt.Errorf("%s-க்கு இரண்டு சரங்கள் தேவை", name)
	}
	return a.Value, b.Value, nil
}

func nativeBoolObj(b bool) *object.Boolean {
	return &object.Boolean{Value: b}
}
