// ==============================================================================================
// FILE: builtins/json.go
// ==============================================================================================
// PURPOSE: json_parse/json_பகுப்பாய்வு (via github.com/tidwall/gjson), and
//          json_stringify/json_சரமாக்கு (via github.com/tidwall/sjson) — a supplement over
//          the reference implementation, which only exposes a parse builtin.
// ==============================================================================================

package builtins

import (
	"fmt"
	"strconv"

	"agam/object"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func jsonBuiltins() []entry {
	return []entry{
		{
			names: []string{"json_parse", "json_பகுப்பாய்வு"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				text, err := oneString("json_parse", args)
				if err != nil {
					return nil, err
				}
				if !gjson.Valid(text) {
					return nil, fmt.Errorf("செல்லுபடியாகாத JSON")
				}
				return gjsonToObject(gjson.Parse(text)), nil
			},
		},
		{
			names: []string{"json_stringify", "json_சரமாக்கு"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				text, err := objectToJSON(args[0])
				if err != nil {
					return nil, err
				}
				return &object.String{Value: text}, nil
			},
		},
	}
}

func gjsonToObject(r gjson.Result) object.Object {
	switch r.Type {
	case gjson.String:
		return &object.String{Value: r.String()}
	case gjson.Number:
		return &object.Number{Value: r.Float()}
	case gjson.True:
		return &object.Boolean{Value: true}
	case gjson.False:
		return &object.Boolean{Value: false}
	case gjson.Null:
		return object.NULL
	case gjson.JSON:
		if r.IsArray() {
			var elements []object.Object
			r.ForEach(func(_, v gjson.Result) bool {
				elements = append(elements, gjsonToObject(v))
				return true
			})
			return object.NewList(elements)
		}
		dict := object.NewDict()
		r.ForEach(func(k, v gjson.Result) bool {
			dict.Set(k.String(), gjsonToObject(v))
			return true
		})
		return dict
	default:
		return object.NULL
	}
}

// objectToJSON serializes an Agam value by building up a JSON document one
// sjson.Set call at a time, walking lists and dicts recursively.
func objectToJSON(obj object.Object) (string, error) {
	switch v := obj.(type) {
	case *object.Number:
		return strconv.FormatFloat(v.Value, 'g', -1, 64), nil
	case *object.String:
		// sjson needs a non-empty path, so the string is set as the sole
		// element of an array and the surrounding brackets are dropped.
		doc, err := sjson.Set("[]", "-1", v.Value)
		if err != nil {
			return "", err
		}
		return doc[1 : len(doc)-1], nil
	case *object.Boolean:
		return strconv.FormatBool(v.Value), nil
	case *object.Null:
		return "null", nil
	case *object.List:
		doc := "[]"
		for i, el := range v.Elements {
			child, err := objectToJSON(el)
			if err != nil {
				return "", err
			}
			var rawErr error
			doc, rawErr = sjson.SetRaw(doc, strconv.Itoa(i), child)
			if rawErr != nil {
				return "", rawErr
			}
		}
		return doc, nil
	case *object.Dict:
		doc := "{}"
		for _, key := range v.Keys() {
			val, _ := v.Get(key)
			child, err := objectToJSON(val)
			if err != nil {
				return "", err
			}
			var rawErr error
			doc, rawErr = sjson.SetRaw(doc, key, child)
			if rawErr != nil {
				return "", rawErr
			}
		}
		return doc, nil
	default:
		return "", fmt.Errorf("%s-ஐ JSON ஆக மாற்ற முடியாது", object.TypeName(obj))
	}
}
