// ==============================================================================================
// FILE: builtins/timefn.go
// ==============================================================================================
// PURPOSE: time/நேரம் (unix timestamp), sleep/தூக்கம், date/தேதி (formatted string),
//          now/நாள் (current time components as a dict).
// ==============================================================================================

package builtins

import (
	"fmt"
	"time"

	"agam/object"
)

func timeBuiltins() []entry {
	return []entry{
		{
			names: []string{"time", "நேரம்"},
			arity: 0,
			fn: func(args []object.Object) (object.Object, error) {
				return &object.Number{Value: float64(time.Now().Unix())}, nil
			},
		},
		{
			names: []string{"sleep", "தூக்கம்"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				n, ok := args[0].(*object.Number)
				if !ok {
					return nil, fmt.Errorf("sleep-இன் வாதம் எண்ணாக இருக்க வேண்டும் (விநாடிகள்)")
				}
				if n.Value < 0 {
					return nil, fmt.Errorf("sleep-இன் வாதம் எதிர்மறையாக இருக்க முடியாது")
				}
				time.Sleep(time.Duration(n.Value * float64(time.Second)))
				return object.NULL, nil
			},
		},
		{
			names:    []string{"date", "தேதி"},
			arity:    0,
			variadic: true,
			fn: func(args []object.Object) (object.Object, error) {
				layout := "2006-01-02 15:04:05"
				if len(args) == 1 {
					s, ok := args[0].(*object.String)
					if !ok {
						return nil, fmt.Errorf("date-இன் வாதம் சரமாக இருக்க வேண்டும்")
					}
					layout = s.Value
				} else if len(args) > 1 {
					return nil, fmt.Errorf("date 0 அல்லது 1 வாதங்கள் எடுக்கும், %d கொடுக்கப்பட்டது", len(args))
				}
				return &object.String{Value: time.Now().Format(layout)}, nil
			},
		},
		{
			names: []string{"now", "நாள்"},
			arity: 0,
			fn: func(args []object.Object) (object.Object, error) {
				t := time.Now()
				d := object.NewDict()
				d.Set("year", &object.Number{Value: float64(t.Year())})
				d.Set("month", &object.Number{Value: float64(t.Month())})
				d.Set("day", &object.Number{Value: float64(t.Day())})
				d.Set("hour", &object.Number{Value: float64(t.Hour())})
				d.Set("minute", &object.Number{Value: float64(t.Minute())})
				d.Set("second", &object.Number{Value: float64(t.Second())})
				return d, nil
			},
		},
	}
}
