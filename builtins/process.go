// ==============================================================================================
// FILE: builtins/process.go
// ==============================================================================================
// PURPOSE: exit/வெளியேறு — terminates the host process with an optional status code.
// ==============================================================================================

package builtins

import (
	"fmt"
	"os"

	"agam/object"
)

func processBuiltins() []entry {
	return []entry{
		{
			names:    []string{"exit", "வெளியேறு"},
			arity:    0,
			variadic: true,
			fn: func(args []object.Object) (object.Object, error) {
				code := 0
				if len(args) == 1 {
					n, ok := args[0].(*object.Number)
					if !ok {
						return nil, fmt.Errorf("exit-இன் வாதம் எண்ணாக இருக்க வேண்டும்")
					}
					code = int(n.Value)
				} else if len(args) > 1 {
					return nil, fmt.Errorf("exit 0 அல்லது 1 வாதங்கள் எடுக்கும், %d கொடுக்கப்பட்டது", len(args))
				}
				os.Exit(code)
				return object.NULL, nil
			},
		},
	}
}
