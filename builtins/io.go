// ==============================================================================================
// FILE: builtins/io.go
// ==============================================================================================
// PURPOSE: input/உள்ளீடு — reads one line from stdin, printing an optional prompt first.
// ==============================================================================================

package builtins

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"agam/object"
)

var stdinReader = bufio.NewReader(os.Stdin)

func ioBuiltins() []entry {
	return []entry{
		{
			names:    []string{"input", "உள்ளீடு"},
			arity:    0,
			variadic: true,
			fn: func(args []object.Object) (object.Object, error) {
				if len(args) > 1 {
					return nil, fmt.Errorf("input-க்கு அதிகபட்சம் 1 வாதம் தேவை, %d கொடுக்கப்பட்டது", len(args))
				}
				if len(args) == 1 {
					fmt.Print(displayString(args[0]))
				}
				line, err := stdinReader.ReadString('\n')
				if err != nil && line == "" {
					return &object.String{Value: ""}, nil
				}
				return &object.String{Value: strings.TrimRight(line, "\r\n")}, nil
			},
		},
	}
}

func displayString(obj object.Object) string {
	if s, ok := obj.(*object.String); ok {
		return s.Value
	}
	return obj.Inspect()
}
