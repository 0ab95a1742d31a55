// ==============================================================================================
// FILE: builtins/file.go
// ==============================================================================================
// PURPOSE: read_file/படி, write_file/எழுது, file_exists/உள்ளது. Reads enforce the
//          per-call size bound from the resource model.
// ==============================================================================================

package builtins

import (
	"os"

	"agam/object"

	"github.com/juju/errors"
)

const maxFileReadBytes = 10 * 1024 * 1024 // 10 MiB

func fileBuiltins() []entry {
	return []entry{
		{
			names: []string{"read_file", "படி"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				path, err := oneString("read_file", args)
				if err != nil {
					return nil, err
				}
				info, statErr := os.Stat(path)
				if statErr != nil {
					return nil, errors.Annotatef(statErr, "கோப்பு %q-ஐ படிக்க முடியவில்லை", path)
				}
				if info.Size() > maxFileReadBytes {
					return nil, errors.Errorf("கோப்பு %q %d பைட்டுகளுக்கு மேல் உள்ளது", path, maxFileReadBytes)
				}
				data, readErr := os.ReadFile(path)
				if readErr != nil {
					return nil, errors.Annotatef(readErr, "கோப்பு %q-ஐ படிக்க முடியவில்லை", path)
				}
				return &object.String{Value: string(data)}, nil
			},
		},
		{
			names: []string{"write_file", "எழுது"},
			arity: 2,
			fn: func(args []object.Object) (object.Object, error) {
				path, content, err := twoStrings("write_file", args)
				if err != nil {
					return nil, err
				}
				if writeErr := os.WriteFile(path, []byte(content), 0o644); writeErr != nil {
					return nil, errors.Annotatef(writeErr, "கோப்பு %q-இல் எழுத முடியவில்லை", path)
				}
				return object.NULL, nil
			},
		},
		{
			names: []string{"file_exists", "உள்ளது"},
			arity: 1,
			fn: func(args []object.Object) (object.Object, error) {
				path, err := oneString("file_exists", args)
				if err != nil {
					return nil, err
				}
				_, statErr := os.Stat(path)
				return nativeBoolObj(statErr == nil), nil
			},
		},
	}
}
