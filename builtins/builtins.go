// ==============================================================================================
// FILE: builtins/builtins.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: Native function registration table. Every entry is registered under both its
//          Tamil name and its ASCII alias, matching the bilingual keyword table in the token
//          package. This is "library surface, not core semantics": the evaluator only ever
//          sees the resulting []*object.NativeFunction slice and knows nothing about HTTP,
//          JSON, or the filesystem.
// ==============================================================================================

package builtins

import (
	"agam/object"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("agam.builtins")

// entry pairs a bilingual name with its implementation and calling
// convention, mirroring the teacher's {Name string; Builtin *Builtin}
// table shape in object/builtins.go, generalized to carry arity.
type entry struct {
	names    []string
	arity    int
	variadic bool
	fn       object.NativeFn
}

func (e entry) register(out *[]*object.NativeFunction) {
	for _, name := range e.names {
		*out = append(*out, &object.NativeFunction{
			Name:     name,
			Arity:    e.arity,
			Variadic: e.variadic,
			Fn:       e.fn,
		})
	}
}

// All returns the complete native function table, ready to pass into
// evaluator.New. Each call builds a fresh slice of NativeFunction values;
// state kept at package level (such as the WebSocket connection table) is
// still shared by every table this returns.
func All() []*object.NativeFunction {
	var out []*object.NativeFunction

	for _, e := range ioBuiltins() {
		e.register(&out)
	}
	for _, e := range typeBuiltins() {
		e.register(&out)
	}
	for _, e := range collectionBuiltins() {
		e.register(&out)
	}
	for _, e := range mathBuiltins() {
		e.register(&out)
	}
	for _, e := range stringBuiltins() {
		e.register(&out)
	}
	for _, e := range fileBuiltins() {
		e.register(&out)
	}
	for _, e := range processBuiltins() {
		e.register(&out)
	}
	for _, e := range timeBuiltins() {
		e.register(&out)
	}
	for _, e := range httpBuiltins() {
		e.register(&out)
	}
	for _, e := range websocketBuiltins() {
		e.register(&out)
	}
	for _, e := range jsonBuiltins() {
		e.register(&out)
	}

	logger.Debugf("registered %d native function aliases", len(out))
	return out
}
