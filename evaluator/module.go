// ==============================================================================================
// FILE: evaluator/module.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Implements import/from-import. A module named `foo` resolves to `foo.agam` in the
//          current working directory; it is lexed, parsed, and executed once per import site
//          in a fresh environment seeded with the same builtin table as the importing program.
// ==============================================================================================

package evaluator

import (
	"os"

	"agam/ast"
	"agam/lexer"
	"agam/object"
	"agam/parser"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/samber/lo"
)

var moduleLogger = loggo.GetLogger("agam.module")

// evalImportStatement implements both `import name` (namespace install)
// and `from name import a, b` (selective copy), per spec.md §4.4.
// Module execution is eager and uncached: every import site re-reads
// and re-executes the file.
func (ev *Evaluator) evalImportStatement(node *ast.ImportStatement, env *object.Environment) object.Object {
	path := node.Module + ".agam"
	moduleLogger.Debugf("loading module %q from %q", node.Module, path)

	source, err := os.ReadFile(path)
	if err != nil {
		wrapped := errors.Annotatef(err, "module %q-ஐ ஏற்ற முடியவில்லை", node.Module)
		moduleLogger.Warningf("%v", wrapped)
		return object.NewError("%v", wrapped)
	}

	program, parseErr := ev.parseModule(source)
	if parseErr != nil {
		moduleLogger.Warningf("module %q: %v", node.Module, parseErr)
		return object.NewError("module %q-இல் parse பிழை: %v", node.Module, parseErr)
	}

	// Every module gets its own top-level environment, seeded with the
	// same builtin table as any other scope, and untouched by whatever
	// the importing program has bound so far.
	moduleEnv := object.NewEnvironment()
	ev.seedBuiltins(moduleEnv)

	result := ev.Eval(program, moduleEnv)
	if isError(result) {
		return result
	}

	if node.Items != nil {
		return ev.importSelective(node, moduleEnv, env)
	}
	return ev.importNamespace(node, moduleEnv, env)
}

func (ev *Evaluator) parseModule(source []byte) (*ast.Program, error) {
	l := lexer.New(string(source))
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		return nil, p.Errors()[0]
	}
	return program, nil
}

// importSelective implements `from name import a, b`: each listed name
// is looked up in the module's full environment (builtins included, so
// a module-local binding that shadows a builtin still resolves) and
// copied directly into the caller's scope.
func (ev *Evaluator) importSelective(node *ast.ImportStatement, moduleEnv, env *object.Environment) object.Object {
	for _, item := range node.Items {
		val, ok := moduleEnv.Get(item)
		if !ok {
			return object.NewError("module %q-இல் '%s' இல்லை", node.Module, item)
		}
		env.Define(item, val, false)
	}
	return NULL
}

// importNamespace implements plain `import name`: every binding defined
// at the module's own top level, excluding the seeded builtin table, is
// collected into a Module value bound under the module's name.
func (ev *Evaluator) importNamespace(node *ast.ImportStatement, moduleEnv, env *object.Environment) object.Object {
	builtinNames := make(map[string]bool, len(ev.builtins))
	for _, b := range ev.builtins {
		builtinNames[b.Name] = true
	}

	exportable := lo.Filter(moduleEnv.Names(), func(name string, _ int) bool {
		return !builtinNames[name]
	})
	exports := lo.Associate(exportable, func(name string) (string, object.Object) {
		val, _ := moduleEnv.Get(name)
		return name, val
	})

	env.Define(node.Module, &object.Module{Name: node.Module, Exports: exports}, true)
	return NULL
}
