// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Implements the runtime execution engine.
//          It traverses the AST and produces side effects (IO) or results (Objects).
//          It handles variable scoping, control flow, and error propagation.
// ==============================================================================================

package evaluator

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"agam/ast"
	"agam/object"
)

// Singletons reused from the object package so that identical
// booleans/null compare equal by pointer as well as by value.
var (
	NULL  = object.NULL
	TRUE  = object.TRUE
	FALSE = object.FALSE
)

// Resource bounds enforced by the evaluator regardless of what the
// program itself asks for.
const (
	maxRecursionDepth = 1000
	maxLoopIterations = 10_000_000
)

// Evaluator is the tree-walking runtime. It holds the global scope, the
// seeded builtin table (replayed into every module's isolated
// environment), and the call-depth counter shared across a program and
// whatever modules it imports.
type Evaluator struct {
	globals   *object.Environment
	builtins  []*object.NativeFunction
	callDepth int
	out       io.Writer
}

// New builds an Evaluator with builtins installed as const bindings in
// its global scope. print statements write to os.Stdout until
// SetOutput redirects them.
func New(builtins []*object.NativeFunction) *Evaluator {
	ev := &Evaluator{globals: object.NewEnvironment(), builtins: builtins, out: os.Stdout}
	ev.seedBuiltins(ev.globals)
	return ev
}

// Globals returns the evaluator's persistent global scope, used by the
// REPL to keep bindings alive across input lines.
func (ev *Evaluator) Globals() *object.Environment {
	return ev.globals
}

// SetOutput redirects print statements away from os.Stdout, for tests
// and for embedding the evaluator in a non-terminal host.
func (ev *Evaluator) SetOutput(w io.Writer) {
	ev.out = w
}

func (ev *Evaluator) seedBuiltins(env *object.Environment) {
	for _, b := range ev.builtins {
		env.Define(b.Name, b, true)
	}
}

// Run evaluates a freshly parsed program against the evaluator's global
// scope. This is the `run(source) → Value | Error` contract's evaluation
// half; lexing and parsing happen upstream in the caller.
func (ev *Evaluator) Run(program *ast.Program) object.Object {
	return ev.Eval(program, ev.globals)
}

// Eval recursively evaluates AST nodes against env. It is the heart of
// the interpreter.
func (ev *Evaluator) Eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {

	// --- Root ---
	case *ast.Program:
		return ev.evalProgram(node, env)

	// --- Statements ---
	case *ast.LetStatement:
		val := ev.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Define(node.Name.Value, val, node.IsConst)
		return NULL

	case *ast.ExpressionStatement:
		return ev.Eval(node.Expression, env)

	case *ast.BlockStatement:
		return ev.evalBlockStatement(node, env)

	case *ast.IfStatement:
		return ev.evalIfStatement(node, env)

	case *ast.WhileStatement:
		return ev.evalWhileStatement(node, env)

	case *ast.ForStatement:
		return ev.evalForStatement(node, env)

	case *ast.FunctionStatement:
		fn := &object.Function{Name: node.Name.Value, Parameters: node.Parameters, Body: node.Body, Env: env}
		env.Define(node.Name.Value, fn, false)
		return NULL

	case *ast.ReturnStatement:
		if node.ReturnValue == nil {
			return &object.ReturnValue{Value: NULL}
		}
		val := ev.Eval(node.ReturnValue, env)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.BreakStatement:
		return object.BREAK

	case *ast.ContinueStatement:
		return object.CONTINUE

	case *ast.PrintStatement:
		return ev.evalPrintStatement(node, env)

	case *ast.ImportStatement:
		return ev.evalImportStatement(node, env)

	case *ast.TryCatchStatement:
		return ev.evalTryCatchStatement(node, env)

	case *ast.ThrowStatement:
		val := ev.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		return object.NewError("%s", displayString(val))

	case *ast.StructStatement:
		names := make([]string, len(node.Fields))
		for i, f := range node.Fields {
			names[i] = f.Name
		}
		env.Define(node.Name.Value, &object.StructDef{Name: node.Name.Value, FieldNames: names}, true)
		return NULL

	case *ast.EnumStatement:
		variants := make([]string, len(node.Variants))
		copy(variants, node.Variants)
		env.Define(node.Name.Value, &object.EnumDef{Name: node.Name.Value, Variants: variants}, true)
		return NULL

	case *ast.MatchStatement:
		return ev.evalMatchStatement(node, env)

	// --- Expressions ---
	case *ast.CallExpression:
		callee := ev.Eval(node.Function, env)
		if isError(callee) {
			return callee
		}
		args := ev.evalExpressions(node.Arguments, env)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		return ev.applyCall(callee, args)

	case *ast.MemberAccessExpression:
		left := ev.Eval(node.Object, env)
		if isError(left) {
			return left
		}
		return ev.evalMemberAccess(left, node.Member)

	case *ast.MemberAssignmentExpression:
		return ev.evalMemberAssignment(node, env)

	case *ast.IndexExpression:
		left := ev.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		index := ev.Eval(node.Index, env)
		if isError(index) {
			return index
		}
		return ev.evalIndex(left, index)

	case *ast.IndexAssignmentExpression:
		return ev.evalIndexAssignment(node, env)

	case *ast.AssignmentExpression:
		val := ev.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		if err := env.Assign(node.Name.Value, val); err != nil {
			return object.NewError("%s", err.Error())
		}
		return val

	case *ast.InfixExpression:
		if node.Operator == "and" || node.Operator == "or" {
			return ev.evalLogical(node, env)
		}
		left := ev.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := ev.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return ev.evalInfix(node.Operator, left, right)

	case *ast.PrefixExpression:
		right := ev.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return ev.evalPrefix(node.Operator, right)

	case *ast.LambdaLiteral:
		body := &ast.BlockStatement{
			Token:      node.Token,
			Statements: []ast.Statement{&ast.ReturnStatement{Token: node.Token, ReturnValue: node.Body}},
		}
		return &object.Function{Parameters: node.Parameters, Body: body, Env: env}

	// --- Literals ---
	case *ast.ListLiteral:
		elements := ev.evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return object.NewList(elements)

	case *ast.DictLiteral:
		return ev.evalDictLiteral(node, env)

	case *ast.FStringLiteral:
		return ev.evalFStringLiteral(node, env)

	case *ast.BooleanLiteral:
		return nativeBool(node.Value)

	case *ast.Identifier:
		if val, ok := env.Get(node.Value); ok {
			return val
		}
		return object.NewError("வரையறுக்கப்படாத மாறி '%s'", node.Value)

	case *ast.NumberLiteral:
		return &object.Number{Value: node.Value}

	case *ast.NullLiteral:
		return NULL

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	}

	return NULL
}

func (ev *Evaluator) evalProgram(p *ast.Program, env *object.Environment) object.Object {
	var result object.Object = NULL
	for _, s := range p.Statements {
		result = ev.Eval(s, env)
		switch result.Type() {
		case object.RETURN_VALUE_OBJ:
			return result.(*object.ReturnValue).Value
		case object.ERROR_OBJ:
			return result
		case object.BREAK_OBJ:
			return object.NewError("நிரல் மட்டத்தில் break அனுமதிக்கப்படவில்லை")
		case object.CONTINUE_OBJ:
			return object.NewError("நிரல் மட்டத்தில் continue அனுமதிக்கப்படவில்லை")
		}
	}
	return result
}

// evalBlockStatement always runs the block in a freshly pushed child
// scope and discards it on exit, whether the block ran to completion or
// unwound via return/break/continue/error.
func (ev *Evaluator) evalBlockStatement(b *ast.BlockStatement, env *object.Environment) object.Object {
	scoped := object.NewEnclosedEnvironment(env)
	var result object.Object = NULL
	for _, s := range b.Statements {
		result = ev.Eval(s, scoped)
		if isSignal(result) {
			return result
		}
	}
	return result
}

func (ev *Evaluator) evalIfStatement(node *ast.IfStatement, env *object.Environment) object.Object {
	cond := ev.Eval(node.Condition, env)
	if isError(cond) {
		return cond
	}
	if object.IsTruthy(cond) {
		return ev.evalBlockStatement(node.Consequence, env)
	}
	for _, elif := range node.ElifBranches {
		c := ev.Eval(elif.Condition, env)
		if isError(c) {
			return c
		}
		if object.IsTruthy(c) {
			return ev.evalBlockStatement(elif.Body, env)
		}
	}
	if node.Alternative != nil {
		return ev.evalBlockStatement(node.Alternative, env)
	}
	return NULL
}

func (ev *Evaluator) evalWhileStatement(node *ast.WhileStatement, env *object.Environment) object.Object {
	iterations := 0
	for {
		cond := ev.Eval(node.Condition, env)
		if isError(cond) {
			return cond
		}
		if !object.IsTruthy(cond) {
			return NULL
		}
		iterations++
		if iterations > maxLoopIterations {
			return object.NewError("சுழற்சி எல்லை (%d) தாண்டப்பட்டது", maxLoopIterations)
		}
		result := ev.evalBlockStatement(node.Body, env)
		switch result.Type() {
		case object.BREAK_OBJ:
			return NULL
		case object.RETURN_VALUE_OBJ, object.ERROR_OBJ:
			return result
		}
	}
}

func (ev *Evaluator) evalForStatement(node *ast.ForStatement, env *object.Environment) object.Object {
	iterable := ev.Eval(node.Iterable, env)
	if isError(iterable) {
		return iterable
	}

	// Iteration walks a snapshot taken at loop entry, per spec.md §4.3:
	// mutating the list from inside the loop body must not perturb the
	// iteration already in flight.
	var items []object.Object
	switch v := iterable.(type) {
	case *object.List:
		items = make([]object.Object, len(v.Elements))
		copy(items, v.Elements)
	case *object.String:
		for _, r := range v.Value {
			items = append(items, &object.String{Value: string(r)})
		}
	default:
		return object.NewError("%s மதிப்பின் மீது சுழற்ற முடியாது", object.TypeName(iterable))
	}

	iterations := 0
	for _, item := range items {
		iterations++
		if iterations > maxLoopIterations {
			return object.NewError("சுழற்சி எல்லை (%d) தாண்டப்பட்டது", maxLoopIterations)
		}
		loopEnv := object.NewEnclosedEnvironment(env)
		loopEnv.Define(node.Variable.Value, item, false)
		result := ev.evalBlockStatement(node.Body, loopEnv)
		switch result.Type() {
		case object.BREAK_OBJ:
			return NULL
		case object.RETURN_VALUE_OBJ, object.ERROR_OBJ:
			return result
		}
	}
	return NULL
}

func (ev *Evaluator) evalTryCatchStatement(node *ast.TryCatchStatement, env *object.Environment) object.Object {
	result := ev.evalBlockStatement(node.TryBlock, env)
	errObj, ok := result.(*object.Error)
	if !ok {
		return result
	}
	catchEnv := object.NewEnclosedEnvironment(env)
	catchEnv.Define(node.ErrorName, &object.String{Value: errObj.Message}, false)
	return ev.evalBlockStatement(node.CatchBlock, catchEnv)
}

func (ev *Evaluator) evalMatchStatement(node *ast.MatchStatement, env *object.Environment) object.Object {
	scrutinee := ev.Eval(node.Value, env)
	if isError(scrutinee) {
		return scrutinee
	}
	for _, arm := range node.Arms {
		armEnv := object.NewEnclosedEnvironment(env)
		matched, errObj := ev.patternMatches(arm.Pattern, scrutinee, armEnv)
		if errObj != nil {
			return errObj
		}
		if matched {
			return ev.evalBlockStatement(arm.Body, armEnv)
		}
	}
	return object.NewError("எந்த match arm-உம் பொருந்தவில்லை")
}

// patternMatches reports whether pattern matches value, binding any
// variable pattern into env as a side effect.
func (ev *Evaluator) patternMatches(pattern ast.Pattern, value object.Object, env *object.Environment) (bool, *object.Error) {
	switch p := pattern.(type) {
	case *ast.WildcardPattern:
		return true, nil
	case *ast.BindingPattern:
		env.Define(p.Name, value, false)
		return true, nil
	case *ast.LiteralPattern:
		lit := ev.Eval(p.Value, env)
		if errObj, ok := lit.(*object.Error); ok {
			return false, errObj
		}
		return object.Equals(lit, value), nil
	case *ast.EnumVariantPattern:
		variant, ok := value.(*object.EnumVariant)
		if !ok {
			return false, nil
		}
		return variant.EnumName == p.Enum && variant.Variant == p.Variant, nil
	}
	return false, object.NewError("அறியப்படாத pattern வகை")
}

func (ev *Evaluator) evalPrintStatement(node *ast.PrintStatement, env *object.Environment) object.Object {
	parts := make([]string, 0, len(node.Arguments))
	for _, a := range node.Arguments {
		val := ev.Eval(a, env)
		if isError(val) {
			return val
		}
		parts = append(parts, displayString(val))
	}
	fmt.Fprintln(ev.out, strings.Join(parts, " "))
	return NULL
}

// applyCall dispatches a call expression on the runtime type of its
// already-evaluated callee: a user function, a native function, or a
// struct definition (constructing an instance). There is no dedicated
// "struct instantiation" AST node — Name(args) always parses as a plain
// CallExpression, and the distinction is made here, at call time.
func (ev *Evaluator) applyCall(callee object.Object, args []object.Object) object.Object {
	switch fn := callee.(type) {
	case *object.Function:
		if len(args) != len(fn.Parameters) {
			return object.NewError("%s-க்கு %d வாதங்கள் தேவை, %d கொடுக்கப்பட்டது", fnLabel(fn), len(fn.Parameters), len(args))
		}
		ev.callDepth++
		if ev.callDepth > maxRecursionDepth {
			ev.callDepth--
			return object.NewError("அடுக்கு எல்லை (%d) தாண்டப்பட்டது", maxRecursionDepth)
		}
		defer func() { ev.callDepth-- }()

		callEnv := object.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Parameters {
			callEnv.Define(param.Value, args[i], false)
		}
		result := ev.evalBlockStatement(fn.Body, callEnv)
		if rv, ok := result.(*object.ReturnValue); ok {
			return rv.Value
		}
		if isError(result) {
			return result
		}
		return NULL

	case *object.NativeFunction:
		if fn.Variadic {
			if fn.Arity != object.AnyArity && len(args) < fn.Arity {
				return object.NewError("%s-க்கு குறைந்தது %d வாதங்கள் தேவை, %d கொடுக்கப்பட்டது", fn.Name, fn.Arity, len(args))
			}
		} else if len(args) != fn.Arity {
			return object.NewError("%s-க்கு %d வாதங்கள் தேவை, %d கொடுக்கப்பட்டது", fn.Name, fn.Arity, len(args))
		}
		val, err := fn.Fn(args)
		if err != nil {
			return object.NewError("%s", err.Error())
		}
		return val

	case *object.StructDef:
		if len(args) != len(fn.FieldNames) {
			return object.NewError("%s-க்கு %d வாதங்கள் தேவை, %d கொடுக்கப்பட்டது", fn.Name, len(fn.FieldNames), len(args))
		}
		fields := make(map[string]object.Object, len(fn.FieldNames))
		for i, name := range fn.FieldNames {
			fields[name] = args[i]
		}
		return &object.StructInstance{Def: fn, Fields: fields}

	default:
		return object.NewError("%s அழைக்கக்கூடியது அல்ல", callee.Inspect())
	}
}

func fnLabel(fn *object.Function) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "lambda"
}

func (ev *Evaluator) evalMemberAccess(left object.Object, member string) object.Object {
	switch l := left.(type) {
	case *object.StructInstance:
		v, ok := l.Fields[member]
		if !ok {
			return object.NewError("%s கட்டமைப்பில் '%s' எனும் புலம் இல்லை", l.Def.Name, member)
		}
		return v
	case *object.EnumDef:
		for _, variant := range l.Variants {
			if variant == member {
				return &object.EnumVariant{EnumName: l.Name, Variant: member}
			}
		}
		return object.NewError("%s enum-இல் '%s' எனும் variant இல்லை", l.Name, member)
	case *object.Module:
		v, ok := l.Exports[member]
		if !ok {
			return object.NewError("%s கூறில் '%s' ஏற்றுமதி இல்லை", l.Name, member)
		}
		return v
	default:
		return object.NewError("%s மதிப்பில் உறுப்பு அணுகல் ஆதரிக்கப்படவில்லை", object.TypeName(left))
	}
}

func (ev *Evaluator) evalMemberAssignment(node *ast.MemberAssignmentExpression, env *object.Environment) object.Object {
	left := ev.Eval(node.Object, env)
	if isError(left) {
		return left
	}
	val := ev.Eval(node.Value, env)
	if isError(val) {
		return val
	}
	strct, ok := left.(*object.StructInstance)
	if !ok {
		return object.NewError("%s மதிப்பில் உறுப்பு ஒதுக்கீடு ஆதரிக்கப்படவில்லை", object.TypeName(left))
	}
	if _, ok := strct.Fields[node.Member]; !ok {
		return object.NewError("%s கட்டமைப்பில் '%s' எனும் புலம் இல்லை", strct.Def.Name, node.Member)
	}
	strct.Fields[node.Member] = val
	return val
}

func (ev *Evaluator) evalIndex(left, index object.Object) object.Object {
	switch l := left.(type) {
	case *object.List:
		i, errObj := resolveIndex(len(l.Elements), index)
		if errObj != nil {
			return errObj
		}
		return l.Elements[i]
	case *object.String:
		runes := []rune(l.Value)
		i, errObj := resolveIndex(len(runes), index)
		if errObj != nil {
			return errObj
		}
		return &object.String{Value: string(runes[i])}
	case *object.Dict:
		key := dictKeyString(index)
		v, ok := l.Get(key)
		if !ok {
			return object.NewError("அகராதியில் திறவுகோல் இல்லை: %s", key)
		}
		return v
	default:
		return object.NewError("%s மதிப்பில் index செயல்பாடு ஆதரிக்கப்படவில்லை", object.TypeName(left))
	}
}

func (ev *Evaluator) evalIndexAssignment(node *ast.IndexAssignmentExpression, env *object.Environment) object.Object {
	left := ev.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	index := ev.Eval(node.Index, env)
	if isError(index) {
		return index
	}
	val := ev.Eval(node.Value, env)
	if isError(val) {
		return val
	}
	switch l := left.(type) {
	case *object.List:
		i, errObj := resolveIndex(len(l.Elements), index)
		if errObj != nil {
			return errObj
		}
		l.Elements[i] = val
		return val
	case *object.Dict:
		l.Set(dictKeyString(index), val)
		return val
	default:
		return object.NewError("%s மதிப்பில் index ஒதுக்கீடு ஆதரிக்கப்படவில்லை", object.TypeName(left))
	}
}

// resolveIndex converts a number Object into an in-bounds slice/string
// index, folding negative indices from the end, per spec.md §4.3.
func resolveIndex(length int, index object.Object) (int, *object.Error) {
	num, ok := index.(*object.Number)
	if !ok {
		return 0, object.NewError("index எண்ணாக இருக்க வேண்டும், %s கொடுக்கப்பட்டது", object.TypeName(index))
	}
	i := int(num.Value)
	resolved := i
	if resolved < 0 {
		resolved += length
	}
	if resolved < 0 || resolved >= length {
		return 0, object.NewError("index வரம்பிற்கு வெளியே: %d", i)
	}
	return resolved, nil
}

// dictKeyString stringifies an arbitrary index value into a dict key,
// per spec.md §4.3 ("Dict indexing uses the stringified key").
func dictKeyString(index object.Object) string {
	return displayString(index)
}

func (ev *Evaluator) evalDictLiteral(node *ast.DictLiteral, env *object.Environment) object.Object {
	dict := object.NewDict()
	for _, pair := range node.Pairs {
		key := ev.Eval(pair.Key, env)
		if isError(key) {
			return key
		}
		val := ev.Eval(pair.Value, env)
		if isError(val) {
			return val
		}
		dict.Set(displayString(key), val)
	}
	return dict
}

func (ev *Evaluator) evalFStringLiteral(node *ast.FStringLiteral, env *object.Environment) object.Object {
	var sb strings.Builder
	for _, part := range node.Parts {
		sb.WriteString(part.Literal)
		if part.Expr != nil {
			val := ev.Eval(part.Expr, env)
			if isError(val) {
				return val
			}
			sb.WriteString(displayString(val))
		}
	}
	return &object.String{Value: sb.String()}
}

func (ev *Evaluator) evalLogical(node *ast.InfixExpression, env *object.Environment) object.Object {
	left := ev.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	if node.Operator == "or" {
		if object.IsTruthy(left) {
			return left
		}
		return ev.Eval(node.Right, env)
	}
	if !object.IsTruthy(left) {
		return left
	}
	return ev.Eval(node.Right, env)
}

func (ev *Evaluator) evalInfix(op string, left, right object.Object) object.Object {
	switch op {
	case "==":
		return nativeBool(object.Equals(left, right))
	case "!=":
		return nativeBool(!object.Equals(left, right))
	case "+":
		return ev.evalAdd(left, right)
	case "-", "*", "/", "%":
		return ev.evalArithmetic(op, left, right)
	case "<", ">", "<=", ">=":
		return ev.evalComparison(op, left, right)
	}
	return object.NewError("அறியப்படாத operator: %s", op)
}

func (ev *Evaluator) evalAdd(left, right object.Object) object.Object {
	ls, lIsStr := left.(*object.String)
	rs, rIsStr := right.(*object.String)
	if lIsStr || rIsStr {
		l, r := "", ""
		if lIsStr {
			l = ls.Value
		} else {
			l = displayString(left)
		}
		if rIsStr {
			r = rs.Value
		} else {
			r = displayString(right)
		}
		return &object.String{Value: l + r}
	}
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if lok && rok {
		return &object.Number{Value: ln.Value + rn.Value}
	}
	return object.NewError("+ இரு எண்கள் அல்லது சரங்களுக்கிடையே மட்டுமே செயல்படும்: %s + %s", object.TypeName(left), object.TypeName(right))
}

func (ev *Evaluator) evalArithmetic(op string, left, right object.Object) object.Object {
	if op == "*" {
		if s, ok := left.(*object.String); ok {
			if n, ok2 := right.(*object.Number); ok2 {
				return repeatString(s.Value, n.Value)
			}
		}
		if s, ok := right.(*object.String); ok {
			if n, ok2 := left.(*object.Number); ok2 {
				return repeatString(s.Value, n.Value)
			}
		}
	}
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return object.NewError("%s %s %s ஆதரிக்கப்படவில்லை", object.TypeName(left), op, object.TypeName(right))
	}
	switch op {
	case "-":
		return &object.Number{Value: ln.Value - rn.Value}
	case "*":
		return &object.Number{Value: ln.Value * rn.Value}
	case "/":
		if rn.Value == 0 {
			return object.NewError("பூஜ்ஜியத்தால் வகுக்க முடியாது")
		}
		return &object.Number{Value: ln.Value / rn.Value}
	case "%":
		if rn.Value == 0 {
			return object.NewError("பூஜ்ஜியத்தால் மீதி காண முடியாது")
		}
		return &object.Number{Value: math.Mod(ln.Value, rn.Value)}
	}
	return object.NewError("அறியப்படாத operator: %s", op)
}

func repeatString(s string, n float64) object.Object {
	count := int(math.Floor(n))
	if count < 0 {
		count = 0
	}
	return &object.String{Value: strings.Repeat(s, count)}
}

func (ev *Evaluator) evalComparison(op string, left, right object.Object) object.Object {
	if ln, ok := left.(*object.Number); ok {
		if rn, ok2 := right.(*object.Number); ok2 {
			return nativeBool(numberCompare(op, ln.Value, rn.Value))
		}
	}
	if ls, ok := left.(*object.String); ok {
		if rs, ok2 := right.(*object.String); ok2 {
			return nativeBool(stringCompare(op, ls.Value, rs.Value))
		}
	}
	return object.NewError("%s %s %s ஒப்பிட முடியாது", object.TypeName(left), op, object.TypeName(right))
}

func numberCompare(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

func stringCompare(op string, l, r string) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

func (ev *Evaluator) evalPrefix(op string, right object.Object) object.Object {
	switch op {
	case "-":
		n, ok := right.(*object.Number)
		if !ok {
			return object.NewError("- %s மீது செயல்படாது", object.TypeName(right))
		}
		return &object.Number{Value: -n.Value}
	case "not":
		return nativeBool(!object.IsTruthy(right))
	}
	return object.NewError("அறியப்படாத prefix operator: %s", op)
}

func (ev *Evaluator) evalExpressions(exps []ast.Expression, env *object.Environment) []object.Object {
	var result []object.Object
	for _, e := range exps {
		val := ev.Eval(e, env)
		if isError(val) {
			return []object.Object{val}
		}
		result = append(result, val)
	}
	return result
}

// displayString renders obj the way print/f-strings/dict-key-stringify/
// throw all want it: a bare string's own value, everything else its
// Inspect() form.
func displayString(obj object.Object) string {
	if s, ok := obj.(*object.String); ok {
		return s.Value
	}
	return obj.Inspect()
}

func nativeBool(b bool) *object.Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

func isError(obj object.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == object.ERROR_OBJ
}

// isSignal reports whether obj should unwind a block immediately rather
// than let execution fall through to the next statement.
func isSignal(obj object.Object) bool {
	switch obj.Type() {
	case object.RETURN_VALUE_OBJ, object.ERROR_OBJ, object.BREAK_OBJ, object.CONTINUE_OBJ:
		return true
	}
	return false
}
