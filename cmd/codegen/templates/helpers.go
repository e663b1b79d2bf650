package templates

import (
	"fmt"
	"strings"
)

var typeParamNames = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

var countWords = []string{"no", "one", "two", "three", "four", "five", "six", "seven", "eight"}

// typeParamName returns the name of the i-th type parameter.
func typeParamName(i int) string {
	return typeParamNames[i]
}

// typeParamsDecl returns the type parameter declaration for arity n,
// e.g. "[A, B any]". Empty for arity 0.
func typeParamsDecl(n int) string {
	if n == 0 {
		return ""
	}
	return "[" + strings.Join(typeParamNames[:n], ", ") + " any]"
}

// typeParamsUse returns the type argument list for arity n, e.g. "[A, B]".
// Empty for arity 0.
func typeParamsUse(n int) string {
	if n == 0 {
		return ""
	}
	return "[" + strings.Join(typeParamNames[:n], ", ") + "]"
}

// nodeTypeParamsDecl returns the type parameter declaration of a function
// node of arity n, e.g. "[A, B comparable, R any]".
func nodeTypeParamsDecl(n int) string {
	return "[" + strings.Join(typeParamNames[:n], ", ") + " comparable, R any]"
}

// nodeTypeParamsUse returns the type argument list of a function node of
// arity n, e.g. "[A, B, R]".
func nodeTypeParamsUse(n int) string {
	return "[" + strings.Join(typeParamNames[:n], ", ") + ", R]"
}

// argDecls returns the slot parameter list for arity n, e.g. "a0 A, a1 B".
func argDecls(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("a%d %s", i, typeParamNames[i])
	}
	return strings.Join(parts, ", ")
}

// argNames returns the slot argument names for arity n, e.g. "a0, a1".
func argNames(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("a%d", i)
	}
	return strings.Join(parts, ", ")
}

// castArgs returns the unboxing expression list for arity n,
// e.g. "args[0].(A), args[1].(B)".
func castArgs(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("args[%d].(%s)", i, typeParamNames[i])
	}
	return strings.Join(parts, ", ")
}

// emitBoxed returns the expression emit passes to the untyped core for arity
// n, e.g. "[]any{a0, a1}". "nil" for arity 0.
func emitBoxed(n int) string {
	if n == 0 {
		return "nil"
	}
	return "[]any{" + argNames(n) + "}"
}

// withLeadingComma prepends ", " to s unless it is empty. Used to splice
// optional parameter lists after a fixed first parameter.
func withLeadingComma(s string) string {
	if s == "" {
		return ""
	}
	return ", " + s
}

// signalDoc returns the first doc sentence of the arity-n signal.
func signalDoc(n, maxArity int) string {
	if n == 0 {
		return fmt.Sprintf("notifies connected slots that an event happened. It carries no\n// arguments; Signal1 through Signal%d are the carrying variants.", maxArity)
	}
	plural := "values"
	if n == 1 {
		plural = "value"
	}
	return fmt.Sprintf("notifies connected slots with %s %s per emit.", countWords[n], plural)
}

// discardDoc returns the doc sentence of the ConnectK discard variant.
func discardDoc(k int) string {
	switch k {
	case 0:
		return "registers a slot that discards all emitted values."
	case 1:
		return "registers a slot that consumes the leading emitted value and\n// discards the rest."
	default:
		return fmt.Sprintf("registers a slot that consumes the %s leading emitted values and\n// discards the rest.", countWords[k])
	}
}

// nodeDoc returns the opening doc sentences of the arity-n function node,
// wrapped the way gofmt keeps them.
func nodeDoc(n int) string {
	switch n {
	case 1:
		return "applies a pure function of one argument to its child node.\n" +
			"// It is dirty whenever the child is dirty; Evaluate re-applies the function\n" +
			"// only when the freshly evaluated child value differs from the last-seen\n" +
			"// input, otherwise the cached result is returned."
	case 2:
		return "applies a pure function of two arguments to its child nodes.\n" +
			"// It is dirty whenever any child is dirty; Evaluate re-applies the function\n" +
			"// only when a freshly evaluated child value differs from the last-seen\n" +
			"// inputs, otherwise the cached result is returned."
	default:
		return fmt.Sprintf("applies a pure function of %s arguments to its child\n", countWords[n]) +
			"// nodes. It is dirty whenever any child is dirty; Evaluate re-applies the\n" +
			"// function only when a freshly evaluated child value differs from the\n" +
			"// last-seen inputs, otherwise the cached result is returned."
	}
}

// childParams returns the child parameters of a function node constructor,
// e.g. "child0 Node[A], child1 Node[B]".
func childParams(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("child%d Node[%s]", i, typeParamNames[i])
	}
	return strings.Join(parts, ", ")
}

// childInits returns the constructor field initializers for the children,
// e.g. "child0: child0, child1: child1".
func childInits(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("child%d: child%d", i, i)
	}
	return strings.Join(parts, ", ")
}

// vNames returns the evaluated child value names, e.g. "v0, v1".
func vNames(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("v%d", i)
	}
	return strings.Join(parts, ", ")
}

// inputComparisons returns the staleness test of the evaluate fast path,
// e.g. "!n.primed || v0 != n.last0 || v1 != n.last1".
func inputComparisons(n int) string {
	parts := make([]string, 0, n+1)
	parts = append(parts, "!n.primed")
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf("v%d != n.last%d", i, i))
	}
	return strings.Join(parts, " || ")
}
