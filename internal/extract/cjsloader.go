package extract

import (
	"context"
	"fmt"

	"github.com/dop251/goja"
)

// newRequireFunc builds a require() implementation for the evaluator's VM:
// bare specifiers resolve through the host resolver, the same one the
// sub-bundler itself uses. Without this bridge, a dynamic `css` site whose
// interpolation references an imported constant — a common real-world
// shape — could never evaluate, because esbuild already marked that
// import external rather than inlining it.
//
// Each resolved module is evaluated once, in its own nested goja.Runtime
// seeded with its own require (so transitive requires resolve relative to
// their own importer), and cached by specifier for the lifetime of this
// require function.
func newRequireFunc(vm *goja.Runtime, importer string, resolve Resolver) func(goja.FunctionCall) goja.Value {
	cache := make(map[string]goja.Value)
	return func(call goja.FunctionCall) goja.Value {
		spec := call.Argument(0).String()
		if cached, ok := cache[spec]; ok {
			return cached
		}
		if resolve == nil {
			panic(vm.NewGoError(fmt.Errorf("%w: require(%q): no resolver configured", ErrEval, spec)))
		}

		resolvedID, contents, external, err := resolve(context.Background(), spec, importer)
		if err != nil {
			panic(vm.NewGoError(fmt.Errorf("%w: require(%q): %s", ErrEval, spec, err)))
		}
		if external {
			panic(vm.NewGoError(fmt.Errorf("%w: require(%q): resolved to an external module with no contents to evaluate", ErrEval, spec)))
		}

		nested := goja.New()
		nestedModule := nested.NewObject()
		nestedExports := nested.NewObject()
		_ = nestedModule.Set("exports", nestedExports)
		_ = nested.Set("module", nestedModule)
		_ = nested.Set("exports", nestedExports)
		_ = nested.Set("require", newRequireFunc(nested, resolvedID, resolve))

		if _, err := nested.RunString(string(contents)); err != nil {
			panic(vm.NewGoError(fmt.Errorf("%w: require(%q): %s", ErrEval, spec, err)))
		}

		result := vm.ToValue(nestedModule.Get("exports").Export())
		cache[spec] = result
		return result
	}
}
