package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dop251/goja"
)

// Evaluate executes the self-contained CommonJS script produced by Bundle
// in-process, using an in-memory `module`/`exports` object the same way a
// Go-AST-walking linter harvests a parsed file's declared names by hand
// rather than through reflection. It harvests every exported name
// beginning with __severed_css_, recovers its numeric site index,
// type-checks the value, and returns a map keyed by that index.
//
// Evaluation is synchronous: it blocks until the script's top-level
// completes, running synchronously with respect to its caller. No
// sandboxing is attempted — the contract is that code paths feeding a
// `css` site must be pure; goja simply runs whatever the tree-shaken
// script contains.
func Evaluate(script, sourceID string, resolve Resolver) (map[int]string, error) {
	vm := goja.New()

	module := vm.NewObject()
	exportsObj := vm.NewObject()
	if err := module.Set("exports", exportsObj); err != nil {
		return nil, fmt.Errorf("Failed to evaluate `%s` while extracting css: %w: %s", sourceID, ErrEval, err)
	}
	if err := vm.Set("module", module); err != nil {
		return nil, fmt.Errorf("Failed to evaluate `%s` while extracting css: %w: %s", sourceID, ErrEval, err)
	}
	if err := vm.Set("exports", exportsObj); err != nil {
		return nil, fmt.Errorf("Failed to evaluate `%s` while extracting css: %w: %s", sourceID, ErrEval, err)
	}
	if err := vm.Set("require", newRequireFunc(vm, sourceID, resolve)); err != nil {
		return nil, fmt.Errorf("Failed to evaluate `%s` while extracting css: %w: %s", sourceID, ErrEval, err)
	}

	if _, err := vm.RunString(script); err != nil {
		return nil, fmt.Errorf("Failed to evaluate `%s` while extracting css: %w: %s", sourceID, ErrEval, err)
	}

	finalExports := module.Get("exports").ToObject(vm)

	out := make(map[int]string)
	for _, key := range finalExports.Keys() {
		if !strings.HasPrefix(key, severedExportPrefix) {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(key, severedExportPrefix))
		if err != nil {
			return nil, fmt.Errorf("Failed to evaluate `%s` while extracting css: %w: unexpected export name %q", sourceID, ErrEval, key)
		}
		val := finalExports.Get(key)
		str, ok := val.Export().(string)
		if !ok {
			return nil, fmt.Errorf("%w", ErrNotString)
		}
		out[idx] = str
	}
	return out, nil
}
