// Package severed is a build-time CSS-in-source extractor. Source files
// embed CSS as `css`…`` tagged template literals; severed statically
// replaces each site with a generated class-name constant, emits the
// underlying CSS as a sibling asset, and rewrites the source to import it.
// No runtime CSS-in-source library is needed at the end of the pipeline —
// every style is visible to a normal CSS asset pipeline.
//
// # Core pipeline
//
// The extraction pipeline itself — parsing, static/dynamic
// classification, sub-bundler tree-shaking, in-process evaluation, and
// text rewriting — lives in internal/extract and is driven through
// extract.Coordinator. This package is the host-facing layer: a Plugin
// implementing the four-hook virtual-module protocol (transform,
// resolveId, load, options), in both push mode (real CSS assets on disk)
// and pull mode (virtual, in-memory modules).
//
//	p := severed.New(severed.ModePull, myResolver, myEmit)
//	result, err := p.Transform(ctx, sourceCode, "src/Button.tsx")
//
// # CLI tool
//
// cmd/severed drives the same pipeline over a directory tree outside any
// host bundler: `severed extract` rewrites files in place (writing a CSS
// file beside each one when --write-css-files is set) and prints a
// summary, `severed check` runs read-only for CI.
package severed

// Public API is exported via plugin.go, pushmode.go, and pullmode.go:
//   - New(mode Mode, resolve extract.Resolver, emit extract.EmitFunc) *Plugin
//   - (*Plugin).Transform, .ResolveID, .Load, .Options
