// Package extract implements the core CSS-in-source extraction pipeline:
// classify each `css`…`` tagged template in a source file as static or
// dynamic, evaluate the dynamic ones in a minimised sub-bundle, and rewrite
// the original text to reference the resulting class names.
//
// The package has no knowledge of any particular host bundler. Hosts (the
// root `severed` package's push/pull adapters, or a caller's own glue)
// drive it through Coordinator and supply the Resolver, EmitFunc, and
// AssetNamer callbacks.
package extract

import "context"

// Site is one `css`…`` occurrence marked for replacement. Ranges are
// half-open byte offsets into the original source text.
type Site struct {
	Start, End int
	Index      int
	Static     bool
	// StaticValue is the raw template chunk text when Static is true.
	StaticValue string
	// ClassName is filled in once the site's CSS has been emitted.
	ClassName string
	// RawCSS is the raw CSS text passed to EmitFunc: StaticValue for a
	// static site, the evaluated string for a dynamic one. Filled in
	// alongside ClassName.
	RawCSS string
}

// SourceFile groups the values that belong to one transform of one file.
// Coordinator.Transform does not build one: it keeps these values in
// local variables for the duration of the call and returns a Result.
type SourceFile struct {
	ID    string
	Text  string
	Sites []*Site
	// CSS is the accumulated CSS text for this file, in site order.
	CSS string
	// AssetID is the import specifier injected for the generated CSS.
	AssetID string
}

// Resolver resolves an import specifier the way the host's own bundler
// would, so that bare specifiers evaluate against the same module graph at
// extraction time as at bundle time. Implementations must not hard-wire
// Node module resolution; the host supplies whatever resolution its own
// bundler uses.
//
// A Resolver returns the module's contents directly rather than a further
// indirection, since the sub-bundler and the evaluator both need the
// resolved source, not just a resolved path.
type Resolver func(ctx context.Context, id, importer string) (resolvedID string, contents []byte, external bool, err error)

// EmitFunc turns raw CSS text into a final class name and records the
// fragment by whatever means the host chooses (selector hashing,
// autoprefixing, injecting into a build-wide stylesheet). It is the only
// place raw CSS becomes final CSS.
type EmitFunc func(ctx context.Context, css string) (className string, err error)

// AssetNamer returns the import specifier the rewritten file should use
// for its generated CSS: a real asset path in push mode, a virtual id in
// pull mode.
type AssetNamer func(sourceID string) (string, error)

// Options configures a single Coordinator.Transform call.
type Options struct {
	Resolve  Resolver
	Emit     EmitFunc
	AssetFor AssetNamer
}

// Result is what Coordinator.Transform returns on success.
type Result struct {
	Code      string
	Map       string
	CSS       string
	SiteCount int
	Dynamic   bool
}
