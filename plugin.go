package severed

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/yacobolo/severed/internal/extract"
)

// Mode selects push or pull virtual-module semantics.
type Mode int

const (
	// ModePull is the default: CSS is served from an in-memory buffer
	// through ResolveID/Load rather than written to disk.
	ModePull Mode = iota
	// ModePush emits a real CSS asset per source file (plugin option
	// writeCSSFiles = true) and treats its import as external.
	ModePush
)

// defaultExtensions is the extension whitelist Transform consults.
var defaultExtensions = map[string]bool{".js": true, ".ts": true, ".tsx": true}

// Plugin implements the four-hook universal plugin interface (transform,
// resolveId, load, options) as plain Go methods: a host adapter calls
// Transform, ResolveID, Load, and Options at the equivalent points in its
// own build lifecycle. One Plugin value corresponds to one host pipeline;
// its Coordinator's Buffer is the single process-wide per-file CSS
// mapping every plugin instance in a build must share.
type Plugin struct {
	Mode    Mode
	Resolve extract.Resolver
	Emit    extract.EmitFunc
	// Extensions overrides the default {.js, .ts, .tsx} whitelist.
	Extensions map[string]bool

	coord        *extract.Coordinator
	otherPlugins []string
}

// New constructs a Plugin with the default extension whitelist and a
// fresh shared Buffer.
func New(mode Mode, resolve extract.Resolver, emit extract.EmitFunc) *Plugin {
	return &Plugin{
		Mode:    mode,
		Resolve: resolve,
		Emit:    emit,
		coord:   extract.NewCoordinator(),
	}
}

// Coordinator exposes the underlying extract.Coordinator, for callers
// that want its Buffer or Warn writer directly.
func (p *Plugin) Coordinator() *extract.Coordinator {
	return p.coord
}

// Options implements the `options(hostOptions)` hook: it snapshots the
// names of the other plugins registered in the same host pipeline. A
// full implementation would use this to make the sub-bundler driver
// inherit the host's own resolver and transformer chain; severed exposes
// the snapshot but leaves wiring it into Bundle to the Resolve callback
// the host supplies, since that callback is already the plug-point for
// reusing the host's own module resolution.
func (p *Plugin) Options(otherPlugins []string) {
	p.otherPlugins = otherPlugins
}

// OtherPlugins returns the snapshot recorded by the most recent Options
// call.
func (p *Plugin) OtherPlugins() []string {
	return p.otherPlugins
}

// Transform implements the `transform(code, id)` hook: it skips ids
// outside the extension whitelist, then hands off to
// extract.Coordinator.Transform. In pull mode, the injected import's
// cache-busting hash depends on the file's final CSS text, which is only
// known once Transform has returned (see pullmode.go) — so pull mode
// rewrites Result.Code's placeholder import in place afterward, rather
// than computing the real virtual id up front.
func (p *Plugin) Transform(ctx context.Context, code, id string) (*extract.Result, error) {
	if !p.whitelisted(id) {
		return nil, nil
	}

	res, err := p.coord.Transform(ctx, id, code, extract.Options{
		Resolve:  p.Resolve,
		Emit:     p.Emit,
		AssetFor: p.assetNamer(),
	})
	if err != nil || res == nil {
		return res, err
	}

	if p.Mode == ModePull {
		placeholder, _ := pullVirtualID(id)
		final := pullVirtualIDFor(id, res.CSS)
		res.Code = strings.Replace(res.Code, placeholder, final, 1)
	}

	return res, nil
}

func (p *Plugin) whitelisted(id string) bool {
	ext := filepath.Ext(id)
	table := p.Extensions
	if table == nil {
		table = defaultExtensions
	}
	return table[ext]
}

func (p *Plugin) assetNamer() extract.AssetNamer {
	if p.Mode == ModePush {
		return pushAssetPath
	}
	return pullVirtualID
}

// ResolveID implements the `resolveId(id)` hook: push mode marks
// CSS-suffixed ids as external so the host leaves the import
// literally in the output; pull mode claims ids carrying the severed
// query parameter for self-loading. resolved is returned unchanged (not
// the source id the virtual id was derived from) because Load is called
// with whatever ResolveID returns, and Load itself expects to parse the
// full virtual id back out of it.
func (p *Plugin) ResolveID(id string) (resolved string, external bool, claimed bool) {
	switch p.Mode {
	case ModePush:
		if isPushAsset(id) {
			return id, true, true
		}
	case ModePull:
		if _, ok := parsePullVirtualID(id); ok {
			return id, false, true
		}
	}
	return "", false, false
}

// Load implements the `load(id)` hook: pull mode only, serving the
// buffered CSS text for the source id encoded in id's query string.
func (p *Plugin) Load(id string) (contents string, ok bool) {
	if p.Mode != ModePull {
		return "", false
	}
	sourceID, matched := parsePullVirtualID(id)
	if !matched {
		return "", false
	}
	return p.coord.Buffer.Load(sourceID)
}
