package extract

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// virtualEntryID is the sub-bundler's synthetic entry point: a NUL-prefixed
// id that can never collide with a real filesystem path.
const virtualEntryID = "\x00severed-derivative"

const virtualNamespace = "severed-virtual"

// Bundle runs the sub-bundler driver: an embedded esbuild build whose
// single entry point is the derivative program text. Bare imports are
// routed through resolve, the host-supplied Resolver, reusing the host's
// own module resolution inside the sub-bundler; any id resolve marks
// external, or whose resolved id has a CSS extension, is left as an
// external require rather than walked. All modules are treated as
// side-effect-free so unused ones are dropped by esbuild's aggressive
// tree-shaking, the mechanism that keeps dead side-effecting user code
// (an unused import touching localStorage, say) from ever running.
//
// warn, if non-nil, receives one line per sub-bundler warning; warnings
// are logged and otherwise ignored. Errors abort with ErrEval.
func Bundle(ctx context.Context, derivative, sourceID string, resolve Resolver, warn io.Writer) (string, error) {
	plugin := api.Plugin{
		Name: "severed-virtual",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: ".*"}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				if args.Path == virtualEntryID {
					return api.OnResolveResult{Path: virtualEntryID, Namespace: virtualNamespace}, nil
				}
				if args.Importer == "" {
					// esbuild probing the entry point itself before Setup's
					// virtual namespace has been assigned.
					return api.OnResolveResult{}, nil
				}
				if resolve == nil {
					return api.OnResolveResult{External: true}, nil
				}
				resolvedID, _, external, err := resolve(ctx, args.Path, args.Importer)
				if err != nil {
					return api.OnResolveResult{}, err
				}
				if external || isCSSExtension(resolvedID) {
					return api.OnResolveResult{Path: args.Path, External: true}, nil
				}
				return api.OnResolveResult{Path: resolvedID, Namespace: virtualNamespace, SideEffects: api.SideEffectsFalse}, nil
			})

			build.OnLoad(api.OnLoadOptions{Filter: ".*", Namespace: virtualNamespace}, func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				if args.Path == virtualEntryID {
					contents := derivative
					return api.OnLoadResult{Contents: &contents, Loader: loaderFor(sourceID)}, nil
				}
				if resolve == nil {
					return api.OnLoadResult{}, fmt.Errorf("%w: no resolver configured for %q", ErrEval, args.Path)
				}
				_, contents, _, err := resolve(ctx, args.Path, sourceID)
				if err != nil {
					return api.OnLoadResult{}, err
				}
				text := string(contents)
				return api.OnLoadResult{Contents: &text, Loader: loaderFor(args.Path)}, nil
			})
		},
	}

	result := api.Build(api.BuildOptions{
		EntryPoints: []string{virtualEntryID},
		Bundle:      true,
		Write:       false,
		Format:      api.FormatCommonJS,
		Platform:    api.PlatformNeutral,
		TreeShaking: api.TreeShakingTrue,
		Plugins:     []api.Plugin{plugin},
		LogLevel:    api.LogLevelSilent,
	})

	if warn != nil {
		for _, w := range result.Warnings {
			fmt.Fprintf(warn, "severed: %s: %s\n", sourceID, w.Text)
		}
	}

	if len(result.Errors) > 0 {
		msgs := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			msgs[i] = e.Text
		}
		return "", fmt.Errorf("%w: %s: %s", ErrEval, sourceID, strings.Join(msgs, "; "))
	}
	if len(result.OutputFiles) == 0 {
		return "", fmt.Errorf("%w: %s: sub-bundler produced no output", ErrEval, sourceID)
	}
	return string(result.OutputFiles[0].Contents), nil
}

func isCSSExtension(id string) bool {
	return strings.EqualFold(filepath.Ext(id), ".css")
}

// loaderFor picks esbuild's parser by file extension: .ts, .tsx and .jsx
// get their own loaders, anything else is parsed as plain JS (the
// .js/.ts/.tsx extension whitelist is enforced one layer up, by the host
// adapter; Bundle itself accepts any extension).
func loaderFor(id string) api.Loader {
	switch filepath.Ext(id) {
	case ".ts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	default:
		return api.LoaderJS
	}
}
