package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Coordinator orchestrates the per-file extraction pipeline. It owns only
// the shared Buffer; every Transform call is otherwise independent: the
// per-file state exists only while the host's transform call runs.
type Coordinator struct {
	Buffer *Buffer
	// Warn receives sub-bundler warning lines; nil discards them.
	Warn io.Writer
}

// NewCoordinator returns a Coordinator backed by a fresh Buffer.
func NewCoordinator() *Coordinator {
	return &Coordinator{Buffer: &Buffer{}}
}

// Transform runs the full pipeline for one source file:
//
//  1. cheap filter on the literal substring `css\``;
//  2. classify;
//  3. static fast path, or sub-bundler + evaluator for dynamic sites;
//  4. substitute class names into a fresh edit log over the original text;
//  5. prepend the generated CSS import;
//  6. produce rewritten text + source map;
//  7. store accumulated CSS in the process-scoped buffer.
//
// It returns (nil, nil) when the host should leave the file unchanged: no
// `css\`` substring present, or zero sites found after classification.
func (c *Coordinator) Transform(ctx context.Context, id, text string, opts Options) (*Result, error) {
	if !strings.Contains(text, "css`") {
		return nil, nil
	}

	cls, err := Classify(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrParse, id, err)
	}
	if len(cls.Sites) == 0 {
		return nil, nil
	}

	c.Buffer.Delete(id)

	if cls.Dynamic {
		if err := c.evaluateSites(ctx, cls, id, opts); err != nil {
			return nil, err
		}
	} else {
		if err := emitStaticSites(ctx, cls.Sites, opts.Emit); err != nil {
			return nil, err
		}
	}

	edits := NewEditLog(text)
	fragments := make([]string, 0, len(cls.Sites))
	for _, site := range cls.Sites {
		quoted, err := json.Marshal(site.ClassName)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrEval, id, err)
		}
		edits.Replace(site.Start, site.End, string(quoted))
		fragments = append(fragments, Fragment(site.ClassName, site.RawCSS))
	}

	assetID, err := opts.AssetFor(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrEval, id, err)
	}
	edits.Insert(0, fmt.Sprintf("import %q;\n", assetID))

	code, err := edits.Apply()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrEval, id, err)
	}
	sourceMap, err := BuildSourceMap(edits, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrEval, id, err)
	}

	css := JoinFragments(fragments)
	c.Buffer.Store(id, css)

	return &Result{
		Code:      code,
		Map:       sourceMap,
		CSS:       css,
		SiteCount: len(cls.Sites),
		Dynamic:   cls.Dynamic,
	}, nil
}

// emitStaticSites runs the static fast path: every site's value is
// already known from classification, so Emit is called directly in
// source order without touching the sub-bundler.
func emitStaticSites(ctx context.Context, sites []*Site, emit EmitFunc) error {
	for _, s := range sites {
		name, err := emit(ctx, s.StaticValue)
		if err != nil {
			return err
		}
		s.ClassName = name
		s.RawCSS = s.StaticValue
	}
	return nil
}

// evaluateSites runs the dynamic path: sub-bundler, then evaluator, then
// Emit in source order for every site (static sites ride along in the
// same file as trivial exports, but are emitted directly here since their
// value never needed evaluation).
func (c *Coordinator) evaluateSites(ctx context.Context, cls *ClassifyResult, id string, opts Options) error {
	script, err := Bundle(ctx, cls.Derivative, id, opts.Resolve, c.Warn)
	if err != nil {
		return err
	}
	values, err := Evaluate(script, id, opts.Resolve)
	if err != nil {
		return err
	}

	for _, s := range cls.Sites {
		if s.Static {
			name, err := opts.Emit(ctx, s.StaticValue)
			if err != nil {
				return err
			}
			s.ClassName = name
			s.RawCSS = s.StaticValue
			continue
		}
		val, ok := values[s.Index]
		if !ok {
			return fmt.Errorf("%w: %s: no evaluated value for site %d", ErrEval, id, s.Index)
		}
		name, err := opts.Emit(ctx, val)
		if err != nil {
			return err
		}
		s.ClassName = name
		s.RawCSS = val
	}
	return nil
}
