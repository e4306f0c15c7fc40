package main

import (
	"errors"

	"github.com/yacobolo/severed/internal/extract"
)

// issue is one file's extraction failure: a "one problem, one location,
// one kind" shape covering the parse/eval/type-error taxonomy that
// extraction can fail with.
type issue struct {
	File    string
	Kind    string
	Message string
}

const (
	kindParse = "parse"
	kindEval  = "eval"
	kindType  = "type"
	kindOther = "error"
)

// issueFor classifies err against internal/extract's sentinel errors
// with errors.Is, the way a cssgen caller would match against a
// package-level sentinel rather than parsing message text.
func issueFor(file string, err error) issue {
	kind := kindOther
	switch {
	case errors.Is(err, extract.ErrParse):
		kind = kindParse
	case errors.Is(err, extract.ErrNotString):
		kind = kindType
	case errors.Is(err, extract.ErrEval):
		kind = kindEval
	}
	return issue{File: file, Kind: kind, Message: err.Error()}
}
