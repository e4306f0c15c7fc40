package extract

import "errors"

// Sentinel errors for severed's failure taxonomy. Hosts can match against
// these with errors.Is the way a cssgen caller would match against a
// package-level sentinel, rather than parsing message text.
var (
	// ErrParse wraps a syntax error from the scanner. Aborts the file.
	ErrParse = errors.New("parse error")
	// ErrEval wraps a failure constructing or running the derivative
	// program. Aborts the file.
	ErrEval = errors.New("evaluation error")
	// ErrNotString is returned when a dynamic site's export evaluates to a
	// non-string value.
	ErrNotString = errors.New("expected css to evaluate to string")
)
