package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yacobolo/severed/internal/extract"
)

func TestIssueForClassifiesParseError(t *testing.T) {
	is := issueFor("a.ts", errors.Join(extract.ErrParse, errors.New("unterminated template literal")))
	assert.Equal(t, kindParse, is.Kind)
	assert.Equal(t, "a.ts", is.File)
}

func TestIssueForClassifiesEvalError(t *testing.T) {
	is := issueFor("a.ts", errors.Join(extract.ErrEval, errors.New("sub-bundler failed")))
	assert.Equal(t, kindEval, is.Kind)
}

func TestIssueForClassifiesTypeError(t *testing.T) {
	is := issueFor("a.ts", extract.ErrNotString)
	assert.Equal(t, kindType, is.Kind)
}

func TestIssueForUnclassifiedErrorIsOther(t *testing.T) {
	is := issueFor("a.ts", errors.New("disk full"))
	assert.Equal(t, kindOther, is.Kind)
}
