// Package metaerr defines the error taxonomy shared by the record loader and
// the schema order resolver. Every error type unwraps to a sentinel so callers
// can branch with errors.Is, and carries the offending path so the faulty
// input can be located.
package metaerr

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/orgmeta/internal/entity"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrIO indicates a file that could not be read or a pattern that could not be expanded.
	ErrIO = errors.New("io error")

	// ErrParse indicates content that does not match the expected structure.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates a schema document without a usable "properties" section.
	ErrSchema = errors.New("schema error")

	// ErrDuplicate indicates two files resolving to the same entity key in strict mode.
	ErrDuplicate = errors.New("duplicate entity")
)

// IoError reports a failed read of Path.
type IoError struct {
	Path string
	Op   string // "read", "glob"
	Err  error
}

func (e *IoError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: failed to %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the filesystem error, so errors.Is matches
// either one (e.g. fs.ErrNotExist).
func (e *IoError) Unwrap() []error { return unwrapBoth(ErrIO, e.Err) }

// ParseError reports content at Path that failed during Phase.
type ParseError struct {
	Path  string
	Phase string // "decode", "key-order", "validate", "format"
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Phase == "" {
		return fmt.Sprintf("%s: %s: %v", ErrParse, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s): %v", ErrParse, e.Path, e.Phase, e.Err)
}

func (e *ParseError) Unwrap() []error { return unwrapBoth(ErrParse, e.Err) }

// SchemaError reports a structurally valid document that is not a usable schema.
type SchemaError struct {
	Path string
	Msg  string
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %s", ErrSchema, e.Path, e.Msg)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// DuplicateError reports two source files that resolve to the same key.
type DuplicateError struct {
	Key    entity.Key
	First  string
	Second string
}

func (e *DuplicateError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s defined by both %s and %s", ErrDuplicate, e.Key.ScopedID(), e.First, e.Second)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

func unwrapBoth(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
