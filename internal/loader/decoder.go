package loader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/orgmeta/internal/record"
)

// Decoder parses one record file. It decodes src into the typed record and,
// through a separate order-preserving parse of the same bytes, returns the
// top-level keys in the order they were written. Errors are
// *metaerr.ParseError values naming path.
type Decoder interface {
	Decode(ctx context.Context, path string, src []byte, into record.Record) ([]string, error)
}

// defaultDecoders maps a lower-cased file extension to its decoder.
func defaultDecoders() map[string]Decoder {
	return map[string]Decoder{
		".toml": &TOMLDecoder{},
		".hcl":  &HCLDecoder{},
	}
}

func extensionOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// appendUnique appends name unless it is already present.
func appendUnique(order []string, seen map[string]struct{}, name string) []string {
	if _, ok := seen[name]; ok {
		return order
	}
	seen[name] = struct{}{}
	return append(order, name)
}
