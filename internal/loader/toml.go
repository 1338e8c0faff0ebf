package loader

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/orgmeta/internal/ctxlog"
	"github.com/specialistvlad/orgmeta/internal/metaerr"
	"github.com/specialistvlad/orgmeta/internal/record"
)

// TOMLDecoder reads records written in TOML.
type TOMLDecoder struct{}

// Decode implements Decoder. The typed decode validates value types; a second
// decode into a generic map is used only for its metadata, whose key list
// follows document order.
func (d *TOMLDecoder) Decode(ctx context.Context, path string, src []byte, into record.Record) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	text := string(src)

	md, err := toml.Decode(text, into)
	if err != nil {
		return nil, &metaerr.ParseError{Path: path, Phase: "decode", Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		logger.Warn("Record contains keys unknown to its kind.", "path", path, "keys", keys)
	}

	var generic map[string]any
	genericMD, err := toml.Decode(text, &generic)
	if err != nil {
		return nil, &metaerr.ParseError{Path: path, Phase: "key-order", Err: err}
	}

	// Nested tables and dotted keys show up as multi-part keys; only their
	// first part is a top-level field.
	var order []string
	seen := make(map[string]struct{})
	for _, key := range genericMD.Keys() {
		if len(key) == 0 {
			continue
		}
		order = appendUnique(order, seen, key[0])
	}

	logger.Debug("TOML record decoded.", "path", path, "key_order", order)
	return order, nil
}
