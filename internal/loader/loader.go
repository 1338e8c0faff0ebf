package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/orgmeta/internal/ctxlog"
	"github.com/specialistvlad/orgmeta/internal/entity"
	"github.com/specialistvlad/orgmeta/internal/fsutil"
	"github.com/specialistvlad/orgmeta/internal/metaerr"
	"github.com/specialistvlad/orgmeta/internal/record"
)

// Source pairs a record kind with the glob pattern that selects its files.
type Source struct {
	Kind    entity.Kind
	Pattern string
}

type options struct {
	strictDuplicates bool
	decoders         map[string]Decoder
}

// Option customizes a Load call.
type Option func(*options)

// WithStrictDuplicates makes two files resolving to the same key an error
// instead of letting the later file overwrite the earlier one.
func WithStrictDuplicates() Option {
	return func(o *options) { o.strictDuplicates = true }
}

// WithDecoder registers d for files with the given extension (".toml").
func WithDecoder(ext string, d Decoder) Option {
	return func(o *options) { o.decoders[strings.ToLower(ext)] = d }
}

// Load reads every file matched by src.Pattern into a record produced by
// newRecord and returns them keyed by (src.Kind, file base name).
//
// Files are processed in lexical path order. When two files share a base
// name the later one wins, unless WithStrictDuplicates is given.
func Load[R record.Record](ctx context.Context, src Source, newRecord func() R, opts ...Option) (map[entity.Key]R, error) {
	o := &options{decoders: defaultDecoders()}
	for _, opt := range opts {
		opt(o)
	}

	ctx = ctxlog.With(ctx, "kind", string(src.Kind))
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Record loader started.", "pattern", src.Pattern)

	if src.Pattern == "" {
		return nil, fmt.Errorf("no file pattern configured for %s records", src.Kind)
	}

	files, err := fsutil.Glob(src.Pattern)
	if err != nil {
		return nil, &metaerr.IoError{Path: src.Pattern, Op: "glob", Err: err}
	}
	logger.Debug("Discovered record files.", "count", len(files))

	records := make(map[entity.Key]R, len(files))
	origins := make(map[entity.Key]string, len(files))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := loadFile(ctx, path, newRecord, o.decoders)
		if err != nil {
			return nil, err
		}

		key := entity.NewKey(src.Kind, recordName(path))
		if previous, exists := origins[key]; exists {
			if o.strictDuplicates {
				return nil, &metaerr.DuplicateError{Key: key, First: previous, Second: path}
			}
			logger.Warn("Record overwritten by a file with the same name.", "key", key.ScopedID(), "previous", previous, "path", path)
		}

		records[key] = rec
		origins[key] = path
	}

	logger.Debug("Record loader finished.", "records", len(records))
	return records, nil
}

// loadFile reads and decodes a single record file.
func loadFile[R record.Record](ctx context.Context, path string, newRecord func() R, decoders map[string]Decoder) (R, error) {
	var zero R

	content, err := os.ReadFile(path)
	if err != nil {
		return zero, &metaerr.IoError{Path: path, Op: "read", Err: err}
	}

	decoder, ok := decoders[extensionOf(path)]
	if !ok {
		return zero, &metaerr.ParseError{Path: path, Phase: "format", Err: fmt.Errorf("no decoder for extension %q", filepath.Ext(path))}
	}

	rec := newRecord()
	order, err := decoder.Decode(ctx, path, content, rec)
	if err != nil {
		return zero, err
	}
	rec.SetKeyOrder(order)

	for _, required := range rec.RequiredKeys() {
		if !slices.Contains(order, required) {
			return zero, &metaerr.ParseError{Path: path, Phase: "validate", Err: fmt.Errorf("missing required key %q", required)}
		}
	}
	if err := rec.Validate(); err != nil {
		return zero, &metaerr.ParseError{Path: path, Phase: "validate", Err: err}
	}

	return rec, nil
}

// recordName derives the record identifier from the file name.
func recordName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadContributors loads contributor records matched by pattern.
func LoadContributors(ctx context.Context, pattern string, opts ...Option) (map[entity.Key]*record.Contributor, error) {
	return Load(ctx, Source{Kind: entity.KindContributor, Pattern: pattern}, record.NewContributor, opts...)
}

// LoadTeams loads team records matched by pattern.
func LoadTeams(ctx context.Context, pattern string, opts ...Option) (map[entity.Key]*record.Team, error) {
	return Load(ctx, Source{Kind: entity.KindTeam, Pattern: pattern}, record.NewTeam, opts...)
}
