package loader

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/orgmeta/internal/ctxlog"
	"github.com/specialistvlad/orgmeta/internal/metaerr"
	"github.com/specialistvlad/orgmeta/internal/record"
	"github.com/zclconf/go-cty/cty"
)

// HCLDecoder reads records written in HCL native syntax, where each record
// field is a top-level attribute, e.g. `leads = ["alice"]`.
type HCLDecoder struct{}

// orderedItem is one top-level attribute of the generic view.
type orderedItem struct {
	name  string
	start int
	value cty.Value
}

// Decode implements Decoder. gohcl performs the typed decode, including
// required-attribute checks, and rejects blocks since no record field is
// one. The attribute map of hclsyntax.Body is unordered, so the generic
// view is rebuilt from source byte offsets.
func (d *HCLDecoder) Decode(ctx context.Context, path string, src []byte, into record.Record) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	file, diags := hclsyntax.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, &metaerr.ParseError{Path: path, Phase: "decode", Err: diags}
	}

	if diags := gohcl.DecodeBody(file.Body, nil, into); diags.HasErrors() {
		return nil, &metaerr.ParseError{Path: path, Phase: "decode", Err: diags}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		// Unreachable for files produced by hclsyntax.ParseConfig.
		return nil, &metaerr.ParseError{Path: path, Phase: "key-order", Err: fmt.Errorf("unexpected body type %T", file.Body)}
	}

	items, err := orderedView(body)
	if err != nil {
		return nil, &metaerr.ParseError{Path: path, Phase: "key-order", Err: err}
	}

	order := make([]string, 0, len(items))
	types := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		order = appendUnique(order, seen, item.name)
		types = append(types, item.value.Type().FriendlyName())
	}

	logger.Debug("HCL record decoded.", "path", path, "key_order", order, "value_types", types)
	return order, nil
}

// orderedView lists the top-level attributes of body in source order.
// Attribute values must be literal; anything needing an evaluation context
// is rejected.
func orderedView(body *hclsyntax.Body) ([]orderedItem, error) {
	items := make([]orderedItem, 0, len(body.Attributes))

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("attribute %q is not a literal value: %w", name, diags)
		}
		if val.IsNull() {
			return nil, fmt.Errorf("attribute %q is null", name)
		}
		items = append(items, orderedItem{name: name, start: attr.SrcRange.Start.Byte, value: val})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].start < items[j].start })
	return items, nil
}
