// Package schema resolves the canonical field order declared by a record
// schema: the names under its top-level "properties" object, in the order
// they were written.
//
// JSON documents are walked with gjson, whose iteration follows the source
// text; YAML documents are read as yaml.v3 nodes, which keep mapping order.
// Both avoid decoding into a Go map, which would lose that order.
package schema

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/orgmeta/internal/ctxlog"
	"github.com/specialistvlad/orgmeta/internal/metaerr"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// propertiesKey is the schema section whose key order is canonical.
const propertiesKey = "properties"

// ResolveOrder reads the schema document at path and returns its declared
// property names in declaration order.
func ResolveOrder(ctx context.Context, path string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving schema key order.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &metaerr.IoError{Path: path, Op: "read", Err: err}
	}

	var order []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		order, err = yamlPropertyOrder(path, data)
	default:
		order, err = jsonPropertyOrder(path, data)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Schema key order resolved.", "path", path, "order", order)
	return order, nil
}

func jsonPropertyOrder(path string, data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, &metaerr.ParseError{Path: path, Phase: "decode", Err: fmt.Errorf("malformed JSON")}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &metaerr.SchemaError{Path: path, Msg: "document root must be an object"}
	}

	props := root.Get(propertiesKey)
	if !props.Exists() {
		return nil, &metaerr.SchemaError{Path: path, Msg: fmt.Sprintf("missing %q section", propertiesKey)}
	}
	if !props.IsObject() {
		return nil, &metaerr.SchemaError{Path: path, Msg: fmt.Sprintf("%q must be an object", propertiesKey)}
	}

	order := []string{}
	seen := make(map[string]struct{})
	props.ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			order = append(order, name)
		}
		return true
	})
	return order, nil
}

func yamlPropertyOrder(path string, data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &metaerr.ParseError{Path: path, Phase: "decode", Err: err}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, &metaerr.SchemaError{Path: path, Msg: "document root must be a mapping"}
	}
	root := doc.Content[0]

	var props *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == propertiesKey {
			props = root.Content[i+1]
			break
		}
	}
	if props == nil {
		return nil, &metaerr.SchemaError{Path: path, Msg: fmt.Sprintf("missing %q section", propertiesKey)}
	}
	if props.Kind != yaml.MappingNode {
		return nil, &metaerr.SchemaError{Path: path, Msg: fmt.Sprintf("%q must be a mapping", propertiesKey)}
	}

	order := make([]string, 0, len(props.Content)/2)
	for i := 0; i+1 < len(props.Content); i += 2 {
		order = append(order, props.Content[i].Value)
	}
	return order, nil
}
