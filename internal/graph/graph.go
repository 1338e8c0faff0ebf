package graph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/sjson"
)

// DefaultView is the name of the unfiltered view.
const DefaultView = "default"

// NodeType discriminates graph nodes in the `nodeType` field.
type NodeType string

const (
	NodeContributor NodeType = "contributor"
	NodeTeam        NodeType = "team"
)

// LinkType labels graph links in the `linkType` field.
type LinkType string

// LinkTeamMember connects a team to one of its leads or devs.
const LinkTeamMember LinkType = "team-member"

// Node is one vertex of the graph. Record is serialized inline.
type Node struct {
	ID     string
	Type   NodeType
	Record any
}

// MarshalJSON flattens the record's fields into the node object and adds
// the `id` and `nodeType` keys.
func (n Node) MarshalJSON() ([]byte, error) {
	body := []byte("{}")
	if n.Record != nil {
		encoded, err := json.Marshal(n.Record)
		if err != nil {
			return nil, fmt.Errorf("encode %s node %s: %w", n.Type, n.ID, err)
		}
		if string(encoded) != "null" {
			body = encoded
		}
	}

	body, err := sjson.SetBytes(body, "id", n.ID)
	if err != nil {
		return nil, fmt.Errorf("set id on node %s: %w", n.ID, err)
	}
	body, err = sjson.SetBytes(body, "nodeType", string(n.Type))
	if err != nil {
		return nil, fmt.Errorf("set nodeType on node %s: %w", n.ID, err)
	}
	return body, nil
}

// Link is a directed edge between two scoped identifiers.
type Link struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   LinkType `json:"linkType"`
}

// View is one named node/link projection of the graph.
type View struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Document maps view names to views.
type Document map[string]View

// Default returns the unfiltered view.
func (d Document) Default() View {
	return d[DefaultView]
}

// WriteJSON encodes the document as indented JSON.
func (d Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode graph document: %w", err)
	}
	return nil
}
