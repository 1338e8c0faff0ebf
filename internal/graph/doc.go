// Package graph derives the relationship graph document from the loaded
// contributor and team collections.
//
// # Document Shape
//
// The document folds its node and link lists under named views so that
// filtered views can be added later without changing the top-level shape.
// Only the "default" view is produced today:
//
//	{
//	  "default": {
//	    "nodes": [{"id": "contributor:alice", "nodeType": "contributor", "full-name": "..."}],
//	    "links": [{"source": "team:core", "target": "contributor:alice", "linkType": "team-member"}]
//	  }
//	}
//
// Nodes carry every field of the underlying record next to their `id` and
// `nodeType`. Links are emitted per team, leads first and devs second.
//
// # Dangling Members
//
// A member name without a contributor record still yields a link; its target
// node is simply absent. Rendering tools are expected to show such broken
// links, and the governance checks report them.
//
// # Lifecycle
//
// Build is a pure transform: it reads both collections, never mutates them,
// and cannot fail. The Document is constructed once per run and is not
// modified afterwards.
package graph
