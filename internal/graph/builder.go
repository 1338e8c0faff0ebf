package graph

import (
	"context"
	"slices"

	"github.com/specialistvlad/orgmeta/internal/ctxlog"
	"github.com/specialistvlad/orgmeta/internal/entity"
	"github.com/specialistvlad/orgmeta/internal/record"
)

// Builder holds the two collections a graph is derived from. It only reads them.
type Builder struct {
	contributors map[entity.Key]*record.Contributor
	teams        map[entity.Key]*record.Team
}

// NewBuilder creates a builder over fully loaded collections.
func NewBuilder(contributors map[entity.Key]*record.Contributor, teams map[entity.Key]*record.Team) *Builder {
	return &Builder{contributors: contributors, teams: teams}
}

// Build is shorthand for NewBuilder(contributors, teams).Build(ctx).
func Build(ctx context.Context, contributors map[entity.Key]*record.Contributor, teams map[entity.Key]*record.Team) Document {
	return NewBuilder(contributors, teams).Build(ctx)
}

// Build produces the graph document with its default view.
func (b *Builder) Build(ctx context.Context) Document {
	view := b.contributorsTeamsView()
	ctxlog.FromContext(ctx).Debug("Graph built.", "view", DefaultView, "nodes", len(view.Nodes), "links", len(view.Links))

	return Document{DefaultView: view}
}

// contributorsTeamsView emits every contributor and team as a node and one
// team-member link per lead and dev. Member names are not checked against
// the contributor collection.
func (b *Builder) contributorsTeamsView() View {
	view := View{
		Nodes: make([]Node, 0, len(b.contributors)+len(b.teams)),
		Links: make([]Link, 0),
	}

	for _, key := range sortedKeys(b.contributors) {
		view.Nodes = append(view.Nodes, Node{
			ID:     key.ScopedID(),
			Type:   NodeContributor,
			Record: b.contributors[key],
		})
	}

	for _, key := range sortedKeys(b.teams) {
		team := b.teams[key]
		view.Nodes = append(view.Nodes, Node{
			ID:     key.ScopedID(),
			Type:   NodeTeam,
			Record: team,
		})

		for _, member := range team.Members() {
			target := entity.NewKey(entity.KindContributor, member)
			view.Links = append(view.Links, Link{
				Source: key.ScopedID(),
				Target: target.ScopedID(),
				Type:   LinkTeamMember,
			})
		}
	}

	return view
}

// sortedKeys returns the map's keys in a stable order so repeated runs over
// the same input produce identical documents.
func sortedKeys[V any](m map[entity.Key]V) []entity.Key {
	keys := make([]entity.Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b entity.Key) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return keys
}
