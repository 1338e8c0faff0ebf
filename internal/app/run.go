package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/specialistvlad/orgmeta/internal/config"
	"github.com/specialistvlad/orgmeta/internal/governance"
	"github.com/specialistvlad/orgmeta/internal/graph"
	"github.com/specialistvlad/orgmeta/internal/schema"
)

// ErrViolations is returned by Validate when at least one check failed.
var ErrViolations = errors.New("governance violations found")

// Graph loads all records and writes the graph document as JSON to w, or to
// the app's output writer when w is nil.
func (a *App) Graph(ctx context.Context, w io.Writer) error {
	if w == nil {
		w = a.outW
	}

	records, err := a.LoadRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	doc := graph.Build(a.context(ctx), records.Contributors, records.Teams)
	view := doc.Default()
	a.logger.Info("Graph built.", "nodes", len(view.Nodes), "links", len(view.Links))

	return doc.WriteJSON(w)
}

// Validate loads all records, checks their key order against the schemas
// and their team membership, and prints one line per violation. It returns
// the violations, wrapped in ErrViolations when there are any.
func (a *App) Validate(ctx context.Context) ([]governance.Violation, error) {
	records, err := a.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	ctx = a.context(ctx)
	contributorOrder, err := schema.ResolveOrder(ctx, a.config.ContributorSchema)
	if err != nil {
		return nil, schemaError("contributor", "--contributor-schema", "CONTRIBUTOR_SCHEMA", err)
	}
	teamOrder, err := schema.ResolveOrder(ctx, a.config.TeamSchema)
	if err != nil {
		return nil, schemaError("team", "--team-schema", "TEAM_SCHEMA", err)
	}

	var violations []governance.Violation
	violations = append(violations, governance.CheckCollection(records.Contributors, contributorOrder)...)
	violations = append(violations, governance.CheckCollection(records.Teams, teamOrder)...)
	violations = append(violations, governance.CheckMembers(records.Contributors, records.Teams)...)

	for _, v := range violations {
		fmt.Fprintln(a.outW, v.String())
	}

	if len(violations) > 0 {
		a.logger.Warn("Governance checks failed.", "violations", len(violations))
		return violations, fmt.Errorf("%w: %d", ErrViolations, len(violations))
	}
	a.logger.Info("Governance checks passed.")
	return nil, nil
}

// schemaError wraps a schema resolution failure. A missing file gets a hint
// on how to point the run at the right document.
func schemaError(kind, flag, envVar string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to resolve %s schema: %w (set %s or %s%s)", kind, err, flag, config.EnvPrefix, envVar)
	}
	return fmt.Errorf("failed to resolve %s schema: %w", kind, err)
}
