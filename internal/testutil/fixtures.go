package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Record files shared by the loader, graph and CLI tests. The key order of
// each fixture is deliberately different from the struct field order.
const (
	AliceTOML = `github-username = "alice"
full-name = "Alice Example"
slack-member-id = "U0001"
`

	BobTOML = `slack-member-id = "U0002"
full-name = "Bob Example"
github-username = "bob"
andrew-id = "bexample"
`

	CoreTeamTOML = `name = "Core"
slug = "core"
leads = ["alice"]
devs = ["bob"]
repos = ["orgmeta"]
slack-channel-ids = ["C0001"]
`

	CoreTeamHCL = `slug = "core"
name = "Core"
devs = ["bob"]
leads = ["alice"]
slack-channel-ids = ["C0001"]
repos = ["orgmeta"]
sync-github = false
`

	ContributorSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "full-name": {"type": "string"},
    "github-username": {"type": "string"},
    "slack-member-id": {"type": "string"},
    "andrew-id": {"type": "string"}
  },
  "required": ["full-name", "github-username", "slack-member-id"]
}
`

	TeamSchemaJSON = `{
  "type": "object",
  "properties": {
    "slug": {}, "name": {}, "website-slug": {}, "leads": {}, "devs": {},
    "applicants": {}, "ext-admins": {}, "repos": {}, "slack-channel-ids": {},
    "remove-unlisted": {}, "sync-github": {}, "create-oidc-clients": {},
    "secrets-population-layout": {}
  }
}
`
)

// WriteFiles creates a temporary directory, writes every file (path relative
// to the directory) into it and returns the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "failed to create fixture directory")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to write fixture %s", rel)
	}
	return root
}

// OrgFixture returns the canonical example organization: two contributors
// and one team leading alice with bob as developer.
func OrgFixture() map[string]string {
	return map[string]string{
		"contributors/alice.toml":         AliceTOML,
		"contributors/bob.toml":           BobTOML,
		"teams/core.toml":                 CoreTeamTOML,
		"schemas/contributor.schema.json": ContributorSchemaJSON,
		"schemas/team.schema.json":        TeamSchemaJSON,
	}
}
