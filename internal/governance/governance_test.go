package governance

import (
	"testing"

	"github.com/specialistvlad/orgmeta/internal/entity"
	"github.com/specialistvlad/orgmeta/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contributorSchema = []string{"full-name", "github-username", "slack-member-id", "andrew-id"}

func TestCanonicalOrder(t *testing.T) {
	testCases := []struct {
		name     string
		record   []string
		expected []string
	}{
		{
			name:     "already canonical",
			record:   []string{"full-name", "github-username", "slack-member-id"},
			expected: []string{"full-name", "github-username", "slack-member-id"},
		},
		{
			name:     "reversed",
			record:   []string{"andrew-id", "slack-member-id", "full-name"},
			expected: []string{"full-name", "slack-member-id", "andrew-id"},
		},
		{
			name:     "unknown keys go last in original order",
			record:   []string{"zeta", "slack-member-id", "alpha", "full-name"},
			expected: []string{"full-name", "slack-member-id", "zeta", "alpha"},
		},
		{
			name:     "empty",
			record:   nil,
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanonicalOrder(tc.record, contributorSchema))
		})
	}
}

func TestCheckKeyOrder(t *testing.T) {
	key := entity.NewKey(entity.KindContributor, "alice")

	testCases := []struct {
		name     string
		record   []string
		expected []Violation
	}{
		{
			name:   "canonical order passes",
			record: []string{"full-name", "github-username", "slack-member-id"},
		},
		{
			name:   "skipped optional keys pass",
			record: []string{"full-name", "andrew-id"},
		},
		{
			name:   "swapped pair",
			record: []string{"github-username", "full-name", "slack-member-id"},
			expected: []Violation{
				{Key: key, Rule: RuleKeyOrder, Field: "full-name", Message: `key "full-name" should appear before "github-username" (expected order: full-name, github-username, slack-member-id)`},
			},
		},
		{
			name:   "every misplaced key repeats the same expected order",
			record: []string{"slack-member-id", "github-username", "full-name", "shoe-size"},
			expected: []Violation{
				{Key: key, Rule: RuleKeyOrder, Field: "github-username", Message: `key "github-username" should appear before "slack-member-id" (expected order: full-name, github-username, slack-member-id, shoe-size)`},
				{Key: key, Rule: RuleKeyOrder, Field: "full-name", Message: `key "full-name" should appear before "slack-member-id" (expected order: full-name, github-username, slack-member-id, shoe-size)`},
				{Key: key, Rule: RuleUnknownKey, Field: "shoe-size", Message: `key "shoe-size" is not declared by the schema`},
			},
		},
		{
			name:   "unknown key",
			record: []string{"full-name", "shoe-size"},
			expected: []Violation{
				{Key: key, Rule: RuleUnknownKey, Field: "shoe-size", Message: `key "shoe-size" is not declared by the schema`},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CheckKeyOrder(key, tc.record, contributorSchema))
		})
	}
}

func TestCheckCollection_SortedByKey(t *testing.T) {
	bob := record.NewContributor()
	bob.SetKeyOrder([]string{"slack-member-id", "full-name"})
	alice := record.NewContributor()
	alice.SetKeyOrder([]string{"github-username", "full-name"})

	violations := CheckCollection(map[entity.Key]*record.Contributor{
		entity.NewKey(entity.KindContributor, "bob"):   bob,
		entity.NewKey(entity.KindContributor, "alice"): alice,
	}, contributorSchema)

	require.Len(t, violations, 2)
	assert.Equal(t, "alice", violations[0].Key.Name)
	assert.Equal(t, "bob", violations[1].Key.Name)
	assert.Equal(t, `contributor:alice: key-order: key "full-name" should appear before "github-username" (expected order: full-name, github-username)`, violations[0].String())
}

func TestCheckMembers(t *testing.T) {
	contributors := map[entity.Key]*record.Contributor{
		entity.NewKey(entity.KindContributor, "alice"): record.NewContributor(),
	}
	teams := map[entity.Key]*record.Team{
		entity.NewKey(entity.KindTeam, "core"): {Leads: []string{"alice", "mallory"}, Devs: []string{"ghost"}},
		entity.NewKey(entity.KindTeam, "ok"):   {Leads: []string{"alice"}},
	}

	violations := CheckMembers(contributors, teams)

	require.Len(t, violations, 2)
	assert.Equal(t, RuleUnknownMember, violations[0].Rule)
	assert.Equal(t, "leads", violations[0].Field)
	assert.Contains(t, violations[0].Message, `"mallory"`)
	assert.Equal(t, "devs", violations[1].Field)
	assert.Contains(t, violations[1].Message, `"ghost"`)
	assert.Equal(t, "team:core", violations[1].Key.ScopedID())
}
