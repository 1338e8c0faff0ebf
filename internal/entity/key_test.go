package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_ScopedID(t *testing.T) {
	testCases := []struct {
		name        string
		key         Key
		expectedStr string
	}{
		{
			name:        "contributor",
			key:         NewKey(KindContributor, "alice"),
			expectedStr: "contributor:alice",
		},
		{
			name:        "team",
			key:         NewKey(KindTeam, "core"),
			expectedStr: "team:core",
		},
		{
			name:        "name with hyphen",
			key:         NewKey(KindTeam, "web-platform"),
			expectedStr: "team:web-platform",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.key.ScopedID())
			assert.Equal(t, tc.expectedStr, tc.key.String())
		})
	}
}

func TestKey_Less(t *testing.T) {
	alice := NewKey(KindContributor, "alice")
	bob := NewKey(KindContributor, "bob")
	core := NewKey(KindTeam, "core")

	assert.True(t, alice.Less(bob))
	assert.False(t, bob.Less(alice))
	assert.True(t, bob.Less(core))
	assert.False(t, alice.Less(alice))
}

func TestKey_UsableAsMapKey(t *testing.T) {
	m := map[Key]int{}
	m[NewKey(KindContributor, "alice")] = 1
	m[NewKey(KindContributor, "alice")] = 2
	m[NewKey(KindTeam, "alice")] = 3

	require.Len(t, m, 2)
	assert.Equal(t, 2, m[NewKey(KindContributor, "alice")])
}
