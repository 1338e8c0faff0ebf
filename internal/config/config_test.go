package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironment_Defaults(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, &Config{
		ContributorsPattern: "contributors/*.toml",
		TeamsPattern:        "teams/*.toml",
		ContributorSchema:   "schemas/contributor.schema.json",
		TeamSchema:          "schemas/team.schema.json",
		StrictDuplicates:    false,
		LogLevel:            "info",
		LogFormat:           "text",
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvironment_Overrides(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{
		"ORGMETA_TEAMS":      "meta/teams/**/*.hcl",
		"ORGMETA_STRICT":     "true",
		"ORGMETA_LOG_FORMAT": "json",
		"TEAMS":              "ignored/without/prefix",
	})
	require.NoError(t, err)

	assert.Equal(t, "meta/teams/**/*.hcl", cfg.TeamsPattern)
	assert.True(t, cfg.StrictDuplicates)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "contributors/*.toml", cfg.ContributorsPattern)
}

func TestFromEnvironment_BadBool(t *testing.T) {
	_, err := FromEnvironment(map[string]string{"ORGMETA_STRICT": "sometimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{name: "empty contributors", mutate: func(c *Config) { c.ContributorsPattern = " " }, contains: "contributors pattern"},
		{name: "empty teams", mutate: func(c *Config) { c.TeamsPattern = "" }, contains: "teams pattern"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }, contains: "invalid log-level"},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, contains: "invalid log-format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := FromEnvironment(map[string]string{})
			require.NoError(t, err)

			tc.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}
