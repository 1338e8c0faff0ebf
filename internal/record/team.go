// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package record

import (
	"fmt"

	"github.com/specialistvlad/orgmeta/internal/entity"
)

// SecretsLayout controls how a team's secrets are populated downstream.
type SecretsLayout string

const (
	SecretsLayoutSingle SecretsLayout = "single"
	SecretsLayoutMulti  SecretsLayout = "multi"
	SecretsLayoutNone   SecretsLayout = "none"
)

// Team groups contributors. Leads and Devs reference contributors by the
// file-derived name of their record.
type Team struct {
	keyOrder

	Slug             string   `toml:"slug" hcl:"slug" json:"slug"`
	Name             string   `toml:"name" hcl:"name" json:"name"`
	WebsiteSlug      *string  `toml:"website-slug" hcl:"website-slug,optional" json:"website-slug,omitempty"`
	Leads            []string `toml:"leads" hcl:"leads" json:"leads"`
	Devs             []string `toml:"devs" hcl:"devs" json:"devs"`
	Applicants       []string `toml:"applicants" hcl:"applicants,optional" json:"applicants,omitempty"`
	ExtAdmins        []string `toml:"ext-admins" hcl:"ext-admins,optional" json:"ext-admins,omitempty"`
	Repos            []string `toml:"repos" hcl:"repos" json:"repos"`
	SlackChannelIDs  []string `toml:"slack-channel-ids" hcl:"slack-channel-ids" json:"slack-channel-ids"`
	RemoveUnlisted   bool     `toml:"remove-unlisted" hcl:"remove-unlisted,optional" json:"remove-unlisted"`
	SyncGithub       bool     `toml:"sync-github" hcl:"sync-github,optional" json:"sync-github"`
	CreateOIDCClient bool     `toml:"create-oidc-clients" hcl:"create-oidc-clients,optional" json:"create-oidc-clients"`

	SecretsPopulationLayout SecretsLayout `toml:"secrets-population-layout" hcl:"secrets-population-layout,optional" json:"secrets-population-layout"`
}

// NewTeam returns a team seeded with the defaults applied to omitted keys.
func NewTeam() *Team {
	return &Team{
		RemoveUnlisted:          true,
		SyncGithub:              true,
		CreateOIDCClient:        true,
		SecretsPopulationLayout: SecretsLayoutMulti,
	}
}

func (t *Team) Kind() entity.Kind { return entity.KindTeam }

func (t *Team) RequiredKeys() []string {
	return []string{"slug", "name", "leads", "devs", "repos", "slack-channel-ids"}
}

// Validate rejects secrets layouts outside the known set.
func (t *Team) Validate() error {
	switch t.SecretsPopulationLayout {
	case SecretsLayoutSingle, SecretsLayoutMulti, SecretsLayoutNone:
		return nil
	default:
		return fmt.Errorf("secrets-population-layout must be one of %q, %q or %q, got %q",
			SecretsLayoutSingle, SecretsLayoutMulti, SecretsLayoutNone, t.SecretsPopulationLayout)
	}
}

// Members returns leads followed by devs. The result is a fresh slice.
func (t *Team) Members() []string {
	members := make([]string, 0, len(t.Leads)+len(t.Devs))
	members = append(members, t.Leads...)
	return append(members, t.Devs...)
}
