// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package record

import "github.com/specialistvlad/orgmeta/internal/entity"

// Contributor is a single person listed under the contributors directory.
type Contributor struct {
	keyOrder

	FullName       string  `toml:"full-name" hcl:"full-name" json:"full-name"`
	GithubUsername string  `toml:"github-username" hcl:"github-username" json:"github-username"`
	SlackMemberID  string  `toml:"slack-member-id" hcl:"slack-member-id" json:"slack-member-id"`
	AndrewID       *string `toml:"andrew-id" hcl:"andrew-id,optional" json:"andrew-id,omitempty"`
}

// NewContributor returns an empty contributor ready to be decoded into.
func NewContributor() *Contributor {
	return &Contributor{}
}

func (c *Contributor) Kind() entity.Kind { return entity.KindContributor }

func (c *Contributor) RequiredKeys() []string {
	return []string{"full-name", "github-username", "slack-member-id"}
}

func (c *Contributor) Validate() error { return nil }
