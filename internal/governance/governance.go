// Package governance checks loaded records against the organization's rules:
// record keys must follow the canonical order declared by the schema, and
// every team member must have a contributor record.
//
// Checks only report. They never modify records, and the graph builder does
// not consult them.
package governance

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/specialistvlad/orgmeta/internal/entity"
	"github.com/specialistvlad/orgmeta/internal/record"
)

// Rule names the check a violation comes from.
type Rule string

const (
	RuleUnknownKey    Rule = "unknown-key"
	RuleKeyOrder      Rule = "key-order"
	RuleUnknownMember Rule = "unknown-member"
)

// Violation is one finding against one record.
type Violation struct {
	Key     entity.Key
	Rule    Rule
	Field   string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Key.ScopedID(), v.Rule, v.Message)
}

// CanonicalOrder returns recordOrder rearranged to follow schemaOrder. Keys
// the schema does not declare keep their relative order and go last.
func CanonicalOrder(recordOrder, schemaOrder []string) []string {
	positions := positionsOf(schemaOrder)

	known := make([]string, 0, len(recordOrder))
	var unknown []string
	for _, k := range recordOrder {
		if _, ok := positions[k]; ok {
			known = append(known, k)
		} else {
			unknown = append(unknown, k)
		}
	}
	sort.SliceStable(known, func(i, j int) bool { return positions[known[i]] < positions[known[j]] })

	return append(known, unknown...)
}

// CheckKeyOrder compares a record's captured key order with the schema order.
// Each key-order violation names the canonical order the record should use.
func CheckKeyOrder(key entity.Key, recordOrder, schemaOrder []string) []Violation {
	positions := positionsOf(schemaOrder)

	var violations []Violation
	expected := ""
	latest := ""
	latestPos := -1
	for _, k := range recordOrder {
		pos, ok := positions[k]
		if !ok {
			violations = append(violations, Violation{
				Key:     key,
				Rule:    RuleUnknownKey,
				Field:   k,
				Message: fmt.Sprintf("key %q is not declared by the schema", k),
			})
			continue
		}
		if pos < latestPos {
			if expected == "" {
				expected = strings.Join(CanonicalOrder(recordOrder, schemaOrder), ", ")
			}
			violations = append(violations, Violation{
				Key:     key,
				Rule:    RuleKeyOrder,
				Field:   k,
				Message: fmt.Sprintf("key %q should appear before %q (expected order: %s)", k, latest, expected),
			})
			continue
		}
		latest, latestPos = k, pos
	}
	return violations
}

// CheckCollection runs CheckKeyOrder over every record, in key order.
func CheckCollection[R record.Record](records map[entity.Key]R, schemaOrder []string) []Violation {
	var violations []Violation
	for _, key := range sortedKeys(records) {
		violations = append(violations, CheckKeyOrder(key, records[key].KeyOrder(), schemaOrder)...)
	}
	return violations
}

// CheckMembers reports team leads and devs without a contributor record.
func CheckMembers(contributors map[entity.Key]*record.Contributor, teams map[entity.Key]*record.Team) []Violation {
	var violations []Violation
	for _, key := range sortedKeys(teams) {
		team := teams[key]
		for _, list := range []struct {
			field   string
			members []string
		}{
			{field: "leads", members: team.Leads},
			{field: "devs", members: team.Devs},
		} {
			for _, member := range list.members {
				if _, ok := contributors[entity.NewKey(entity.KindContributor, member)]; ok {
					continue
				}
				violations = append(violations, Violation{
					Key:     key,
					Rule:    RuleUnknownMember,
					Field:   list.field,
					Message: fmt.Sprintf("%s member %q has no contributor record", list.field, member),
				})
			}
		}
	}
	return violations
}

func positionsOf(order []string) map[string]int {
	positions := make(map[string]int, len(order))
	for i, k := range order {
		if _, dup := positions[k]; !dup {
			positions[k] = i
		}
	}
	return positions
}

func sortedKeys[V any](m map[entity.Key]V) []entity.Key {
	keys := make([]entity.Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b entity.Key) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	return keys
}
