// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package record

import "github.com/specialistvlad/orgmeta/internal/entity"

// Record is implemented by every loadable record kind.
type Record interface {
	// Kind is the entity kind the record is stored under.
	Kind() entity.Kind
	// RequiredKeys lists the top-level keys that must be present in the source.
	RequiredKeys() []string
	// SetKeyOrder attaches the literal top-level key sequence of the source file.
	SetKeyOrder(order []string)
	// KeyOrder returns the sequence set by SetKeyOrder.
	KeyOrder() []string
	// Validate checks constraints a decoder cannot express.
	Validate() error
}

// keyOrder is embedded by every record kind.
type keyOrder struct {
	order []string
}

func (k *keyOrder) SetKeyOrder(order []string) {
	k.order = append([]string(nil), order...)
}

func (k *keyOrder) KeyOrder() []string {
	return k.order
}
