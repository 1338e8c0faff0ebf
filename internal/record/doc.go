// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package record provides the typed Go representation of the hand-authored
// organizational metadata files: contributors and teams.
//
// # Core Concepts
//
//   - Record: the capability every kind shares. A record knows its kind, the
//     keys it cannot do without, and the literal order in which its top-level
//     keys were written on disk.
//
//   - Key order: captured by the loader from a second, order-preserving parse
//     of the same file. The struct field order below says nothing about the
//     source layout, so it is never used for that purpose.
//
// Each struct carries `toml`, `hcl` and `json` tags so the same type serves
// both input formats and the graph document.
package record
