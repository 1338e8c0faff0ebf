// Package loader turns a directory of record files into a keyed collection.
//
// Every file matching a Source pattern is read, decoded into its typed record
// and parsed a second time through an order-preserving view to recover the
// literal top-level key order, which is attached to the record before it is
// stored. The record's name is the file's base name without extension, so
// `contributors/alice.toml` becomes `contributor:alice`.
//
// Loading is sequential and fails fast: the first unreadable or malformed
// file aborts the whole load and no partial collection is returned.
package loader
