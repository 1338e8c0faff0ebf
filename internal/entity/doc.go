/*
Package entity provides the composite identity shared by every loaded record.

A Key pairs a record Kind (contributor, team) with the name derived from the
record's file. Its scoped form, `kind:name`, is the identifier written into
graph nodes and links.
*/
package entity
