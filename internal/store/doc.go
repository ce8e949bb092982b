// Package store persists extension-to-destination mappings and the move
// journal in SQLite.
//
// The Store is the single owner of the mapping table. Callers construct one per
// application lifetime and hand it to the sort engine; there is no package
// level state. Reads take a shared lock and writes an exclusive one, so a
// snapshot returned by All is never a half-applied edit. First-run defaults are
// inserted by Seed inside one transaction: readers observe either no defaults
// or all of them.
//
// Schema changes bump schemaVersion in schema.go; users delete settings.db to
// adopt a new schema.
package store
