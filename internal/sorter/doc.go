// Package sorter moves the immediate children of a directory into the
// destination folders configured for their category keys.
//
// ScanAndSort lists the root once, classifies each visible entry, looks the
// key up in a mapping snapshot taken at scan start, and renames the entry into
// a collision-free path under the destination. Problems with one entry are
// recorded in the Report and never stop the scan; only a missing root or an
// unreadable mapping store fail the call.
//
// Existing files are never overwritten: UniqueTarget appends _1, _2, ... to
// the stem until the name is free. The check and the rename are not atomic, so
// a file created between them by another process can still be replaced on
// platforms where rename overwrites.
package sorter
