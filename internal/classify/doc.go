// Package classify maps desktop entries to mapping keys.
//
// Keys are concrete extensions (".pdf", ".tar.gz") with one fixed sentinel,
// FolderKey, shared by every directory. Extensions are lowercased before
// comparison so REPORT.PDF and report.pdf resolve identically. DefaultGroups
// lists the built-in category buckets used to seed first-run mappings.
package classify
