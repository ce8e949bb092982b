// Package app wires configuration, the mapping store and the sort engine into
// the operations the command-line shell exposes.
//
// New opens the store and seeds the default mappings on first run. Sort runs
// hold an exclusive lock file under the state directory so two shells cannot
// sort the same desktop at once; the loser fails fast with ErrSortInProgress.
package app
