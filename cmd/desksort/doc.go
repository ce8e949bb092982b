// Package main hosts the desksort CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once per invocation, builds
// the application (mapping store plus sort engine) on demand, and renders
// results as tables or JSON. Sorting, mapping edits and history live in
// internal packages; commands here only translate flags and format output.
package main
