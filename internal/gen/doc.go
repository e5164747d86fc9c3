// Package gen is Quill's file-generation toolkit: staged filesystem
// operations with two-phase validate/execute semantics, a cached template
// renderer, and conflict-resolution helpers for the CLI.
//
// Generators build a slice of Operation values without touching the
// filesystem, then hand them to Execute. All operations are validated before
// the first write, so a collision surfaces while the target tree is still
// untouched. Execution failures after that point leave earlier writes in
// place; completed operations are reported one per line on the configured
// writer so callers know exactly what exists on disk.
package gen
