// Package quill holds suite-wide metadata shared by the CLI.
package quill

// Version is the current Quill release. Bumped manually on tagging.
const Version = "0.3.1"
