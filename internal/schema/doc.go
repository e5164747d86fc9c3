// Package schema defines the entity descriptor Quill generates from: the
// entity's dotted name, its ordered field list, and its primary-key marking.
// Descriptors live in .quill.yml files and are read-only once parsed.
package schema
