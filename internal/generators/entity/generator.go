// Package entity scaffolds entity descriptor files from command-line
// field specifications.
package entity

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quillgen/quill/internal/gen"
	"github.com/quillgen/quill/internal/schema"
	"gopkg.in/yaml.v3"
)

// Options configures one descriptor scaffold.
type Options struct {
	Name   string // dotted entity name, e.g. "Blog.Post"
	Fields []schema.Field
}

// Generator scaffolds entity descriptors.
type Generator struct{}

// New creates an entity descriptor generator.
func New() *Generator {
	return &Generator{}
}

// Generate stages a descriptor file under app/entities/. An "id" primary
// key field is prepended unless the field specs already declare one. The
// write is create-only; an existing descriptor fails validation.
func (g *Generator) Generate(opts Options) ([]gen.Operation, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("entity name is required")
	}
	for _, seg := range strings.Split(opts.Name, ".") {
		if seg == "" {
			return nil, fmt.Errorf("invalid entity name %q: empty segment", opts.Name)
		}
	}

	fields := opts.Fields
	if !hasPrimaryKey(fields) {
		fields = append([]schema.Field{{Name: "id", Type: "integer", PrimaryKey: true}}, fields...)
	}

	d := &schema.Descriptor{
		APIVersion: schema.APIVersion,
		Kind:       schema.KindEntity,
		Name:       opts.Name,
		Spec:       schema.Spec{Fields: fields},
	}
	if err := schema.Validate(d); err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding descriptor: %w", err)
	}

	path := filepath.Join("app", "entities", schema.DescriptorFileName(opts.Name))

	return []gen.Operation{
		&gen.WriteFileOp{Path: path, Content: data, Mode: 0644},
	}, nil
}

func hasPrimaryKey(fields []schema.Field) bool {
	for _, f := range fields {
		if f.PrimaryKey {
			return true
		}
	}
	return false
}
