package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor file constants. Parse accepts any apiVersion and kind; these
// are what the scaffolder writes.
const (
	APIVersion = "quill/v1"
	KindEntity = "Entity"
)

// Descriptor is the structural description of one entity. The field order
// is the order fields appear in the descriptor file and is preserved into
// generated views.
type Descriptor struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
	Name       string `yaml:"name"` // dotted, e.g. "Blog.Post"
	Spec       Spec   `yaml:"spec"`
}

// Spec holds the entity's field list.
type Spec struct {
	Fields []Field `yaml:"fields"`
}

// Field is a single entity field. Type is a display-level scalar type name;
// Quill never interprets it beyond passing it to skeletons.
type Field struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	PrimaryKey bool   `yaml:"primary_key,omitempty"`
}

// ClassName returns the last segment of the dotted entity name.
// "Blog.Post" → "Post".
func (d *Descriptor) ClassName() string {
	parts := strings.Split(d.Name, ".")
	return parts[len(parts)-1]
}

// Namespace returns the dotted prefix of the entity name, or "" when the
// name has a single segment. "Blog.Post" → "Blog".
func (d *Descriptor) Namespace() string {
	idx := strings.LastIndex(d.Name, ".")
	if idx < 0 {
		return ""
	}
	return d.Name[:idx]
}

// PrimaryKeys returns the names of all primary-key fields, in field order.
func (d *Descriptor) PrimaryKeys() []string {
	var keys []string
	for _, f := range d.Spec.Fields {
		if f.PrimaryKey {
			keys = append(keys, f.Name)
		}
	}
	return keys
}

// DisplayFields returns the fields shown in generated views: every field
// that is not a primary key, in descriptor order.
func (d *Descriptor) DisplayFields() []Field {
	var fields []Field
	for _, f := range d.Spec.Fields {
		if !f.PrimaryKey {
			fields = append(fields, f)
		}
	}
	return fields
}

// Parse reads and decodes a descriptor file.
func Parse(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("invalid descriptor %s: %w", path, err)
	}

	if d.Name == "" {
		return nil, fmt.Errorf("descriptor %s has no entity name", path)
	}

	return &d, nil
}

// DescriptorFileName returns the conventional file name for an entity.
// "Blog.Post" → "blog.post.quill.yml".
func DescriptorFileName(name string) string {
	return strings.ToLower(name) + ".quill.yml"
}

// FindDescriptorFile searches for an entity's descriptor by dotted name.
// Looks in app/entities/ first (convention), then the working directory.
func FindDescriptorFile(name string) (string, error) {
	primary := filepath.Join("app", "entities", DescriptorFileName(name))
	if _, err := os.Stat(primary); err == nil {
		return primary, nil
	}

	fallback := DescriptorFileName(name)
	if _, err := os.Stat(fallback); err == nil {
		return fallback, nil
	}

	return "", fmt.Errorf("descriptor not found for '%s'. Expected in:\n  - %s\n  - %s",
		name, primary, fallback)
}
