package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorNames(t *testing.T) {
	tests := []struct {
		name      string
		class     string
		namespace string
	}{
		{"Post", "Post", ""},
		{"Blog.Post", "Post", "Blog"},
		{"Shop.Catalog.Item", "Item", "Shop.Catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Descriptor{Name: tt.name}
			assert.Equal(t, tt.class, d.ClassName())
			assert.Equal(t, tt.namespace, d.Namespace())
		})
	}
}

func TestDescriptorFields(t *testing.T) {
	d := &Descriptor{
		Name: "Blog.Post",
		Spec: Spec{Fields: []Field{
			{Name: "id", Type: "integer", PrimaryKey: true},
			{Name: "title", Type: "string"},
			{Name: "body", Type: "text"},
		}},
	}

	assert.Equal(t, []string{"id"}, d.PrimaryKeys())

	display := d.DisplayFields()
	require.Len(t, display, 2)
	assert.Equal(t, "title", display[0].Name)
	assert.Equal(t, "body", display[1].Name)
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog.post.quill.yml")

	content := `apiVersion: quill/v1
kind: Entity
name: Blog.Post
spec:
    fields:
        - name: id
          type: integer
          primary_key: true
        - name: title
          type: string
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "Blog.Post", d.Name)
	assert.Equal(t, "Post", d.ClassName())
	require.Len(t, d.Spec.Fields, 2)
	assert.True(t, d.Spec.Fields[0].PrimaryKey)
	assert.Equal(t, "title", d.Spec.Fields[1].Name)
}

func TestParse_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Parse(filepath.Join(dir, "missing.quill.yml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.quill.yml")
	require.NoError(t, os.WriteFile(bad, []byte(":\tnot yaml"), 0644))
	_, err = Parse(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid descriptor")

	unnamed := filepath.Join(dir, "unnamed.quill.yml")
	require.NoError(t, os.WriteFile(unnamed, []byte("kind: Entity\n"), 0644))
	_, err = Parse(unnamed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entity name")
}

func TestDescriptorFileName(t *testing.T) {
	assert.Equal(t, "blog.post.quill.yml", DescriptorFileName("Blog.Post"))
	assert.Equal(t, "post.quill.yml", DescriptorFileName("Post"))
}
