package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	r := NewRenderer()
	assert.NotNil(t, r)
	assert.NotNil(t, r.funcMap)
	assert.Empty(t, r.cache)
}

func TestRenderString(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		templateStr string
		data        any
		expected    string
		wantErr     bool
		errContains string
	}{
		{
			name:        "plain text",
			templateStr: "Hello World",
			expected:    "Hello World",
		},
		{
			name:        "struct data",
			templateStr: "Hello, [[ .Name ]]!",
			data:        struct{ Name string }{Name: "Alice"},
			expected:    "Hello, Alice!",
		},
		{
			name:        "twig braces pass through untouched",
			templateStr: "{% for [[ .Var ]] in [[ .Var ]]s %}{{ [[ .Var ]].id }}{% endfor %}",
			data:        struct{ Var string }{Var: "post"},
			expected:    "{% for post in posts %}{{ post.id }}{% endfor %}",
		},
		{
			name:        "syntax error",
			templateStr: "[[ .Name ]",
			wantErr:     true,
			errContains: "parsing skeleton",
		},
		{
			name:        "missing field",
			templateStr: "[[ .NonExistent ]]",
			data:        struct{}{},
			wantErr:     true,
			errContains: "rendering skeleton",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderString(tt.name, tt.templateStr, tt.data)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, string(out))
			}
		})
	}
}

func TestRenderHelpers(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		tmpl     string
		expected string
	}{
		{"[[ lower .Name ]]", "postcomment"},
		{"[[ upper .Name ]]", "POSTCOMMENT"},
		{"[[ lcfirst .Name ]]", "postComment"},
		{"[[ plural .Name ]]", "PostComments"},
		{"[[ snake .Name ]]", "post_comment"},
		{"[[ quote .Name ]]", `"PostComment"`},
		{`[[ replace .Name "Post" "Blog" ]]`, "BlogComment"},
	}

	data := struct{ Name string }{Name: "PostComment"}
	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			out, err := r.RenderString(tt.tmpl, tt.tmpl, data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestCaching(t *testing.T) {
	r := NewRenderer()

	out1, err := r.RenderString("cached", "[[ .Value ]]", map[string]int{"Value": 1})
	require.NoError(t, err)
	assert.Equal(t, "1", string(out1))
	assert.Len(t, r.cache, 1)

	// Second render with the same name ignores the new template text.
	out2, err := r.RenderString("cached", "ignored", map[string]int{"Value": 2})
	require.NoError(t, err)
	assert.Equal(t, "2", string(out2))
	assert.Len(t, r.cache, 1)

	r.ClearCache()
	assert.Empty(t, r.cache)

	out3, err := r.RenderString("cached", "new: [[ .Value ]]", map[string]int{"Value": 3})
	require.NoError(t, err)
	assert.Equal(t, "new: 3", string(out3))
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "postComment", LowerFirst("PostComment"))
	assert.Equal(t, "post", LowerFirst("post"))
	assert.Equal(t, "", LowerFirst(""))
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "PostComment", UpperFirst("postComment"))
	assert.Equal(t, "Post", UpperFirst("Post"))
	assert.Equal(t, "", UpperFirst(""))
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"PostComment", "post_comment"},
		{"postComment", "post_comment"},
		{"post_comment", "post_comment"},
		{"HTTPServer", "http_server"},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}
