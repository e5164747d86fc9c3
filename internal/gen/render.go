package gen

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"
	"text/template"
	"unicode"

	"github.com/quillgen/quill/internal/schema"
)

// Skeleton actions use [[ ]] delimiters so skeletons can emit {{ }} syntax
// (Twig, Go templates) without escaping.
const (
	leftDelim  = "[["
	rightDelim = "]]"
)

// Renderer parses and executes skeleton templates, caching parsed templates
// so repeated renders of the same skeleton stay cheap.
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex
}

// NewRenderer creates a renderer with the built-in helper functions.
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: skeletonFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderFS renders a skeleton from an embedded filesystem.
func (r *Renderer) RenderFS(fsys embed.FS, path string, data any) ([]byte, error) {
	if tmpl := r.cached("fs", path); tmpl != nil {
		return r.execute(tmpl, data)
	}

	raw, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skeleton '%s': %w", path, err)
	}
	return r.parseAndRender("fs", path, string(raw), data)
}

// RenderFile renders a skeleton from a path on disk (for user overrides).
func (r *Renderer) RenderFile(path string, data any) ([]byte, error) {
	if tmpl := r.cached("file", path); tmpl != nil {
		return r.execute(tmpl, data)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skeleton file '%s': %w", path, err)
	}
	return r.parseAndRender("file", path, string(raw), data)
}

// RenderString renders a skeleton supplied as a string. The name is used
// for caching and error messages.
func (r *Renderer) RenderString(name, text string, data any) ([]byte, error) {
	if tmpl := r.cached("string", name); tmpl != nil {
		return r.execute(tmpl, data)
	}
	return r.parseAndRender("string", name, text, data)
}

// ClearCache drops all cached templates. Useful in tests.
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

func (r *Renderer) cached(kind, name string) *template.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cache[kind+":"+name]
}

func (r *Renderer) parseAndRender(kind, name, text string, data any) ([]byte, error) {
	tmpl, err := template.New(name).Delims(leftDelim, rightDelim).Funcs(r.funcMap).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing skeleton '%s': %w", name, err)
	}

	r.mu.Lock()
	r.cache[kind+":"+name] = tmpl
	r.mu.Unlock()

	return r.execute(tmpl, data)
}

func (r *Renderer) execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering skeleton '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// skeletonFuncMap returns the helpers available inside skeletons.
func skeletonFuncMap() template.FuncMap {
	return template.FuncMap{
		"lower":   strings.ToLower,
		"upper":   strings.ToUpper,
		"lcfirst": LowerFirst,
		"ucfirst": UpperFirst,
		"plural":  schema.Pluralize,
		"snake":   SnakeCase,
		"quote":   func(s string) string { return fmt.Sprintf("%q", s) },
		"replace": strings.ReplaceAll,
		"join":    strings.Join,
	}
}

// LowerFirst lowercases the first rune. PostComment → postComment.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// UpperFirst uppercases the first rune. postComment → PostComment.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// SnakeCase converts PascalCase or camelCase to snake_case, keeping acronym
// runs together. PostComment → post_comment, HTTPServer → http_server.
func SnakeCase(s string) string {
	if strings.Contains(s, "_") {
		return strings.ToLower(s)
	}

	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			nextLower := i+1 < len(s) && unicode.IsLower(rune(s[i+1]))
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
