package commands

import (
	"fmt"
	"strings"

	"github.com/quillgen/quill/internal/schema"
)

// parseFields parses name:type[:primary] specifications from the command
// line into descriptor fields.
func parseFields(fieldArgs []string) ([]schema.Field, error) {
	var fields []schema.Field

	for _, arg := range fieldArgs {
		parts := strings.Split(arg, ":")
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid field format: %s (expected name:type[:primary])", arg)
		}

		field := schema.Field{
			Name: parts[0],
			Type: parts[1],
		}

		if field.Name == "" || field.Type == "" {
			return nil, fmt.Errorf("invalid field format: %s (empty name or type)", arg)
		}

		if len(parts) == 3 {
			if parts[2] != "primary" {
				return nil, fmt.Errorf("invalid modifier: %s (valid: primary)", parts[2])
			}
			field.PrimaryKey = true
		} else if len(parts) > 3 {
			return nil, fmt.Errorf("invalid field format: %s (too many colons)", arg)
		}

		fields = append(fields, field)
	}

	return fields, nil
}

// defaultRoutePrefix derives a URL prefix from a dotted entity name.
// "Blog.Post" → "blog_post".
func defaultRoutePrefix(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, ".", "_"))
}

// trimRoutePrefix strips the slashes users habitually include.
func trimRoutePrefix(prefix string) string {
	return strings.Trim(prefix, "/")
}
