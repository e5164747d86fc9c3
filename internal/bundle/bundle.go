// Package bundle models the target project tree Quill generates into and
// loads its description from the quill.yml project file.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Bundle is the project root that owns generated files. Read-only to the
// generation pipeline.
type Bundle struct {
	Name      string // display name, e.g. "AppBundle"
	Namespace string // source namespace, e.g. "App"
	Path      string // filesystem root the artifacts are written under
}

// Config is everything quill.yml carries: the bundle plus generation
// defaults.
type Config struct {
	Bundle        Bundle
	DefaultFormat string // routing format used when --format is not given
}

// Load reads quill.yml from dir and returns the project configuration.
// Missing optional keys fall back to conventions; a missing file is an
// error since every quill command runs inside a project.
func Load(dir string) (*Config, error) {
	if _, err := os.Stat(filepath.Join(dir, "quill.yml")); os.IsNotExist(err) {
		return nil, fmt.Errorf("not in a Quill project (no quill.yml in %s)", dir)
	}

	v := viper.New()
	v.SetConfigName("quill")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("bundle.name", "AppBundle")
	v.SetDefault("bundle.namespace", "App")
	v.SetDefault("bundle.path", "src/AppBundle")
	v.SetDefault("defaults.format", "yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading quill.yml: %w", err)
	}

	cfg := &Config{
		Bundle: Bundle{
			Name:      v.GetString("bundle.name"),
			Namespace: v.GetString("bundle.namespace"),
			Path:      v.GetString("bundle.path"),
		},
		DefaultFormat: v.GetString("defaults.format"),
	}

	// Bundle paths in quill.yml are project-relative.
	if !filepath.IsAbs(cfg.Bundle.Path) {
		cfg.Bundle.Path = filepath.Join(dir, cfg.Bundle.Path)
	}

	return cfg, nil
}
