package config

import (
	"fmt"
	"os"
	"path/filepath"

	yamlv3 "gopkg.in/yaml.v3"
)

// starterConfig is the shape serialized into a freshly initialized
// convy.yaml. Comments are added around the marshaled document rather than
// per field; the file stays hand-editable.
type starterConfig struct {
	AdditionalTypes             []string `yaml:"additional_types"`
	RequireBreakingChangeFooter bool     `yaml:"require_breaking_change_footer"`
	StrictFooters               bool     `yaml:"strict_footers"`
}

const starterHeader = `# convy configuration
# additional_types extend the built-in commit type allow-list.
`

// WriteStarter writes a starter convy.yaml into dir. It refuses to overwrite
// an existing file unless force is set.
func WriteStarter(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
		if _, err := os.Stat(filepath.Join(dir, FileNameAlt)); err == nil {
			return path, fmt.Errorf("config file already exists: %s (use --force to overwrite)", filepath.Join(dir, FileNameAlt))
		}
	}

	data, err := yamlv3.Marshal(starterConfig{
		AdditionalTypes:             []string{},
		RequireBreakingChangeFooter: true,
		StrictFooters:               false,
	})
	if err != nil {
		return path, fmt.Errorf("failed to render starter config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(starterHeader), data...), 0o644); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
