package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir loads every {locale}/{namespace}.json file found in fsys.
//
//	en/common.json
//	en/home.json
//	sk/common.json
func WithJSONDir(fsys fs.FS) Option {
	return func(b *builder) error {
		return loadDir(b, fsys, json.Unmarshal, ".json")
	}
}

// WithYAMLDir loads every {locale}/{namespace}.yaml (or .yml) file found in fsys.
func WithYAMLDir(fsys fs.FS) Option {
	return func(b *builder) error {
		return loadDir(b, fsys, yaml.Unmarshal, ".yaml", ".yml")
	}
}

// WithDir loads both JSON and YAML resources from fsys.
func WithDir(fsys fs.FS) Option {
	return func(b *builder) error {
		if err := loadDir(b, fsys, json.Unmarshal, ".json"); err != nil {
			return err
		}
		return loadDir(b, fsys, yaml.Unmarshal, ".yaml", ".yml")
	}
}

func loadDir(b *builder, fsys fs.FS, unmarshal func([]byte, any) error, exts ...string) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExt(filePath, exts) {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a locale directory", ErrInvalidFile, filePath)
		}

		locale := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var translations map[string]any
		if err := unmarshal(data, &translations); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		b.add(locale, namespace, translations)
		return nil
	})
}

func hasExt(filePath string, exts []string) bool {
	ext := strings.ToLower(path.Ext(filePath))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
