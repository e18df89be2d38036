package templates

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteCatalog saves a catalog to a YAML file, e.g. to seed a custom
// catalog from the builtin one.
func WriteCatalog(c *Catalog, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadCatalog loads a catalog from a YAML file and fills empty
// expression slots with the neutral fragment so every template exposes
// the full expression set.
func ReadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	for i := range c.Characters {
		t := &c.Characters[i]
		if t.Expressions == nil {
			t.Expressions = make(map[string]string, len(ExpressionNames))
		}
		neutral := t.Expressions["neutral"]
		for _, name := range ExpressionNames {
			if t.Expressions[name] == "" {
				t.Expressions[name] = neutral
			}
		}
	}

	return &c, nil
}
