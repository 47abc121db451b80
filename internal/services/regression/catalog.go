package regression

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"techangel/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalog map[domain.ModelName]domain.ModelInfo

var loadCatalog = sync.OnceValues(func() (catalog, error) {
	return parseCatalog(catalogYAML)
})

func parseCatalog(b []byte) (catalog, error) {
	var entries []domain.ModelInfo
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse model catalog: %w", err)
	}
	c := make(catalog, len(entries))
	for _, e := range entries {
		if _, ok := curves[e.Name]; !ok {
			return nil, fmt.Errorf("model catalog: %w: %q", ErrUnknownModel, e.Name)
		}
		c[e.Name] = e
	}
	for _, name := range order {
		if _, ok := c[name]; !ok {
			return nil, fmt.Errorf("model catalog: missing %q", name)
		}
	}
	return c, nil
}
