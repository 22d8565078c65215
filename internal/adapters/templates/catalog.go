// Package templates classifies a project against a declarative catalog of
// framework templates.
package templates

import (
	_ "embed"

	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Templates []domain.FrameworkTemplate `yaml:"templates"`
}

// ParseCatalog decodes a YAML catalog and checks every predicate reference
// against reg.
func ParseCatalog(data []byte, reg *Registry) ([]domain.FrameworkTemplate, error) {
	var catalog catalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCatalogParseFailed.Error())
	}

	names := make(map[string]struct{}, len(catalog.Templates))
	for i := range catalog.Templates {
		t := &catalog.Templates[i]
		if _, dup := names[t.Name]; dup {
			return nil, zerr.With(domain.ErrDuplicateTemplate, "template", t.Name)
		}
		names[t.Name] = struct{}{}

		if err := validateDetector(t, reg); err != nil {
			return nil, err
		}
	}

	return catalog.Templates, nil
}

func validateDetector(t *domain.FrameworkTemplate, reg *Registry) error {
	refs := append(append([]domain.PredicateRef{}, t.Detector.All...), t.Detector.Any...)
	for _, ref := range refs {
		if _, ok := reg.Lookup(ref.Name); !ok {
			err := zerr.With(domain.ErrUnknownPredicate, "template", t.Name)
			return zerr.With(err, "predicate", ref.Name)
		}
	}
	return nil
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() []domain.FrameworkTemplate {
	templates, err := ParseCatalog(defaultCatalog, DefaultRegistry())
	if err != nil {
		panic(err)
	}
	return templates
}
