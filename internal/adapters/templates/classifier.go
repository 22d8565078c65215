package templates

import (
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/zerr"
)

// Classifier implements ports.Classifier.
type Classifier struct {
	templates []domain.FrameworkTemplate
	registry  *Registry
}

// New creates a Classifier over templates, evaluated in order.
func New(templates []domain.FrameworkTemplate, registry *Registry) *Classifier {
	return &Classifier{templates: templates, registry: registry}
}

// NewDefault creates a Classifier over the embedded catalog.
func NewDefault() *Classifier {
	return New(DefaultCatalog(), DefaultRegistry())
}

// Templates returns the catalog in evaluation order.
func (c *Classifier) Templates() []domain.FrameworkTemplate {
	return c.templates
}

// Classify returns a copy of the first template whose detector matches files,
// or nil when none does.
func (c *Classifier) Classify(files []domain.ProjectFile) (*domain.FrameworkTemplate, error) {
	fs := NewFileSet(files)
	for i := range c.templates {
		ok, err := c.matches(&c.templates[i].Detector, fs)
		if err != nil {
			return nil, zerr.With(err, "template", c.templates[i].Name)
		}
		if ok {
			t := c.templates[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (c *Classifier) matches(d *domain.DetectorSpec, fs *FileSet) (bool, error) {
	if d.IsEmpty() {
		return false, nil
	}

	for _, ref := range d.All {
		ok, err := c.eval(ref, fs)
		if err != nil || !ok {
			return false, err
		}
	}

	if len(d.Any) == 0 {
		return true, nil
	}
	for _, ref := range d.Any {
		ok, err := c.eval(ref, fs)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (c *Classifier) eval(ref domain.PredicateRef, fs *FileSet) (bool, error) {
	p, ok := c.registry.Lookup(ref.Name)
	if !ok {
		return false, zerr.With(domain.ErrUnknownPredicate, "predicate", ref.Name)
	}
	return p(fs, ref.Args), nil
}
