package domain

// TemplateNone is the template name reported when no catalog entry matches.
const TemplateNone = "none"

// PredicateRef references a named predicate of the classifier registry together
// with its arguments.
type PredicateRef struct {
	Name string   `yaml:"predicate" json:"predicate"`
	Args []string `yaml:"args" json:"args"`
}

// DetectorSpec is the declarative detector of a template.
// It matches when every All predicate holds and, if Any is non-empty, at least
// one Any predicate holds. An empty detector never matches.
type DetectorSpec struct {
	All []PredicateRef `yaml:"all,omitempty" json:"all,omitempty"`
	Any []PredicateRef `yaml:"any,omitempty" json:"any,omitempty"`
}

// IsEmpty reports whether the detector has no predicates at all.
func (d DetectorSpec) IsEmpty() bool {
	return len(d.All) == 0 && len(d.Any) == 0
}

// FrameworkTemplate is a named bundle of structural conventions associated with
// a recognizable project style. Catalog entries are read-only.
type FrameworkTemplate struct {
	Name         string       `yaml:"name" json:"name"`
	DisplayName  string       `yaml:"display_name" json:"display_name"`
	Detector     DetectorSpec `yaml:"detect" json:"detect"`
	KeyFiles     []string     `yaml:"key_files" json:"key_files"`
	PriorityDirs []string     `yaml:"priority_dirs" json:"priority_dirs"`
	Patterns     []string     `yaml:"patterns" json:"patterns"`
	Practices    []string     `yaml:"practices" json:"practices"`
}

// TemplateName returns the template's name, or TemplateNone for nil.
func TemplateName(t *FrameworkTemplate) string {
	if t == nil {
		return TemplateNone
	}
	return t.Name
}
