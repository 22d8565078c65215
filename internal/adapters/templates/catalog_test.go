package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brief/internal/adapters/templates"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := templates.DefaultCatalog()
	require.NotEmpty(t, catalog)

	index := map[string]int{}
	for i, tpl := range catalog {
		index[tpl.Name] = i
		assert.False(t, tpl.Detector.IsEmpty(), "template %s has no detector", tpl.Name)
		assert.NotEmpty(t, tpl.DisplayName, tpl.Name)
		assert.NotEmpty(t, tpl.KeyFiles, tpl.Name)
	}

	assert.Less(t, index["nextjs"], index["react"], "specific templates come first")
	assert.Less(t, index["react-vite"], index["react"])
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
templates:
  - name: docs
    display_name: Docs
    detect:
      all:
        - predicate: has_dir
          args: [docs]
    key_files: [mkdocs.yml]
`)

	got, err := templates.ParseCatalog(data, templates.DefaultRegistry())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "docs", got[0].Name)
	assert.Equal(t, []domain.PredicateRef{{Name: "has_dir", Args: []string{"docs"}}}, got[0].Detector.All)
}

func TestParseCatalog_UnknownPredicate(t *testing.T) {
	data := []byte(`
templates:
  - name: bad
    detect:
      any:
        - predicate: has_magic
`)

	_, err := templates.ParseCatalog(data, templates.DefaultRegistry())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownPredicate.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "has_magic", zErr.Metadata()["predicate"])
	assert.Equal(t, "bad", zErr.Metadata()["template"])
}

func TestParseCatalog_Duplicate(t *testing.T) {
	data := []byte(`
templates:
  - name: a
  - name: a
`)

	_, err := templates.ParseCatalog(data, templates.DefaultRegistry())
	assert.ErrorContains(t, err, domain.ErrDuplicateTemplate.Error())
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, err := templates.ParseCatalog([]byte("templates: ["), templates.DefaultRegistry())
	assert.ErrorContains(t, err, domain.ErrCatalogParseFailed.Error())
}
