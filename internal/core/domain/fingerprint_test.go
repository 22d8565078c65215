package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/brief/internal/core/domain"
)

func files(pairs ...string) []domain.ProjectFile {
	out := make([]domain.ProjectFile, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.ProjectFile{Path: pairs[i], Content: pairs[i+1]})
	}
	return out
}

func TestFingerprint(t *testing.T) {
	base := files("a.ts", "x", "b.ts", "y")

	tests := []struct {
		name        string
		other       []domain.ProjectFile
		withContent bool
		same        bool
	}{
		{name: "identical", other: files("a.ts", "x", "b.ts", "y"), withContent: true, same: true},
		{name: "reordered", other: files("b.ts", "y", "a.ts", "x"), withContent: true, same: false},
		{name: "renamed", other: files("a.ts", "x", "c.ts", "y"), withContent: true, same: false},
		{name: "content changed", other: files("a.ts", "x", "b.ts", "z"), withContent: true, same: false},
		{name: "content ignored", other: files("a.ts", "x", "b.ts", "z"), withContent: false, same: true},
		{name: "file added", other: files("a.ts", "x", "b.ts", "y", "c.ts", ""), withContent: true, same: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := domain.Fingerprint(base, tt.withContent)
			got := domain.Fingerprint(tt.other, tt.withContent)
			if tt.same {
				assert.Equal(t, want, got)
			} else {
				assert.NotEqual(t, want, got)
			}
		})
	}
}

func TestFingerprint_PathBoundaries(t *testing.T) {
	a := domain.Fingerprint(files("ab", "", "c", ""), false)
	b := domain.Fingerprint(files("a", "", "bc", ""), false)
	assert.NotEqual(t, a, b)
}

func TestFingerprint_Format(t *testing.T) {
	fp := domain.Fingerprint(files("a.ts", "x"), true)
	assert.True(t, strings.HasPrefix(fp, "1-"))
	assert.Len(t, fp, len("1-")+16)

	assert.True(t, strings.HasPrefix(domain.Fingerprint(nil, true), "0-"))
}

func TestCacheKey(t *testing.T) {
	key := domain.CacheKey("proj", "graph", "fp")

	assert.True(t, strings.HasPrefix(key, domain.ProjectPrefix("proj")))
	assert.False(t, strings.HasPrefix(domain.CacheKey("proj2", "graph"), domain.ProjectPrefix("proj")))
	assert.NotEqual(t, domain.CacheKey("p", "a", "b"), domain.CacheKey("p", "ab"))
}

func TestHashText(t *testing.T) {
	assert.Equal(t, domain.HashText("fix button"), domain.HashText("fix button"))
	assert.NotEqual(t, domain.HashText("fix button"), domain.HashText("fix buttons"))
	assert.Len(t, domain.HashText(""), 16)
}
