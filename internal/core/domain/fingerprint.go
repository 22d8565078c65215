package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// keySeparator separates the segments of a cache key. It cannot occur in
// project ids typed by users, so prefixes never collide ("a" vs "ab").
const keySeparator = "\x1f"

// Fingerprint summarises a file collection for cache validation.
// It is a pure function of the file count, the ordered path list and, when
// withContent is set, every file's content.
//
// The result has the form "<count>-<16 hex digits>".
func Fingerprint(files []ProjectFile, withContent bool) string {
	hasher := xxhash.New()

	for i := range files {
		_, _ = hasher.WriteString(files[i].Path)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	if withContent {
		for i := range files {
			_, _ = hasher.WriteString(fmt.Sprintf("%016x", xxhash.Sum64String(files[i].Content)))
			_, _ = hasher.Write([]byte{0})
		}
	}

	return fmt.Sprintf("%d-%016x", len(files), hasher.Sum64())
}

// HashText returns a short stable hash of free text, used to keep task strings
// out of cache keys.
func HashText(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

// CacheKey builds a project-scoped cache key.
func CacheKey(projectID, kind string, parts ...string) string {
	segments := make([]string, 0, len(parts)+2)
	segments = append(segments, projectID, kind)
	segments = append(segments, parts...)
	return strings.Join(segments, keySeparator)
}

// ProjectPrefix returns the prefix shared by every cache key of the project.
func ProjectPrefix(projectID string) string {
	return projectID + keySeparator
}
