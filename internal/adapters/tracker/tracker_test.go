package tracker_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brief/internal/adapters/tracker"
	"go.trai.ch/brief/internal/core/domain"
)

func projectFiles(paths ...string) []domain.ProjectFile {
	files := make([]domain.ProjectFile, len(paths))
	for i, p := range paths {
		files[i] = domain.ProjectFile{ID: p, Path: p}
	}
	return files
}

func newTracker() *tracker.Tracker {
	return tracker.New(domain.DefaultConfig().Tracker)
}

func TestTracker_FirstRequestIsFull(t *testing.T) {
	tr := newTracker()
	files := projectFiles("package.json", "src/App.tsx", "src/utils.ts")

	d := tr.Track("p", files, "add a new util function", false)

	assert.True(t, d.FullContext)
	assert.Equal(t, files, d.Candidates)
	assert.Empty(t, d.ContinuityNote)
	assert.NotEmpty(t, d.SessionID)

	snap, ok := tr.Snapshot("p")
	require.True(t, ok)
	assert.Equal(t, []string{"package.json", "src/App.tsx", "src/utils.ts"}, snap.SeenPaths)
	assert.Equal(t, []string{"add a new util function"}, snap.TaskHistory)
}

func TestTracker_SameTaskIsIncremental(t *testing.T) {
	tr := newTracker()
	files := projectFiles("a.ts", "b.ts")

	first := tr.Track("p", files, "refactor the parser module", false)
	second := tr.Track("p", append(files, projectFiles("c.ts")...), "refactor the parser module", false)

	assert.True(t, first.FullContext)
	assert.False(t, second.FullContext)
	assert.InDelta(t, 1.0, second.Similarity, 1e-9)
	assert.Equal(t, projectFiles("c.ts"), second.Candidates)
	assert.Equal(t, "Previously shown files: a.ts, b.ts.", second.ContinuityNote)
	assert.Equal(t, first.SessionID, second.SessionID)
}

func TestTracker_ChangedTaskIsFullWithoutNote(t *testing.T) {
	tr := newTracker()
	files := projectFiles("a.ts", "b.ts")

	tr.Track("p", files, "refactor the parser module", false)
	d := tr.Track("p", files, "update styling of the navigation header", false)

	assert.True(t, d.FullContext)
	assert.Equal(t, files, d.Candidates)
	assert.Empty(t, d.ContinuityNote)

	snap, _ := tr.Snapshot("p")
	assert.Equal(t, []string{"a.ts", "b.ts"}, snap.SeenPaths, "seen history is kept on task change")
}

func TestTracker_EmptyTaskForcesFull(t *testing.T) {
	tr := newTracker()
	files := projectFiles("a.ts")

	tr.Track("p", files, "", false)
	d := tr.Track("p", files, "", false)

	assert.True(t, d.FullContext)
	assert.Zero(t, d.Similarity)
}

func TestTracker_ForceFull(t *testing.T) {
	tr := newTracker()
	files := projectFiles("a.ts")

	tr.Track("p", files, "refactor the parser module", false)
	d := tr.Track("p", files, "refactor the parser module", true)

	assert.True(t, d.FullContext)
	assert.Equal(t, files, d.Candidates)
}

func TestTracker_HistoryIsBounded(t *testing.T) {
	tr := newTracker()
	for i := range 8 {
		tr.Track("p", nil, fmt.Sprintf("task number %d", i), false)
	}

	snap, ok := tr.Snapshot("p")
	require.True(t, ok)
	assert.Equal(t, []string{
		"task number 3", "task number 4", "task number 5", "task number 6", "task number 7",
	}, snap.TaskHistory)
}

func TestTracker_NoteLimit(t *testing.T) {
	tr := newTracker()
	var paths []string
	for i := range 13 {
		paths = append(paths, fmt.Sprintf("f%02d.ts", i))
	}

	tr.Track("p", projectFiles(paths...), "rename handler functions", false)
	d := tr.Track("p", projectFiles(paths...), "rename handler functions", false)

	assert.False(t, d.FullContext)
	assert.Empty(t, d.Candidates)
	assert.Equal(t,
		"Previously shown files: f00.ts, f01.ts, f02.ts, f03.ts, f04.ts, f05.ts, f06.ts, f07.ts, f08.ts, f09.ts and 3 more.",
		d.ContinuityNote)
}

func TestTracker_ResetStartsNewSession(t *testing.T) {
	tr := newTracker()
	files := projectFiles("a.ts")

	first := tr.Track("p", files, "refactor the parser module", false)
	tr.Reset("p")

	_, ok := tr.Snapshot("p")
	assert.False(t, ok)

	d := tr.Track("p", files, "refactor the parser module", false)
	assert.True(t, d.FullContext)
	assert.NotEqual(t, first.SessionID, d.SessionID)
}

func TestTracker_ProjectsAreIsolated(t *testing.T) {
	tr := newTracker()

	tr.Track("a", projectFiles("x.ts"), "refactor the parser module", false)
	d := tr.Track("b", projectFiles("x.ts"), "refactor the parser module", false)

	assert.True(t, d.FullContext)
}

func TestTracker_SnapshotRestore(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tr := tracker.New(domain.DefaultConfig().Tracker, tracker.WithClock(func() time.Time { return at }))
	tr.Track("p", projectFiles("b.ts", "a.ts"), "refactor the parser module", false)

	snap, ok := tr.Snapshot("p")
	require.True(t, ok)
	assert.Equal(t, at, snap.UpdatedAt)

	restored := newTracker()
	restored.Restore(snap)

	d := restored.Track("p", projectFiles("a.ts", "b.ts", "c.ts"), "refactor the parser module", false)
	assert.False(t, d.FullContext)
	assert.Equal(t, snap.SessionID, d.SessionID)
	assert.Equal(t, projectFiles("c.ts"), d.Candidates)
}

func TestTracker_RestoreNil(t *testing.T) {
	tr := newTracker()
	tr.Restore(nil)

	_, ok := tr.Snapshot("")
	assert.False(t, ok)
}
