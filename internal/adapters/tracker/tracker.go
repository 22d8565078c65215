// Package tracker decides, per project conversation, whether a turn needs the
// full file set or only the files not yet shown.
package tracker

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/brief/internal/core/domain"
)

type projectState struct {
	sessionID string
	seen      map[string]struct{}
	history   []string
	updatedAt time.Time
}

// Tracker implements ports.SessionTracker.
type Tracker struct {
	mu       sync.Mutex
	projects map[string]*projectState

	threshold    float64
	historyLimit int
	noteLimit    int
	now          func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the wall clock used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates a Tracker from the tracker configuration.
func New(cfg domain.TrackerConfig, opts ...Option) *Tracker {
	t := &Tracker{
		projects:     make(map[string]*projectState),
		threshold:    cfg.SimilarityThreshold,
		historyLimit: max(cfg.HistoryLimit, 1),
		noteLimit:    cfg.NoteFileLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Track decides the context mode for one turn and records it.
func (t *Tracker) Track(projectID string, files []domain.ProjectFile, task string, forceFull bool) domain.TrackDecision {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.projects[projectID]
	if !ok {
		state = &projectState{
			sessionID: uuid.NewString(),
			seen:      make(map[string]struct{}),
		}
		t.projects[projectID] = state
	}

	decision := domain.TrackDecision{SessionID: state.sessionID}

	if last, hasLast := lastTask(state); ok && hasLast {
		decision.Similarity = Similarity(task, last)
	}

	switch {
	case !ok, forceFull, decision.Similarity < t.threshold:
		decision.FullContext = true
		decision.Candidates = slices.Clone(files)
	default:
		decision.ContinuityNote = t.continuityNote(state)
		for i := range files {
			if _, shown := state.seen[files[i].Path]; !shown {
				decision.Candidates = append(decision.Candidates, files[i])
			}
		}
	}

	state.history = append(state.history, task)
	if over := len(state.history) - t.historyLimit; over > 0 {
		state.history = slices.Delete(state.history, 0, over)
	}
	for i := range decision.Candidates {
		state.seen[decision.Candidates[i].Path] = struct{}{}
	}
	state.updatedAt = t.now()

	return decision
}

func lastTask(state *projectState) (string, bool) {
	if len(state.history) == 0 {
		return "", false
	}
	return state.history[len(state.history)-1], true
}

func (t *Tracker) continuityNote(state *projectState) string {
	if len(state.seen) == 0 {
		return ""
	}

	paths := sortedKeys(state.seen)
	shown := paths
	if len(shown) > t.noteLimit {
		shown = shown[:t.noteLimit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Previously shown files: %s", strings.Join(shown, ", "))
	if rest := len(paths) - len(shown); rest > 0 {
		fmt.Fprintf(&b, " and %d more", rest)
	}
	b.WriteString(".")
	return b.String()
}

// Reset forgets the project's session.
func (t *Tracker) Reset(projectID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.projects, projectID)
}

// Snapshot returns a copy of the project's session state.
func (t *Tracker) Snapshot(projectID string) (*domain.SessionState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.projects[projectID]
	if !ok {
		return nil, false
	}

	return &domain.SessionState{
		ProjectID:   projectID,
		SessionID:   state.sessionID,
		SeenPaths:   sortedKeys(state.seen),
		TaskHistory: slices.Clone(state.history),
		UpdatedAt:   state.updatedAt,
	}, true
}

// Restore replaces the project's session state with s.
func (t *Tracker) Restore(s *domain.SessionState) {
	if s == nil {
		return
	}

	state := &projectState{
		sessionID: s.SessionID,
		seen:      make(map[string]struct{}, len(s.SeenPaths)),
		history:   slices.Clone(s.TaskHistory),
		updatedAt: s.UpdatedAt,
	}
	if state.sessionID == "" {
		state.sessionID = uuid.NewString()
	}
	for _, p := range s.SeenPaths {
		state.seen[p] = struct{}{}
	}
	if over := len(state.history) - t.historyLimit; over > 0 {
		state.history = state.history[over:]
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.projects[s.ProjectID] = state
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
