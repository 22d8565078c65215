package domain

import (
	"slices"
	"time"
)

// SessionState is the tracker's record of one project conversation.
type SessionState struct {
	ProjectID   string    `json:"project_id"`
	SessionID   string    `json:"session_id"`
	SeenPaths   []string  `json:"seen_paths"`
	TaskHistory []string  `json:"task_history"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the state.
func (s *SessionState) Clone() *SessionState {
	if s == nil {
		return nil
	}
	out := *s
	out.SeenPaths = slices.Clone(s.SeenPaths)
	out.TaskHistory = slices.Clone(s.TaskHistory)
	return &out
}

// LastTask returns the most recently tracked task and whether one exists.
func (s *SessionState) LastTask() (string, bool) {
	if s == nil || len(s.TaskHistory) == 0 {
		return "", false
	}
	return s.TaskHistory[len(s.TaskHistory)-1], true
}

// TrackDecision is the tracker's answer for one turn.
type TrackDecision struct {
	FullContext    bool
	Candidates     []ProjectFile
	ContinuityNote string
	SessionID      string
	Similarity     float64
}
