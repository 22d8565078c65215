package domain

import "path/filepath"

const (
	// BriefDirName is the name of the per-project metadata directory.
	BriefDirName = ".brief"

	// SessionsFileName is the name of the tracker session file.
	SessionsFileName = "sessions.json"

	// ConfigFileName is the name of the engine configuration file.
	ConfigFileName = "brief.yaml"

	// ConfigEnvVar overrides the configuration file location.
	ConfigEnvVar = "BRIEF_CONFIG"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultBriefPath returns the default root directory for brief metadata.
func DefaultBriefPath() string {
	return BriefDirName
}

// DefaultSessionsPath returns the default path of the session file.
// It joins .brief and sessions.json.
func DefaultSessionsPath() string {
	return filepath.Join(BriefDirName, SessionsFileName)
}
