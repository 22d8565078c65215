package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrProjectLoadFailed is returned when the project directory cannot be read.
	ErrProjectLoadFailed = zerr.New("failed to load project")

	// ErrProjectNotDirectory is returned when the project root is not a directory.
	ErrProjectNotDirectory = zerr.New("project root is not a directory")

	// ErrInvalidIncludePattern is returned when an include glob is malformed.
	ErrInvalidIncludePattern = zerr.New("invalid include pattern")

	// ErrStoreCreateFailed is returned when the session store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create session store directory")

	// ErrStoreReadFailed is returned when the session file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read sessions")

	// ErrStoreUnmarshalFailed is returned when the session file cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal sessions")

	// ErrStoreMarshalFailed is returned when the sessions cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal sessions")

	// ErrStoreWriteFailed is returned when the session file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write sessions")

	// ErrCatalogParseFailed is returned when a template catalog cannot be parsed.
	ErrCatalogParseFailed = zerr.New("failed to parse template catalog")

	// ErrUnknownPredicate is returned when a catalog references an unregistered predicate.
	ErrUnknownPredicate = zerr.New("unknown detector predicate")

	// ErrDuplicateTemplate is returned when a catalog declares a template name twice.
	ErrDuplicateTemplate = zerr.New("duplicate template name")

	// ErrCollaboratorFailed is returned when a pipeline stage fails.
	ErrCollaboratorFailed = zerr.New("context collaborator failed")

	// ErrNilGraph is returned when a graph builder reports success without a graph.
	ErrNilGraph = zerr.New("graph builder returned no graph")

	// ErrCollaboratorPanicked is returned when a pipeline stage panics.
	ErrCollaboratorPanicked = zerr.New("context collaborator panicked")

	// ErrFileNotInGraph is returned when a graph query names a file outside the project.
	ErrFileNotInGraph = zerr.New("file not in dependency graph")

	// ErrMissingTask is returned when prepare is invoked without a task.
	ErrMissingTask = zerr.New("task description is required")
)
