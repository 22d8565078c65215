// Package app implements the application layer for brief.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/brief/internal/adapters/detector"
	"go.trai.ch/brief/internal/adapters/render"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/brief/internal/core/ports"
	"go.trai.ch/brief/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	engine   *orchestrator.Engine
	projects ports.ProjectLoader
	store    ports.SessionStore
	logger   ports.Logger

	stdout io.Writer
	detect func() detector.OutputMode
}

// New creates a new App instance.
func New(
	engine *orchestrator.Engine,
	projects ports.ProjectLoader,
	store ports.SessionStore,
	log ports.Logger,
) *App {
	return &App{
		engine:   engine,
		projects: projects,
		store:    store,
		logger:   log,
		stdout:   os.Stdout,
		detect:   detector.DetectEnvironment,
	}
}

// WithOutput redirects rendered results to w.
// This is primarily used for testing to capture output.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDetector replaces the output environment detection.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// PrepareOptions configuration for the Prepare method.
type PrepareOptions struct {
	Task      string
	TopK      int
	Budget    int
	Full      bool
	Format    string
	Includes  []string
	NoSession bool
}

// Prepare loads the project in dir, restores its session, prepares the context
// for the task and persists the updated session.
func (a *App) Prepare(ctx context.Context, dir string, opts PrepareOptions) error {
	if opts.Task == "" {
		return domain.ErrMissingTask
	}

	renderer, err := a.renderer(opts.Format)
	if err != nil {
		return err
	}

	project, err := a.projects.Load(dir, opts.Includes)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	if !opts.NoSession {
		if err := a.restoreSession(project.ID); err != nil {
			return err
		}
	}

	var engineOpts []orchestrator.Option
	if opts.TopK > 0 {
		engineOpts = append(engineOpts, orchestrator.WithTopK(opts.TopK))
	}
	if opts.Budget > 0 {
		engineOpts = append(engineOpts, orchestrator.WithTokenBudget(opts.Budget))
	}
	if opts.Full {
		engineOpts = append(engineOpts, orchestrator.WithForceFull())
	}

	payload := a.engine.PrepareContext(ctx, project, opts.Task, engineOpts...)

	if !opts.NoSession {
		if err := a.saveSession(project.ID); err != nil {
			return err
		}
	}

	return renderer.Payload(payload)
}

// GraphOptions configuration for the Graph method.
type GraphOptions struct {
	File   string
	Depth  int
	Format string
}

// Graph renders the dependency graph of the project in dir, or a single node
// of it when File is set. A positive Depth recomputes the related files with
// that radius.
func (a *App) Graph(ctx context.Context, dir string, opts GraphOptions) error {
	renderer, err := a.renderer(opts.Format)
	if err != nil {
		return err
	}

	project, err := a.projects.Load(dir, nil)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	graph, err := a.engine.Graph(ctx, project)
	if err != nil {
		if graph == nil {
			return zerr.Wrap(err, "failed to build dependency graph")
		}
		a.logger.Warn("dependency graph is incomplete", "project", project.ID, "error", err)
	}

	nodes := make([]domain.DependencyNode, 0, graph.Len())
	withDepth := func(node *domain.DependencyNode) domain.DependencyNode {
		n := *node
		if opts.Depth > 0 {
			n.Related = graph.Neighborhood(n.File, opts.Depth)
		}
		return n
	}

	if opts.File != "" {
		node, ok := graph.Node(opts.File)
		if !ok {
			return zerr.With(domain.ErrFileNotInGraph, "file", opts.File)
		}
		nodes = append(nodes, withDepth(node))
	} else {
		for node := range graph.Nodes() {
			nodes = append(nodes, withDepth(node))
		}
	}

	return renderer.Graph(nodes)
}

// Classify renders the framework template detected for the project in dir.
func (a *App) Classify(ctx context.Context, dir, format string) error {
	renderer, err := a.renderer(format)
	if err != nil {
		return err
	}

	project, err := a.projects.Load(dir, nil)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	template, err := a.engine.Classify(ctx, project)
	if err != nil {
		return zerr.Wrap(err, "failed to classify project")
	}

	return renderer.Template(template)
}

// Reset forgets the persisted and in-memory session of the project in dir.
func (a *App) Reset(_ context.Context, dir string) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve project root"), "dir", dir)
	}

	if err := a.store.Delete(root, root); err != nil {
		return zerr.Wrap(err, "failed to reset session")
	}
	a.engine.ResetSession(root)

	a.logger.Info("session reset", "project", root)
	return nil
}

// restoreSession loads the persisted session of the project rooted at root.
// The project id is the absolute root path.
func (a *App) restoreSession(root string) error {
	state, err := a.store.Get(root, root)
	if err != nil {
		return zerr.Wrap(err, "failed to load session")
	}
	if state != nil {
		a.engine.RestoreSession(state)
	}
	return nil
}

func (a *App) saveSession(root string) error {
	state, ok := a.engine.Session(root)
	if !ok {
		return nil
	}
	if err := a.store.Put(root, state); err != nil {
		return zerr.Wrap(err, "failed to save session")
	}
	return nil
}

func (a *App) renderer(format string) (ports.Renderer, error) {
	requested, err := detector.ParseMode(format)
	if err != nil {
		return nil, err
	}

	if detector.ResolveMode(a.detect(), requested) == detector.ModeJSON {
		return render.NewJSON(a.stdout), nil
	}
	return render.NewText(a.stdout), nil
}
