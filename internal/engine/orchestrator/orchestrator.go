// Package orchestrator composes the context engine collaborators into one
// payload per conversational turn.
package orchestrator

import (
	"context"
	"fmt"
	"strconv"

	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/brief/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const (
	keyTemplate = "template"
	keyGraph    = "graph"
	keyRank     = "rank"
	keyTrack    = "track"
)

// Engine prepares context payloads. One Engine owns the cache and tracker state
// of every project it sees; it is safe for concurrent use across projects.
type Engine struct {
	cache      ports.Cache
	tracker    ports.SessionTracker
	graph      ports.GraphBuilder
	classifier ports.Classifier
	scorer     ports.Scorer
	chunker    ports.Chunker
	logger     ports.Logger
	tracer     ports.Tracer
	cfg        domain.EngineConfig

	flight singleflight.Group
}

// New creates an Engine from its collaborators.
func New(
	cache ports.Cache,
	tracker ports.SessionTracker,
	graph ports.GraphBuilder,
	classifier ports.Classifier,
	scorer ports.Scorer,
	chunker ports.Chunker,
	logger ports.Logger,
	tracer ports.Tracer,
	cfg domain.EngineConfig,
) *Engine {
	return &Engine{
		cache:      cache,
		tracker:    tracker,
		graph:      graph,
		classifier: classifier,
		scorer:     scorer,
		chunker:    chunker,
		logger:     logger,
		tracer:     tracer,
		cfg:        cfg,
	}
}

// PrepareContext runs one turn for project and task. It never fails: collaborator
// errors and panics are logged and the payload falls back to the unranked
// candidate set with Degraded set.
func (e *Engine) PrepareContext(
	ctx context.Context,
	project *domain.Project,
	task string,
	opts ...Option,
) *domain.ContextPayload {
	o := e.options(opts)
	if project == nil {
		project = &domain.Project{}
	}

	ctx, span := e.tracer.Start(ctx, "PrepareContext", ports.WithAttributes(map[string]any{
		"project": project.ID,
		"files":   len(project.Files),
	}))
	defer span.End()

	files := withLanguages(project.Files)
	fingerprint := domain.Fingerprint(files, e.cfg.Context.FingerprintContent)

	decision, trackErr := e.track(project.ID, files, task, o.forceFull)

	payload := &domain.ContextPayload{
		ProjectID:      project.ID,
		SessionID:      decision.SessionID,
		SelectedFiles:  []domain.SelectedFile{},
		TemplateName:   domain.TemplateNone,
		ContinuityNote: decision.ContinuityNote,
		IsFullContext:  decision.FullContext,
		Fingerprint:    fingerprint,
	}

	degrade := func(stage string, err error) {
		payload.Degraded = true
		span.RecordError(err)
		e.logger.Warn("continuing with reduced context", "stage", stage, "project", project.ID, "error", err)
	}

	if trackErr != nil {
		degrade(keyTrack, trackErr)
	}

	template, err := e.classify(ctx, project.ID, fingerprint, files)
	if err != nil {
		degrade(keyTemplate, err)
	}
	payload.Template = template
	payload.TemplateName = domain.TemplateName(template)

	graph, err := e.buildGraph(ctx, project.ID, fingerprint, files)
	if err != nil {
		degrade(keyGraph, err)
	}

	ranked, err := e.rank(ctx, project.ID, task, decision.Candidates, o.topK)
	if err != nil {
		degrade(keyRank, err)
		ranked = unranked(decision.Candidates)
	}

	selected := make([]domain.SelectedFile, 0, len(ranked))
	for i := range ranked {
		file, err := e.selectFile(ctx, &ranked[i], graph)
		if err != nil {
			degrade("chunk", err)
		}
		selected = append(selected, file)
	}

	payload.SelectedFiles, payload.Omitted, payload.TokenEstimate = applyBudget(selected, o.tokenBudget)

	span.SetAttribute("full_context", payload.IsFullContext)
	span.SetAttribute("selected", len(payload.SelectedFiles))
	span.SetAttribute("template", payload.TemplateName)
	span.SetAttribute("tokens", payload.TokenEstimate)
	span.SetAttribute("degraded", payload.Degraded)

	return payload
}

// Graph returns the dependency graph of the project, served from cache when
// the file set is unchanged.
func (e *Engine) Graph(ctx context.Context, project *domain.Project) (*domain.DependencyGraph, error) {
	files := withLanguages(project.Files)
	return e.buildGraph(ctx, project.ID, domain.Fingerprint(files, e.cfg.Context.FingerprintContent), files)
}

// Classify returns the matching template of the project or nil.
func (e *Engine) Classify(ctx context.Context, project *domain.Project) (*domain.FrameworkTemplate, error) {
	files := withLanguages(project.Files)
	return e.classify(ctx, project.ID, domain.Fingerprint(files, e.cfg.Context.FingerprintContent), files)
}

// Invalidate drops every cached result of the project and returns how many
// entries were removed. It is safe to call at any time.
func (e *Engine) Invalidate(projectID string) int {
	return e.cache.Invalidate(domain.ProjectPrefix(projectID))
}

// ResetSession forgets the project's conversation and its cached results.
func (e *Engine) ResetSession(projectID string) {
	e.tracker.Reset(projectID)
	e.Invalidate(projectID)
}

// Session returns a snapshot of the project's tracker state.
func (e *Engine) Session(projectID string) (*domain.SessionState, bool) {
	return e.tracker.Snapshot(projectID)
}

// RestoreSession loads a previously persisted tracker state.
func (e *Engine) RestoreSession(state *domain.SessionState) {
	e.tracker.Restore(state)
}

// track asks the tracker for the turn's mode. A failing tracker falls back to
// full context over every file; nothing is recorded for that turn.
func (e *Engine) track(
	projectID string,
	files []domain.ProjectFile,
	task string,
	forceFull bool,
) (domain.TrackDecision, error) {
	decision, err := guard(keyTrack, func() (domain.TrackDecision, error) {
		return e.tracker.Track(projectID, files, task, forceFull), nil
	})
	if err != nil {
		return domain.TrackDecision{FullContext: true, Candidates: files}, err
	}
	return decision, nil
}

func (e *Engine) classify(
	ctx context.Context,
	projectID, fingerprint string,
	files []domain.ProjectFile,
) (*domain.FrameworkTemplate, error) {
	key := domain.CacheKey(projectID, keyTemplate, fingerprint)
	if v, ok := e.cache.Get(key); ok {
		return v.(*domain.FrameworkTemplate), nil
	}

	_, span := e.tracer.Start(ctx, "Classify")
	defer span.End()

	template, err := guard(keyTemplate, func() (*domain.FrameworkTemplate, error) {
		v, err, _ := e.flight.Do(key, func() (any, error) {
			return e.classifier.Classify(files)
		})
		if err != nil {
			return nil, err
		}
		return v.(*domain.FrameworkTemplate), nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("template", domain.TemplateName(template))
	e.cache.Set(key, template)
	return template, nil
}

type graphResult struct {
	graph *domain.DependencyGraph
	err   error
}

// buildGraph bounds the scan with the configured timeout. A timed out scan
// yields the partial graph and an error; partial graphs are not cached.
func (e *Engine) buildGraph(
	ctx context.Context,
	projectID, fingerprint string,
	files []domain.ProjectFile,
) (*domain.DependencyGraph, error) {
	key := domain.CacheKey(projectID, keyGraph, fingerprint)
	if v, ok := e.cache.Get(key); ok {
		return v.(*domain.DependencyGraph), nil
	}

	ctx, span := e.tracer.Start(ctx, "BuildGraph")
	defer span.End()

	res, err := guard(keyGraph, func() (graphResult, error) {
		v, err, _ := e.flight.Do(key, func() (any, error) {
			scanCtx, cancel := context.WithTimeout(ctx, e.cfg.Graph.ScanTimeout)
			defer cancel()
			g, err := e.graph.Build(scanCtx, files)
			return graphResult{graph: g, err: err}, nil
		})
		if err != nil {
			return graphResult{}, err
		}
		r := v.(graphResult)
		if r.graph == nil && r.err == nil {
			return r, domain.ErrNilGraph
		}
		return r, r.err
	})
	if err != nil {
		span.RecordError(err)
		return res.graph, err
	}

	span.SetAttribute("nodes", res.graph.Len())
	span.SetAttribute("edges", res.graph.EdgeCount())
	e.cache.Set(key, res.graph)
	return res.graph, nil
}

func (e *Engine) rank(
	ctx context.Context,
	projectID, task string,
	candidates []domain.ProjectFile,
	k int,
) ([]domain.RelevanceScore, error) {
	key := domain.CacheKey(projectID, keyRank,
		domain.Fingerprint(candidates, e.cfg.Context.FingerprintContent),
		domain.HashText(task),
		strconv.Itoa(k),
	)
	if v, ok := e.cache.Get(key); ok {
		return v.([]domain.RelevanceScore), nil
	}

	_, span := e.tracer.Start(ctx, "Rank", ports.WithAttributes(map[string]any{
		"candidates": len(candidates),
		"top_k":      k,
	}))
	defer span.End()

	ranked, err := guard(keyRank, func() ([]domain.RelevanceScore, error) {
		return e.scorer.Rank(task, candidates, k)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	e.cache.Set(key, ranked)
	return ranked, nil
}

// selectFile builds the payload entry of a ranked file. A failing chunker
// leaves the file whole.
func (e *Engine) selectFile(
	ctx context.Context,
	score *domain.RelevanceScore,
	graph *domain.DependencyGraph,
) (domain.SelectedFile, error) {
	file := score.File
	selected := domain.SelectedFile{
		Path:     file.Path,
		Language: file.Language,
		Score:    score.Score,
	}

	if graph != nil {
		if node, ok := graph.Node(file.Path); ok {
			selected.Imports = node.Imports
			selected.ImportedBy = node.ImportedBy
			selected.Related = node.Related
		}
	}

	chunks, err := guard("chunk", func() ([]domain.Chunk, error) {
		if !e.chunker.NeedsChunking(file) {
			return nil, nil
		}
		_, span := e.tracer.Start(ctx, "Chunk", ports.WithAttributes(map[string]any{"path": file.Path}))
		defer span.End()
		chunks := e.chunker.Chunk(file)
		_, _ = fmt.Fprintf(span, "split into %d chunks", len(chunks))
		return chunks, nil
	})

	if len(chunks) > 0 {
		selected.Chunks = chunks
	} else {
		selected.Content = file.Content
	}
	selected.TokenEstimate = estimate(&selected)

	return selected, err
}

// guard runs fn and converts both returned errors and panics into stage errors.
func guard[T any](stage string, fn func() (T, error)) (result T, err error) {
	defer zerr.Defer(func(recovered error) {
		err = zerr.With(zerr.Wrap(recovered, domain.ErrCollaboratorPanicked.Error()), "stage", stage)
	})

	result, err = fn()
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCollaboratorFailed.Error()), "stage", stage)
	}
	return result, err
}

// unranked returns the candidates in input order with zero scores.
func unranked(files []domain.ProjectFile) []domain.RelevanceScore {
	scores := make([]domain.RelevanceScore, len(files))
	for i := range files {
		scores[i] = domain.RelevanceScore{File: files[i], Path: files[i].Path}
	}
	return scores
}

// withLanguages returns a copy of files with empty languages detected from paths.
func withLanguages(files []domain.ProjectFile) []domain.ProjectFile {
	out := make([]domain.ProjectFile, len(files))
	copy(out, files)
	for i := range out {
		if out[i].Language == "" {
			out[i].Language = domain.DetectLanguage(out[i].Path)
		}
	}
	return out
}
