package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brief/internal/adapters/cache"
	"go.trai.ch/brief/internal/adapters/chunker"
	"go.trai.ch/brief/internal/adapters/detector"
	"go.trai.ch/brief/internal/adapters/fs"
	"go.trai.ch/brief/internal/adapters/imports"
	"go.trai.ch/brief/internal/adapters/scorer"
	"go.trai.ch/brief/internal/adapters/store"
	"go.trai.ch/brief/internal/adapters/telemetry"
	"go.trai.ch/brief/internal/adapters/templates"
	"go.trai.ch/brief/internal/adapters/tracker"
	"go.trai.ch/brief/internal/app"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/brief/internal/core/ports"
	"go.trai.ch/brief/internal/core/ports/mocks"
	"go.trai.ch/brief/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

func newComponents(log ports.Logger) *app.Components {
	cfg := domain.DefaultConfig()
	engine := orchestrator.New(
		cache.New(cfg.Cache.TTL),
		tracker.New(cfg.Tracker),
		imports.New(cfg.Graph),
		templates.NewDefault(),
		scorer.New(cfg.Scorer),
		chunker.New(cfg.Chunker),
		log,
		telemetry.NewNoOpTracer(),
		cfg,
	)
	a := app.New(engine, fs.NewProjectLoader(fs.NewWalker()), store.NewStore(), log)
	return app.NewComponents(a, log)
}

func provide(c *app.Components) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return c, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provide(newComponents(mocks.NewMockLogger(ctrl))))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "brief version")
}

// TestRun_Prepare verifies that rendered context reaches the given stdout.
func TestRun_Prepare(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0o600))
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	exitCode := run(context.Background(),
		[]string{"prepare", dir, "--task", "explain main", "--format", "text"},
		stdout, stderr,
		provide(newComponents(mocks.NewMockLogger(ctrl))),
		func(a *app.App) {
			a.WithDetector(func() detector.OutputMode { return detector.ModeText })
		},
	)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "main.go")
	assert.Contains(t, stdout.String(), "func main() {}")
	assert.FileExists(t, store.Path(dir))
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var logged error
	log.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

	missing := filepath.Join(t.TempDir(), "missing")
	exitCode := run(context.Background(), []string{"classify", missing}, new(bytes.Buffer), new(bytes.Buffer), provide(newComponents(log)))

	assert.Equal(t, 1, exitCode)
	require.Error(t, logged)
	assert.Contains(t, logged.Error(), "failed to load project")
}
