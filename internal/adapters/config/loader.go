// Package config provides the engine configuration loader for brief.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/brief/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration file and overlays it on the defaults.
// BRIEF_CONFIG names the file explicitly; otherwise brief.yaml is searched from
// cwd upwards. No file at all yields domain.DefaultConfig.
func (l *Loader) Load(cwd string) (domain.EngineConfig, error) {
	cfg := domain.DefaultConfig()

	configPath, err := findConfiguration(cwd)
	if err != nil {
		return cfg, err
	}
	if configPath == "" {
		return cfg, nil
	}

	var file Brieffile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return cfg, zerr.With(err, "path", configPath)
	}

	if err := file.apply(&cfg); err != nil {
		return cfg, zerr.With(err, "path", configPath)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, zerr.With(err, "path", configPath)
	}

	if w := cfg.Scorer.Weights; w == (domain.ScoreWeights{}) {
		l.Logger.Warn("every scorer weight is zero; files keep their input order", "path", configPath)
	}

	return cfg, nil
}

func findConfiguration(cwd string) (string, error) {
	if explicit := os.Getenv(domain.ConfigEnvVar); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", explicit)
		}
		return explicit, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from the user's environment or a fixed file name
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// apply overlays the set fields of f onto cfg.
func (f *Brieffile) apply(cfg *domain.EngineConfig) error {
	if f.Cache != nil {
		if err := setDuration(&cfg.Cache.TTL, f.Cache.TTL, "cache.ttl"); err != nil {
			return err
		}
	}

	if t := f.Tracker; t != nil {
		set(&cfg.Tracker.SimilarityThreshold, t.SimilarityThreshold)
		set(&cfg.Tracker.HistoryLimit, t.HistoryLimit)
		set(&cfg.Tracker.NoteFileLimit, t.NoteFileLimit)
	}

	if g := f.Graph; g != nil {
		set(&cfg.Graph.Depth, g.Depth)
		set(&cfg.Graph.MaxFileBytes, g.MaxFileBytes)
		if err := setDuration(&cfg.Graph.ScanTimeout, g.ScanTimeout, "graph.scan_timeout"); err != nil {
			return err
		}
	}

	if s := f.Scorer; s != nil {
		set(&cfg.Scorer.TopK, s.TopK)
		set(&cfg.Scorer.MinContentLength, s.MinContentLength)
		set(&cfg.Scorer.MaxContentLength, s.MaxContentLength)
		if w := s.Weights; w != nil {
			set(&cfg.Scorer.Weights.PathToken, w.PathToken)
			set(&cfg.Scorer.Weights.ContentToken, w.ContentToken)
			set(&cfg.Scorer.Weights.ContentTokenCap, w.ContentTokenCap)
			set(&cfg.Scorer.Weights.Keyword, w.Keyword)
			set(&cfg.Scorer.Weights.IntentRole, w.IntentRole)
			set(&cfg.Scorer.Weights.Bootstrap, w.Bootstrap)
			set(&cfg.Scorer.Weights.SizePenalty, w.SizePenalty)
		}
	}

	if c := f.Chunker; c != nil {
		set(&cfg.Chunker.LineThreshold, c.LineThreshold)
		set(&cfg.Chunker.MaxChunkLines, c.MaxChunkLines)
		set(&cfg.Chunker.MinChunkLines, c.MinChunkLines)
	}

	if c := f.Context; c != nil {
		set(&cfg.Context.TokenBudget, c.TokenBudget)
		set(&cfg.Context.FingerprintContent, c.FingerprintContent)
	}

	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *string, key string) error {
	if src == nil {
		return nil
	}
	d, err := time.ParseDuration(*src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), key, *src)
	}
	*dst = d
	return nil
}
