package imports_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brief/internal/adapters/imports"
	"go.trai.ch/brief/internal/core/domain"
)

func newBuilder() *imports.Builder {
	return imports.New(domain.DefaultConfig().Graph)
}

func file(path, content string) domain.ProjectFile {
	return domain.ProjectFile{ID: path, Path: path, Content: content}
}

func TestExtract_ScriptForms(t *testing.T) {
	src := strings.Join([]string{
		`import React, { useState } from 'react';`,
		`import type { Props } from "./types";`,
		`import {`,
		`  add,`,
		`  sub,`,
		`} from './math';`,
		`import './styles.css';`,
		`export * from './reexport';`,
		`const lazy = import('./Lazy');`,
		`const fs = require("fs");`,
		`const again = require('./math');`,
	}, "\n")

	got := newBuilder().Extract(file("src/App.tsx", src))

	assert.Equal(t, []string{
		"react", "./types", "./math", "./styles.css", "./reexport", "./Lazy", "fs",
	}, got)
}

func TestExtract_PythonForms(t *testing.T) {
	src := strings.Join([]string{
		"import os",
		"from typing import List",
		"from .models import User",
		"from ..core.db import session",
		"from . import helpers",
	}, "\n")

	got := newBuilder().Extract(file("app/api/routes.py", src))

	assert.Equal(t, []string{"os", "typing", "./models", "../core/db", "."}, got)
}

func TestExtract_StyleAndInclude(t *testing.T) {
	css := newBuilder().Extract(file("styles/main.css", `@import "base.css";`+"\n"+`@import url('./theme.css');`))
	assert.Equal(t, []string{"./base.css", "./theme.css"}, css)

	c := newBuilder().Extract(file("src/main.c", "#include <stdio.h>\n#include \"util.h\"\n"))
	assert.Equal(t, []string{"./util.h"}, c)
}

func TestExtract_RulesAreScopedByExtension(t *testing.T) {
	got := newBuilder().Extract(file("README.md", "import x from './y'"))
	assert.Empty(t, got)
}

func TestBuild_ResolvesRelativeImports(t *testing.T) {
	files := []domain.ProjectFile{
		file("package.json", `{"name":"demo"}`),
		file("src/App.tsx", "import { add } from './utils';\nimport React from 'react';\n"),
		file("src/utils.ts", "export const add = (a: number, b: number) => a + b;\n"),
	}

	g, err := newBuilder().Build(context.Background(), files)
	require.NoError(t, err)

	app, ok := g.Node("src/App.tsx")
	require.True(t, ok)
	assert.Equal(t, []string{"src/utils.ts"}, app.Imports)

	utils, ok := g.Node("src/utils.ts")
	require.True(t, ok)
	assert.Equal(t, []string{"src/App.tsx"}, utils.ImportedBy)
	assert.Equal(t, []string{"src/App.tsx"}, utils.Related)

	pkg, _ := g.Node("package.json")
	assert.Empty(t, pkg.Imports)
	assert.Empty(t, pkg.Related)
}

func TestBuild_CycleTerminates(t *testing.T) {
	files := []domain.ProjectFile{
		file("a.ts", "import { b } from './b';"),
		file("b.ts", "import { c } from './c';"),
		file("c.ts", "import { a } from './a';"),
	}

	g, err := newBuilder().Build(context.Background(), files)
	require.NoError(t, err)

	a, ok := g.Node("a.ts")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"b.ts", "c.ts"}, a.Related)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuild_ResolutionForms(t *testing.T) {
	files := []domain.ProjectFile{
		file("src/main.ts", strings.Join([]string{
			"import { Button } from './components';",
			"import { api } from '../src/lib/api';",
			"import { missing } from './missing';",
			"import { self } from './main';",
		}, "\n")),
		file("src/components/index.ts", "export * from './Button';"),
		file("src/components/Button.tsx", "export const Button = () => null;"),
		file("src/lib/api.ts", "export const api = {};"),
		file("apps/web/src/page.ts", "import { shared } from '../../shared/util';"),
		file("packages/shared/util.ts", "export const shared = 1;"),
	}

	g, err := newBuilder().Build(context.Background(), files)
	require.NoError(t, err)

	mainNode, _ := g.Node("src/main.ts")
	assert.Equal(t, []string{"src/components/index.ts", "src/lib/api.ts"}, mainNode.Imports,
		"index file, joined path; unresolved and self imports dropped")

	index, _ := g.Node("src/components/index.ts")
	assert.Equal(t, []string{"src/components/Button.tsx"}, index.Imports)

	page, _ := g.Node("apps/web/src/page.ts")
	assert.Equal(t, []string{"packages/shared/util.ts"}, page.Imports, "suffix match on stripped target")
}

func TestBuild_PythonPackages(t *testing.T) {
	files := []domain.ProjectFile{
		file("app/api/routes.py", "from ..core import db\nfrom .schemas import Item\n"),
		file("app/api/schemas.py", "class Item: pass\n"),
		file("app/core/__init__.py", "db = None\n"),
	}

	g, err := newBuilder().Build(context.Background(), files)
	require.NoError(t, err)

	routes, _ := g.Node("app/api/routes.py")
	assert.Equal(t, []string{"app/core/__init__.py", "app/api/schemas.py"}, routes.Imports)
}

func TestBuild_SkipsOversizedFiles(t *testing.T) {
	cfg := domain.DefaultConfig().Graph
	cfg.MaxFileBytes = 10

	files := []domain.ProjectFile{
		file("a.ts", "import { b } from './b';"),
		file("b.ts", ""),
	}

	g, err := imports.New(cfg).Build(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 2, g.Len())
}

func TestBuild_CancelledContextReturnsPartialGraph(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := []domain.ProjectFile{
		file("a.ts", "import { b } from './b';"),
		file("b.ts", ""),
	}

	g, err := newBuilder().Build(ctx, files)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, g)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuild_Deterministic(t *testing.T) {
	files := []domain.ProjectFile{
		file("src/a.ts", "import './b'; import './c';"),
		file("src/b.ts", "import './c';"),
		file("src/c.ts", ""),
	}

	first, err := newBuilder().Build(context.Background(), files)
	require.NoError(t, err)
	second, err := newBuilder().Build(context.Background(), files)
	require.NoError(t, err)

	for n := range first.Nodes() {
		other, ok := second.Node(n.File)
		require.True(t, ok)
		assert.Equal(t, n, other)
	}
}

func TestRegister_AddsRule(t *testing.T) {
	b := newBuilder()
	b.Register(imports.Rule{
		Kind:       "go-embed",
		Pattern:    regexp.MustCompile(`//go:embed\s+(\S+)`),
		Extensions: []string{".go"},
		Normalize:  func(raw string) string { return "./" + raw },
	})

	files := []domain.ProjectFile{
		file("pkg/catalog.go", "//go:embed catalog.yaml\nvar raw []byte"),
		file("pkg/catalog.yaml", "templates: []"),
	}

	g, err := b.Build(context.Background(), files)
	require.NoError(t, err)

	n, _ := g.Node("pkg/catalog.go")
	assert.Equal(t, []string{"pkg/catalog.yaml"}, n.Imports)
}
