package scorer

import (
	"path"
	"strings"
)

type roleHints struct {
	extensions []string
	pathParts  []string
	content    []string
}

var fileRoles = map[Intent]roleHints{
	IntentUI: {
		extensions: []string{".tsx", ".jsx", ".vue", ".svelte", ".html", ".astro"},
		pathParts:  []string{"component", "page", "view", "layout", "screen", "widget"},
		content:    []string{"render(", "return (", "<template>", "classname="},
	},
	IntentAPI: {
		pathParts: []string{"api", "route", "controller", "handler", "server", "endpoint"},
		content:   []string{"fetch(", "axios", "app.get(", "app.post(", "router.", "@app.", "@router.", "http.handle"},
	},
	IntentState: {
		pathParts: []string{"store", "state", "context", "reducer", "slice", "hook"},
		content:   []string{"usestate", "usereducer", "createcontext", "createstore", "definestore", "createslice"},
	},
	IntentStyling: {
		extensions: []string{".css", ".scss", ".sass", ".less", ".styl"},
		pathParts:  []string{"style", "theme", "tailwind"},
		content:    []string{"styled.", "@media", "tailwind"},
	},
}

// detectRoles guesses the roles a file plays from its name and content.
// lowerPath and lowerContent are already lowercased.
func detectRoles(lowerPath, lowerContent string) map[Intent]bool {
	roles := make(map[Intent]bool)
	ext := path.Ext(lowerPath)
	base := path.Base(lowerPath)

	for _, intent := range intentOrder {
		hints := fileRoles[intent]
		switch {
		case containsString(hints.extensions, ext),
			containsAny(lowerPath, hints.pathParts),
			containsAny(lowerContent, hints.content):
			roles[intent] = true
		}
	}
	if strings.HasPrefix(base, "use") && len(base) > 3 && ext != "" {
		roles[IntentState] = true
	}
	return roles
}

var bootstrapNames = map[string]struct{}{
	"package.json": {}, "tsconfig.json": {}, "jsconfig.json": {}, "composer.json": {},
	"requirements.txt": {}, "pyproject.toml": {}, "setup.py": {}, "cargo.toml": {},
	"go.mod": {}, "gemfile": {}, "pom.xml": {}, "build.gradle": {}, "dockerfile": {},
	"readme.md": {}, "readme": {}, ".env": {}, ".env.example": {}, ".env.local": {},
	"index.html": {}, "manage.py": {},
}

var bootstrapStems = []string{"main", "index", "app", "server", "config", "settings"}

var configStems = []string{"vite.config", "next.config", "nuxt.config", "webpack.config", "svelte.config", "tailwind.config", "babel.config", "jest.config", "vitest.config", "angular"}

// isBootstrap reports whether a basename looks like a manifest, entry point,
// environment file, configuration file or readme.
func isBootstrap(lowerBase string) bool {
	if _, ok := bootstrapNames[lowerBase]; ok {
		return true
	}
	stem := strings.TrimSuffix(lowerBase, path.Ext(lowerBase))
	for _, s := range configStems {
		if stem == s {
			return true
		}
	}
	for _, s := range bootstrapStems {
		if stem == s {
			return true
		}
	}
	return strings.HasPrefix(lowerBase, ".env")
}

func containsString(list []string, s string) bool {
	if s == "" {
		return false
	}
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsAny(s string, parts []string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

