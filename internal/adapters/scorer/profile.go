package scorer

import (
	"regexp"
	"strings"

	"go.trai.ch/brief/internal/core/domain"
)

// Intent is a coarse category of work a task asks for, and the matching role
// a file can play.
type Intent string

// Known intents.
const (
	IntentUI      Intent = "ui"
	IntentAPI     Intent = "api"
	IntentState   Intent = "state"
	IntentStyling Intent = "styling"
)

var intentOrder = []Intent{IntentUI, IntentAPI, IntentState, IntentStyling}

// roleVocabulary are words that, when present in a task, become keywords.
var roleVocabulary = []string{"component", "service", "controller", "route", "hook", "util"}

var intentKeywords = map[Intent][]string{
	IntentUI:      {"ui", "component", "button", "page", "view", "layout", "render", "modal", "form", "screen", "widget", "dialog", "navbar", "header", "footer"},
	IntentAPI:     {"api", "endpoint", "route", "fetch", "request", "response", "server", "controller", "handler", "rest", "graphql", "backend"},
	IntentState:   {"state", "store", "redux", "context", "reducer", "zustand", "pinia", "hook", "signal", "cache"},
	IntentStyling: {"style", "styling", "css", "color", "colour", "theme", "tailwind", "design", "margin", "padding", "font", "responsive"},
}

var (
	quotedPattern = regexp.MustCompile("[\"'`]([^\"'`]+)[\"'`]")
	camelPattern  = regexp.MustCompile(`\b(?:[A-Z][a-z0-9]+(?:[A-Z][a-z0-9]*)+|[a-z][a-z0-9]*(?:[A-Z][a-z0-9]*)+)\b`)
)

// profile is the parsed form of a task, computed once per ranking.
type profile struct {
	pathTokens    []string
	contentTokens []string
	keywords      []string
	intents       map[Intent]bool
}

func newProfile(task string) profile {
	p := profile{
		pathTokens:    domain.DistinctWords(task, 2),
		contentTokens: domain.DistinctWords(task, 3),
		intents:       detectIntents(task),
	}

	seen := make(map[string]struct{})
	addKeyword := func(k string) {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			return
		}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		p.keywords = append(p.keywords, k)
	}

	for _, m := range quotedPattern.FindAllStringSubmatch(task, -1) {
		addKeyword(m[1])
	}
	for _, m := range camelPattern.FindAllString(task, -1) {
		addKeyword(m)
	}
	lower := strings.ToLower(task)
	for _, role := range roleVocabulary {
		if strings.Contains(lower, role) {
			addKeyword(role)
		}
	}
	return p
}

func detectIntents(task string) map[Intent]bool {
	intents := make(map[Intent]bool)
	for _, word := range domain.Words(task) {
		for _, intent := range intentOrder {
			if matchesKeyword(word, intentKeywords[intent]) {
				intents[intent] = true
			}
		}
	}
	return intents
}

// matchesKeyword accepts exact matches and, for keywords of four letters or
// more, inflections such as "styles" for "style".
func matchesKeyword(word string, keywords []string) bool {
	for _, k := range keywords {
		if word == k || (len(k) >= 4 && strings.HasPrefix(word, k)) {
			return true
		}
	}
	return false
}
