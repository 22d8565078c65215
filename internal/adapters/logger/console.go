package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/brief/internal/ui/output"
	"go.trai.ch/brief/internal/ui/style"
)

// StageKey is the attribute naming the pipeline stage a record comes from.
// Console output shows it in brackets ahead of the message.
const StageKey = "stage"

// attrOrder ranks the attributes the engine and the CLI attach to records.
// Unlisted keys follow in the order they were logged.
var attrOrder = []string{"project", "template", "file", "path"}

// ConsoleHandler is a slog.Handler writing one styled line per record:
//
//	! [graph] continuing with reduced context project=/work/demo error="scan timed out"
type ConsoleHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler
	attrs []slog.Attr
	group string

	info  lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

// NewConsoleHandler creates a ConsoleHandler writing to w.
// A nil writer defaults to os.Stderr; nil options log at Info.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	r := output.Renderer(w, output.ColorProfile())
	return &ConsoleHandler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
		info:  style.Label.Renderer(r),
		warn:  style.Notice.Renderer(r),
		fail:  style.Failure.Renderer(r),
		muted: style.Muted.Renderer(r),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := slices.Clone(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, qualify(h.group, attr))
		return true
	})

	stage, attrs := takeStage(attrs)

	head := r.Message
	if stage != "" {
		head = "[" + stage + "] " + head
	}

	paint := h.info
	switch {
	case r.Level >= slog.LevelError:
		head = style.Cross + " " + head
		paint = h.fail
	case r.Level >= slog.LevelWarn:
		head = style.Warning + " " + head
		paint = h.warn
	}

	line := output.PaintLines(paint, head)
	if len(attrs) > 0 {
		line += " " + output.PaintLines(h.muted, formatAttrs(attrs))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = slices.Clone(h.attrs)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, qualify(h.group, attr))
	}
	return &next
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	next := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return &next
}

func qualify(group string, attr slog.Attr) slog.Attr {
	attr.Value = attr.Value.Resolve()
	if group != "" {
		attr.Key = group + "." + attr.Key
	}
	return attr
}

// takeStage removes the first ungrouped stage attribute and returns its value.
// The remaining attributes are ordered by attrOrder.
func takeStage(attrs []slog.Attr) (string, []slog.Attr) {
	var stage string
	if i := slices.IndexFunc(attrs, func(a slog.Attr) bool { return a.Key == StageKey }); i >= 0 {
		stage = attrs[i].Value.String()
		attrs = slices.Delete(attrs, i, i+1)
	}

	slices.SortStableFunc(attrs, func(a, b slog.Attr) int {
		return rank(a.Key) - rank(b.Key)
	})
	return stage, attrs
}

func rank(key string) int {
	if i := slices.Index(attrOrder, key); i >= 0 {
		return i
	}
	return len(attrOrder)
}

// formatAttrs renders attributes as key=value pairs. Values containing
// whitespace or quotes are quoted.
func formatAttrs(attrs []slog.Attr) string {
	parts := make([]string, len(attrs))
	for i, attr := range attrs {
		value := attr.Value.String()
		if value == "" || strings.ContainsAny(value, " \t\n\"") {
			value = strconv.Quote(value)
		}
		parts[i] = attr.Key + "=" + value
	}
	return strings.Join(parts, " ")
}
