package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// ComponentKey is the attribute rendered as the [component] tag
const ComponentKey = "component"

const defaultComponent = "acronymcreator"

// ANSI color codes
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Yellow = "\033[33m"
)

// Bright colors for component differentiation
var componentColors = []string{
	"\033[36m", // Cyan
	"\033[33m", // Yellow
	"\033[35m", // Magenta
	"\033[32m", // Green
	"\033[34m", // Blue
	"\033[91m", // Bright Red
	"\033[92m", // Bright Green
	"\033[93m", // Bright Yellow
	"\033[94m", // Bright Blue
	"\033[95m", // Bright Magenta
	"\033[96m", // Bright Cyan
}

// getColorForComponent returns a consistent color for a component name
func getColorForComponent(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return componentColors[h.Sum32()%uint32(len(componentColors))]
}

// Handler is a slog.Handler writing one line per record:
//
//	<seconds since start> [<component>] <LEVEL?> <message> key=value ...
//
// The level tag is only shown for warnings and errors.
type Handler struct {
	out     io.Writer
	level   slog.Leveler
	color   bool
	started time.Time
	attrs   []slog.Attr
	groups  []string
	mu      *sync.Mutex
}

// NewHandler creates a Handler. A nil level means slog.LevelInfo.
func NewHandler(out io.Writer, level slog.Leveler, color bool) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		out:     out,
		level:   level,
		color:   color,
		started: time.Now(),
		mu:      &sync.Mutex{},
	}
}

// NewLogger returns a logger backed by a Handler
func NewLogger(out io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(NewHandler(out, level, color))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	component := defaultComponent
	var fields []string

	add := func(prefix string, a slog.Attr) {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			return
		}
		if a.Key == ComponentKey && prefix == "" {
			component = a.Value.String()
			return
		}
		fields = append(fields, prefix+a.Key+"="+formatValue(a.Value))
	}

	for _, a := range h.attrs {
		add("", a)
	}
	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	r.Attrs(func(a slog.Attr) bool {
		add(prefix, a)
		return true
	})

	since := time.Since(h.started).Seconds()
	msg := r.Message
	if len(fields) > 0 {
		msg += " " + strings.Join(fields, " ")
	}

	var line string
	if h.color {
		levelTag := ""
		switch {
		case r.Level >= slog.LevelError:
			levelTag = Red + Bold + "ERROR" + Reset + " "
		case r.Level >= slog.LevelWarn:
			levelTag = Yellow + "WARN" + Reset + " "
		}
		line = fmt.Sprintf("%s%.1f%s %s[%s]%s %s%s\n",
			Dim, since, Reset,
			getColorForComponent(component), component, Reset,
			levelTag, msg)
	} else {
		levelTag := ""
		if r.Level >= slog.LevelWarn {
			levelTag = r.Level.String() + " "
		}
		line = fmt.Sprintf("%.1f [%s] %s%s\n", since, component, levelTag, msg)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	for _, a := range attrs {
		if prefix != "" && a.Key != ComponentKey {
			a.Key = prefix + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string{}, h.groups...), name)
	return &h2
}

func formatValue(v slog.Value) string {
	if v.Kind() == slog.KindString {
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			return fmt.Sprintf("%q", s)
		}
		return s
	}
	return fmt.Sprint(v.Any())
}
