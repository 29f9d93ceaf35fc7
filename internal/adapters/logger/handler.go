package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/teammap/internal/ui/output"
	"go.trai.ch/teammap/internal/ui/style"
)

// levelStyle is the prefix icon and color of one severity.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

// Progress lines ("Cached result for ...", "Searching location for ...") are
// info records and print bare in slate. Problems with the previous dataset
// are warnings, a failed run ends with a single error line.
var (
	infoStyle  = levelStyle{color: style.Slate}
	warnStyle  = levelStyle{icon: style.Warning, color: style.Yellow}
	errorStyle = levelStyle{icon: style.Cross, color: style.Red}
)

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return errorStyle
	case level >= slog.LevelWarn:
		return warnStyle
	default:
		return infoStyle
	}
}

// PrettyHandler renders records as one colored line each:
// optional icon, message, then key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []string
	// prefix is the dotted group path applied to later attributes.
	prefix string
}

// NewPrettyHandler returns a handler writing to w, or os.Stderr when w is nil.
// Records below opts.Level (default info) are dropped.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	var b strings.Builder
	if ls.icon != "" {
		b.WriteString(ls.icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteByte(' ')
		b.WriteString(h.format(attr))
		return true
	})

	line := h.out.String(b.String()).Foreground(h.out.Color(string(ls.color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

// WithAttrs implements slog.Handler. Attributes are formatted once, here.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]string, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, h.format(attr))
	}
	return &next
}

// WithGroup implements slog.Handler. Nested groups join with dots.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func (h *PrettyHandler) format(attr slog.Attr) string {
	return h.prefix + attr.Key + "=" + attr.Value.String()
}
