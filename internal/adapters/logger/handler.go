package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/bottled/internal/ui/output"
	"go.trai.ch/bottled/internal/ui/style"
)

// levelStyle is the prefix icon and color of a log level.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return levelStyle{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return levelStyle{icon: style.Warning, color: style.Yellow}
	default:
		return levelStyle{color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler writing one colored line per record.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Level
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level.Level()
	}
	return h
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	var line strings.Builder
	if ls.icon != "" {
		line.WriteString(ls.icon)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)

	for _, attr := range h.attrs {
		h.writeAttr(&line, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&line, attr)
		return true
	})

	colored := h.out.String(line.String()).Foreground(termenv.RGBColor(string(ls.color)))
	_, err := h.out.WriteString(colored.String() + "\n")
	return err
}

func (h *PrettyHandler) writeAttr(b *strings.Builder, attr slog.Attr) {
	b.WriteByte(' ')
	if h.group != "" {
		b.WriteString(h.group)
		b.WriteByte('.')
	}
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(attr.Value.String())
}

// WithAttrs implements slog.Handler.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = slices.Concat(h.attrs, attrs)
	return &clone
}

// WithGroup implements slog.Handler.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}
