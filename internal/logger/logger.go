package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/tunnel.txt"

// Logger stores log lines in memory and appends them to a file on disk.
// Slog returns a structured front end writing through the same Logger.
type Logger struct {
	mu      sync.Mutex
	lines   []string
	path    string
	console *termenv.Output
}

// New returns a Logger appending to path (LogFilePath when empty) and ensures its
// directory exists. console, when non-nil, receives a level-colored echo of every line.
func New(path string, console io.Writer) *Logger {
	if path == "" {
		path = LogFilePath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	l := &Logger{lines: make([]string, 0), path: path}
	if console != nil {
		l.console = termenv.NewOutput(console)
	}
	return l
}

// Log appends a line prefixed with [timestamp] to memory and the log file.
func (l *Logger) Log(line string) {
	l.log(slog.LevelInfo, line)
}

func (l *Logger) log(level slog.Level, line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if l.console != nil {
		fmt.Fprintln(l.console, l.console.String(stamped).Foreground(l.console.Color(levelColor(level))))
	}
	l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Slog returns a structured logger that writes "LEVEL msg key=value ..." lines to l.
func (l *Logger) Slog(level slog.Leveler) *slog.Logger {
	return slog.New(&handler{l: l, level: level})
}

// ANSI palette indices.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "9"
	case level >= slog.LevelWarn:
		return "11"
	case level >= slog.LevelInfo:
		return "15"
	default:
		return "8"
	}
}

type handler struct {
	l     *Logger
	level slog.Leveler
	attrs []slog.Attr
	group string
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.level != nil {
		threshold = h.level.Level()
	}
	return level >= threshold
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	h.l.log(r.Level, b.String())
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if h.group != "" {
		nh.group = h.group + "." + name
	} else {
		nh.group = name
	}
	return &nh
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	s := a.Value.String()
	if strings.ContainsAny(s, " \t\"=") {
		s = fmt.Sprintf("%q", s)
	}
	b.WriteString(s)
}
