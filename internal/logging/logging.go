// Package logging builds the slog logger shared by the CLI and the service.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"

	"github.com/Protocol-Lattice/gqlp/internal/config"
)

// Logger is the logger type passed around the code base.
type Logger = *slog.Logger

// ParseLevel maps a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, errors.Wrapf(err, "log level %q", name)
	}
	return lvl, nil
}

// New builds a logger writing to w and, when enabled, to the systemd
// journal. level may be changed later to adjust verbosity.
func New(cfg config.LogConfig, w io.Writer, level *slog.LevelVar) (Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	level.Set(lvl)

	opts := &slog.HandlerOptions{Level: level}
	var terminal slog.Handler
	if cfg.Format == "json" {
		terminal = slog.NewJSONHandler(w, opts)
	} else {
		terminal = slog.NewTextHandler(w, opts)
	}
	handlers := []slog.Handler{terminal}

	if cfg.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal unavailable", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// toJournalKey converts an attribute key into a valid journal field name.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}
