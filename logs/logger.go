// Package logs builds the process logger: a text handler on the given
// writer, fanned out to the systemd journal when one is reachable.
package logs

import (
	"io"
	"log/slog"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Level controls the verbosity of every handler built by New.
var Level = new(slog.LevelVar)

func New(w io.Writer) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: Level,
		}),
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err == nil {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// toJournalKey maps an attribute key onto the journal field alphabet.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
