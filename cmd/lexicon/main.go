// Command lexicon converts a YAML lexicon into the SQLite format read by
// the server, and reports entries whose paradigm cannot be synthesized.
//
// Usage:
//
//	lexicon -in data/lexicon.yaml -out data/lexicon.db [-check]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/cours-de-latin/naglasak"
)

func main() {
	in := flag.String("in", "data/lexicon.yaml", "YAML lexicon to read")
	out := flag.String("out", "", "SQLite database to write")
	check := flag.Bool("check", false, "decline every entry and report failures")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	store, err := naglasak.LoadYAML(*in)
	if err != nil {
		slog.Error("load lexicon", "path", *in, "error", err)
		os.Exit(1)
	}
	entries := naglasak.Entries(store)
	slog.Info("lexicon loaded", "path", *in, "entries", len(entries))

	failed := 0
	if *check {
		for _, e := range entries {
			d, err := e.Declinable()
			if err == nil {
				_, err = d.Multiforms(naglasak.Options{})
			}
			if err != nil {
				failed++
				slog.Warn("entry does not decline", "entry", e.FullKey(), "info", e.Info, "error", err)
				continue
			}
			slog.Debug("entry ok", "entry", e.FullKey())
		}
		slog.Info("check done", "entries", len(entries), "failed", failed)
	}

	if *out != "" {
		if err := naglasak.WriteSQLite(context.Background(), *out, store); err != nil {
			slog.Error("write database", "path", *out, "error", err)
			os.Exit(1)
		}
		slog.Info("database written", "path", *out, "entries", len(entries))
	}
	if failed > 0 {
		os.Exit(1)
	}
}
