// Command server exposes the paradigm synthesizer as a JSON REST API.
//
// Endpoints:
//
//	GET /api/decline?word=<key>[&variant=<n>][&reflex=e|je|i][&latin=true]
//	GET /api/lookup?word=<key>
//	GET /api/search?pattern=<glob>
//	GET /api/analyze?form=<form>
//	GET /metrics
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/cours-de-latin/naglasak"
	"github.com/cours-de-latin/naglasak/internal/config"
	"github.com/cours-de-latin/naglasak/internal/metrics"
)

func main() {
	cfgPath := flag.String("config", "", "path to TOML configuration")
	lexicon := flag.String("lexicon", "", "lexicon path, overrides the configuration")
	addr := flag.String("addr", "", "listen address, overrides the configuration")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			slog.Error("load config", "path", *cfgPath, "error", err)
			os.Exit(1)
		}
	}
	if *lexicon != "" {
		cfg.SetLexicon(*lexicon)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	opts, err := cfg.Options()
	if err != nil {
		slog.Error("synthesis options", "error", err)
		os.Exit(1)
	}

	slog.Info("loading lexicon", "path", cfg.Lexicon.Path, "format", cfg.Lexicon.Format)
	store, err := naglasak.OpenStore(context.Background(), cfg.Lexicon.Path, cfg.Lexicon.Format)
	if err != nil {
		slog.Error("load lexicon", "error", err)
		os.Exit(1)
	}
	n := len(naglasak.Entries(store))
	metrics.LexiconEntries.Set(float64(n))
	slog.Info("lexicon loaded", "entries", n)

	s := &server{dict: naglasak.NewDictionary(store), defaults: opts}
	h := newHandler(s, cfg.Server.AllowedOrigins, cfg.Server.Metrics)

	slog.Info("listening", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, h); err != nil {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
}
