// Command decline prints the accented paradigms of headwords.
//
// Usage:
//
//	decline [-config file] [-lexicon file] [-reflex e|je|i] [-latin] [-variant n] [-json] word...
//	decline -info "c: r=1 m an" [-kind noun|adjective] word
//
// With -info the word is declined from the given descriptor instead of the
// lexicon.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cours-de-latin/naglasak"
	"github.com/cours-de-latin/naglasak/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "path to TOML configuration")
	lexicon := flag.String("lexicon", "", "lexicon path, overrides the configuration")
	reflex := flag.String("reflex", "", "yat reflex: e, je or i")
	latin := flag.Bool("latin", false, "print forms in Latin script")
	variant := flag.Int("variant", -1, "only print this variant (0-based)")
	info := flag.String("info", "", "grammar descriptor; skips the lexicon")
	kind := flag.String("kind", "noun", "paradigm kind used with -info")
	asJSON := flag.Bool("json", false, "print JSON")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: decline [flags] word...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fatal("load config", err)
		}
	}
	if *lexicon != "" {
		cfg.SetLexicon(*lexicon)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	opts, err := cfg.Options()
	if err != nil {
		fatal("synthesis options", err)
	}
	if *reflex != "" {
		if opts.Reflex, err = naglasak.ParseReflex(*reflex); err != nil {
			fatal("reflex", err)
		}
	}
	if *latin {
		opts.Latin = true
	}
	if *variant >= 0 {
		opts.Variant = naglasak.VariantOption(*variant)
	}

	var decls []naglasak.Declension
	if *info != "" {
		k, err := naglasak.ParseKind(*kind)
		if err != nil {
			fatal("kind", err)
		}
		for _, w := range flag.Args() {
			e := naglasak.Entry{Key: w, Info: *info, Kind: k}
			d, err := naglasak.NewDictionary(naglasak.NewStore(e)).Decline(w, opts)
			if err != nil {
				fatal("decline", err)
			}
			decls = append(decls, d...)
		}
	} else {
		store, err := naglasak.OpenStore(context.Background(), cfg.Lexicon.Path, cfg.Lexicon.Format)
		if err != nil {
			fatal("load lexicon", err)
		}
		dict := naglasak.NewDictionary(store)
		for _, w := range flag.Args() {
			d, err := dict.Decline(w, opts)
			if err != nil {
				fatal("decline", err)
			}
			decls = append(decls, d...)
		}
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(decls); err != nil {
			fatal("encode", err)
		}
		return
	}
	if err := printTable(os.Stdout, decls); err != nil {
		fatal("write", err)
	}
}

func printTable(w io.Writer, decls []naglasak.Declension) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, d := range decls {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Entry.FullKey(), d.Entry.Kind, d.Entry.Info)
		for _, c := range d.Forms {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", c.Variant, c.Label, strings.Join(c.Forms, ", "))
		}
	}
	return tw.Flush()
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
