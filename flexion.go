package naglasak

import "fmt"

// subParadigm is one table a variant is declined through, with the AP that
// governs it and the stem it starts from.
type subParadigm struct {
	ap    AP
	table ParadigmTable
	trunk Word
	// swap reports whether the stem changes length before le.
	swap func(le LabeledEnding) bool
}

// declension is what a lexical category plugs into the shared synthesizer.
type declension interface {
	subParadigms(i int) ([]subParadigm, error)
	// candidates expands stem into the stems alt may attach to, dropping
	// the combinations the category rules out.
	candidates(stem Word, alt Chain, ap AP) []Word
	reduce(alts []Chain, ap AP) []Chain
}

// multiforms computes every requested cell of the paradigm.
func (p *partOfSpeech) multiforms(d declension, opts Options) ([]LabeledForms, error) {
	if n := len(p.info.Variants); opts.Variant != nil && (*opts.Variant < 0 || *opts.Variant >= n) {
		return nil, fmt.Errorf("%s: variant %d of %d: %w", p.key, *opts.Variant, n, ErrMalformed)
	}
	var out []LabeledForms
	for i, v := range p.info.Variants {
		if !opts.wants(i) {
			continue
		}
		subs, err := d.subParadigms(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.key, err)
		}
		for _, sp := range subs {
			ctx := appendCtx{ap: sp.ap, variant: v, opts: opts}
			for _, le := range sp.table {
				trunk := sp.trunk
				if opts.LengthInconstancy && sp.swap != nil && sp.swap(le) {
					trunk = SwapLength(trunk, sp.ap)
				}
				forms, err := p.cell(d, ctx, trunk, le)
				if err != nil {
					return nil, err
				}
				out = append(out, LabeledForms{Variant: i, Label: le.Label, Forms: forms})
			}
		}
	}
	return out, nil
}

// cell returns the surface forms of one label.
// Mirrors the irregular handling of a lexicon entry: replacements are
// exclusive, amendments are appended after the regular forms.
func (p *partOfSpeech) cell(d declension, ctx appendCtx, trunk Word, le LabeledEnding) ([]string, error) {
	if repl, ok := p.irreg.Replacements[le.Label]; ok {
		return exposeAll(repl, ctx.opts)
	}

	var words []Word
	for _, alt := range d.reduce(le.Alternatives, ctx.ap) {
		for _, stem := range d.candidates(trunk, alt, ctx.ap) {
			ws, err := ctx.processChain(stem, alt)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", p.key, le.Label, err)
			}
			words = append(words, ws...)
		}
	}

	forms := make([]string, 0, len(words))
	for _, w := range words {
		forms = append(forms, exposeWord(w, ctx.opts.Reflex, ctx.opts.Latin))
	}
	amend, err := exposeAll(p.irreg.Amendments[le.Label], ctx.opts)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", p.key, le.Label, err)
	}
	return unique(append(forms, amend...)), nil
}

func exposeAll(forms []string, opts Options) ([]string, error) {
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		s, err := Expose(f, opts.Reflex, opts.Latin)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return unique(out), nil
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
