package naglasak

import "strings"

const macron = "\u0304"

var caseLabels = [7]string{"nom", "acc", "gen", "dat", "ins", "loc", "voc"}

// ending is a one-submorpheme ending alternative.
func ending(morpheme, accent string) Chain {
	return Chain{MustTuple(morpheme, accent)}
}

func alts(cs ...Chain) []Chain { return cs }

// declensionTable lays seven singular and seven plural cells out in case
// order under "sg …" and "pl …" labels.
func declensionTable(sg, pl [7][]Chain) ParadigmTable {
	t := make(ParadigmTable, 0, 14)
	for i, c := range caseLabels {
		t = append(t, LabeledEnding{Label: "sg " + c, Alternatives: sg[i]})
	}
	for i, c := range caseLabels {
		t = append(t, LabeledEnding{Label: "pl " + c, Alternatives: pl[i]})
	}
	return t
}

var (
	// mascGenPlMarked are the genitive-plural endings whose long а is not
	// accented in mobile paradigms; [1] is never used on monosyllabic
	// mobile stems.
	mascGenPlMarked = [2]Chain{
		ending("<а·"+macron, "b.b:"),
		ending("<а·"+macron, "b.b:e:"),
	}

	mascAccSg = map[bool][]Chain{
		false: alts(ending("ø·", "b.b:e:f.q.")),
		true:  alts(ending("а·", "b.b:e:f.q.")),
	}

	mascLocSg = map[bool][]Chain{
		true:  alts(ending("у·", "b.b:e:f.q.")),
		false: alts(ending("у·", "b.b:c:c?d:e:f.q."), ending("у·", "b.b:e:f.q.")),
	}

	// pluralAugment is the -ов-/-ев- of the long plural.
	pluralAugment = MustTuple(">œ·в", "b.b:c?d:e:f.")

	suffixedPlurals = [7][]Chain{
		alts(ending("ʹи·", "")),
		alts(ending("е·", "")),
		alts(ending("<а·"+macron, "b.b:c:c?b0d:"), mascGenPlMarked[0]),
		alts(ending("ʹи·ма", "c:c?b0"), ending("ʹи·ма", "")),
		alts(ending("ʹи·ма", "c:c?b0"), ending("ʹи·ма", "")),
		alts(ending("ʹи·ма", "c:c?b0"), ending("ʹи·ма", "")),
		alts(ending("ʹи0·", "b.b:c:c?b0q.")),
	}

	freePlurals = [7][]Chain{
		alts(ending("ʹи·", "b.b:e:q.")),
		alts(ending("е·", "b.b:e:q.")),
		alts(ending("<а·"+macron, "b.b:c:c?b0d:e:"), mascGenPlMarked[1]),
		alts(ending("ʹи·ма", "b.b:c:c?b0e:q."), ending("ʹи·ма", "b.b:e:q.")),
		alts(ending("ʹи·ма", "b.b:c:c?b0e:q."), ending("ʹи·ма", "b.b:e:q.")),
		alts(ending("ʹи·ма", "b.b:c:c?b0e:q."), ending("ʹи·ма", "b.b:e:q.")),
		alts(ending("ʹи0·", "b.b:c:c?b0q.")),
	}

	femSgA = [7][]Chain{
		alts(ending("а·", "b.c.c:g.g:")),
		alts(ending("у·", "b.g.g:")),
		alts(ending("е·"+macron, "b.c.c:g.g:")),
		alts(ending("ʹи·", "b.g.g:")),
		alts(ending("о·"+macron+"м", "b.c.c:g.g:")),
		alts(ending("ʹи·", "b.c.c:g.g:")),
		alts(ending("о0·", "b.")),
	}
	femPlA = [7][]Chain{
		alts(ending("е·", "b.")),
		alts(ending("е·", "b.")),
		alts(ending("<а·"+macron, "b.c.c:g.g:")),
		alts(ending("а·ма", "b.c.c:g.g:"), ending(">>а·ма", "b.c.c:g.g:")),
		alts(ending("а·ма", "b.c.c:g.g:"), ending(">>а·ма", "b.c.c:g.g:")),
		alts(ending("а·ма", "b.c.c:g.g:"), ending(">>а·ма", "b.c.c:g.g:")),
		alts(ending("е0·", "b.")),
	}

	femSgYer = [7][]Chain{
		alts(ending("ø", "")),
		alts(ending("ø", "")),
		alts(ending("и", "")),
		alts(ending("и", "")),
		alts(ending("ĵу", ""), ending("и", "")),
		alts(ending("и·", "c:c?")),
		alts(ending("и", "")),
	}
	femPlYer = [7][]Chain{
		alts(ending("и", "")),
		alts(ending("и", "")),
		alts(ending("и·"+macron, "c:c?")),
		alts(ending("и·ма", "c:c?")),
		alts(ending("и·ма", "c:c?")),
		alts(ending("и·ма", "c:c?")),
		alts(ending("и", "")),
	}

	neutSg = [7][]Chain{
		alts(ending("œ·", "b.b:")),
		alts(ending("œ·", "b.b:")),
		alts(ending("а·", "b.b:")),
		alts(ending("у·", "b.b:")),
		alts(ending("œ·м", "b.b:")),
		alts(ending("у·", "b.b:c:c?")),
		alts(ending("œ·", "")),
	}
	neutPl = [7][]Chain{
		alts(ending("а·", "")),
		alts(ending("а·", "")),
		alts(ending("<а·"+macron, "b.b:c:c?")),
		alts(ending("и·ма", "c:c?")),
		alts(ending("и·ма", "c:c?")),
		alts(ending("и·ма", "c:c?")),
		alts(ending("а·", "")),
	}

	femTableA   = declensionTable(femSgA, femPlA)
	femTableYer = declensionTable(femSgYer, femPlYer)
	neutTable   = declensionTable(neutSg, neutPl)
)

// mascTable builds the masculine table, whose instrumental and vocative
// singular depend on the stem.
func mascTable(stem Word, v Variant) ParadigmTable {
	anim := v.Has("an")
	sg := [7][]Chain{
		alts(ending("ø·", "b.b:e:f.q.")),
		mascAccSg[anim],
		alts(ending("а·", "b.b:e:f.q.")),
		alts(ending("у·", "b.b:e:f.q.")),
		mascInstr(stem),
		mascLocSg[anim],
		mascVoc(stem, v),
	}
	return declensionTable(sg, mascPlural(v))
}

// mascPlural picks free plurals, plurals behind the augment (+), or both (±).
func mascPlural(v Variant) [7][]Chain {
	augmented := func(cs []Chain) []Chain {
		out := make([]Chain, len(cs))
		for i, c := range cs {
			out[i] = append(Chain{pluralAugment}, c...)
		}
		return out
	}
	var pl [7][]Chain
	for i := range pl {
		switch {
		case v.Has("+"):
			pl[i] = augmented(suffixedPlurals[i])
		case v.Has("±"):
			pl[i] = append(augmented(suffixedPlurals[i]), freePlurals[i]...)
		default:
			pl[i] = freePlurals[i]
		}
	}
	return pl
}

// mascInstr selects -ем after soft stems and -ом elsewhere; stems in a
// palatal after е take both.
func mascInstr(stem Word) []Chain {
	em := ending("е·м", "b.b:e:f.q.")
	om := ending("о·м", "b.b:e:f.q.")

	lvi := stem.lastVowel()
	if lvi < 0 {
		return alts(om)
	}
	last := stem[len(stem)-1]
	spelled := stem.letters()
	switch {
	case last.Soft || strings.HasSuffix(spelled, "тељ"):
		return alts(em, om)
	case strings.HasSuffix(spelled, "ъц"):
		return alts(em)
	case strings.ContainsRune("чџшжјљњ", last.Letter):
		if stem[lvi].Letter == 'е' && stem[lvi].Kind == Ordinary {
			return alts(om, em)
		}
		return alts(em)
	case strings.ContainsRune("ћђ", last.Letter):
		return alts(em)
	}
	return alts(om)
}

// mascVoc selects the vocative -у or -е, unless the variant fixes it
// with u, ue or e.
func mascVoc(stem Word, v Variant) []Chain {
	u := ending("у0·", "b.b:c:c?b0d:e:f.q.")
	e := ending("ʺе0·", "b.b:c:c?b0d:e:f.q.")

	switch {
	case v.Has("u"):
		return alts(u)
	case v.Has("ue"):
		return alts(u, e)
	case v.Has("e"):
		return alts(e)
	}

	n := len(stem) - 1
	if n < 0 {
		return alts(e)
	}
	last := stem[n]
	switch {
	case last.Letter == 'р' && last.Soft:
		return alts(u, e)
	case strings.ContainsRune("јљњђћчшжџ", last.Letter):
		return alts(u)
	case strings.HasSuffix(stem.letters(), "ък") && n >= 2 && strings.ContainsRune("тдчсшзж", stem[n-2].Letter):
		return alts(u)
	case last.Letter == 'з' && n >= 1 && stem[n-1].Letter == 'е' && stem[n-1].Length:
		return alts(u)
	case strings.ContainsRune("кгх", last.Letter) && n >= 1 && stem[n-1].Kind != Yer && !v.Has("an"):
		return alts(u, e)
	}
	return alts(e)
}
