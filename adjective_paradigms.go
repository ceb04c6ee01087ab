package naglasak

// le builds one labeled cell.
func le(label string, cs ...Chain) LabeledEnding {
	return LabeledEnding{Label: label, Alternatives: cs}
}

var (
	// shortAdj is the indefinite declension.
	shortAdj = ParadigmTable{
		le("m sg nom", ending("ø·", "")),
		le("m sg gen", ending("а·", "b.b:")),
		le("m sg dat", ending("у·", "b.b:")),
		le("m sg acc", ending("ø·", ""), ending("а·", "b.b:")),
		le("m sg ins", ending("и·м", "b.b:")),
		le("m sg loc", ending("у·", "b.b:")),
		le("n sg nom", ending("œ·", "b.b:")),
		le("f sg nom", ending("а·", "b.b:c.c:c?")),
		le("f sg gen", ending("е·", "b.b:")),
		le("f sg dat", ending("о·ј", "b.b:")),
		le("f sg acc", ending("у·", "b.b:")),
		le("f sg ins", ending("о·м", "b.b:")),
		le("f sg loc", ending("о·ј", "b.b:")),
		le("m pl nom", ending("и·", "b.b:")),
		le("m pl acc", ending("е·", "b.b:")),
		le("f pl nom", ending("е·", "b.b:")),
		le("n pl nom", ending("а·", "b.b:")),
		le("pl gen", ending("и·х", "b.b:")),
		le("pl dat", ending("и·м", "b.b:"), ending("и·ма", "b.b:")),
	}

	// longEndings are the definite endings; labels are prefixed where they
	// are used.
	longEndings = ParadigmTable{
		le("m sg nom", ending("и"+macron, "")),
		le("m sg gen", ending("œ"+macron+"г", ""), ending("œ"+macron+"га", "")),
		le("m sg dat", ending("œ"+macron+"м", ""), ending("œ"+macron+"ме", ""), ending("œ"+macron+"му", "")),
		le("m sg acc", ending("и"+macron, ""), ending("œ"+macron+"г", ""), ending("œ"+macron+"га", "")),
		le("m sg ins", ending("и"+macron+"м", "")),
		le("m sg loc", ending("œ"+macron+"м", ""), ending("œ"+macron+"ме", ""), ending("œ"+macron+"му", "")),
		le("m sg voc", ending("и"+macron, "")),
		le("n sg nom", ending("œ"+macron, "")),
		le("f sg nom", ending("а"+macron, "")),
		le("f sg gen", ending("е"+macron, "")),
		le("f sg dat", ending("о"+macron+"ј", "")),
		le("f sg acc", ending("у"+macron, "")),
		le("f sg ins", ending("о"+macron+"м", "")),
		le("f sg loc", ending("о"+macron+"ј", "")),
		le("f sg voc", ending("а"+macron, "")),
		le("m pl nom", ending("и"+macron, "")),
		le("m pl acc", ending("е"+macron, "")),
		le("f pl nom", ending("е"+macron, "")),
		le("n pl nom", ending("а"+macron, "")),
		le("pl gen", ending("и"+macron+"х", "")),
		le("pl dat", ending("и"+macron+"м", ""), ending("и"+macron+"ма", "")),
	}

	// mixedAdj declines possessives: short forms with long alternates in
	// the oblique masculine and neuter singular.
	mixedAdj = ParadigmTable{
		le("m sg nom", ending("ø", "")),
		le("m sg gen", ending("а", ""), ending("œ"+macron+"г", "")),
		le("m sg dat", ending("у", ""), ending("œ"+macron+"м", "")),
		le("m sg acc", ending("ø", ""), ending("а", "")),
		le("m sg ins", ending("и"+macron+"м", "")),
		le("m sg loc", ending("у", ""), ending("œ"+macron+"м", "")),
		le("n sg nom", ending("œ", "")),
		le("f sg nom", ending("а", "")),
		le("f sg gen", ending("е", "")),
		le("f sg dat", ending("о"+macron+"ј", "")),
		le("f sg acc", ending("у", "")),
		le("f sg ins", ending("о"+macron+"м", "")),
		le("f sg loc", ending("о"+macron+"ј", "")),
		le("m pl nom", ending("и", "")),
		le("m pl acc", ending("е", "")),
		le("f pl nom", ending("е", "")),
		le("n pl nom", ending("а", "")),
		le("pl gen", ending("и"+macron+"х", "")),
		le("pl dat", ending("и"+macron+"м", ""), ending("и"+macron+"ма", "")),
	}

	comparativeAugment = MustTuple(">иј", "")

	// longAdj is the definite declension.
	longAdj = relabel("def ", longEndings, nil)

	// comparativeAdj is the definite declension behind the comparative -иј-.
	comparativeAdj = relabel("cmp ", longEndings, &comparativeAugment)
)

// relabel prefixes every label of t and puts aug, if any, in front of
// every ending.
func relabel(prefix string, t ParadigmTable, aug *AccentedTuple) ParadigmTable {
	out := make(ParadigmTable, len(t))
	for i, cell := range t {
		cs := make([]Chain, len(cell.Alternatives))
		for j, c := range cell.Alternatives {
			if aug != nil {
				c = append(Chain{*aug}, c...)
			}
			cs[j] = c
		}
		out[i] = LabeledEnding{Label: prefix + cell.Label, Alternatives: cs}
	}
	return out
}
