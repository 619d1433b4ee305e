package measure

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/RaRedmer/readability"
)

var english = []readability.Language{readability.English}

// counter adapts a Statistics field into a measure compute function.
func counter(get func(readability.Statistics) int) func(doc *Document) (Value, error) {
	return func(doc *Document) (Value, error) {
		st, err := doc.Statistics()
		if err != nil {
			return UnavailableValue(), err
		}
		return AvailableValue(float64(get(st))), nil
	}
}

// formula adapts a report accessor into a measure compute function.
func formula(read func(*readability.Report) (float64, error)) func(doc *Document) (Value, error) {
	return func(doc *Document) (Value, error) {
		n, err := read(doc.Report())
		if err != nil {
			return UnavailableValue(), err
		}
		return AvailableValue(n), nil
	}
}

var registry = []Definition{
	{
		ID:           "RD001",
		Name:         "sentences",
		Description:  "Sentence count from segmented text.",
		Kind:         KindInteger,
		Precision:    0,
		DefaultOrder: OrderDesc,
		Compute:      counter(func(st readability.Statistics) int { return st.Sentences }),
	},
	{
		ID:           "RD002",
		Name:         "words",
		Description:  "Word count from segmented text.",
		Kind:         KindInteger,
		Precision:    0,
		DefaultOrder: OrderDesc,
		Compute:      counter(func(st readability.Statistics) int { return st.Words }),
	},
	{
		ID:           "RD003",
		Name:         "syllables",
		Description:  "Total syllable count across words.",
		Kind:         KindInteger,
		Precision:    0,
		DefaultOrder: OrderDesc,
		Compute:      counter(func(st readability.Statistics) int { return st.Syllables }),
	},
	{
		ID:           "RD004",
		Name:         "letters",
		Description:  "Letter count across words (alphabetic runes only).",
		Kind:         KindInteger,
		Precision:    0,
		DefaultOrder: OrderDesc,
		Compute:      counter(func(st readability.Statistics) int { return st.Letters }),
	},
	{
		ID:           "RD005",
		Name:         "complex-words",
		Description:  "Words with three or more syllables.",
		Kind:         KindInteger,
		Precision:    0,
		DefaultOrder: OrderDesc,
		Compute:      counter(func(st readability.Statistics) int { return st.ComplexWords }),
	},
	{
		ID:           "RD006",
		Name:         "long-words",
		Description:  "Words longer than six characters.",
		Kind:         KindInteger,
		Precision:    0,
		DefaultOrder: OrderDesc,
		Compute:      counter(func(st readability.Statistics) int { return st.LongWords }),
	},
	{
		ID:           "RD007",
		Name:         "flesch-reading-ease",
		Description:  "Flesch Reading Ease score (higher reads easier).",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderAsc,
		Compute:      formula((*readability.Report).FleschReadingEase),
	},
	{
		ID:           "RD008",
		Name:         "flesch-kincaid-grade",
		Description:  "Flesch-Kincaid grade level.",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderDesc,
		Languages:    english,
		Compute:      formula((*readability.Report).FleschKincaidGradeLevel),
	},
	{
		ID:           "RD009",
		Name:         "smog",
		Description:  "SMOG grade estimate from polysyllable density.",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderDesc,
		Languages:    english,
		Compute:      formula((*readability.Report).SMOG),
	},
	{
		ID:           "RD010",
		Name:         "coleman-liau",
		Description:  "Coleman-Liau index from letter and sentence densities.",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderDesc,
		Languages:    english,
		Compute:      formula((*readability.Report).ColemanLiauIndex),
	},
	{
		ID:           "RD011",
		Name:         "ari",
		Description:  "Automated Readability Index from character and word lengths.",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderDesc,
		Languages:    english,
		Compute:      formula((*readability.Report).AutomatedReadabilityIndex),
	},
	{
		ID:           "RD012",
		Name:         "gunning-fog",
		Description:  "Gunning Fog index from sentence length and complex-word share.",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute:      formula((*readability.Report).GunningFog),
	},
	{
		ID:           "RD013",
		Name:         "dale-chall",
		Description:  "Dale-Chall score against a familiar-word list.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Languages:    english,
		Compute: func(doc *Document) (Value, error) {
			n, err := doc.Report().DaleChall()
			if err != nil {
				if errors.Is(err, readability.ErrNoWordList) {
					return UnavailableValue(), nil
				}
				return UnavailableValue(), err
			}
			return AvailableValue(n), nil
		},
	},
	{
		ID:           "RD014",
		Name:         "forcast",
		Description:  "Forcast grade from monosyllable share (technical text).",
		Kind:         KindFloat,
		Precision:    1,
		DefaultOrder: OrderDesc,
		Languages:    english,
		Compute:      formula((*readability.Report).Forcast),
	},
	{
		ID:           "RD015",
		Name:         "linsear-write",
		Description:  "Linsear Write grade from easy and hard word weights.",
		Kind:         KindFloat,
		Precision:    1,
		DefaultOrder: OrderDesc,
		Languages:    english,
		Compute:      formula((*readability.Report).LinsearWrite),
	},
	{
		ID:           "RD016",
		Name:         "lix",
		Description:  "LIX readability from sentence length and long-word share.",
		Kind:         KindFloat,
		Precision:    1,
		DefaultOrder: OrderDesc,
		Compute:      formula((*readability.Report).LIX),
	},
	{
		ID:           "RD017",
		Name:         "rix",
		Description:  "RIX long words per sentence.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Compute:      formula((*readability.Report).RIX),
	},
}

// All returns every measure sorted by ID.
func All() []Definition {
	defs := make([]Definition, len(registry))
	copy(defs, registry)
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// ForLanguage returns the measures available for lang, sorted by ID.
func ForLanguage(lang readability.Language) []Definition {
	return filter(All(), func(def Definition) bool { return def.Supports(lang) })
}

// Defaults returns the default-selected measures for lang.
func Defaults(lang readability.Language) []Definition {
	return filter(ForLanguage(lang), func(def Definition) bool { return def.Default })
}

func filter(defs []Definition, keep func(Definition) bool) []Definition {
	out := defs[:0:0]
	for _, def := range defs {
		if keep(def) {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by measure ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range registry {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected measure names/IDs for lang.
// Empty names returns the default measures.
func Resolve(lang readability.Language, names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(lang), nil
	}

	var defs []Definition
	picked := make(map[string]bool, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMeasureErr(lang, name)
		}
		if !def.Supports(lang) {
			return nil, fmt.Errorf("measure %q is not available for language %q", def.Name, lang)
		}
		if picked[def.ID] {
			continue
		}
		picked[def.ID] = true
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no measures selected")
	}
	return defs, nil
}

// SplitList parses comma-separated measure names.
func SplitList(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// Evaluate computes def for doc. A measure outside the document language
// is unavailable rather than an error.
func Evaluate(def Definition, doc *Document) (Value, error) {
	if !def.Supports(doc.Language) {
		return UnavailableValue(), nil
	}
	return def.Compute(doc)
}

func matches(def Definition, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}
	return strings.EqualFold(def.ID, query) || def.Name == strings.ToLower(query)
}

func unknownMeasureErr(lang readability.Language, name string) error {
	var names []string
	for _, def := range ForLanguage(lang) {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return fmt.Errorf("unknown measure %q (available: %s)", name, strings.Join(names, ", "))
}
