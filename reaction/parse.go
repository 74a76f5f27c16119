package reaction

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	arrowRe = regexp.MustCompile(`\s*(?:-([A-Za-z0-9]*)>|=)\s*`)

	// coefRe matches a leading coefficient only when it's clearly
	// separated from the species name, so names like "1O2D" stay
	// whole.
	coefRe = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*\*?\s+|^([0-9]*\.?[0-9]+)\s*\*\s*`)
)

// Parse builds a Reaction from a string like
//
//	OH + CO -> HO2 + CO2
//	NO2 -j> NO + O
//	2*NO3 = N2O5
//
// The arrow may carry a rate-type tag ("-j>" for photolysis); "->"
// and "=" mean a plain thermal reaction.  Terms are separated by '+';
// each may carry a leading coefficient separated by '*' or
// whitespace.
func Parse(text string) (*Reaction, error) {
	loc := arrowRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, &BadReaction{Text: text, Reason: "no reaction arrow"}
	}
	typ := "k"
	if loc[2] >= 0 && text[loc[2]:loc[3]] != "" {
		typ = text[loc[2]:loc[3]]
	}

	r := New(typ)
	if err := parseSide(text[:loc[0]], r.Reactants, text); err != nil {
		return nil, err
	}
	if err := parseSide(text[loc[1]:], r.Products, text); err != nil {
		return nil, err
	}
	if len(r.Reactants) == 0 {
		return nil, &BadReaction{Text: text, Reason: "no reactants"}
	}
	return r, nil
}

func parseSide(s string, into map[string]float64, whole string) error {
	for _, term := range strings.Split(s, "+") {
		term = strings.TrimSpace(term)
		if term == "" || term == "hv" {
			// Light isn't a species.
			continue
		}
		stoic := 1.0
		if m := coefRe.FindStringSubmatch(term); m != nil {
			digits := m[1]
			if digits == "" {
				digits = m[2]
			}
			f, err := strconv.ParseFloat(digits, 64)
			if err != nil {
				return &BadReaction{Text: whole, Reason: "bad coefficient in " + term}
			}
			stoic = f
			term = strings.TrimSpace(term[len(m[0]):])
		}
		if term == "" {
			return &BadReaction{Text: whole, Reason: "coefficient without a species"}
		}
		into[term] += stoic
	}
	return nil
}

// BadReaction occurs when Parse can't make sense of a reaction
// string.
type BadReaction struct {
	Text   string
	Reason string
}

func (e *BadReaction) Error() string {
	return "bad reaction " + `"` + e.Text + `": ` + e.Reason
}
