// Package atoms parses chemical-formula-like strings into atom
// counts.  It's a best-effort tokenizer, not a chemical parser:
// unrecognized text is ignored, and nothing checks that counts make
// chemical sense.
package atoms

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// termRe matches one '+'-separated formula term: an optional signed
// decimal coefficient followed by an atom symbol.
var termRe = regexp.MustCompile(`^([-+]?[0-9]*\.?[0-9]+)?(\S+)$`)

// ParseFormula tokenizes a formula of terms separated by '+', each
// term an optional signed decimal coefficient followed by an atom
// symbol ("O + 2H", ".5C").  Repeated symbols accumulate.
//
// The symbol is not checked against any known-atoms table.
func ParseFormula(text string) (map[string]float64, error) {
	counts := make(map[string]float64)
	for _, term := range strings.Split(text, "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		m := termRe.FindStringSubmatch(term)
		if m == nil {
			return nil, &BadFormula{Text: text, Term: term}
		}
		stoic := 1.0
		if m[1] != "" {
			f, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return nil, &BadFormula{Text: text, Term: term}
			}
			stoic = f
		}
		counts[m[2]] += stoic
	}
	return counts, nil
}

// Guess derives atom counts from a species name.
//
// A name that contains '+' or starts with a digit is handed to
// ParseFormula.  Otherwise the name is scanned for occurrences of
// known atom symbols (longest symbols first, so "Cl" wins over "C"),
// each optionally followed by a multiplicity ("HO2" -> H:1, O:2).
// Substrings that match nothing are silently skipped.
func Guess(name string, tab Table) map[string]float64 {
	if strings.Contains(name, "+") || startsWithDigit(name) {
		counts, err := ParseFormula(name)
		if err != nil {
			return map[string]float64{}
		}
		return counts
	}

	syms := tab.Symbols()
	sort.Slice(syms, func(i, j int) bool {
		if len(syms[i]) != len(syms[j]) {
			return len(syms[i]) > len(syms[j])
		}
		return syms[i] < syms[j]
	})

	counts := make(map[string]float64)
	for i := 0; i < len(name); {
		matched := false
		for _, sym := range syms {
			if !strings.HasPrefix(name[i:], sym) {
				continue
			}
			i += len(sym)
			j := i
			for j < len(name) && name[j] >= '0' && name[j] <= '9' {
				j++
			}
			mul := 1.0
			if j > i {
				n, err := strconv.Atoi(name[i:j])
				if err == nil {
					mul = float64(n)
				}
				i = j
			}
			counts[sym] += mul
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	return counts
}

func startsWithDigit(s string) bool {
	return s != "" && '0' <= s[0] && s[0] <= '9'
}

// BadFormula occurs when ParseFormula can't tokenize a term.
type BadFormula struct {
	Text string
	Term string
}

func (e *BadFormula) Error() string {
	return `bad formula term "` + e.Term + `" in "` + e.Text + `"`
}
