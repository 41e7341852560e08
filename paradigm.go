package morphgen

import (
	"sort"
	"strings"
)

// ParadigmEntry is one column of a paradigm table: a display label
// and the feature bundle that produces the column's forms.
type ParadigmEntry struct {
	Label    string        `json:"label"`
	Features FeatureBundle `json:"features"`
}

// abbrev maps known (feature, value) pairs to the short codes used in
// paradigm labels. Unknown pairs render as literal key=value.
var abbrev = map[[2]string]string{
	{"num", "sg"}:     "SG",
	{"num", "du"}:     "DU",
	{"num", "pl"}:     "PL",
	{"tense", "pres"}: "PRS",
	{"tense", "past"}: "PST",
	{"tense", "fut"}:  "FUT",
	{"cat", "verb"}:   "V",
	{"cat", "noun"}:   "N",
	{"cat", "adj"}:    "ADJ",
	{"cat", "agent"}:  "AG",
	{"per", "1"}:      "1",
	{"per", "2"}:      "2",
	{"per", "3"}:      "3",
}

// Label derives the display label for feats: one token per key in
// lexicographic order, abbreviated when the (key, value) pair is
// known, literal key=value otherwise, joined with ".". The empty
// bundle labels "base".
func Label(feats FeatureBundle) string {
	if len(feats) == 0 {
		return "base"
	}
	keys := feats.sortedKeys()
	tokens := make([]string, len(keys))
	for i, k := range keys {
		if code, ok := abbrev[[2]string{k, feats[k]}]; ok {
			tokens[i] = code
		} else {
			tokens[i] = k + "=" + feats[k]
		}
	}
	return strings.Join(tokens, ".")
}

// InferParadigm derives the feature combinations a rule set actually
// inflects for. The unconditioned ("base") entry always comes first;
// after it, each distinct non-empty rule precondition contributes one
// entry, in ascending rule order with declaration order on ties.
// Duplicate preconditions are emitted once, on first sight.
//
// Preconditions stand in for the paradigm's grammatical dimensions:
// combinations no rule is keyed on are not enumerated.
func InferParadigm(rules []Rule) []ParadigmEntry {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	entries := []ParadigmEntry{{Label: "base", Features: FeatureBundle{}}}
	seen := map[string]bool{"": true}
	for _, r := range sorted {
		sig := r.When.Signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		entries = append(entries, ParadigmEntry{Label: Label(r.When), Features: r.When})
	}
	return entries
}
