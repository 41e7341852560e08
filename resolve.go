package morphgen

import "strings"

// vowels are the letters the silent-e spelling variant keys off.
const vowels = "aeiouAEIOU"

// lemmaCandidates returns the ordered, deduplicated lookup candidates
// for lemma: the lemma itself, the silent-e variant when the lemma
// ends in a consonant (carv → carve), and the degeminated variant
// when its last two runes repeat (runn → run).
func lemmaCandidates(lemma string) []string {
	cands := []string{lemma}
	runes := []rune(lemma)
	if len(runes) > 0 && !strings.ContainsRune(vowels, runes[len(runes)-1]) {
		cands = append(cands, lemma+"e")
	}
	if len(runes) > 1 && runes[len(runes)-1] == runes[len(runes)-2] {
		cands = append(cands, string(runes[:len(runes)-1]))
	}

	seen := make(map[string]bool, len(cands))
	out := cands[:0]
	for _, c := range cands {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Resolve looks lemma up in the lexicon, absorbing minor spelling
// mismatches from fuzzy upstream guessers: the exact key first, then
// the orthographic variants from lemmaCandidates, first hit wins.
// It is a repair layer for near-miss spellings, not a stemmer.
func (x *Lexicon) Resolve(lemma string) (*Lexeme, bool) {
	for _, cand := range lemmaCandidates(lemma) {
		if l, ok := x.entries[cand]; ok {
			return l, true
		}
	}
	return nil, false
}
