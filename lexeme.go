package morphgen

import (
	"errors"
	"fmt"
)

// ErrUnreachableIrregular marks an irregular override whose key can
// never be produced by the signature function, so no generation call
// could ever hit it.
var ErrUnreachableIrregular = errors.New("unreachable irregular override")

// Lexeme is a dictionary entry: a citation form, the stem rules
// operate on, default features merged under every request, and
// irregular surface overrides keyed by feature-bundle signature.
// Lexemes are built once at setup time and read-only afterwards.
type Lexeme struct {
	// Lemma is the citation form and the lexicon key.
	Lemma string
	// Stem is the base surface material rules edit.
	Stem string
	// Features are defaults merged under any request bundle; the
	// request wins on key collisions.
	Features FeatureBundle
	// Irregular maps a target bundle's Signature to a literal
	// surface that bypasses rule composition entirely.
	Irregular map[string]string
}

// NewLexeme builds a Lexeme with no default features or irregulars.
func NewLexeme(lemma, stem string) *Lexeme {
	return &Lexeme{
		Lemma:     lemma,
		Stem:      stem,
		Features:  FeatureBundle{},
		Irregular: make(map[string]string),
	}
}

// NewLexemeFull builds a Lexeme with default features and irregular
// overrides keyed by hand-written signature strings. Every key must
// round-trip through Signature; a key that does not is unreachable at
// generation time and is rejected with ErrUnreachableIrregular rather
// than left to miss silently.
func NewLexemeFull(lemma, stem string, features FeatureBundle, irregular map[string]string) (*Lexeme, error) {
	l := NewLexeme(lemma, stem)
	if features != nil {
		l.Features = features
	}
	for key, form := range irregular {
		if ParseSignature(key).Signature() != key {
			return nil, fmt.Errorf("lexeme %q: irregular key %q: %w", lemma, key, ErrUnreachableIrregular)
		}
		l.Irregular[key] = form
	}
	return l, nil
}

// WithFeatures sets the lexeme's default features and returns the
// lexeme for chaining during setup.
func (l *Lexeme) WithFeatures(features FeatureBundle) *Lexeme {
	if features != nil {
		l.Features = features
	}
	return l
}

// WithIrregular records an irregular surface for the exact target
// bundle feats, deriving the signature key itself so it can never go
// stale against the canonicalization.
func (l *Lexeme) WithIrregular(feats FeatureBundle, form string) *Lexeme {
	l.Irregular[feats.Signature()] = form
	return l
}

// Lexicon is an insertion-ordered lemma → Lexeme mapping. The order
// is observable: table rows follow it. Construct once, then treat as
// read-only; concurrent readers need no locking.
type Lexicon struct {
	keys    []string
	entries map[string]*Lexeme
}

// NewLexicon builds a Lexicon holding the given lexemes in order.
func NewLexicon(lexemes ...*Lexeme) *Lexicon {
	x := &Lexicon{entries: make(map[string]*Lexeme, len(lexemes))}
	for _, l := range lexemes {
		x.Add(l)
	}
	return x
}

// Add inserts l, replacing any existing entry with the same lemma
// without disturbing its position.
func (x *Lexicon) Add(l *Lexeme) {
	if _, ok := x.entries[l.Lemma]; !ok {
		x.keys = append(x.keys, l.Lemma)
	}
	x.entries[l.Lemma] = l
}

// Lookup returns the lexeme stored under the exact lemma key.
func (x *Lexicon) Lookup(lemma string) (*Lexeme, bool) {
	l, ok := x.entries[lemma]
	return l, ok
}

// Lemmas returns the lemma keys in insertion order.
func (x *Lexicon) Lemmas() []string {
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

// Len returns the number of entries.
func (x *Lexicon) Len() int {
	return len(x.keys)
}

// selectLemmas returns the lemma keys to render in a table: all of
// them when subset is nil, otherwise only the named ones, in lexicon
// order rather than subset order.
func (x *Lexicon) selectLemmas(subset []string) []string {
	if subset == nil {
		return x.Lemmas()
	}
	want := make(map[string]bool, len(subset))
	for _, s := range subset {
		want[s] = true
	}
	var out []string
	for _, k := range x.keys {
		if want[k] {
			out = append(out, k)
		}
	}
	return out
}
