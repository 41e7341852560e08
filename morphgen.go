// Package morphgen derives inflected surface forms from root lexical
// entries by composing an ordered list of feature-conditional edit
// rules (affixes, circumfixes, templatic insertion, regexp rewrites),
// with explicit overrides for irregular forms. On top of the rule
// engine it infers paradigm structure from rule preconditions and
// renders lexeme × paradigm tables as box-drawing text or JSON.
//
// All types are immutable after construction and safe for concurrent
// read-only use.
package morphgen

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lemma resolves to no lexicon entry,
// even after trying spelling variants.
var ErrNotFound = errors.New("lexeme not found")

// Morphology bundles a Generator with the Lexicon it draws stems
// from and provides the public generation and table API.
type Morphology struct {
	generator *Generator
	lexicon   *Lexicon
}

// New builds a Morphology from a rule list and a lexicon. The rules
// are sorted once here; both inputs are treated as read-only
// afterwards.
func New(rules []Rule, lexicon *Lexicon) *Morphology {
	return &Morphology{
		generator: NewGenerator(rules),
		lexicon:   lexicon,
	}
}

// Generator returns the rule engine.
func (m *Morphology) Generator() *Generator {
	return m.generator
}

// Lexicon returns the lexeme store.
func (m *Morphology) Lexicon() *Lexicon {
	return m.lexicon
}

// Generate resolves lemma (trying spelling variants) and realizes the
// surface form for the target bundle. It returns ErrNotFound when no
// lexicon entry matches; rewrite-rule failures propagate unchanged.
func (m *Morphology) Generate(lemma string, target FeatureBundle) (string, error) {
	lex, ok := m.lexicon.Resolve(lemma)
	if !ok {
		return "", fmt.Errorf("lemma %q: %w", lemma, ErrNotFound)
	}
	return m.generator.Generate(lex, target)
}

// Paradigm infers the paradigm columns implied by the morphology's
// rule set.
func (m *Morphology) Paradigm() []ParadigmEntry {
	return InferParadigm(m.generator.rules)
}
