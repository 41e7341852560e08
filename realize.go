package morphgen

import (
	"fmt"
	"strings"
)

// PromptParser maps free text to a (lemma, feature bundle) request.
// Returning an empty lemma means no confident mapping exists and the
// input should pass through untouched. The parser is an injected
// capability: the core works with it entirely absent.
type PromptParser func(text string) (string, FeatureBundle)

// EnglishPrompt is the shipped fallback parser. It understands a
// small set of English prompt conventions:
//
//	"to X" → verb lemma X
//	"Xers" → agent of X, plural
//	"Xer"  → agent of X, singular
//	"X"    → verb lemma X
//
// The agent forms strip a second "er" layer so reduplicated spellings
// still reach the bare root.
func EnglishPrompt(text string) (string, FeatureBundle) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return "", FeatureBundle{}
	}

	if lemma, ok := strings.CutPrefix(s, "to "); ok {
		return strings.TrimSpace(lemma), FeatureBundle{"cat": "verb"}
	}
	if base, ok := strings.CutSuffix(s, "ers"); ok {
		return strings.TrimSuffix(base, "er"), FeatureBundle{"cat": "agent", "num": "pl"}
	}
	if base, ok := strings.CutSuffix(s, "er"); ok {
		return base, FeatureBundle{"cat": "agent", "num": "sg"}
	}
	return s, FeatureBundle{"cat": "verb"}
}

// StringRule is one stage of a Pipeline: a pure string → string edit
// with a human-readable description.
type StringRule interface {
	Apply(data string) (string, error)
	Description() string
}

// Realizer turns free-text prompts into surface forms: parse the
// prompt, resolve the lemma against the lexicon, generate. Any miss —
// nil parser, no confident parse, lexicon miss — passes the input
// through unchanged, so realizers chain cleanly in a Pipeline.
type Realizer struct {
	description string
	parser      PromptParser
	morph       *Morphology
}

// NewRealizer builds a Realizer over morph using parser. A nil parser
// yields a pure pass-through.
func NewRealizer(description string, morph *Morphology, parser PromptParser) *Realizer {
	return &Realizer{description: description, parser: parser, morph: morph}
}

// Description implements StringRule.
func (r *Realizer) Description() string {
	return r.description
}

// Apply implements StringRule.
func (r *Realizer) Apply(text string) (string, error) {
	if r.parser == nil {
		return text, nil
	}
	lemma, feats := r.parser(text)
	if lemma == "" {
		return text, nil
	}
	lex, ok := r.morph.lexicon.Resolve(lemma)
	if !ok {
		return text, nil
	}
	return r.morph.generator.Generate(lex, feats)
}

// Pipeline threads input through an ordered list of string rules.
type Pipeline struct {
	rules []StringRule
}

// NewPipeline builds a Pipeline running the given rules in order.
func NewPipeline(rules ...StringRule) *Pipeline {
	return &Pipeline{rules: rules}
}

// Add appends a rule to the end of the pipeline.
func (p *Pipeline) Add(rule StringRule) {
	p.rules = append(p.rules, rule)
}

// Run applies every rule in order to data and returns the result.
func (p *Pipeline) Run(data string) (string, error) {
	out := data
	for _, r := range p.rules {
		var err error
		out, err = r.Apply(out)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// Describe returns one numbered line per rule.
func (p *Pipeline) Describe() string {
	var b strings.Builder
	for i, r := range p.rules {
		fmt.Fprintf(&b, "Rule %d: %s\n", i+1, r.Description())
	}
	return b.String()
}
