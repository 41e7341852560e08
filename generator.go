package morphgen

import "sort"

// Generator owns an immutable, order-sorted rule list and realizes
// surface forms by composing it over a lexeme's stem.
type Generator struct {
	rules []Rule
}

// NewGenerator copies rules and stable-sorts them by ascending Order,
// keeping declaration order on ties.
func NewGenerator(rules []Rule) *Generator {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return &Generator{rules: sorted}
}

// Rules returns a copy of the generator's rules in application order.
func (g *Generator) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	copy(out, g.rules)
	return out
}

// Generate realizes the surface form of lexeme for the target bundle.
//
// An irregular override stored under the target's signature wins
// outright; no rule is consulted. Otherwise the stem is threaded
// through every matching rule in a single ascending sweep, with the
// lexeme's default features merged under the target (the target wins
// on collisions). The only error source is a rewrite rule whose
// pattern fails to compile; that error propagates to the caller.
func (g *Generator) Generate(lexeme *Lexeme, target FeatureBundle) (string, error) {
	if form, ok := lexeme.Irregular[target.Signature()]; ok {
		return form, nil
	}

	surface := lexeme.Stem
	feats := Merge(lexeme.Features, target)

	for _, r := range g.rules {
		s, err := r.Apply(surface, feats)
		if err != nil {
			return "", err
		}
		surface = s
	}
	return surface, nil
}
