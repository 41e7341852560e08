package morphgen

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleKind discriminates the closed set of surface-edit variants.
type RuleKind int

const (
	KindPrefix RuleKind = iota
	KindSuffix
	KindCircumfix
	KindTemplate
	KindRewrite
)

func (k RuleKind) String() string {
	switch k {
	case KindPrefix:
		return "prefix"
	case KindSuffix:
		return "suffix"
	case KindCircumfix:
		return "circumfix"
	case KindTemplate:
		return "template"
	case KindRewrite:
		return "rewrite"
	default:
		return "unknown"
	}
}

// StemPlaceholder is the slot a template rule interpolates the
// current surface into.
const StemPlaceholder = "{STEM}"

// Rule is a feature-conditional surface edit. Kind selects which of
// the material fields are meaningful; the constructors below set them
// consistently. Rules are pure: Apply never mutates the rule, and a
// rule whose precondition fails is an identity no-op.
type Rule struct {
	// Name identifies the rule in diagnostics only; names need not
	// be unique.
	Name string
	// When is the precondition bundle. Every pair must equal the
	// corresponding pair in the effective feature bundle for the
	// rule to fire; an empty When always fires.
	When FeatureBundle
	// Order is the ascending application rank. Rules sharing an
	// Order apply in declaration order.
	Order int
	// Kind selects the edit variant.
	Kind RuleKind

	// Pre and Post carry affix material for prefix, suffix and
	// circumfix rules.
	Pre  string
	Post string
	// Template carries the template-rule pattern containing
	// StemPlaceholder.
	Template string
	// Pattern and Repl carry the rewrite-rule regexp and its
	// replacement text.
	Pattern string
	Repl    string
}

// Prefix returns a rule that prepends pre when the precondition holds.
func Prefix(name string, when FeatureBundle, order int, pre string) Rule {
	return Rule{Name: name, When: when, Order: order, Kind: KindPrefix, Pre: pre}
}

// Suffix returns a rule that appends post when the precondition holds.
func Suffix(name string, when FeatureBundle, order int, post string) Rule {
	return Rule{Name: name, When: when, Order: order, Kind: KindSuffix, Post: post}
}

// Circumfix returns a rule that prepends pre and appends post when
// the precondition holds.
func Circumfix(name string, when FeatureBundle, order int, pre, post string) Rule {
	return Rule{Name: name, When: when, Order: order, Kind: KindCircumfix, Pre: pre, Post: post}
}

// Template returns a rule that interpolates the current surface into
// template at StemPlaceholder when the precondition holds.
func Template(name string, when FeatureBundle, order int, template string) Rule {
	return Rule{Name: name, When: when, Order: order, Kind: KindTemplate, Template: template}
}

// Rewrite returns a rule that applies a regexp find/replace to the
// current surface when the precondition holds. The pattern is not
// compiled here: an invalid pattern surfaces as an error from Apply,
// so direct Generate callers see it while the table formatter can
// contain it per cell.
func Rewrite(name string, when FeatureBundle, order int, pattern, repl string) Rule {
	return Rule{Name: name, When: when, Order: order, Kind: KindRewrite, Pattern: pattern, Repl: repl}
}

// Applies reports whether the rule's precondition holds for feats.
func (r Rule) Applies(feats FeatureBundle) bool {
	return feats.Matches(r.When)
}

// Apply returns the edited surface when the precondition holds, and
// the surface unchanged otherwise. Only rewrite rules can fail.
func (r Rule) Apply(surface string, feats FeatureBundle) (string, error) {
	if !r.Applies(feats) {
		return surface, nil
	}
	switch r.Kind {
	case KindPrefix:
		return r.Pre + surface, nil
	case KindSuffix:
		return surface + r.Post, nil
	case KindCircumfix:
		return r.Pre + surface + r.Post, nil
	case KindTemplate:
		return strings.ReplaceAll(r.Template, StemPlaceholder, surface), nil
	case KindRewrite:
		if r.Pattern == "" {
			return surface, nil
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return "", fmt.Errorf("rule %q: compile pattern: %w", r.Name, err)
		}
		return re.ReplaceAllString(surface, r.Repl), nil
	default:
		return surface, nil
	}
}
