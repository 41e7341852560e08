package morphgen

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind marks a rule definition whose kind names none of the
// five rule variants.
var ErrUnknownKind = errors.New("unknown rule kind")

// ruleDef is the YAML shape of one rule entry.
type ruleDef struct {
	Name     string            `yaml:"name"`
	Kind     string            `yaml:"kind"`
	When     map[string]string `yaml:"when"`
	Order    int               `yaml:"order"`
	Prefix   string            `yaml:"prefix"`
	Suffix   string            `yaml:"suffix"`
	Template string            `yaml:"template"`
	Pattern  string            `yaml:"pattern"`
	Replace  string            `yaml:"replace"`
}

// irregularDef is one irregular override: the exact target bundle and
// the literal surface to emit for it. The loader derives the
// signature key itself, so hand-written keys cannot go stale against
// the canonicalization.
type irregularDef struct {
	When map[string]string `yaml:"when"`
	Form string            `yaml:"form"`
}

// lexemeDef is the YAML shape of one lexicon entry.
type lexemeDef struct {
	Lemma     string            `yaml:"lemma"`
	Stem      string            `yaml:"stem"`
	Features  map[string]string `yaml:"features"`
	Irregular []irregularDef    `yaml:"irregular"`
}

// definitions is the document root of a definitions file.
type definitions struct {
	Rules   []ruleDef   `yaml:"rules"`
	Lexemes []lexemeDef `yaml:"lexemes"`
}

// LoadDefinitions parses a YAML rule/lexicon document from r into a
// ready Morphology. The core defines no persistence of its own; this
// is the caller-side format the CLI and server feed from.
func LoadDefinitions(r io.Reader) (*Morphology, error) {
	var defs definitions
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}

	rules := make([]Rule, 0, len(defs.Rules))
	for i, rd := range defs.Rules {
		rule, err := rd.toRule()
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, rd.Name, err)
		}
		rules = append(rules, rule)
	}

	lexicon := NewLexicon()
	for i, ld := range defs.Lexemes {
		if ld.Lemma == "" || ld.Stem == "" {
			return nil, fmt.Errorf("lexeme %d (%q): lemma and stem are required", i, ld.Lemma)
		}
		lex := NewLexeme(ld.Lemma, ld.Stem).WithFeatures(FeatureBundle(ld.Features))
		for _, ir := range ld.Irregular {
			lex.WithIrregular(FeatureBundle(ir.When), ir.Form)
		}
		lexicon.Add(lex)
	}

	return New(rules, lexicon), nil
}

// LoadFile reads a YAML definitions file from disk.
func LoadFile(path string) (*Morphology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definitions: %w", err)
	}
	defer f.Close()

	m, err := LoadDefinitions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// toRule maps a YAML rule entry onto the matching rule constructor.
// Circumfix material reuses the prefix and suffix fields.
func (rd ruleDef) toRule() (Rule, error) {
	when := FeatureBundle(rd.When)
	switch rd.Kind {
	case "prefix":
		return Prefix(rd.Name, when, rd.Order, rd.Prefix), nil
	case "suffix":
		return Suffix(rd.Name, when, rd.Order, rd.Suffix), nil
	case "circumfix":
		return Circumfix(rd.Name, when, rd.Order, rd.Prefix, rd.Suffix), nil
	case "template":
		return Template(rd.Name, when, rd.Order, rd.Template), nil
	case "rewrite":
		return Rewrite(rd.Name, when, rd.Order, rd.Pattern, rd.Replace), nil
	default:
		return Rule{}, fmt.Errorf("%q: %w", rd.Kind, ErrUnknownKind)
	}
}
