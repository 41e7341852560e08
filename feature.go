package morphgen

import (
	"sort"
	"strings"
)

// FeatureBundle maps grammatical feature names to values, e.g.
// {"cat": "agent", "num": "sg"}. Bundles are treated as immutable
// after construction: every combining operation allocates a new map.
type FeatureBundle map[string]string

// Merge returns a new bundle with every pair from base overlaid by
// every pair from over; over wins on key collisions.
func Merge(base, over FeatureBundle) FeatureBundle {
	out := make(FeatureBundle, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Matches reports whether every pair in need equals the corresponding
// pair in feats. Keys absent from need do not constrain the match, so
// an empty need matches any bundle, and a key present in need but
// absent from feats fails the match.
func (feats FeatureBundle) Matches(need FeatureBundle) bool {
	for k, v := range need {
		if feats[k] != v {
			return false
		}
	}
	return true
}

// sortedKeys returns the bundle's keys in lexicographic order.
// Every canonical encoding of a bundle iterates in this order.
func (feats FeatureBundle) sortedKeys() []string {
	keys := make([]string, 0, len(feats))
	for k := range feats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Signature returns the canonical encoding of feats: key=value pairs
// sorted by key and joined with "|". It is the lookup key for
// irregular overrides and the dedup key for paradigm inference, and
// must stay inverse to ParseSignature for reachable bundles.
func (feats FeatureBundle) Signature() string {
	keys := feats.sortedKeys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + feats[k]
	}
	return strings.Join(parts, "|")
}

// ParseSignature decodes a string in Signature form back into a
// bundle. Segments without "=" decode as a key with an empty value;
// such a segment never round-trips, which is exactly how lexicon
// construction detects unreachable irregular keys.
func ParseSignature(sig string) FeatureBundle {
	feats := make(FeatureBundle)
	if sig == "" {
		return feats
	}
	for _, part := range strings.Split(sig, "|") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 {
			feats[kv[0]] = kv[1]
		} else {
			feats[kv[0]] = ""
		}
	}
	return feats
}
