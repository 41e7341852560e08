package morphgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	base := FeatureBundle{"cat": "verb", "num": "sg"}
	over := FeatureBundle{"num": "pl", "tense": "past"}

	got := Merge(base, over)
	assert.Equal(t, FeatureBundle{"cat": "verb", "num": "pl", "tense": "past"}, got)

	// inputs must stay untouched
	assert.Equal(t, FeatureBundle{"cat": "verb", "num": "sg"}, base)
	assert.Equal(t, FeatureBundle{"num": "pl", "tense": "past"}, over)
}

func TestMergeNil(t *testing.T) {
	got := Merge(nil, FeatureBundle{"cat": "verb"})
	assert.Equal(t, FeatureBundle{"cat": "verb"}, got)

	got = Merge(FeatureBundle{"cat": "verb"}, nil)
	assert.Equal(t, FeatureBundle{"cat": "verb"}, got)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		feats FeatureBundle
		need  FeatureBundle
		want  bool
	}{
		{"empty need matches anything", FeatureBundle{"cat": "noun"}, FeatureBundle{}, true},
		{"empty need matches empty", FeatureBundle{}, FeatureBundle{}, true},
		{"exact", FeatureBundle{"cat": "verb"}, FeatureBundle{"cat": "verb"}, true},
		{"extra keys ignored", FeatureBundle{"cat": "verb", "num": "sg"}, FeatureBundle{"cat": "verb"}, true},
		{"value mismatch", FeatureBundle{"cat": "noun"}, FeatureBundle{"cat": "verb"}, false},
		{"missing key fails", FeatureBundle{"cat": "verb"}, FeatureBundle{"num": "sg"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.feats.Matches(tt.need))
		})
	}
}

func TestSignature(t *testing.T) {
	tests := []struct {
		name  string
		feats FeatureBundle
		want  string
	}{
		{"empty", FeatureBundle{}, ""},
		{"single", FeatureBundle{"cat": "verb"}, "cat=verb"},
		{"keys sorted", FeatureBundle{"num": "sg", "cat": "agent"}, "cat=agent|num=sg"},
		{"empty value kept", FeatureBundle{"cat": ""}, "cat="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.feats.Signature())
		})
	}
}

func TestParseSignature(t *testing.T) {
	feats := ParseSignature("cat=agent|num=sg")
	assert.Equal(t, FeatureBundle{"cat": "agent", "num": "sg"}, feats)

	require.Empty(t, ParseSignature(""))

	// canonical strings round-trip exactly
	for _, sig := range []string{"", "cat=verb", "cat=agent|num=pl", "a=1|b=2|c=3"} {
		assert.Equal(t, sig, ParseSignature(sig).Signature(), "round-trip %q", sig)
	}

	// non-canonical strings do not survive the round trip
	for _, sig := range []string{"num=sg|cat=agent", "cat", "cat=verb|cat=verb"} {
		assert.NotEqual(t, sig, ParseSignature(sig).Signature(), "should not round-trip %q", sig)
	}
}
