package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conlang-tools/morphgen"
)

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    morphgen.FeatureBundle
		wantErr bool
	}{
		{"empty", "", morphgen.FeatureBundle{}, false},
		{"single", "cat=verb", morphgen.FeatureBundle{"cat": "verb"}, false},
		{"multiple", "cat=agent,num=sg", morphgen.FeatureBundle{"cat": "agent", "num": "sg"}, false},
		{"spaces trimmed", " cat=verb , num=pl ", morphgen.FeatureBundle{"cat": "verb", "num": "pl"}, false},
		{"missing value", "cat", nil, true},
		{"missing key", "=verb", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFeatures(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
