package morphgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLemmaCandidates(t *testing.T) {
	tests := []struct {
		lemma string
		want  []string
	}{
		{"paint", []string{"paint", "painte"}},
		{"carve", []string{"carve"}},
		{"carv", []string{"carv", "carve"}},
		{"runn", []string{"runn", "runne", "run"}},
		{"see", []string{"see", "se"}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			assert.Equal(t, tt.want, lemmaCandidates(tt.lemma))
		})
	}
}

func TestResolveExact(t *testing.T) {
	x := agentLexicon()
	lex, ok := x.Resolve("hunt")
	require.True(t, ok)
	assert.Equal(t, "zingel", lex.Stem)
}

func TestResolveSilentE(t *testing.T) {
	x := agentLexicon()

	// "carv" is a plausible guesser output for "carve"
	lex, ok := x.Resolve("carv")
	require.True(t, ok)
	assert.Equal(t, "carve", lex.Lemma)
}

func TestResolveDegeminated(t *testing.T) {
	x := NewLexicon(NewLexeme("run", "rak"))

	lex, ok := x.Resolve("runn")
	require.True(t, ok)
	assert.Equal(t, "run", lex.Lemma)
}

func TestResolveExactWinsOverVariants(t *testing.T) {
	x := NewLexicon(
		NewLexeme("carv", "direct"),
		NewLexeme("carve", "variant"),
	)
	lex, ok := x.Resolve("carv")
	require.True(t, ok)
	assert.Equal(t, "direct", lex.Stem)
}

func TestResolveMiss(t *testing.T) {
	x := agentLexicon()

	_, ok := x.Resolve("fly")
	assert.False(t, ok)

	_, ok = x.Resolve("")
	assert.False(t, ok)
}
