package morphgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorphologyGenerate(t *testing.T) {
	m := agentMorphology()

	got, err := m.Generate("paint", FeatureBundle{"cat": "verb"})
	require.NoError(t, err)
	assert.Equal(t, "dweba", got)

	// resolution applies spelling variants before generation
	got, err = m.Generate("carv", FeatureBundle{"cat": "verb"})
	require.NoError(t, err)
	assert.Equal(t, "baza", got)
}

func TestMorphologyGenerateNotFound(t *testing.T) {
	m := agentMorphology()

	_, err := m.Generate("fly", FeatureBundle{"cat": "verb"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "fly")
}

func TestMorphologyParadigm(t *testing.T) {
	m := agentMorphology()

	entries := m.Paradigm()
	require.Len(t, entries, 4)
	assert.Equal(t, "base", entries[0].Label)
	assert.Equal(t, m.Paradigm(), entries, "inference is deterministic")
}

func TestMorphologyAccessors(t *testing.T) {
	m := agentMorphology()
	assert.Len(t, m.Generator().Rules(), 3)
	assert.Equal(t, 4, m.Lexicon().Len())
}
