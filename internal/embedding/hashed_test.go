package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedDimension(t *testing.T) {
	e := NewHashedEmbedder()
	assert.Equal(t, DefaultDimension, e.Dimension())

	vec, err := e.Embed("hola mundo")
	require.NoError(t, err)
	assert.Len(t, vec, DefaultDimension)
}

func TestEmbedUnitNorm(t *testing.T) {
	e := NewHashedEmbedder()
	vec, err := e.Embed("Mariano es desarrollador full-stack y líder técnico")
	require.NoError(t, err)

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestEmbedDeterministic(t *testing.T) {
	e := NewHashedEmbedder()
	a, err := e.Embed("kubernetes docker terraform")
	require.NoError(t, err)
	b, err := e.Embed("kubernetes docker terraform")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbedCaseInsensitive(t *testing.T) {
	e := NewHashedEmbedder()
	a, err := e.Embed("Kubernetes Docker")
	require.NoError(t, err)
	b, err := e.Embed("kubernetes docker")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbedEmptyTextIsZeroVector(t *testing.T) {
	e := NewHashedEmbedder()
	for _, text := range []string{"", "   ", "\n\t"} {
		vec, err := e.Embed(text)
		require.NoError(t, err)
		require.Len(t, vec, DefaultDimension)
		for i, v := range vec {
			require.Zerof(t, v, "component %d for %q", i, text)
			require.False(t, math.IsNaN(v))
		}
	}
}

func TestEmbedDistinguishesTexts(t *testing.T) {
	e := NewHashedEmbedder()
	a, err := e.Embed("habilidades técnicas backend")
	require.NoError(t, err)
	b, err := e.Embed("enlaces sociales linkedin github")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
