package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkBySentences_TinyLimit(t *testing.T) {
	// При лимите 5 предложения не упаковываются вместе
	chunks := ChunkBySentences("A. B. C.", 5)
	assert.Equal(t, []string{"A", "B", "C"}, chunks)
}

func TestChunkBySentences_PacksIntoOneChunk(t *testing.T) {
	chunks := ChunkBySentences("One. Two. Three.", 100)
	assert.Equal(t, []string{"One. Two. Three"}, chunks)
}

func TestChunkBySentences_SingleSentence(t *testing.T) {
	chunks := ChunkBySentences("Hello world", 100)
	assert.Equal(t, []string{"Hello world"}, chunks)
}

func TestChunkBySentences_MixedDelimiters(t *testing.T) {
	// !, ? и последовательности знаков — один разделитель
	chunks := ChunkBySentences("Wow! Really?! Yes...", 100)
	assert.Equal(t, []string{"Wow. Really. Yes"}, chunks)
}

func TestChunkBySentences_OversizedSentenceFallsBackToWords(t *testing.T) {
	chunks := ChunkBySentences("aaaa bbbb cccc", 10)
	assert.Equal(t, []string{"aaaa bbbb", "cccc"}, chunks)
}

func TestChunkBySentences_EmptyInput(t *testing.T) {
	assert.Empty(t, ChunkBySentences("", 100))
	assert.Empty(t, ChunkBySentences("...", 100))
	assert.Empty(t, ChunkBySentences("text", 0))
}

func TestChunkBySentences_NoEmptyChunks(t *testing.T) {
	chunks := ChunkBySentences("First.  . ! Second... Third?", 10)
	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		assert.NotEmpty(t, c)
	}
}
