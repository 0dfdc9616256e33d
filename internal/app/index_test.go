package app

import (
	"context"
	"path/filepath"
	"testing"

	"rag_ingest/internal/chunker"
	"rag_ingest/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedding отдаёт детерминированный вектор без похода в Ollama
func fakeEmbedding(_ context.Context, text string) ([]float32, error) {
	v := make([]float32, 4)
	for i, r := range text {
		v[i%4] += float32(r)
	}
	// chromem ожидает нормализованные векторы, но для теста хватит ненулевых
	var norm float32
	for _, x := range v {
		norm += x * x
	}
	if norm == 0 {
		v[0] = 1
	}
	return v, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DataDir:      dir,
		StorageDir:   filepath.Join(dir, "storage"),
		ChunkSize:    30,
		ChunkOverlap: 5,
		MinChunkSize: 3,
		ChunkMethod:  chunker.MethodSentences,
		TopK:         5,
		DBFile:       filepath.Join(dir, "vectors.gob"),
		MetadataFile: filepath.Join(dir, "metadata.json"),
	}

	a, err := New(cfg)
	require.NoError(t, err)
	a.SetEmbeddingFunc(fakeEmbedding)
	require.NoError(t, a.storage.Ensure())

	_, err = a.db.CreateCollection(collectionName, map[string]string{}, a.embeddingFunc)
	require.NoError(t, err)
	return a
}

func TestIndexDocuments(t *testing.T) {
	a := newTestApp(t)

	docs := []chunker.Document{{
		Content:  "First sentence here. Second sentence here. Third one.",
		Metadata: map[string]string{"source": "test.txt"},
	}}
	require.NoError(t, a.IndexDocuments(context.Background(), docs))

	coll := a.db.GetCollection(collectionName, a.embeddingFunc)
	require.NotNil(t, coll)
	assert.Greater(t, coll.Count(), 1)

	// Документы продублированы в JSON-хранилище
	stored, err := a.storage.LoadDocuments("documents.json")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, docs[0].Content, stored[0].Content)

	// Векторная база сохранена на диск
	assert.FileExists(t, a.cfg.DBFile)
}

func TestIndexDocuments_Search(t *testing.T) {
	a := newTestApp(t)

	docs := []chunker.Document{{
		Content:  "Alpha beta gamma. Delta epsilon zeta.",
		Metadata: map[string]string{"source": "greek.txt"},
	}}
	require.NoError(t, a.IndexDocuments(context.Background(), docs))

	results, err := a.Search(context.Background(), "Alpha beta gamma")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "greek.txt", results[0].Source)
}

func TestIndexDocuments_Empty(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.IndexDocuments(context.Background(), nil))
}

func TestChunkID_Stable(t *testing.T) {
	doc := chunker.Document{
		Content:  "same content",
		Metadata: map[string]string{"source": "x", "chunk_id": "0"},
	}
	assert.Equal(t, chunkID(doc), chunkID(doc))

	other := chunker.Document{
		Content:  "same content",
		Metadata: map[string]string{"source": "x", "chunk_id": "1"},
	}
	assert.NotEqual(t, chunkID(doc), chunkID(other))
}
