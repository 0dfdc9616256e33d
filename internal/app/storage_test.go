package app

import (
	"testing"

	"rag_ingest/internal/chunker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_SaveLoadRoundtrip(t *testing.T) {
	s := NewStorage(t.TempDir())
	require.NoError(t, s.Ensure())

	docs := []chunker.Document{
		{Content: "first document", Metadata: map[string]string{"source": "a.txt"}},
		{Content: "second document", Metadata: map[string]string{"source": "b.txt", "type": "txt"}},
	}
	require.NoError(t, s.SaveDocuments(docs, "documents.json"))

	loaded, err := s.LoadDocuments("documents.json")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "first document", loaded[0].Content)
	assert.Equal(t, "a.txt", loaded[0].Metadata["source"])
	assert.Equal(t, docs[1].Metadata, loaded[1].Metadata)
}

func TestStorage_LogAccumulates(t *testing.T) {
	s := NewStorage(t.TempDir())
	require.NoError(t, s.Ensure())

	docs := []chunker.Document{{Content: "doc", Metadata: map[string]string{}}}
	require.NoError(t, s.SaveDocuments(docs, "one.json"))
	require.NoError(t, s.SaveRawText("raw snapshot", "raw.txt"))

	entries, err := s.Log()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "json_save", entries[0].Type)
	assert.Equal(t, "one.json", entries[0].Filename)
	assert.Equal(t, 1, entries[0].DocumentCount)
	assert.Equal(t, "raw_save", entries[1].Type)
	assert.False(t, entries[1].SavedAt.IsZero())
}

func TestStorage_LoadMissingFile(t *testing.T) {
	s := NewStorage(t.TempDir())

	_, err := s.LoadDocuments("nope.json")
	assert.Error(t, err)
}

func TestStorage_EmptyLog(t *testing.T) {
	s := NewStorage(t.TempDir())

	entries, err := s.Log()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
