package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManualEntries(t *testing.T) {
	entries := []Entry{
		{Title: "Company Policy", Content: "Data privacy guidelines apply.", Category: "Policy"},
		{Title: "", Content: "orphan content"},
		{Title: "No Category", Content: "Support is available 24/7."},
	}

	docs := LoadManualEntries(entries)
	require.Len(t, docs, 2)

	first := docs[0]
	assert.Equal(t, "Title: Company Policy\nCategory: Policy\nContent: Data privacy guidelines apply.", first.Content)
	assert.Equal(t, "Company Policy", first.Metadata["title"])
	assert.Equal(t, "Policy", first.Metadata["category"])
	assert.Equal(t, "manual", first.Metadata["type"])
	assert.NotEmpty(t, first.Metadata["timestamp"])
	assert.Contains(t, first.Metadata["source"], "manual_")

	assert.Equal(t, "General", docs[1].Metadata["category"])
}

func TestLoadManualEntries_UniqueSources(t *testing.T) {
	entries := []Entry{
		{Title: "A", Content: "first"},
		{Title: "B", Content: "second"},
	}

	docs := LoadManualEntries(entries)
	require.Len(t, docs, 2)
	assert.NotEqual(t, docs[0].Metadata["source"], docs[1].Metadata["source"])
}

func TestEntryValidate(t *testing.T) {
	assert.Error(t, Entry{Title: " ", Content: "x"}.Validate())
	assert.Error(t, Entry{Title: "x", Content: ""}.Validate())
	assert.NoError(t, Entry{Title: "x", Content: "y"}.Validate())
}
