package app

import (
	"context"
	"fmt"
)

// SearchResult - результат векторного поиска
type SearchResult struct {
	Content    string
	Source     string
	ChunkID    string
	Similarity float32
}

// Search ищет чанки, похожие на запрос
func (a *App) Search(ctx context.Context, queryText string) ([]SearchResult, error) {
	coll := a.db.GetCollection(collectionName, a.embeddingFunc)
	if coll == nil {
		return nil, fmt.Errorf("collection %q not found", collectionName)
	}

	topK := a.cfg.TopK
	if count := coll.Count(); topK > count {
		topK = count
	}
	if topK == 0 {
		return nil, nil
	}

	results, err := coll.Query(ctx, queryText, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	searchResults := make([]SearchResult, 0, len(results))
	for _, r := range results {
		searchResults = append(searchResults, SearchResult{
			Content:    r.Content,
			Source:     r.Metadata["source"],
			ChunkID:    r.Metadata["chunk_id"],
			Similarity: r.Similarity,
		})
	}

	return searchResults, nil
}
