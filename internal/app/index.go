package app

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"runtime"

	"rag_ingest/internal/chunker"

	"github.com/philippgille/chromem-go"
)

// IndexDocuments разбивает документы на чанки, эмбеддит их и кладёт
// в векторную базу. Порядок чанков внутри документа сохраняется.
func (a *App) IndexDocuments(ctx context.Context, docs []chunker.Document) error {
	if len(docs) == 0 {
		log.Printf("⚠️  No documents to index")
		return nil
	}

	coll := a.db.GetCollection(collectionName, a.embeddingFunc)
	if coll == nil {
		var err error
		coll, err = a.db.CreateCollection(collectionName, map[string]string{}, a.embeddingFunc)
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
	}

	totalChunks := 0
	for _, doc := range docs {
		chunks := chunker.ChunkDocument(doc, a.chunkCfg, a.cfg.ChunkMethod)
		if len(chunks) == 0 {
			log.Printf("⚠️  Document %s produced no chunks", doc.Metadata["source"])
			continue
		}

		batch := make([]chromem.Document, 0, len(chunks))
		for _, ch := range chunks {
			batch = append(batch, chromem.Document{
				ID:       chunkID(ch),
				Content:  ch.Content,
				Metadata: ch.Metadata,
			})
		}

		if err := coll.AddDocuments(ctx, batch, runtime.NumCPU()); err != nil {
			return fmt.Errorf("failed to add chunks for %s: %w", doc.Metadata["source"], err)
		}

		totalChunks += len(chunks)
		log.Printf("📦 %s: %d chunks (%s)", doc.Metadata["source"], len(chunks), chunks[0].Metadata["chunk_method"])
	}

	if err := a.storage.SaveDocuments(docs, "documents.json"); err != nil {
		log.Printf("⚠️  Failed to save documents to storage: %v", err)
	}

	if err := a.saveDB(); err != nil {
		return fmt.Errorf("failed to save vector database: %w", err)
	}

	log.Printf("✅ Indexed %d chunks from %d documents", totalChunks, len(docs))
	return nil
}

// chunkID строит стабильный идентификатор чанка из его содержимого и источника
func chunkID(ch chunker.Document) string {
	hash := sha256.Sum256([]byte(ch.Content + ch.Metadata["source"] + ch.Metadata["chunk_id"]))
	return fmt.Sprintf("%x", hash[:8])
}
