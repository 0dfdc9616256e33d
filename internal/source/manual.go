package source

import (
	"errors"
	"log"
	"strings"
	"time"

	"rag_ingest/internal/chunker"
	"rag_ingest/internal/cleaner"

	"github.com/google/uuid"
)

// Entry — документ, введённый вручную
type Entry struct {
	Title    string
	Content  string
	Category string
}

// Validate проверяет обязательные поля записи
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(e.Content) == "" {
		return errors.New("content is required")
	}
	return nil
}

// LoadManualEntries превращает ручные записи в документы.
// Невалидные записи пропускаются с записью в лог.
func LoadManualEntries(entries []Entry) []chunker.Document {
	var docs []chunker.Document

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			log.Printf("❌ Skipping manual entry %q: %v", e.Title, err)
			continue
		}

		content := cleaner.FormatManualEntry(e.Title, e.Content, e.Category)
		if content == "" {
			continue
		}

		category := strings.TrimSpace(e.Category)
		if category == "" {
			category = "General"
		}

		docs = append(docs, chunker.Document{
			Content: content,
			Metadata: map[string]string{
				"source":    "manual_" + uuid.NewString(),
				"title":     strings.TrimSpace(e.Title),
				"category":  category,
				"type":      "manual",
				"timestamp": time.Now().Format(time.RFC3339),
			},
		})
		log.Printf("📝 Processed manual entry: %s", e.Title)
	}

	return docs
}
