package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rag_ingest/internal/chunker"
)

const metadataLogName = "metadata.json"

// Storage хранит документы и журнал операций в JSON-файлах
type Storage struct {
	dir string
}

// StoredDocument — сериализуемая форма документа
type StoredDocument struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
	SavedAt  time.Time         `json:"saved_at"`
}

// LogEntry — запись журнала операций
type LogEntry struct {
	Type          string    `json:"type"`
	Filename      string    `json:"filename"`
	DocumentCount int       `json:"document_count"`
	SavedAt       time.Time `json:"saved_at"`
}

func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

// Ensure создаёт директорию хранилища, если её нет
func (s *Storage) Ensure() error {
	return os.MkdirAll(s.dir, 0755)
}

// SaveDocuments сохраняет документы в JSON и дописывает запись в журнал
func (s *Storage) SaveDocuments(docs []chunker.Document, filename string) error {
	now := time.Now()
	stored := make([]StoredDocument, 0, len(docs))
	for _, d := range docs {
		stored = append(stored, StoredDocument{
			Content:  d.Content,
			Metadata: d.Metadata,
			SavedAt:  now,
		})
	}

	path := filepath.Join(s.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stored); err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}

	return s.appendLog(LogEntry{
		Type:          "json_save",
		Filename:      filename,
		DocumentCount: len(docs),
		SavedAt:       now,
	})
}

// LoadDocuments читает документы из JSON-файла
func (s *Storage) LoadDocuments(filename string) ([]chunker.Document, error) {
	path := filepath.Join(s.dir, filename)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var stored []StoredDocument
	if err := json.NewDecoder(f).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	docs := make([]chunker.Document, 0, len(stored))
	for _, sd := range stored {
		docs = append(docs, chunker.Document{Content: sd.Content, Metadata: sd.Metadata})
	}
	return docs, nil
}

// SaveRawText сохраняет сырой текст как отдельный файл-снимок
func (s *Storage) SaveRawText(text, filename string) error {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return s.appendLog(LogEntry{
		Type:          "raw_save",
		Filename:      filename,
		DocumentCount: 1,
		SavedAt:       time.Now(),
	})
}

// Log возвращает журнал операций хранилища
func (s *Storage) Log() ([]LogEntry, error) {
	return s.readLog()
}

func (s *Storage) appendLog(entry LogEntry) error {
	entries, err := s.readLog()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	f, err := os.Create(filepath.Join(s.dir, metadataLogName))
	if err != nil {
		return fmt.Errorf("failed to create metadata log: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func (s *Storage) readLog() ([]LogEntry, error) {
	f, err := os.Open(filepath.Join(s.dir, metadataLogName))
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []LogEntry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode metadata log: %w", err)
	}
	return entries, nil
}
