package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"rag_ingest/internal/chunker"
	"rag_ingest/internal/config"
	"rag_ingest/internal/source"

	"github.com/philippgille/chromem-go"
)

const collectionName = "docs"

type App struct {
	cfg           *config.Config
	db            *chromem.DB
	embeddingFunc chromem.EmbeddingFunc
	storage       *Storage
	crawler       *source.Crawler
	chunkCfg      chunker.Config
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:     cfg,
		storage: NewStorage(cfg.StorageDir),
		crawler: source.NewCrawler(cfg.HTTPTimeout, cfg.CrawlLimit),
		chunkCfg: chunker.Config{
			MaxChunkSize: cfg.ChunkSize,
			Overlap:      cfg.ChunkOverlap,
			MinChunkSize: cfg.MinChunkSize,
		},
	}

	// Initialize embedding function
	ollamaEmbeddingURL := cfg.OllamaURL + "/api"
	app.embeddingFunc = chromem.NewEmbeddingFuncOllama(cfg.OllamaEmbedModel, ollamaEmbeddingURL)

	// Initialize vector database
	app.db = chromem.NewDB()

	return app, nil
}

// SetEmbeddingFunc подменяет функцию эмбеддинга (для тестов)
func (a *App) SetEmbeddingFunc(f chromem.EmbeddingFunc) {
	a.embeddingFunc = f
}

func (a *App) Init() error {
	if err := ensureOllamaModel(a.cfg); err != nil {
		return fmt.Errorf("ollama model check failed: %w", err)
	}

	if err := a.storage.Ensure(); err != nil {
		return fmt.Errorf("failed to prepare storage: %w", err)
	}

	// Load existing DB if it exists
	if _, err := os.Stat(a.cfg.DBFile); err == nil {
		log.Printf("Found existing DB file, loading...")
		if err := a.loadDB(); err != nil {
			return fmt.Errorf("failed to load vector database: %w", err)
		}
	} else {
		log.Printf("No existing DB file found, starting fresh")
		if _, err := a.db.CreateCollection(collectionName, map[string]string{}, a.embeddingFunc); err != nil {
			return fmt.Errorf("failed to create initial collection: %w", err)
		}
	}

	return nil
}

func (a *App) loadDB() error {
	log.Printf("Loading vector database from: %s", a.cfg.DBFile)
	if err := a.db.ImportFromFile(a.cfg.DBFile, "", collectionName); err != nil {
		return fmt.Errorf("failed to import DB: %w", err)
	}

	// Проверяем состояние после загрузки
	if coll := a.db.GetCollection(collectionName, a.embeddingFunc); coll == nil {
		log.Printf("Warning: Collection %q not found after DB load", collectionName)
	} else {
		log.Printf("Successfully loaded vector database, collection has %d documents", coll.Count())
	}

	return nil
}

func (a *App) saveDB() error {
	return a.db.ExportToFile(a.cfg.DBFile, true, "", collectionName)
}

// ensureOllamaModel проверяет, что Ollama доступна и embedding-модель скачана
func ensureOllamaModel(cfg *config.Config) error {
	type ollamaPullRequest struct {
		Name   string `json:"name"`
		Stream bool   `json:"stream"`
	}

	resp, err := http.Get(cfg.OllamaURL + "/api/tags")
	if err != nil || resp.StatusCode != 200 {
		return fmt.Errorf("ollama is not running or not reachable at %s", cfg.OllamaURL)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if bytes.Contains(body, []byte(cfg.OllamaEmbedModel)) {
		log.Printf("Model %s is available", cfg.OllamaEmbedModel)
		return nil
	}

	log.Printf("Model %s not found, pulling...", cfg.OllamaEmbedModel)
	pullReq := ollamaPullRequest{Name: cfg.OllamaEmbedModel, Stream: false}
	b, _ := json.Marshal(pullReq)
	pullResp, err := http.Post(cfg.OllamaURL+"/api/pull", "application/json", bytes.NewBuffer(b))
	if err != nil {
		return fmt.Errorf("failed to pull model %s: %v", cfg.OllamaEmbedModel, err)
	}
	defer pullResp.Body.Close()
	if pullResp.StatusCode != 200 {
		return fmt.Errorf("failed to pull model %s: status %d", cfg.OllamaEmbedModel, pullResp.StatusCode)
	}
	log.Printf("Model %s pulled successfully", cfg.OllamaEmbedModel)

	return nil
}
