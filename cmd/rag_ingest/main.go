package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"rag_ingest/internal/app"
	"rag_ingest/internal/config"
	"rag_ingest/internal/source"

	"github.com/joho/godotenv"
)

func main() {
	// Парсим флаги командной строки
	files := flag.String("files", "", "Comma-separated list of files to index (.txt, .md, .pdf)")
	startURL := flag.String("url", "", "Start URL to crawl and index")
	dataDir := flag.String("data", "", "Data directory for vector DB")
	method := flag.String("method", "", "Chunking method: size|sentences|words|paragraphs|smart")
	flag.Parse()

	// Флаги перекрывают env переменные
	if *dataDir != "" {
		os.Setenv("DATA_DIR", *dataDir)
	}
	if *method != "" {
		os.Setenv("CHUNK_METHOD", *method)
	}

	// Загружаем .env (опционально)
	_ = godotenv.Load()

	// Загружаем конфиг
	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Создаём директорию для данных
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}
	cfg.DBFile = filepath.Join(cfg.DataDir, "vectors.gob")
	cfg.MetadataFile = filepath.Join(cfg.DataDir, "metadata.json")

	log.Printf("Data directory: %s", cfg.DataDir)
	log.Printf("Chunking method: %s (size=%d, overlap=%d)", cfg.ChunkMethod, cfg.ChunkSize, cfg.ChunkOverlap)

	// Создаём app
	a, err := app.New(&cfg)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	// Инициализируем (проверка Ollama, загрузка БД)
	if err := a.Init(); err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	// Контекст с сигналами завершения
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	// Пакетный режим: индексируем указанные файлы и/или сайт и выходим
	if *files != "" || *startURL != "" {
		if *files != "" {
			docs := source.LoadFiles(splitList(*files))
			if err := a.IndexDocuments(ctx, docs); err != nil {
				log.Fatalf("failed to index files: %v", err)
			}
		}
		if *startURL != "" {
			crawler := source.NewCrawler(cfg.HTTPTimeout, cfg.CrawlLimit)
			docs, err := crawler.Crawl(ctx, *startURL)
			if err != nil {
				log.Fatalf("crawl failed: %v", err)
			}
			if err := a.IndexDocuments(ctx, docs); err != nil {
				log.Fatalf("failed to index crawled pages: %v", err)
			}
		}
		return
	}

	// Иначе интерактивный режим
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app stopped with error: %v", err)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
