package app

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"rag_ingest/internal/source"
)

// Run запускает интерактивный режим: каждая строка — это URL для обхода,
// путь к файлу для индексации, либо команда (manual, search, log).
func (a *App) Run(ctx context.Context) error {
	log.Println("Application started")
	log.Println("Enter a file path or URL to index. Commands: manual, search <query>, log. Ctrl+C to exit.")

	scanner := bufio.NewScanner(os.Stdin)

	// Увеличим буфер, если пути/строки будут длинные
	const maxLineSize = 1024 * 1024
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down application")
			return nil
		default:
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("stdin error: %w", err)
				}
				// EOF
				log.Println("stdin closed")
				return nil
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			a.handleLine(ctx, scanner, line)
		}
	}
}

func (a *App) handleLine(ctx context.Context, scanner *bufio.Scanner, line string) {
	switch {
	case line == "manual":
		a.handleManual(ctx, scanner)
	case strings.HasPrefix(line, "search "):
		a.handleSearch(ctx, strings.TrimPrefix(line, "search "))
	case line == "log":
		a.handleLog()
	case strings.HasPrefix(line, "http://"), strings.HasPrefix(line, "https://"):
		a.handleURL(ctx, line)
	default:
		a.handleFile(ctx, line)
	}
}

func (a *App) handleFile(ctx context.Context, path string) {
	if _, err := os.Stat(path); err != nil {
		log.Printf("❌ Not a file, URL or command: %s", path)
		return
	}

	docs := source.LoadFiles([]string{path})
	if len(docs) == 0 {
		return
	}
	if err := a.IndexDocuments(ctx, docs); err != nil {
		log.Printf("❌ Indexing failed: %v", err)
	}
}

func (a *App) handleURL(ctx context.Context, startURL string) {
	docs, err := a.crawler.Crawl(ctx, startURL)
	if err != nil {
		log.Printf("❌ Crawl failed: %v", err)
		return
	}
	if len(docs) == 0 {
		log.Printf("⚠️  Crawl produced no documents")
		return
	}
	if err := a.IndexDocuments(ctx, docs); err != nil {
		log.Printf("❌ Indexing failed: %v", err)
	}
}

// handleManual собирает ручную запись в три вопроса
func (a *App) handleManual(ctx context.Context, scanner *bufio.Scanner) {
	readLine := func(prompt string) string {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}

	entry := source.Entry{
		Title:    readLine("Title: "),
		Content:  readLine("Content: "),
		Category: readLine("Category (optional): "),
	}

	docs := source.LoadManualEntries([]source.Entry{entry})
	if len(docs) == 0 {
		log.Printf("❌ Title and content are required")
		return
	}
	if err := a.IndexDocuments(ctx, docs); err != nil {
		log.Printf("❌ Indexing failed: %v", err)
	}
}

func (a *App) handleSearch(ctx context.Context, query string) {
	results, err := a.Search(ctx, query)
	if err != nil {
		log.Printf("❌ Search error: %v", err)
		return
	}

	log.Printf("🔍 Found %d relevant chunks:", len(results))
	for i, r := range results {
		log.Printf("   %d. %s #%s (similarity: %.2f)", i+1, r.Source, r.ChunkID, r.Similarity)
	}
}

func (a *App) handleLog() {
	entries, err := a.storage.Log()
	if err != nil {
		log.Printf("❌ Failed to read storage log: %v", err)
		return
	}
	if len(entries) == 0 {
		log.Printf("Storage log is empty")
		return
	}
	for _, e := range entries {
		log.Printf("   %s  %-10s %s (%d documents)",
			e.SavedAt.Format("2006-01-02 15:04:05"), e.Type, e.Filename, e.DocumentCount)
	}
}
