package source

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rag_ingest/internal/chunker"
	"rag_ingest/internal/cleaner"

	"github.com/ledongthuc/pdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LoadFiles читает файлы и превращает их в документы. Нечитаемые
// и неподдерживаемые файлы пропускаются с записью в лог.
func LoadFiles(paths []string) []chunker.Document {
	var docs []chunker.Document

	for _, path := range paths {
		content, err := ReadFile(path)
		if err != nil {
			log.Printf("❌ Failed to read %s: %v", path, err)
			continue
		}
		if content == "" {
			log.Printf("⚠️  Empty file skipped: %s", path)
			continue
		}

		docs = append(docs, chunker.Document{
			Content: content,
			Metadata: map[string]string{
				"source": path,
				"type":   strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
			},
		})
		log.Printf("📄 Loaded %s (%d bytes)", path, len(content))
	}

	return docs
}

// ReadFile извлекает текст из файла по его расширению
func ReadFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file not found: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return readPDF(path)
	case ".md", ".markdown":
		return readMarkdown(path)
	case ".txt", ".text":
		return readText(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Битые страницы пропускаем, остальное пригодится
			continue
		}
		if pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return cleaner.CleanPDFText(sb.String()), nil
}

// readMarkdown конвертирует markdown в plain text через goldmark AST,
// сохраняя границы параграфов для последующего разбиения
func readMarkdown(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			switch node := n.(type) {
			case *ast.Text:
				sb.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					sb.WriteString("\n")
				}
			case *ast.String:
				sb.Write(node.Value)
			}
		} else {
			switch n.(type) {
			case *ast.Heading, *ast.Paragraph, *ast.ListItem:
				sb.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String()), nil
}
