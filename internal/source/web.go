package source

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rag_ingest/internal/chunker"
	"rag_ingest/internal/cleaner"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

const crawlerUserAgent = "Mozilla/5.0 (compatible; rag_ingest/1.0)"

// Crawler обходит сайт в ширину, не выходя за пределы стартового домена
type Crawler struct {
	client    *http.Client
	pageLimit int
}

// NewCrawler создаёт crawler с таймаутом на запрос и лимитом страниц
func NewCrawler(timeout time.Duration, pageLimit int) *Crawler {
	if pageLimit <= 0 {
		pageLimit = 25
	}
	return &Crawler{
		client:    &http.Client{Timeout: timeout},
		pageLimit: pageLimit,
	}
}

// Crawl обходит сайт начиная со startURL и возвращает документ на каждую
// страницу с извлекаемым текстом. Ошибки отдельных страниц не прерывают обход.
func (c *Crawler) Crawl(ctx context.Context, startURL string) ([]chunker.Document, error) {
	base, err := url.Parse(startURL)
	if err != nil {
		return nil, fmt.Errorf("invalid start URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme: %s", base.Scheme)
	}

	log.Printf("🌐 Starting crawl on domain: %s", base.Host)

	queue := []string{startURL}
	visited := make(map[string]bool)
	var docs []chunker.Document

	for len(queue) > 0 && len(visited) < c.pageLimit {
		select {
		case <-ctx.Done():
			return docs, ctx.Err()
		default:
		}

		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		log.Printf("🌐 Scraping: %s", current)
		html, err := c.fetch(ctx, current)
		if err != nil {
			log.Printf("⚠️  Request failed for %s: %v", current, err)
			continue
		}

		if text := extractPageText(html, current); text != "" {
			docs = append(docs, chunker.Document{
				Content:  text,
				Metadata: map[string]string{"source": current, "type": "web"},
			})
		}

		for _, link := range extractLinks(html, current) {
			parsed, err := url.Parse(link)
			if err != nil {
				continue
			}
			sameDomain := parsed.Host == base.Host
			httpLike := parsed.Scheme == "http" || parsed.Scheme == "https"
			if sameDomain && httpLike && !visited[link] {
				queue = append(queue, link)
			}
		}
	}

	log.Printf("✅ Crawl finished: %d pages visited, %d documents", len(visited), len(docs))
	return docs, nil
}

func (c *Crawler) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", crawlerUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// extractPageText достаёт основной текст страницы через readability,
// при неудаче — просто срезает теги
func extractPageText(html, pageURL string) string {
	parsed, _ := url.Parse(pageURL)
	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return cleaner.CleanText(article.TextContent)
	}
	return cleaner.CleanWebContent(html)
}

func extractLinks(html, pageURL string) []string {
	current, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		resolved, err := current.Parse(href)
		if err != nil {
			return
		}
		resolved.Fragment = ""
		links = append(links, resolved.String())
	})

	return links
}
