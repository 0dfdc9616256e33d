package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	DataDir          string        `env:"DATA_DIR" envDefault:"./data"`
	StorageDir       string        `env:"STORAGE_DIR" envDefault:"./storage"`
	OllamaURL        string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaEmbedModel string        `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`
	ChunkSize        int           `env:"CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap     int           `env:"CHUNK_OVERLAP" envDefault:"200"`
	MinChunkSize     int           `env:"MIN_CHUNK_SIZE" envDefault:"100"`
	ChunkMethod      string        `env:"CHUNK_METHOD" envDefault:"size"`
	CrawlLimit       int           `env:"CRAWL_LIMIT" envDefault:"25"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	TopK             int           `env:"TOP_K" envDefault:"5"`
	MetadataFile     string
	DBFile           string
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
