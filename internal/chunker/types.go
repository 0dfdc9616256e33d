package chunker

// Document — единица текста с метаданными. Источники (файлы, веб, ручной ввод)
// создают документы, chunker разбивает их на более мелкие документы.
// Входной документ никогда не мутируется: chunker читает Content и копирует Metadata.
type Document struct {
	Content  string            // Текст документа
	Metadata map[string]string // Метаданные (source, type и т.д.)
}

// Config содержит общие параметры для всех стратегий разбиения
type Config struct {
	MaxChunkSize int // Максимальный размер чанка в символах
	Overlap      int // Размер overlap между чанками (только для size)
	MinChunkSize int // Минимальный полезный размер чанка (только для smart)
}

// Названия стратегий разбиения
const (
	MethodSize       = "size"
	MethodSentences  = "sentences"
	MethodWords      = "words"
	MethodParagraphs = "paragraphs"
	MethodSmart      = "smart"
)

// Значения по умолчанию
const (
	DefaultChunkSize    = 1000
	DefaultOverlap      = 200
	DefaultMinChunkSize = 100
)
