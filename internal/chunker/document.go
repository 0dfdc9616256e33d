package chunker

import (
	"strconv"
	"strings"
)

// ChunkDocument разбивает документ выбранной стратегией и превращает каждый
// непустой кусок в новый документ. Метаданные исходного документа копируются,
// затем добавляются chunk_id, chunk_method, chunk_size и total_chunks.
// Неизвестное имя стратегии трактуется как "size".
func ChunkDocument(doc Document, cfg Config, method string) []Document {
	if strings.TrimSpace(doc.Content) == "" {
		return nil
	}

	method = normalizeMethod(method)

	var raw []string
	switch method {
	case MethodSentences:
		raw = ChunkBySentences(doc.Content, cfg.MaxChunkSize)
	case MethodWords:
		raw = ChunkByWords(doc.Content, cfg.MaxChunkSize)
	case MethodParagraphs:
		raw = ChunkByParagraphs(doc.Content, cfg.MaxChunkSize)
	case MethodSmart:
		raw = SmartChunk(doc.Content, cfg.MaxChunkSize, cfg.MinChunkSize)
	default:
		raw = ChunkBySize(doc.Content, cfg.MaxChunkSize, cfg.Overlap)
	}

	// Стратегии уже отбрасывают пустые куски, но фильтруем ещё раз:
	// total_chunks и chunk_id должны считаться по итоговой последовательности
	chunks := make([]Document, 0, len(raw))
	for _, text := range raw {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		chunks = append(chunks, Document{
			Content:  text,
			Metadata: cloneMetadata(doc.Metadata),
		})
	}

	total := strconv.Itoa(len(chunks))
	for i := range chunks {
		chunks[i].Metadata["chunk_id"] = strconv.Itoa(i)
		chunks[i].Metadata["chunk_method"] = method
		chunks[i].Metadata["chunk_size"] = strconv.Itoa(runeLen(chunks[i].Content))
		chunks[i].Metadata["total_chunks"] = total
	}

	return chunks
}

func normalizeMethod(method string) string {
	switch strings.ToLower(method) {
	case MethodSentences, MethodWords, MethodParagraphs, MethodSmart:
		return strings.ToLower(method)
	default:
		return MethodSize
	}
}

func cloneMetadata(metadata map[string]string) map[string]string {
	clone := make(map[string]string, len(metadata)+4)
	for k, v := range metadata {
		clone[k] = v
	}
	return clone
}
