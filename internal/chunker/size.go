package chunker

import "strings"

// ChunkBySize разбивает текст скользящим окном фиксированного размера.
// Каждое следующее окно начинается на size-overlap символов правее предыдущего.
// Окна обрезаются по краям, пустые после обрезки — пропускаются.
func ChunkBySize(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) == 0 || size <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}

	var chunks []string
	start := 0

	for start < len(runes) {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}

		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}

		next := end - overlap
		if next <= start {
			// overlap >= size: шагаем к концу окна, иначе зациклимся
			next = end
		}
		start = next
	}

	return chunks
}
