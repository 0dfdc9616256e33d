package chunker

// SmartChunk — адаптивная стратегия. Сначала пробует разбиение по параграфам.
// Если документ распался на несколько чанков и все они меньше minSize,
// параграфное разбиение бесполезно — берём скользящее окно с дефолтным
// overlap. Иначе каждый чанк, всё ещё превышающий maxSize, дорезается
// по предложениям.
func SmartChunk(text string, maxSize, minSize int) []string {
	if maxSize <= 0 {
		return nil
	}

	paragraphChunks := ChunkByParagraphs(text, maxSize)
	if len(paragraphChunks) == 0 {
		return nil
	}

	if len(paragraphChunks) > 1 && allShorter(paragraphChunks, minSize) {
		return ChunkBySize(text, maxSize, DefaultOverlap)
	}

	var final []string
	for _, chunk := range paragraphChunks {
		// Параграфное разбиение гарантирует размер лишь приблизительно:
		// путь через oversize-fallback может вернуть чанк больше maxSize
		if runeLen(chunk) > maxSize {
			final = append(final, ChunkBySentences(chunk, maxSize)...)
		} else {
			final = append(final, chunk)
		}
	}

	return final
}

func allShorter(chunks []string, size int) bool {
	for _, c := range chunks {
		if runeLen(c) >= size {
			return false
		}
	}
	return true
}
