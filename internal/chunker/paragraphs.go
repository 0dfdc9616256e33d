package chunker

// ChunkByParagraphs разбивает текст на параграфы (по пустым строкам) и жадно
// упаковывает их в чанки размером до maxSize, соединяя через "\n\n".
// Параграф длиннее maxSize разбивается дальше по предложениям.
func ChunkByParagraphs(text string, maxSize int) []string {
	if maxSize <= 0 {
		return nil
	}
	paragraphs := splitParagraphs(text)
	if len(paragraphs) == 0 {
		return nil
	}

	return packUnits(paragraphs, "\n\n", maxSize, func(p string) []string {
		return ChunkBySentences(p, maxSize)
	})
}
