package chunker

// ChunkBySentences разбивает текст на предложения и жадно упаковывает их
// в чанки размером до maxSize, соединяя через ". ". Предложение, которое
// само по себе длиннее maxSize, разбивается дальше по словам.
func ChunkBySentences(text string, maxSize int) []string {
	if maxSize <= 0 {
		return nil
	}
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	return packUnits(sentences, ". ", maxSize, func(s string) []string {
		return ChunkByWords(s, maxSize)
	})
}
