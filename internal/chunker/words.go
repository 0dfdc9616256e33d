package chunker

import "strings"

// ChunkByWords разбивает текст на слова и жадно упаковывает их в чанки
// размером до maxSize, соединяя пробелом. Слово длиннее maxSize эмитится
// как есть — слова не режутся.
func ChunkByWords(text string, maxSize int) []string {
	if maxSize <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	return packUnits(words, " ", maxSize, nil)
}
