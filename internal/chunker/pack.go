package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	sentenceDelim = regexp.MustCompile(`[.!?]+`)
	paragraphSep  = regexp.MustCompile(`\n\s*\n`)
)

// runeLen считает длину строки в символах, не в байтах
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// splitSentences разбивает текст на предложения по [.!?]+
func splitSentences(text string) []string {
	return trimNonEmpty(sentenceDelim.Split(text, -1))
}

// splitParagraphs разбивает текст на параграфы по пустым строкам
func splitParagraphs(text string) []string {
	return trimNonEmpty(paragraphSep.Split(text, -1))
}

func trimNonEmpty(parts []string) []string {
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// packUnits жадно упаковывает единицы текста (слова, предложения, параграфы)
// в чанки ограниченного размера. Каждая единица добавляет в счётчик свою длину
// плюс длину разделителя. Если следующая единица не помещается — текущий
// аккумулятор сбрасывается в чанк. Единица, которая сама по себе длиннее
// maxSize, отдаётся в oversize (или эмитится как есть, если oversize == nil).
func packUnits(units []string, sep string, maxSize int, oversize func(string) []string) []string {
	var chunks []string
	var acc []string
	size := 0
	sepLen := runeLen(sep)

	for _, u := range units {
		cost := runeLen(u) + sepLen

		if len(acc) > 0 && size+cost > maxSize {
			chunks = append(chunks, strings.Join(acc, sep))
			acc = acc[:0]
			size = 0
		}

		if len(acc) == 0 && runeLen(u) > maxSize {
			if oversize != nil {
				chunks = append(chunks, oversize(u)...)
			} else {
				chunks = append(chunks, u)
			}
			continue
		}

		acc = append(acc, u)
		size += cost
	}

	if len(acc) > 0 {
		chunks = append(chunks, strings.Join(acc, sep))
	}

	return chunks
}
