package cleaner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	pageNumberRe  = regexp.MustCompile(`(?m)^\d+\s*$`)
	urlRe         = regexp.MustCompile(`https?://[^\s]+`)
	emailRe       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	boilerplateRe = regexp.MustCompile(`(?i)Cookie Policy|Privacy Policy|Terms of Service|Subscribe|Newsletter|Follow us`)
	copyrightRe   = regexp.MustCompile(`(?i)©\s*\d{4}.*?All Rights Reserved`)
)

// CleanText схлопывает все пробельные последовательности в одиночные пробелы
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeWhitespace заменяет пробельные последовательности на пробел и обрезает края
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// RemoveHTML вырезает из HTML теги вместе со script/style/noscript
// и возвращает чистый текст. При ошибке парсинга возвращает вход как есть.
func RemoveHTML(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	doc.Find("script, style, noscript").Remove()
	return CleanText(doc.Text())
}

// CleanWebContent чистит HTML страницы: убирает теги и типовой веб-мусор
// (cookie-баннеры, подписки, копирайты)
func CleanWebContent(html string) string {
	text := RemoveHTML(html)
	text = boilerplateRe.ReplaceAllString(text, "")
	text = copyrightRe.ReplaceAllString(text, "")
	return CleanText(text)
}

// CleanPDFText чистит текст, извлечённый из PDF: form feed'ы, переносы,
// табы и одиноко стоящие номера страниц
func CleanPDFText(text string) string {
	if text == "" {
		return ""
	}
	text = pageNumberRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\f", " ")
	return CleanText(text)
}

// RemoveURLs удаляет из текста ссылки
func RemoveURLs(text string) string {
	return NormalizeWhitespace(urlRe.ReplaceAllString(text, ""))
}

// RemoveEmails удаляет из текста email-адреса
func RemoveEmails(text string) string {
	return NormalizeWhitespace(emailRe.ReplaceAllString(text, ""))
}

// FormatManualEntry форматирует ручную запись в единый текстовый блок.
// Пустые title или content делают запись невалидной — возвращается "".
func FormatManualEntry(title, content, category string) string {
	title = CleanText(title)
	content = CleanText(content)
	category = CleanText(category)
	if category == "" {
		category = "General"
	}

	if title == "" || content == "" {
		return ""
	}

	return fmt.Sprintf("Title: %s\nCategory: %s\nContent: %s", title, category, content)
}
