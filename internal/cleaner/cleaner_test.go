package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a \n\n b\t\tc  "))
	assert.Equal(t, "", CleanText("   \n \t "))
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "one two", NormalizeWhitespace(" one \r\n two "))
}

func TestRemoveHTML(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
		<body><p>Hello <b>world</b></p><script>alert(1)</script></body></html>`

	text := RemoveHTML(html)
	assert.Equal(t, "Hello world", text)
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
}

func TestCleanWebContent_StripsBoilerplate(t *testing.T) {
	html := `<body><p>Real content here.</p><footer>Cookie Policy | Subscribe to our Newsletter</footer></body>`

	text := CleanWebContent(html)
	assert.Contains(t, text, "Real content here.")
	assert.NotContains(t, text, "Cookie Policy")
	assert.NotContains(t, text, "Subscribe")
}

func TestCleanPDFText(t *testing.T) {
	text := CleanPDFText("Page one text\n42\nmore\ttext\fend")
	assert.Equal(t, "Page one text more text end", text)
}

func TestRemoveURLs(t *testing.T) {
	assert.Equal(t, "see for details", RemoveURLs("see https://example.com/a?b=1 for details"))
}

func TestRemoveEmails(t *testing.T) {
	assert.Equal(t, "contact us at", RemoveEmails("contact us at someone@example.com"))
}

func TestFormatManualEntry(t *testing.T) {
	entry := FormatManualEntry("  My   Title ", "Some\ncontent", "")
	assert.Equal(t, "Title: My Title\nCategory: General\nContent: Some content", entry)
}

func TestFormatManualEntry_RequiresTitleAndContent(t *testing.T) {
	assert.Equal(t, "", FormatManualEntry("", "content", "Cat"))
	assert.Equal(t, "", FormatManualEntry("title", "  ", "Cat"))
}
