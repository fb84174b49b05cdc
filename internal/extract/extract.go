package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text pulls plain text from the PDF at path, page by page, joined by
// newlines in page order. Pages that cannot be read or yield no text are
// skipped silently. When the file cannot be opened or parsed at all the
// returned string is the diagnostic "Error extracting text: <cause>" rather
// than an error: downstream stages treat it as degraded input.
func Text(path string) (out string) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			out = fmt.Sprintf("Error extracting text: %v", rec)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return fmt.Sprintf("Error extracting text: %v", err)
	}
	defer f.Close()

	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if text, ok := pageText(page); ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// pageText isolates per-page failures so one bad page never loses the rest.
func pageText(page pdf.Page) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	text, err := page.GetPlainText(nil)
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}
