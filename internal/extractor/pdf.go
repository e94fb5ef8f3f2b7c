// Package extractor turns statement PDF files into plain page text for
// the universal transaction parser.
package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// maxPages caps how many pages are processed per statement. Issuer PDFs
// front-load transactions; later pages are legal boilerplate.
const maxPages = 5

// ExtractText reads a PDF file and returns the text content of each
// processed page. It first tries row-grouped extraction (best for the
// tabular layout of statements) and falls back to plain-text extraction
// when the result is unreadable.
func ExtractText(filePath string) ([]string, error) {
	pages, err := extractPages(filePath)
	if err != nil {
		return nil, fmt.Errorf("PDF text extraction failed: %w. The file may be image-based/scanned or use custom font encodings. Try copying the text from a PDF viewer and importing it as plain text", err)
	}
	if !isReadableText(pages) {
		return nil, fmt.Errorf("no readable text could be extracted from the PDF. The file may be image-based/scanned. Try copying the text from a PDF viewer and importing it as plain text")
	}
	return pages, nil
}

// ExtractTextCombined reads a PDF and returns all page text as one blob.
func ExtractTextCombined(filePath string) (string, error) {
	pages, err := ExtractText(filePath)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n"), nil
}

func extractPages(filePath string) (pages []string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}
	if numPages > maxPages {
		numPages = maxPages
	}

	pages = extractByRow(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	pages = extractByPlainText(r, numPages)
	return pages, nil
}

// extractByRow uses GetTextByRow, which preserves the tabular layout well
// enough that each transaction lands on its own line.
func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByPlainText is the fallback strategy: per-page plain text with
// the page's font map.
func extractByPlainText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

// commonWords appear in virtually any Chilean statement. Extracted text
// containing none of them is almost certainly garbage from an
// identity-encoded font.
var commonWords = []string{
	"banco", "cuenta", "saldo", "fecha", "cargo", "abono", "monto",
	"estado", "tarjeta", "movimiento", "periodo", "total", "compra",
	"transferencia", "pago", "bank", "account", "balance", "payment",
}

// isReadableText requires enough text, a high share of plain readable
// characters, and at least one recognizable statement word.
func isReadableText(pages []string) bool {
	if totalTextLen(pages) <= 50 {
		return false
	}
	if textQuality(pages) <= 0.6 {
		return false
	}
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range commonWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// textQuality returns the ratio of readable characters (letters, digits,
// whitespace and common statement punctuation) to total characters.
func textQuality(pages []string) float64 {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(".,-/:;()'\"$€%&@#!?+=*\t", r) ||
				strings.ContainsRune("áéíóúñÁÉÍÓÚÑ", r) {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

func totalTextLen(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}
