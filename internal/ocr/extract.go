package ocr

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// ExtractLines turns one input into the ordered line list the menu
// parser consumes. "text" and "html" take the content itself, "pdf"
// takes a file path.
func ExtractLines(inputType string, input string) ([]string, error) {
	switch inputType {
	case "text":
		return splitLines(input), nil
	case "html":
		return parseHTML(input)
	case "pdf":
		blob, err := os.ReadFile(input)
		if err != nil {
			return nil, err
		}
		return parsePDF(blob)
	default:
		return nil, fmt.Errorf("unsupported input type: %s", inputType)
	}
}

// ExtractLinesFromFile dispatches on the file extension.
func ExtractLinesFromFile(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return parseHTML(string(blob))
	case ".pdf":
		return ExtractLines("pdf", path)
	default:
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return splitLines(string(blob)), nil
	}
}

// splitLines keeps interior blank lines: the parser uses them as
// entry separators. Leading and trailing blanks are dropped.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func parseHTML(content string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	out := []string{}

	// Tables first: a row's cells belong on one line so that a price
	// cell lands next to the wine name.
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				if t := normalizeSpaces(cell.Text()); t != "" {
					cells = append(cells, t)
				}
			})
			if len(cells) > 0 {
				out = append(out, strings.Join(cells, " "))
			}
		})
	})
	if len(out) > 0 {
		return out, nil
	}

	doc.Find("h1,h2,h3,h4,li,p").Each(func(_ int, sel *goquery.Selection) {
		for _, line := range splitLines(sel.Text()) {
			if line != "" {
				out = append(out, line)
			}
		}
	})
	if len(out) > 0 {
		return out, nil
	}

	return splitLines(doc.Text()), nil
}

func parsePDF(content []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	out := []string{}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, line := range splitLines(text) {
			if line != "" {
				out = append(out, line)
			}
		}
	}
	return out, nil
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
