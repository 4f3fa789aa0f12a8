package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"io/fs"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const (
	defaultMainPart  = "word/document.xml"
	contentTypesPart = "[Content_Types].xml"
	mainContentType  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
)

// docxToken matches text runs, paragraph ends, tabs and line breaks in document order.
var docxToken = regexp.MustCompile(`<w:t(?:\s[^>]*)?>([^<]*)</w:t>|</w:p>|<w:tab\s*/>|<w:(?:br|cr)(?:\s[^>]*)?/>`)

// mainPartOverrides match the main document Override in either attribute order.
var mainPartOverrides = []*regexp.Regexp{
	regexp.MustCompile(`<Override[^>]+PartName="([^"]+)"[^>]+ContentType="` + regexp.QuoteMeta(mainContentType) + `"`),
	regexp.MustCompile(`<Override[^>]+ContentType="` + regexp.QuoteMeta(mainContentType) + `"[^>]+PartName="([^"]+)"`),
}

// extractDOCX returns the document text with one line per paragraph, so headings such
// as "Skills" stay on their own line.
func extractDOCX(content []byte) (string, error) {
	body, err := documentXML(content)
	if err != nil {
		return "", err
	}
	return paragraphText(body), nil
}

// documentXML returns the main document part. Standard packages are opened with the docx
// reader; packages whose main part lives elsewhere are resolved through
// [Content_Types].xml.
func documentXML(content []byte) (string, error) {
	if doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content))); err == nil {
		body := doc.Editable().GetContent()
		_ = doc.Close()
		if body != "" {
			return body, nil
		}
	}

	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract DOCX: not a zip: %w", err)
	}
	part := mainPartName(zr)
	data, err := fs.ReadFile(zr, part)
	if err != nil {
		return "", fmt.Errorf("extract DOCX: %s: %w", part, err)
	}
	return string(data), nil
}

func paragraphText(body string) string {
	var b strings.Builder
	for _, m := range docxToken.FindAllStringSubmatch(body, -1) {
		switch tok := m[0]; {
		case tok == "</w:p>":
			b.WriteByte('\n')
		case strings.HasPrefix(tok, "<w:tab"):
			b.WriteByte('\t')
		case strings.HasPrefix(tok, "<w:br"), strings.HasPrefix(tok, "<w:cr"):
			b.WriteByte('\n')
		default:
			b.WriteString(html.UnescapeString(m[1]))
		}
	}
	return strings.TrimSpace(b.String())
}

// mainPartName resolves the main document part from [Content_Types].xml, falling back
// to word/document.xml.
func mainPartName(zr *zip.Reader) string {
	types, err := fs.ReadFile(zr, contentTypesPart)
	if err != nil {
		return defaultMainPart
	}
	for _, re := range mainPartOverrides {
		if m := re.FindSubmatch(types); m != nil {
			return strings.TrimPrefix(string(m[1]), "/")
		}
	}
	return defaultMainPart
}
