package document

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DocxMIMEType is the only upload content type the builder accepts.
const DocxMIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// MaxUploadBytes is the upload size ceiling (5 MiB).
const MaxUploadBytes = 5 << 20

var (
	runPattern = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
	tagPattern = regexp.MustCompile(`<[^>]+>`)
)

// ValidateUpload checks an uploaded file's declared content type and size.
// Violations are input validation errors reported to the user; no state
// changes on rejection.
func ValidateUpload(contentType string, size int64) error {
	if contentType != DocxMIMEType {
		return &UploadError{Message: "only DOCX files are supported", ContentType: contentType}
	}
	if size > MaxUploadBytes {
		return &UploadError{Message: "file exceeds the 5 MB size limit"}
	}
	return nil
}

// DecodeText extracts plain text from DOCX bytes. Paragraph boundaries
// become blank lines, the structural signal the extraction package keys on.
func DecodeText(data []byte) (string, error) {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Message: "failed to parse DOCX file", Cause: err}
	}
	defer func() { _ = reader.Close() }()

	content := reader.Editable().GetContent()

	// Paragraphs are joined with blank lines, matching the raw-text shape
	// the section splitter expects. Empty paragraphs collapse away.
	paragraphs := strings.Split(content, "</w:p>")
	parts := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if text := paragraphText(paragraph); text != "" {
			parts = append(parts, text)
		}
	}

	result := strings.TrimSpace(strings.Join(parts, "\n\n"))
	if result == "" {
		return "", &DecodeError{Message: "no content extracted from file"}
	}
	return result, nil
}

// paragraphText collects the text runs of one WordprocessingML paragraph.
func paragraphText(paragraph string) string {
	matches := runPattern.FindAllStringSubmatch(paragraph, -1)
	if matches == nil {
		// Tolerate runs with nested markup by stripping tags outright.
		stripped := strings.TrimSpace(tagPattern.ReplaceAllString(paragraph, ""))
		return unescapeXML(stripped)
	}

	var sb strings.Builder
	for _, match := range matches {
		sb.WriteString(unescapeXML(match[1]))
	}
	return sb.String()
}

var xmlEntityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

func unescapeXML(s string) string {
	return xmlEntityReplacer.Replace(s)
}
