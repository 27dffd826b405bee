package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// DOCX packages are ZIP archives of WordprocessingML parts. The corpus has no
// library that authors a document from scratch (nguyenthenguyen/docx only
// edits existing files), so the fixed parts below are emitted directly.

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:styleId="Heading1">
<w:name w:val="heading 1"/>
<w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="48"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading2">
<w:name w:val="heading 2"/>
<w:pPr><w:spacing w:before="240" w:after="120"/><w:pBdr><w:bottom w:val="single" w:sz="10" w:space="1" w:color="000000"/></w:pBdr></w:pPr>
<w:rPr><w:b/><w:sz w:val="32"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading3">
<w:name w:val="heading 3"/>
<w:pPr><w:spacing w:before="180" w:after="60"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="26"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="ListParagraph">
<w:name w:val="List Paragraph"/>
<w:pPr><w:ind w:left="720"/></w:pPr>
</w:style>
</w:styles>`

const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:abstractNum w:abstractNumId="0">
<w:lvl w:ilvl="0">
<w:numFmt w:val="bullet"/>
<w:lvlText w:val="&#8226;"/>
<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>
</w:lvl>
</w:abstractNum>
<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
</w:numbering>`

// Encode converts a parsed canonical document into DOCX bytes.
func Encode(doc *Document) ([]byte, error) {
	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, block := range doc.Blocks {
		switch block.Kind {
		case KindHeading1:
			writeStyledParagraph(&body, "Heading1", block.Text)
		case KindHeading2:
			writeStyledParagraph(&body, "Heading2", block.Text)
		case KindHeading3:
			writeStyledParagraph(&body, "Heading3", block.Text)
		case KindList:
			for _, item := range block.Items {
				writeListItem(&body, item)
			}
		case KindParagraph:
			writeStyledParagraph(&body, "", block.Text)
		}
	}

	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
		{"word/document.xml", body.String()},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, &EncodeError{Message: fmt.Sprintf("failed to create part %s", part.name), Cause: err}
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, &EncodeError{Message: fmt.Sprintf("failed to write part %s", part.name), Cause: err}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &EncodeError{Message: "failed to finalize package", Cause: err}
	}

	return buf.Bytes(), nil
}

// EncodeCanonical parses canonical markdown text and encodes it in one step.
func EncodeCanonical(text string) ([]byte, error) {
	return Encode(ParseCanonical(text))
}

func writeStyledParagraph(sb *strings.Builder, style, text string) {
	sb.WriteString("<w:p>")
	if style != "" {
		fmt.Fprintf(sb, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, style)
	}
	writeRun(sb, text)
	sb.WriteString("</w:p>")
}

func writeListItem(sb *strings.Builder, text string) {
	sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>`)
	writeRun(sb, text)
	sb.WriteString("</w:p>")
}

func writeRun(sb *strings.Builder, text string) {
	if text == "" {
		return
	}
	sb.WriteString(`<w:r><w:t xml:space="preserve">`)
	_ = xml.EscapeText(sb, []byte(text))
	sb.WriteString("</w:t></w:r>")
}
