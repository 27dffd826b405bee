// Package document converts between the canonical markdown resume document
// and downloadable DOCX files. It parses the fixed heading/bullet grammar
// produced by the rendering package (or returned by the generation service)
// into a simple block model, encodes that model as WordprocessingML, and
// decodes uploaded DOCX files back to plain text for extraction.
package document

// BlockKind identifies the role of a block in the canonical document.
type BlockKind int

// Block kinds, in the order the line classifier tests prefixes.
const (
	KindHeading1 BlockKind = iota
	KindHeading2
	KindHeading3
	KindList
	KindParagraph
)

// Block is one element of the canonical document: a heading, a paragraph, or
// a bulleted list. Text is set for headings and paragraphs; Items for lists.
type Block struct {
	Kind  BlockKind
	Text  string
	Items []string
}

// Document is the parsed form of the canonical markdown text. It contains a
// single unnamed section of blocks; tables and images do not occur.
type Document struct {
	Blocks []Block
}

// HeadingCount returns the number of headings at the given level (1-3).
func (d *Document) HeadingCount(level int) int {
	var kind BlockKind
	switch level {
	case 1:
		kind = KindHeading1
	case 2:
		kind = KindHeading2
	case 3:
		kind = KindHeading3
	default:
		return 0
	}

	count := 0
	for _, block := range d.Blocks {
		if block.Kind == kind {
			count++
		}
	}
	return count
}

// ListItemCount returns the total number of bullet items across all lists.
func (d *Document) ListItemCount() int {
	count := 0
	for _, block := range d.Blocks {
		if block.Kind == KindList {
			count += len(block.Items)
		}
	}
	return count
}
