package document

import "strings"

// ParseCanonical parses canonical markdown text into the block model.
//
// Each line is classified by prefix, tested in priority order: "# ", "## ",
// "### ", "- ", blank, plain paragraph. Consecutive bullet lines form one
// list block; a blank line or any non-bullet line flushes the open list.
func ParseCanonical(text string) *Document {
	doc := &Document{Blocks: []Block{}}

	var currentList []string
	flushList := func() {
		if len(currentList) > 0 {
			doc.Blocks = append(doc.Blocks, Block{Kind: KindList, Items: currentList})
			currentList = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			flushList()
			doc.Blocks = append(doc.Blocks, Block{Kind: KindHeading1, Text: line[2:]})

		case strings.HasPrefix(line, "## "):
			flushList()
			doc.Blocks = append(doc.Blocks, Block{Kind: KindHeading2, Text: line[3:]})

		case strings.HasPrefix(line, "### "):
			flushList()
			doc.Blocks = append(doc.Blocks, Block{Kind: KindHeading3, Text: line[4:]})

		case strings.HasPrefix(line, "- "):
			currentList = append(currentList, line[2:])

		case strings.TrimSpace(line) == "":
			flushList()

		default:
			flushList()
			doc.Blocks = append(doc.Blocks, Block{Kind: KindParagraph, Text: line})
		}
	}

	flushList()
	return doc
}
