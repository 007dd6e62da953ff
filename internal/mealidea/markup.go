package mealidea

import "strings"

type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockListItem  BlockKind = "list_item"
	BlockParagraph BlockKind = "paragraph"
)

const maxHeadingLevel = 6

type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"` // headings only
	Text  string    `json:"text"`
}

// ParseMarkup converts the reply line by line: a leading run of '#' is a
// heading whose level is the run length (capped at 6), a "* " prefix is a
// list item, anything else is a paragraph.
func ParseMarkup(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")

		switch {
		case strings.HasPrefix(line, "#"):
			run := len(line) - len(strings.TrimLeft(line, "#"))
			level := run
			if level > maxHeadingLevel {
				level = maxHeadingLevel
			}
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: level,
				Text:  strings.TrimSpace(line[run:]),
			})
		case strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{Kind: BlockListItem, Text: line[2:]})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: line})
		}
	}

	return blocks
}
