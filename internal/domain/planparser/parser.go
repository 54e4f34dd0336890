// Package planparser turns the markdown-ish text produced by the AI plan
// generator into a nested outline for display. The parse is a single pass
// over non-blank lines and is deliberately lossy: unrecognized lines become
// paragraphs, nothing errors, and the worst case is a single catch-all
// section.
package planparser

import "strings"

const defaultTitle = "Your Generated Plan"

type Plan struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BlockKind classifies a line inside a section's content.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockListItem  BlockKind = "listItem"
	BlockParagraph BlockKind = "paragraph"
)

type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

// Parse splits text into a title and ##-delimited sections. The first line
// starting with a single "#" marker becomes the title; each "##" line opens
// a section holding every following line up to the next "##" or the end.
// Lines before the first "##" (other than the title) are collected into an
// untitled leading section so no content is silently dropped.
func Parse(text string) Plan {
	lines := nonBlankLines(text)

	plan := Plan{Title: defaultTitle}

	var current *Section
	flush := func() {
		if current != nil {
			current.Content = strings.TrimRight(current.Content, "\n")
			plan.Sections = append(plan.Sections, *current)
			current = nil
		}
	}

	titleSeen := false
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "## "):
			flush()
			current = &Section{Title: strings.TrimSpace(strings.TrimPrefix(line, "## "))}
		case !titleSeen && strings.HasPrefix(line, "# "):
			plan.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			titleSeen = true
		default:
			if current == nil {
				current = &Section{}
			}
			if current.Content != "" {
				current.Content += "\n"
			}
			current.Content += line
		}
	}
	flush()

	return plan
}

// ParseContent classifies a section's content lines: "###" sub-headings,
// "*" list items, everything else a paragraph.
func ParseContent(content string) []Block {
	var blocks []Block
	for _, line := range nonBlankLines(content) {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "###"):
			blocks = append(blocks, Block{
				Kind: BlockHeading,
				Text: strings.TrimSpace(strings.TrimPrefix(trimmed, "###")),
			})
		case strings.HasPrefix(trimmed, "*"):
			blocks = append(blocks, Block{
				Kind: BlockListItem,
				Text: strings.TrimSpace(strings.TrimPrefix(trimmed, "*")),
			})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: trimmed})
		}
	}
	return blocks
}

func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
