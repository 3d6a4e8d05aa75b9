package spanscore

import "strings"

// Block is the run of non-blank lines making up one sentence.
type Block struct {
	// Line is the 1-based input line of the block's first line.
	Line  int
	Lines []string
}

// SplitBlocks groups lines into blocks separated by blank lines. A final
// block without a trailing blank line is kept; empty blocks are dropped.
func SplitBlocks(lines []string) []Block {
	var (
		blocks []Block
		cur    Block
	)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur.Lines) > 0 {
				blocks = append(blocks, cur)
			}
			cur = Block{}
			continue
		}
		if len(cur.Lines) == 0 {
			cur.Line = i + 1
		}
		cur.Lines = append(cur.Lines, line)
	}
	if len(cur.Lines) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
