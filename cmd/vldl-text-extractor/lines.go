package main

import (
	"iter"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// Lines yields the text of each LINE block in response order. WORD, PAGE and
// every other block type are skipped.
func Lines(blocks []types.Block) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, block := range blocks {
			if block.BlockType != types.BlockTypeLine {
				continue
			}
			if !yield(aws.ToString(block.Text)) {
				return
			}
		}
	}
}
