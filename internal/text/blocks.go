package text

import (
	"regexp"
	"strings"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// SplitSentences splits text on sentence-terminating punctuation followed by
// whitespace. Terminators stay attached to their sentence; the separating
// whitespace is dropped. Trailing text without a terminator is its own
// final sentence.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		// loc[0] is the terminator rune, which belongs to the sentence.
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}

	return sentences
}

// SplitBlocks packs whole sentences into blocks of at most target words,
// joined with single spaces. A single sentence longer than target becomes a
// block of its own rather than being split mid-sentence.
func SplitBlocks(text string, target int) []string {
	if target < 1 {
		target = 1
	}

	var blocks []string
	var current []string
	currentWords := 0

	for _, sentence := range SplitSentences(text) {
		words := CountWords(sentence)

		if currentWords+words <= target {
			current = append(current, sentence)
			currentWords += words
			continue
		}

		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, " "))
		}
		current = []string{sentence}
		currentWords = words
	}

	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, " "))
	}

	return blocks
}
