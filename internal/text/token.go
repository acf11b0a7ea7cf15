package text

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

type TokenClass string

const (
	ClassWord        TokenClass = "word"
	ClassPunctuation TokenClass = "punctuation"
	ClassSpace       TokenClass = "space"
)

type Token struct {
	Text  string
	Class TokenClass
}

// Alternatives partition every rune into exactly one class, so the matches
// cover the input with no gaps and concatenating them reproduces it.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|\s+|[^\p{L}\p{N}_\s]`)

func Tokenize(s string) []Token {
	if s == "" {
		return nil
	}

	matches := tokenPattern.FindAllString(s, -1)

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{Text: m, Class: classify(m)})
	}

	return tokens
}

func classify(s string) TokenClass {
	r, _ := utf8.DecodeRuneInString(s)

	switch {
	case unicode.IsSpace(r):
		return ClassSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r):
		return ClassWord
	default:
		return ClassPunctuation
	}
}

// Words returns the word tokens of s in order, original casing preserved.
func Words(s string) []string {
	var words []string
	for _, tok := range Tokenize(s) {
		if tok.Class == ClassWord {
			words = append(words, tok.Text)
		}
	}
	return words
}

var wordRunPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// CountWords counts maximal word-character runs, so "state,of" is two words.
func CountWords(s string) int {
	return len(wordRunPattern.FindAllStringIndex(s, -1))
}
