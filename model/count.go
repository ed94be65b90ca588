package model

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Bracketed markup, periods, commas and " -" do not count as words.
	wordNoise = regexp.MustCompile(`\[.+?\]|\.|,| -`)
	markup    = regexp.MustCompile(`\[.+?\]`)
)

// WordCount counts the words of text, ignoring bracketed markup and the
// punctuation that would otherwise split or pad words.
func WordCount(text string) int {
	return len(strings.Fields(wordNoise.ReplaceAllString(text, "")))
}

// LetterCount counts the characters of text without bracketed markup and
// line breaks.
func LetterCount(text string) int {
	text = markup.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\n", "")
	text = strings.ReplaceAll(text, "\r", "")
	return utf8.RuneCountInString(text)
}
