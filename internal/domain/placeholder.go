package domain

import (
	"strings"
	"unicode/utf8"
)

const placeholderMaxRunes = 28

// PlaceholderLabel is the text shown in place of an image that failed to
// load. It is the item title, whitespace-collapsed and shortened.
func PlaceholderLabel(title string) string {
	label := strings.Join(strings.Fields(title), " ")
	if label == "" {
		return "Image unavailable"
	}
	if utf8.RuneCountInString(label) <= placeholderMaxRunes {
		return label
	}
	runes := []rune(label)
	cut := strings.TrimRight(string(runes[:placeholderMaxRunes-1]), " ")
	return cut + "…"
}
