package strings

import (
	"strings"
	"unicode"
)

// splitWords tokenizes s on word boundaries. Any non-alphanumeric rune
// separates words, as does a lower-to-upper transition. Acronyms keep
// their trailing uppercase letter with the following word
// (HTTPRequest -> http, request). All words come back lowercased.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder
	runes := []rune(s)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && current.Len() > 0 {
			prev := runes[i-1]
			// Start a new word if:
			// 1. Previous char is lowercase or a digit
			// 2. Next char is lowercase (for acronyms like HTTPRequest)
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				flush()
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
		}
		current.WriteRune(unicode.ToLower(r))
	}
	flush()
	return words
}

// ToKebabCase converts s to hyphen-separated lowercase words
// (css custom properties---background -> css-custom-properties-background)
func ToKebabCase(s string) string {
	return strings.Join(splitWords(s), "-")
}

// ToLowerCamelCase converts s to lowerCamelCase words
// (event-myEvent -> eventMyEvent)
func ToLowerCamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var result strings.Builder
	result.WriteString(words[0])
	for _, word := range words[1:] {
		result.WriteString(strings.ToUpper(word[:1]))
		result.WriteString(word[1:])
	}
	return result.String()
}
