// Package columns converts raw dataset headers into canonical snake_case names.
//
// A header is first humanized ("Has Table booking" -> "Has table booking"),
// every word is title-cased, spaces are removed and the resulting CamelCase
// token is split back into lowercase words joined by underscores. Any ASCII
// header is accepted; there is no whitelist.
package columns

import (
	"regexp"
	"strings"
)

var (
	reAcronym = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	reCamel   = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Normalize returns the canonical name of a single header.
func Normalize(header string) string {
	titled := Titleize(header)
	return Underscore(strings.ReplaceAll(titled, " ", ""))
}

// NormalizeAll maps Normalize over a header row, preserving order.
func NormalizeAll(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = Normalize(h)
	}
	return out
}

// Underscore splits CamelCase words with underscores, turns dashes into
// underscores and lowercases the result.
func Underscore(word string) string {
	word = reAcronym.ReplaceAllString(word, "${1}_${2}")
	word = reCamel.ReplaceAllString(word, "${1}_${2}")
	word = strings.ReplaceAll(word, "-", "_")
	return strings.ToLower(word)
}

// Humanize replaces underscores with spaces, lowercases and capitalizes
// the first character.
func Humanize(word string) string {
	word = strings.ToLower(strings.ReplaceAll(word, "_", " "))
	if word == "" {
		return word
	}
	return upperASCII(word[:1]) + word[1:]
}

// Titleize capitalizes the first letter of every word of the humanized form.
// Letters following an apostrophe or backtick are left alone.
func Titleize(word string) string {
	human := []rune(Humanize(Underscore(word)))
	for i, r := range human {
		if r < 'a' || r > 'z' {
			continue
		}
		if i > 0 {
			prev := human[i-1]
			if isWordRune(prev) || prev == '\'' || prev == '’' || prev == '`' {
				continue
			}
		}
		human[i] = r - ('a' - 'A')
	}
	return string(human)
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r > 127
}

func upperASCII(s string) string {
	if s >= "a" && s <= "z" {
		return strings.ToUpper(s)
	}
	return s
}
