package srsform

import (
	"regexp"
	"strings"
)

var (
	bulletMarker  = regexp.MustCompile(`^\s*[-*•–—]+\s+`)
	numericMarker = regexp.MustCompile(`^\s*\d+\s*[.)]\s+`)
	listSeparator = regexp.MustCompile(`[\n,]`)
)

// StripListMarker removes a leading bullet (a run of "-", "*", "•", "–" or
// "—" followed by whitespace) and then a leading enumeration ("1. ", "2) ")
// from text, and trims the result.
func StripListMarker(text string) string {
	if text == "" {
		return ""
	}
	text = bulletMarker.ReplaceAllString(text, "")
	text = numericMarker.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// NormalizeList splits raw on newlines and commas and returns the non-empty,
// marker-stripped items in input order. Duplicates are kept. The result is
// never nil so it encodes as an empty JSON array.
func NormalizeList(raw string) []string {
	out := []string{}
	if raw == "" {
		return out
	}
	for _, piece := range listSeparator.Split(raw, -1) {
		if item := StripListMarker(piece); item != "" {
			out = append(out, item)
		}
	}
	return out
}
