// Package html_parser holds the text normalization pipeline for feed content:
// CDATA/tag stripping, best-effort encoding repair for Vietnamese text, and
// image URL resolution from feed entry markup.
package html_parser

import (
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

var trailingDigitsRe = regexp.MustCompile(`\s*\d+\s*$`)

// CleanText normalizes a raw feed description into display text: CDATA
// markers are removed wherever they occur, all tags are stripped, and the
// result is whitespace-normalized. It never fails; empty input yields "".
// The function is idempotent.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}

	// CDATA markers can appear mid-string in hand-assembled feeds, not just
	// wrapping the whole description.
	cleaned := strings.ReplaceAll(raw, "<![CDATA[", "")
	cleaned = strings.ReplaceAll(cleaned, "]]>", "")

	return StripTags(cleaned)
}

// StripTags removes HTML tags from a string and returns plain text only.
// script/style blocks are skipped entirely and runs of whitespace collapse
// to a single space.
func StripTags(raw string) string {
	return stripCore(strings.NewReader(raw))
}

func stripCore(r io.Reader) string {
	var b strings.Builder
	z := html.NewTokenizer(r)

	depthSkip := 0 // ignores text inside <script> and <style> blocks

	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			return normalizeWS(b.String())

		case html.StartTagToken:
			name, _ := z.TagName()
			if skipTag(name) {
				depthSkip++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if skipTag(name) && depthSkip > 0 {
				depthSkip--
			}

		case html.TextToken:
			if depthSkip == 0 {
				// Raw keeps entity references encoded. Decoding them here
				// would turn &lt;b&gt; into live <b> markup, so a second pass
				// over the output would strip text the first pass kept.
				b.Write(z.Raw())
			}
		}
	}
}

func skipTag(name []byte) bool {
	switch string(name) {
	case "script", "style", "noscript":
		return true
	default:
		return false
	}
}

func normalizeWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// repairEncodings are tried in order when a string looks like UTF-8 bytes
// that were mis-decoded through a single-byte codepage upstream.
var repairEncodings = []*charmap.Charmap{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// RepairEncoding attempts to recover Vietnamese text that was emitted through
// a Latin-1/codepage pass instead of UTF-8. If the input already contains
// Vietnamese codepoints it is returned unchanged; otherwise each candidate
// codepage is used to map the runes back to their original bytes, and the
// first re-decoding that gains a Vietnamese codepoint wins. The heuristic is
// best-effort over already-lossy data and never fails: any unmappable rune
// simply moves on to the next candidate. A trailing run of digits (view
// counter artifacts on scraped titles) is stripped from the result.
func RepairEncoding(text string) string {
	if text == "" {
		return ""
	}

	repaired := text
	if !containsVietnamese(text) {
		for _, cm := range repairEncodings {
			if candidate, ok := redecodeThrough(text, cm); ok && containsVietnamese(candidate) {
				repaired = candidate
				break
			}
		}
	}

	return strings.TrimSpace(trailingDigitsRe.ReplaceAllString(repaired, ""))
}

// redecodeThrough maps each rune of text back to its single byte under the
// given codepage and reinterprets the byte sequence as UTF-8.
func redecodeThrough(text string, cm *charmap.Charmap) (string, bool) {
	encoded, err := cm.NewEncoder().String(text)
	if err != nil {
		// A rune with no mapping in this codepage; the text cannot have come
		// through it.
		return "", false
	}

	if !utf8.ValidString(encoded) {
		return "", false
	}
	return encoded, true
}

// containsVietnamese reports whether s holds a codepoint specific to
// Vietnamese orthography. Plain Latin-1 vowels are deliberately excluded:
// mojibake is full of them.
func containsVietnamese(s string) bool {
	for _, r := range s {
		switch {
		case r >= 0x1EA0 && r <= 0x1EF9: // Latin Extended Additional block used by Vietnamese
			return true
		case r == 'ă' || r == 'Ă' || r == 'đ' || r == 'Đ':
			return true
		case r == 'ơ' || r == 'Ơ' || r == 'ư' || r == 'Ư':
			return true
		}
	}
	return false
}
