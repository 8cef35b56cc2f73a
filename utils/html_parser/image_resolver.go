package html_parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// srcAttrRe matches a plain src attribute. The leading character class keeps
// it from firing inside data-src.
var srcAttrRe = regexp.MustCompile(`(?i)(?:^|[\s"'<])src\s*=\s*["']([^"']+)["']`)

// ResolveImageURL recovers a usable cover image URL for a feed entry. The
// enclosure URL wins outright when present; otherwise the entry description
// is probed with progressively more tolerant strategies: a src attribute
// match, the first <img src>, the first lazy-loaded <img data-src>, and
// finally the first <picture><source srcset> candidate. Parse failures at
// any step fall through to the next strategy; the result is "" when nothing
// matches, never an error.
func ResolveImageURL(enclosureURL, description string) string {
	if enclosureURL != "" {
		return enclosureURL
	}

	if description == "" {
		return ""
	}

	if match := srcAttrRe.FindStringSubmatch(description); match != nil {
		return match[1]
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return ""
	}

	if src, ok := doc.Find("img").First().Attr("src"); ok && src != "" {
		return src
	}

	if src, ok := doc.Find("img[data-src]").First().Attr("data-src"); ok && src != "" {
		return src
	}

	if srcset, ok := doc.Find("picture source[srcset]").First().Attr("srcset"); ok {
		if candidate := firstSrcsetCandidate(srcset); candidate != "" {
			return candidate
		}
	}

	return ""
}

// firstSrcsetCandidate returns the URL portion of the first srcset entry,
// dropping any trailing size descriptor ("img.jpg 2x" -> "img.jpg").
func firstSrcsetCandidate(srcset string) string {
	first, _, _ := strings.Cut(srcset, ",")
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
