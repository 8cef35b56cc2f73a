package scrape_article_gateway

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"newsreader/domain"
	"newsreader/utils/logger"
	"newsreader/utils/rate_limiter"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// bodySelectors locate the article body container, most specific first. The
// first selector yielding any nodes wins.
var bodySelectors = []string{
	".fck_detail",
	"article .article-body",
	"article",
	"body",
}

// relatedClassMarkers tag nodes that belong to "related content" or social
// widgets rather than the article body.
var relatedClassMarkers = []string{
	"related",
	"social",
	"share",
	"box-tinlienquan",
	"list-news",
}

// ScrapeArticleGateway fetches an article page and reconstructs a simplified
// HTML fragment: paragraphs, images with captions, tables, headings, and
// lists, with related-content sections filtered out.
type ScrapeArticleGateway struct {
	rateLimiter *rate_limiter.HostRateLimiter
	httpClient  *http.Client
	userAgent   string
	timeout     time.Duration

	inlinePolicy *bluemonday.Policy
	blockPolicy  *bluemonday.Policy
}

func NewScrapeArticleGateway(rateLimiter *rate_limiter.HostRateLimiter, httpClient *http.Client, userAgent string, timeout time.Duration) *ScrapeArticleGateway {
	return &ScrapeArticleGateway{
		rateLimiter:  rateLimiter,
		httpClient:   httpClient,
		userAgent:    userAgent,
		timeout:      timeout,
		inlinePolicy: newInlinePolicy(),
		blockPolicy:  newBlockPolicy(),
	}
}

// newInlinePolicy sanitizes paragraph inner HTML.
func newInlinePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("a", "b", "strong", "i", "em", "u", "br", "span", "sub", "sup")
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https")
	return p
}

// newBlockPolicy sanitizes verbatim table and list markup.
func newBlockPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption", "colgroup", "col")
	// Merged cells collapse without their span attributes.
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowAttrs("span").OnElements("col", "colgroup")
	p.AllowElements("ul", "ol", "li")
	p.AllowElements("p", "b", "strong", "i", "em", "br", "span")
	return p
}

// ScrapeArticleContent fetches the page at articleURL and emits a simplified
// HTML fragment. Failures stay classified: domain.ErrScrapeFetch,
// domain.ErrScrapeParse, or domain.ErrScrapeEmpty.
func (g *ScrapeArticleGateway) ScrapeArticleContent(ctx context.Context, articleURL string) (string, error) {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, articleURL); err != nil {
			return "", domain.ErrScrapeFetch
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, articleURL, nil)
	if err != nil {
		return "", domain.ErrScrapeFetch
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		logger.SafeError("error fetching article page", "url", articleURL, "error", err)
		return "", domain.ErrScrapeFetch
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		httpErr := &domain.ExternalHTTPError{StatusCode: resp.StatusCode, URL: articleURL}
		logger.SafeError("unexpected article page status", "url", articleURL, "status", resp.StatusCode)
		return "", fmt.Errorf("%w: %w", domain.ErrScrapeFetch, httpErr)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logger.SafeError("error parsing article page", "url", articleURL, "error", err)
		return "", domain.ErrScrapeParse
	}

	fragment := g.buildFragment(doc)
	if fragment == "" {
		return "", domain.ErrScrapeEmpty
	}

	return fragment, nil
}

func (g *ScrapeArticleGateway) buildFragment(doc *goquery.Document) string {
	var body *goquery.Selection
	for _, selector := range bodySelectors {
		if found := doc.Find(selector).First(); found.Length() > 0 {
			body = found
			break
		}
	}
	if body == nil {
		return ""
	}

	var b strings.Builder
	body.Children().Each(func(_ int, node *goquery.Selection) {
		g.renderNode(&b, node)
	})

	return strings.TrimSpace(b.String())
}

// renderNode emits the simplified markup for one body child in document
// order. Unknown tags are skipped.
func (g *ScrapeArticleGateway) renderNode(b *strings.Builder, node *goquery.Selection) {
	if isRelatedContent(node) {
		return
	}

	tag := goquery.NodeName(node)
	switch tag {
	case "p":
		inner, err := node.Html()
		if err != nil {
			return
		}
		inner = strings.TrimSpace(g.inlinePolicy.Sanitize(inner))
		if inner != "" {
			fmt.Fprintf(b, "<p>%s</p>", inner)
		}

	case "figure":
		g.renderFigure(b, node)

	case "table", "ul", "ol":
		outer, err := goquery.OuterHtml(node)
		if err != nil {
			return
		}
		outer = strings.TrimSpace(g.blockPolicy.Sanitize(outer))
		if outer != "" {
			b.WriteString(outer)
		}

	case "h2", "h3":
		// Headings keep plain text only; nested links are noise here.
		text := strings.TrimSpace(node.Text())
		if text != "" {
			fmt.Fprintf(b, "<%s>%s</%s>", tag, html.EscapeString(text), tag)
		}
	}
}

// renderFigure emits the figure's image, preferring the lazy-load source,
// with a styled caption when one exists.
func (g *ScrapeArticleGateway) renderFigure(b *strings.Builder, node *goquery.Selection) {
	img := node.Find("img").First()
	if img.Length() == 0 {
		return
	}

	src, ok := img.Attr("data-src")
	if !ok || src == "" {
		src, _ = img.Attr("src")
	}
	src = normalizeProtocolRelative(src)
	if src == "" {
		return
	}

	fmt.Fprintf(b, `<img src="%s" style="max-width:100%%">`, html.EscapeString(src))

	caption := strings.TrimSpace(node.Find("figcaption").First().Text())
	if caption != "" {
		fmt.Fprintf(b, `<div style="font-style:italic;color:#666;font-size:0.9em">%s</div>`, html.EscapeString(caption))
	}
}

// normalizeProtocolRelative turns //host/img.jpg into https://host/img.jpg.
func normalizeProtocolRelative(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

func isRelatedContent(node *goquery.Selection) bool {
	class, _ := node.Attr("class")
	class = strings.ToLower(class)
	for _, marker := range relatedClassMarkers {
		if strings.Contains(class, marker) {
			return true
		}
	}
	return false
}
