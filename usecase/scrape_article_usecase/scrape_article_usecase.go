package scrape_article_usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"

	"newsreader/domain"
	"newsreader/port/scrape_article_port"
	"newsreader/utils/logger"
)

// Fallback fragments shown in place of article content. Each failure class
// gets its own message so the reader knows whether retrying can help.
const (
	fallbackFetchHTML = `<p>Không thể tải bài viết. Vui lòng kiểm tra kết nối mạng và thử lại.</p>`
	fallbackParseHTML = `<p>Không thể đọc nội dung bài viết. Vui lòng mở liên kết gốc.</p>`
	fallbackEmptyHTML = `<p>Bài viết không có nội dung hiển thị được. Vui lòng mở liên kết gốc.</p>`
)

type ScrapeArticleUsecase struct {
	scrapeArticlePort scrape_article_port.ScrapeArticlePort
}

func NewScrapeArticleUsecase(scrapeArticlePort scrape_article_port.ScrapeArticlePort) *ScrapeArticleUsecase {
	return &ScrapeArticleUsecase{scrapeArticlePort: scrapeArticlePort}
}

// Execute returns a renderable HTML fragment for the article at articleURL.
// Scrape failures degrade to a fallback fragment with a link to the original
// page; the caller always gets something to display.
func (u *ScrapeArticleUsecase) Execute(ctx context.Context, articleURL string) string {
	if !isRenderableURL(articleURL) {
		return fallbackFetchHTML
	}

	content, err := u.scrapeArticlePort.ScrapeArticleContent(ctx, articleURL)
	if err == nil {
		return content
	}

	logger.SafeWarn("article scrape failed, serving fallback", "url", articleURL, "error", err)

	var message string
	switch {
	case errors.Is(err, domain.ErrScrapeParse):
		message = fallbackParseHTML
	case errors.Is(err, domain.ErrScrapeEmpty):
		message = fallbackEmptyHTML
	default:
		message = fallbackFetchHTML
	}

	return message + originalLink(articleURL)
}

func isRenderableURL(articleURL string) bool {
	parsed, err := url.Parse(articleURL)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func originalLink(articleURL string) string {
	escaped := html.EscapeString(articleURL)
	return fmt.Sprintf(`<p><a href="%s">%s</a></p>`, escaped, escaped)
}
