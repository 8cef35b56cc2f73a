package scrape_article_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=scrape_article_port.go -destination=../../mocks/mock_scrape_article_port.go -package=mocks

// ScrapeArticlePort fetches a full article page and reconstructs a
// simplified HTML fragment from its body.
type ScrapeArticlePort interface {
	ScrapeArticleContent(ctx context.Context, articleURL string) (string, error)
}
