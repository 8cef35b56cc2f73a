package scrape_article_usecase

import (
	"context"
	"strings"
	"testing"

	"newsreader/domain"
	"newsreader/mocks"

	"go.uber.org/mock/gomock"
)

func TestScrapeArticleUsecase_Execute(t *testing.T) {
	const articleURL = "https://example.com/news/article.html"

	tests := []struct {
		name         string
		mockSetup    func(*mocks.MockScrapeArticlePort)
		want         string
		wantFragment string
	}{
		{
			name: "scraped content returned as-is",
			mockSetup: func(m *mocks.MockScrapeArticlePort) {
				m.EXPECT().ScrapeArticleContent(gomock.Any(), articleURL).
					Return("<p>article body</p>", nil)
			},
			want: "<p>article body</p>",
		},
		{
			name: "fetch failure gets connection fallback",
			mockSetup: func(m *mocks.MockScrapeArticlePort) {
				m.EXPECT().ScrapeArticleContent(gomock.Any(), articleURL).
					Return("", domain.ErrScrapeFetch)
			},
			wantFragment: fallbackFetchHTML,
		},
		{
			name: "parse failure gets its own message",
			mockSetup: func(m *mocks.MockScrapeArticlePort) {
				m.EXPECT().ScrapeArticleContent(gomock.Any(), articleURL).
					Return("", domain.ErrScrapeParse)
			},
			wantFragment: fallbackParseHTML,
		},
		{
			name: "empty result gets its own message",
			mockSetup: func(m *mocks.MockScrapeArticlePort) {
				m.EXPECT().ScrapeArticleContent(gomock.Any(), articleURL).
					Return("", domain.ErrScrapeEmpty)
			},
			wantFragment: fallbackEmptyHTML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockPort := mocks.NewMockScrapeArticlePort(ctrl)
			tt.mockSetup(mockPort)

			usecase := NewScrapeArticleUsecase(mockPort)
			got := usecase.Execute(context.Background(), articleURL)

			if tt.want != "" && got != tt.want {
				t.Errorf("Execute() = %q, want %q", got, tt.want)
			}
			if tt.wantFragment != "" {
				if !strings.HasPrefix(got, tt.wantFragment) {
					t.Errorf("Execute() = %q, want prefix %q", got, tt.wantFragment)
				}
				if !strings.Contains(got, articleURL) {
					t.Errorf("fallback should link the original article, got %q", got)
				}
			}
		})
	}
}

func TestScrapeArticleUsecase_DistinctFallbacks(t *testing.T) {
	messages := map[string]bool{
		fallbackFetchHTML: true,
		fallbackParseHTML: true,
		fallbackEmptyHTML: true,
	}
	if len(messages) != 3 {
		t.Error("fallback messages must be pairwise distinct")
	}
}

func TestScrapeArticleUsecase_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPort := mocks.NewMockScrapeArticlePort(ctrl)

	usecase := NewScrapeArticleUsecase(mockPort)
	got := usecase.Execute(context.Background(), "not a url")

	if got != fallbackFetchHTML {
		t.Errorf("Execute() = %q, want bare fetch fallback", got)
	}
}
