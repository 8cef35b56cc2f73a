package saved_articles_gateway

import (
	"strings"
	"testing"
	"time"

	"newsreader/domain"
)

func TestBuildPlaceholderItemTitle(t *testing.T) {
	tests := []struct {
		name       string
		articleRef string
		wantTitle  string
	}{
		{
			name:       "slug with extension and query",
			articleRef: "https://vnexpress.net/tin-tuc/tin-tuc-moi-nhat.html?x=1",
			wantTitle:  "Tin Tuc Moi Nhat",
		},
		{
			name:       "underscores and percent escapes",
			articleRef: "https://example.com/bai_viet/kinh%20te_viet_nam.html",
			wantTitle:  "Kinh Te Viet Nam",
		},
		{
			name:       "no extension",
			articleRef: "https://example.com/doc/chuyen-doi-so",
			wantTitle:  "Chuyen Doi So",
		},
		{
			name:       "bare host falls back to raw ref",
			articleRef: "https://example.com/",
			wantTitle:  "https://example.com/",
		},
		{
			name:       "opaque id used verbatim",
			articleRef: "f4b2c1d0",
			wantTitle:  "F4b2c1d0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := BuildPlaceholderItem(tt.articleRef, time.Now())
			if item.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", item.Title, tt.wantTitle)
			}
		})
	}
}

func TestBuildPlaceholderItemTruncatesLongTitles(t *testing.T) {
	slug := strings.Repeat("tin-", 60) + "cuoi"
	item := BuildPlaceholderItem("https://example.com/"+slug+".html", time.Now())

	runes := []rune(item.Title)
	if len(runes) != 101 {
		t.Fatalf("expected 100 runes plus ellipsis, got %d: %q", len(runes), item.Title)
	}
	if !strings.HasSuffix(item.Title, "…") {
		t.Errorf("expected ellipsis suffix, got %q", item.Title)
	}
}

func TestBuildPlaceholderItemImages(t *testing.T) {
	known := BuildPlaceholderItem("https://vnexpress.net/the-gioi/bai-bao.html", time.Now())
	if known.ImageURL == genericPlaceholderImage {
		t.Error("expected publisher image for vnexpress.net, got generic fallback")
	}

	www := BuildPlaceholderItem("https://www.vnexpress.net/the-gioi/bai-bao.html", time.Now())
	if www.ImageURL != known.ImageURL {
		t.Error("expected www prefix to resolve to the same publisher image")
	}

	mobile := BuildPlaceholderItem("https://m.vnexpress.net/the-gioi/bai-bao.html", time.Now())
	if mobile.ImageURL != known.ImageURL {
		t.Error("expected publisher subdomain to resolve to the same publisher image")
	}

	unknown := BuildPlaceholderItem("https://unknown-publisher.example/bai-bao.html", time.Now())
	if unknown.ImageURL != genericPlaceholderImage {
		t.Errorf("expected generic fallback image, got %q", unknown.ImageURL)
	}

	lookalike := BuildPlaceholderItem("https://evilvnexpress.net/bai-bao.html", time.Now())
	if lookalike.ImageURL != genericPlaceholderImage {
		t.Errorf("expected generic fallback for lookalike host, got %q", lookalike.ImageURL)
	}
}

func TestBuildPlaceholderItemMetadata(t *testing.T) {
	savedAt := time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)
	item := BuildPlaceholderItem("https://vnexpress.net/kinh-doanh/gia-vang.html", savedAt)

	if item.Origin != domain.OriginStore {
		t.Errorf("origin = %q, want %q", item.Origin, domain.OriginStore)
	}
	if item.Link != "https://vnexpress.net/kinh-doanh/gia-vang.html" {
		t.Errorf("unexpected link %q", item.Link)
	}
	if item.GUID != item.Link {
		t.Errorf("guid = %q, want link", item.GUID)
	}
	if item.Published != savedAt.Format(time.RFC1123) {
		t.Errorf("published = %q", item.Published)
	}
	if !strings.Contains(item.DescriptionRaw, "vnexpress.net") {
		t.Errorf("expected description to mention publisher host, got %q", item.DescriptionRaw)
	}
}
