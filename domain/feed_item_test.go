package domain

import (
	"testing"
	"time"
)

func TestResolveGUID(t *testing.T) {
	tests := []struct {
		name string
		guid string
		link string
		want string
	}{
		{
			name: "guid present",
			guid: "urn:uuid:1234",
			link: "https://example.com/a",
			want: "urn:uuid:1234",
		},
		{
			name: "guid missing falls back to link",
			guid: "",
			link: "https://example.com/a",
			want: "https://example.com/a",
		},
		{
			name: "both empty",
			guid: "",
			link: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveGUID(tt.guid, tt.link); got != tt.want {
				t.Errorf("ResolveGUID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFeedItemDeletable(t *testing.T) {
	feedItem := &FeedItem{Origin: OriginFeed}
	if feedItem.Deletable() {
		t.Error("feed-origin item must not be deletable")
	}

	storeItem := &FeedItem{Origin: OriginStore}
	if !storeItem.Deletable() {
		t.Error("store-origin item must be deletable")
	}
}

func TestCacheEnvelopeFresh(t *testing.T) {
	now := time.Now()
	validity := 30 * time.Minute

	tests := []struct {
		name     string
		envelope *CacheEnvelope
		want     bool
	}{
		{
			name:     "nil envelope",
			envelope: nil,
			want:     false,
		},
		{
			name:     "empty items",
			envelope: &CacheEnvelope{CachedAt: now},
			want:     false,
		},
		{
			name: "inside window",
			envelope: &CacheEnvelope{
				Items:    []*FeedItem{{Title: "a"}},
				CachedAt: now.Add(-10 * time.Minute),
			},
			want: true,
		},
		{
			name: "expired",
			envelope: &CacheEnvelope{
				Items:    []*FeedItem{{Title: "a"}},
				CachedAt: now.Add(-31 * time.Minute),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.envelope.Fresh(now, validity); got != tt.want {
				t.Errorf("Fresh() = %v, want %v", got, tt.want)
			}
		})
	}
}
