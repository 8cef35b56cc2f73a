package html_parser

import "testing"

func TestResolveImageURL(t *testing.T) {
	tests := []struct {
		name         string
		enclosureURL string
		description  string
		want         string
	}{
		{
			name:         "enclosure wins over description",
			enclosureURL: "https://enc/img.png",
			description:  `<img src="https://other/b.jpg">`,
			want:         "https://enc/img.png",
		},
		{
			name:         "src attribute match",
			enclosureURL: "",
			description:  `<p>text <img src="https://cdn.example.com/cover.jpg" alt=""></p>`,
			want:         "https://cdn.example.com/cover.jpg",
		},
		{
			name:         "single-quoted src",
			enclosureURL: "",
			description:  `<img src='https://x/a.jpg'>`,
			want:         "https://x/a.jpg",
		},
		{
			name:         "lazy-load data-src fallback",
			enclosureURL: "",
			description:  `<img data-src="https://x/a.jpg">`,
			want:         "https://x/a.jpg",
		},
		{
			name:         "picture srcset first candidate",
			enclosureURL: "",
			description:  `<picture><source srcset="https://x/small.jpg 480w, https://x/large.jpg 1080w"><img data-foo="1"></picture>`,
			want:         "https://x/small.jpg",
		},
		{
			name:         "srcset without descriptor",
			enclosureURL: "",
			description:  `<picture><source srcset="https://x/only.jpg"></picture>`,
			want:         "https://x/only.jpg",
		},
		{
			name:         "no image anywhere",
			enclosureURL: "",
			description:  `<p>just text</p>`,
			want:         "",
		},
		{
			name:         "empty description",
			enclosureURL: "",
			description:  "",
			want:         "",
		},
		{
			name:         "malformed markup degrades to empty",
			enclosureURL: "",
			description:  `<<picture><source srcset=`,
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveImageURL(tt.enclosureURL, tt.description); got != tt.want {
				t.Errorf("ResolveImageURL(%q, %q) = %q, want %q",
					tt.enclosureURL, tt.description, got, tt.want)
			}
		})
	}
}

func TestFirstSrcsetCandidate(t *testing.T) {
	tests := []struct {
		srcset string
		want   string
	}{
		{"https://x/a.jpg 2x, https://x/b.jpg 3x", "https://x/a.jpg"},
		{"https://x/a.jpg", "https://x/a.jpg"},
		{"  https://x/a.jpg 480w", "https://x/a.jpg"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := firstSrcsetCandidate(tt.srcset); got != tt.want {
			t.Errorf("firstSrcsetCandidate(%q) = %q, want %q", tt.srcset, got, tt.want)
		}
	}
}
