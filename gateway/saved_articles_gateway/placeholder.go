package saved_articles_gateway

import (
	"net/url"
	"path"
	"strings"
	"time"

	"newsreader/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxPlaceholderTitleRunes = 100

// publisherImages maps publisher hosts to a representative default image,
// used when a saved reference no longer resolves to a stored article.
var publisherImages = map[string]string{
	"vnexpress.net": "https://s1cdn.vnecdn.net/vnexpress/restruct/i/v9506/v2_2019/pc/graphics/logo.svg",
	"tuoitre.vn":    "https://statictuoitre.mediacdn.vn/web_images/logo_tt.png",
	"thanhnien.vn":  "https://static.thanhnien.com.vn/thanhnien.vn/image/logo.svg",
	"dantri.com.vn": "https://cdnweb.dantri.com.vn/dist/static-logo.b21ea034.svg",
	"vietnamnet.vn": "https://static.vnncdn.net/v1/icon/logo-vnn.svg",
	"laodong.vn":    "https://laodong.vn/assets/img/logo.svg",
	"nhandan.vn":    "https://nhandan.vn/assets/images/logo.png",
}

const genericPlaceholderImage = "https://placehold.co/600x400?text=Saved+Article"

var titleCaser = cases.Title(language.Vietnamese)

// BuildPlaceholderItem synthesizes a display item for a saved reference whose
// stored article can no longer be found. The URL itself carries enough signal
// for a recognizable list entry, so this never fails: worst case the raw
// reference string becomes the title.
func BuildPlaceholderItem(articleRef string, savedAt time.Time) *domain.FeedItem {
	title := placeholderTitle(articleRef)
	if title == "" {
		title = articleRef
	}

	host := refHost(articleRef)
	description := "Saved article"
	if host != "" {
		description = "Saved article from " + host
	}

	return &domain.FeedItem{
		Title:          title,
		DescriptionRaw: description,
		Published:      savedAt.Format(time.RFC1123),
		Link:           articleRef,
		GUID:           articleRef,
		ImageURL:       placeholderImage(host),
		Origin:         domain.OriginStore,
	}
}

// placeholderTitle recovers a human-readable title from the final URL path
// segment: query and extension stripped, dashes and underscores become
// spaces, percent escapes decoded, then locale-aware title casing.
func placeholderTitle(articleRef string) string {
	parsed, err := url.Parse(articleRef)
	if err != nil {
		return ""
	}

	segment := path.Base(parsed.Path)
	if segment == "." || segment == "/" {
		return ""
	}

	if ext := path.Ext(segment); ext != "" {
		segment = strings.TrimSuffix(segment, ext)
	}

	segment = strings.NewReplacer("-", " ", "_", " ").Replace(segment)
	if decoded, err := url.PathUnescape(segment); err == nil {
		segment = decoded
	}

	segment = strings.Join(strings.Fields(segment), " ")
	segment = titleCaser.String(segment)

	return truncateRunes(segment, maxPlaceholderTitleRunes)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

func refHost(articleRef string) string {
	parsed, err := url.Parse(articleRef)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

func placeholderImage(host string) string {
	for publisher, img := range publisherImages {
		// Publishers serve the same content from subdomains such as
		// m.vnexpress.net, so match on the registered domain suffix.
		if host == publisher || strings.HasSuffix(host, "."+publisher) {
			return img
		}
	}
	return genericPlaceholderImage
}
