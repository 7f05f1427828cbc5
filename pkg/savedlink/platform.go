package savedlink

import (
	"RecipeShare-Backend/domain"
	"net/url"
	"strings"
)

// hostIs reports whether host is the given site or one of its subdomains.
// A bare suffix check would also match lookalikes such as notyoutube.com.
func hostIs(host, site string) bool {
	return host == site || strings.HasSuffix(host, "."+site)
}

// DetectPlatform classifies a link by its host. Unknown hosts are plain
// websites; an unparseable URL falls through to other (Create rejects those
// before detection matters).
func DetectPlatform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return domain.PlatformOther
	}

	host := strings.ToLower(u.Hostname())

	switch {
	case hostIs(host, "instagram.com"):
		return domain.PlatformInstagram
	case hostIs(host, "tiktok.com"):
		return domain.PlatformTikTok
	case hostIs(host, "youtube.com"), hostIs(host, "youtu.be"):
		return domain.PlatformYouTube
	case hostIs(host, "pinterest.com"), hostIs(host, "pin.it"):
		return domain.PlatformPinterest
	default:
		return domain.PlatformWebsite
	}
}
