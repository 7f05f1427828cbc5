package savedlink

import (
	"RecipeShare-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=abc123", domain.PlatformYouTube},
		{"https://youtu.be/abc123", domain.PlatformYouTube},
		{"https://m.youtube.com/watch?v=abc123", domain.PlatformYouTube},
		{"https://www.instagram.com/reel/xyz/", domain.PlatformInstagram},
		{"https://www.tiktok.com/@cook/video/123", domain.PlatformTikTok},
		{"https://www.pinterest.com/pin/123/", domain.PlatformPinterest},
		{"https://pin.it/abc", domain.PlatformPinterest},
		{"https://seriouseats.com/focaccia", domain.PlatformWebsite},
		{"https://notyoutube.com.evil.example/x", domain.PlatformWebsite},
		// lookalike hosts are plain websites, not the platform they mimic
		{"https://notyoutube.com/watch?v=abc", domain.PlatformWebsite},
		{"https://myinstagram.com/reel/xyz/", domain.PlatformWebsite},
		{"not a url", domain.PlatformOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), "url %q", tt.url)
	}
}
