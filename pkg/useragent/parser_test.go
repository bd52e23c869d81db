package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{"empty", "", "unknown"},
		{"googlebot", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", "bot"},
		{"crawler", "my-crawler/1.0", "bot"},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", "tablet"},
		{"android tablet", "Mozilla/5.0 (Linux; Android 13; Tablet)", "tablet"},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", "mobile"},
		{"android phone", "Mozilla/5.0 (Linux; Android 13; Pixel 7) Mobile", "mobile"},
		{"windows desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "desktop"},
		{"macos desktop", "Mozilla/5.0 (Macintosh; Intel Mac OS X 13_0)", "desktop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ua))
		})
	}
}
