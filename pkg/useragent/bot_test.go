package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ssrkit/pkg/useragent"
)

func TestIsBot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ua   string
		want bool
	}{
		{name: "googlebot", ua: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", want: true},
		{name: "bingbot", ua: "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)", want: true},
		{name: "yahoo slurp", ua: "Mozilla/5.0 (compatible; Yahoo! Slurp; http://help.yahoo.com/help/us/ysearch/slurp)", want: true},
		{name: "facebook preview", ua: "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)", want: true},
		{name: "lighthouse", ua: "Mozilla/5.0 (Linux; Android 7.0; Moto G (4)) Chrome-Lighthouse", want: true},
		{name: "headless chrome", ua: "Mozilla/5.0 (X11; Linux x86_64) HeadlessChrome/120.0.0.0 Safari/537.36", want: true},
		{name: "curl", ua: "curl/8.4.0", want: true},
		{name: "go client", ua: "Go-http-client/1.1", want: true},
		{name: "chrome desktop", ua: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", want: false},
		{name: "safari iphone", ua: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1", want: false},
		{name: "firefox", ua: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", want: false},
		{name: "cubot phone", ua: "Mozilla/5.0 (Linux; Android 9; CUBOT X19) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/80.0 Mobile Safari/537.36", want: false},
		{name: "empty", ua: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, useragent.IsBot(tt.ua))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, useragent.Crawler, useragent.Classify("Googlebot/2.1"))
	assert.Equal(t, useragent.Browser, useragent.Classify("Mozilla/5.0 (Macintosh) Safari/605.1.15"))
	assert.Equal(t, "crawler", useragent.Crawler.String())
	assert.Equal(t, "browser", useragent.Browser.String())
}
