package useragent

import "strings"

// Class is the coarse classification used to decide how a response is delivered.
type Class int

const (
	// Browser is an interactive client that benefits from progressive delivery.
	Browser Class = iota
	// Crawler is an automated client that expects a complete document.
	Crawler
)

func (c Class) String() string {
	if c == Crawler {
		return "crawler"
	}
	return "browser"
}

type keywordSet []string

func (k keywordSet) contains(s string) bool {
	for _, keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

var (
	botKeywords = keywordSet{
		"bot", "spider", "crawl", "archiver", "slurp", "lighthouse", "headless",
		"facebookexternalhit", "facebookcatalog", "embedly", "daum", "sogou", "yeti",
		"whatsapp", "telegram", "discord", "slack", "linkedin", "camo asset",
		"preview", "validator", "scraper", "fetcher", "monitor", "analyzer",
		"curl/", "wget", "python-requests", "python-urllib", "go-http-client",
		"java/", "okhttp", "axios", "node-fetch", "httpclient", "libwww", "httpie",
	}

	// Device names that contain "bot" but are regular browsers.
	botExceptions = keywordSet{"cubot", "robot os"}
)

// IsBot reports whether the User-Agent belongs to an automated client.
// An empty User-Agent is treated as a browser.
func IsBot(ua string) bool {
	if ua == "" {
		return false
	}
	lower := strings.ToLower(ua)
	if !botKeywords.contains(lower) {
		return false
	}
	if botExceptions.contains(lower) {
		return strings.Count(lower, "bot") > 1
	}
	return true
}

// Classify maps a User-Agent to its delivery class.
func Classify(ua string) Class {
	if IsBot(ua) {
		return Crawler
	}
	return Browser
}
