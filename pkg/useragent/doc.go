// Package useragent classifies HTTP clients as crawlers or browsers from their
// User-Agent string.
//
// Classification is a plain keyword scan over the lowercased header, covering
// search engine crawlers, link preview fetchers, monitoring tools and common
// HTTP libraries:
//
//	if useragent.IsBot(r.UserAgent()) {
//		// deliver the complete document
//	}
package useragent
