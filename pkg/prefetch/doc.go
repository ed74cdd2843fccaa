// Package prefetch adjusts caching of data responses requested speculatively
// by the browser.
//
// When a page links to another route, browsers may fetch that route's data in
// advance and mark the request with a purpose header (Purpose, X-Purpose,
// Sec-Purpose, Sec-Fetch-Purpose or Moz-Purpose) set to "prefetch". Without a
// cache policy the prefetched response would be thrown away and fetched again
// on navigation. Apply gives such responses a ten second private cache
// lifetime, unless the handler already chose a Cache-Control value:
//
//	prefetch.Apply(w.Header(), r)
//
// Only GET requests are affected.
package prefetch
