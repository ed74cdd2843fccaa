package prefetch

import "net/http"

// Purpose returns the first non-empty purpose header of the request.
func Purpose(r *http.Request) string {
	for _, name := range PurposeHeaders {
		if v := r.Header.Get(name); v != "" {
			return v
		}
	}
	return ""
}

// IsPrefetch reports whether the request announces itself as a prefetch.
// Only the first non-empty purpose header is considered.
func IsPrefetch(r *http.Request) bool {
	return Purpose(r) == Value
}

// Eligible reports whether a response to r may receive the short private
// cache policy: a GET prefetch whose response has no Cache-Control yet.
func Eligible(h http.Header, r *http.Request) bool {
	return r.Method == http.MethodGet && IsPrefetch(r) && h.Get(HeaderCacheControl) == ""
}

// Apply sets Cache-Control to CacheControl when the response is eligible and
// reports whether it did. Applying it twice leaves the headers unchanged.
func Apply(h http.Header, r *http.Request) bool {
	if !Eligible(h, r) {
		return false
	}
	h.Set(HeaderCacheControl, CacheControl)
	return true
}
