package prefetch

// Request headers browsers use to announce a speculative fetch.
// They are consulted in this order; the first non-empty one wins.
const (
	HeaderPurpose         = "Purpose"
	HeaderXPurpose        = "X-Purpose"
	HeaderSecPurpose      = "Sec-Purpose"
	HeaderSecFetchPurpose = "Sec-Fetch-Purpose"
	HeaderMozPurpose      = "Moz-Purpose"
)

const (
	// HeaderCacheControl is the response header set for prefetched data.
	HeaderCacheControl = "Cache-Control"

	// Value marks a request as a prefetch.
	Value = "prefetch"

	// CacheControl keeps a prefetched response in the private cache just long
	// enough for the navigation that follows.
	CacheControl = "private, max-age=10"
)

// PurposeHeaders lists the purpose headers in priority order.
var PurposeHeaders = []string{
	HeaderPurpose,
	HeaderXPurpose,
	HeaderSecPurpose,
	HeaderSecFetchPurpose,
	HeaderMozPurpose,
}
