package middlewares

import (
	"strings"

	"github.com/dmitrymomot/ssrkit/internal"
	"github.com/dmitrymomot/ssrkit/pkg/prefetch"
)

// DataCache returns middleware that lets browsers reuse prefetched data
// responses for a few seconds. Right before the headers go out it applies
// prefetch.Apply to every non-document response: GET prefetch requests
// without their own Cache-Control get "private, max-age=10".
//
// HTML documents are left alone; they are always rendered fresh.
func DataCache() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if !prefetch.IsPrefetch(c.Request()) {
				return next(c)
			}

			rw := c.ResponseWriter()
			rw.OnBeforeWrite(func() {
				h := rw.Header()
				if strings.HasPrefix(h.Get("Content-Type"), "text/html") {
					return
				}
				prefetch.Apply(h, c.Request())
			})

			return next(c)
		}
	}
}
