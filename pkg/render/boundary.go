package render

import (
	"github.com/a-h/templ"
)

// Boundary marks the end of the document shell. Everything written before it
// is the shell; a browser receives the response as soon as the boundary is
// reached, while the rest keeps streaming.
//
// It is templ.Flush, so a page may use either one. Both reach the session
// writer through templ's runtime buffer.
func Boundary() templ.Component {
	return templ.Flush()
}
