// Package render streams server-rendered HTML documents.
//
// A Renderer runs a templ component in its own goroutine, writing into a
// Stream, and decides when the response may start:
//
//   - crawlers (see useragent.IsBot) wait for the whole document;
//   - browsers get the response as soon as the shell is ready, that is when
//     the component reaches a Boundary or finishes.
//
// Every render is bound to a Session. Its context carries a request-scoped
// i18n.Translator and is canceled after Timeout plus AbortGrace, which ends
// the render with ErrAborted.
//
//	r := render.New(table, render.WithLogger(log))
//
//	res, err := r.Render(ctx, render.Request{
//		Component:  page,
//		Locale:     "sk",
//		Namespaces: []string{"home"},
//		UserAgent:  req.UserAgent(),
//	})
//	if err != nil {
//		// the shell failed: nothing was sent yet
//	}
//	_ = res.Serve(w)
//
// Errors behave differently on both sides of the shell. A failure before the
// shell is ready is returned from Render wrapped in ErrShell. A failure after
// it cannot change what the client already received: the session status
// becomes 500 (visible in Result.Status only when the failure happened before
// Render returned), the error is logged once and the stream ends with the
// bytes produced so far.
package render
