// Package health provides liveness and readiness probe handlers.
//
// The liveness handler always answers 200 while the process runs. The
// readiness handler runs named checks concurrently under a shared timeout and
// answers 503 if any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"i18n": table.Check,
//	}, health.WithTimeout(2*time.Second)))
//
// Responses are plain text ("OK", "Service Unavailable") unless the client
// asks for JSON with Accept: application/json or ?format=json.
package health
