// Package scanner implements the core scan pipeline.
//
// Architecture overview:
//
//   - Client issues exactly one POST per domain to the fixed assessment API
//     host, enforcing the host pin, the response size cap, the request
//     timeout, and strict TLS verification.
//   - ScanPayload is the decoded boundary record; optional fields stay zero
//     and the formatters supply their own fallbacks.
//   - Runner drives the strictly sequential per-domain loop: validate,
//     request, classify, render, optionally persist, then wait on the shared
//     limiter before the next domain. Rendering, persistence, and summary
//     printing are injected callbacks so cmd/ decides presentation.
//   - Result and ExitCode carry the outcome model: errors always force a
//     non-zero exit, below-threshold scores only when the caller opted in.
//
// The loop is single-goroutine on purpose. Parallel scans would defeat the
// inter-request spacing the API expects, so concurrency is a non-feature.
package scanner
