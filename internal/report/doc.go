// Package report renders scan payloads for people.
//
// Architecture overview:
//
//   - Format: the parsed --report value; picks one of the three renderers.
//   - Text / Pretty / HTML: pure formatters from a payload plus the passing
//     threshold to a finished block of output. Text is colorless for piping,
//     Pretty wraps the same fields in ANSI sequences, HTML produces one
//     self-contained document from an embedded template.
//   - Writer: persists HTML documents. It re-checks the output directory for
//     traversal, pins every path under the working directory, derives the
//     safepi_* filename and optionally drops a .sha256 companion.
//   - Summary: the colored aggregate block printed after multi-domain runs.
//
// The grade and status color tables live here so every surface (pretty
// output, summaries) colors the same grade the same way. Escaping for the
// HTML document is delegated to validate.EscapeHTML and applied inside the
// template, which keeps the XSS defense visible in the markup itself.
package report
