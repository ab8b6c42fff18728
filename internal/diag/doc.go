// Package diag defines the diagnostic model shared by the lexer, parser and
// driver.
//
// The lexer and parser stop at their first error and return it as a typed
// Go error (*lexer.Error, *parser.Error). FromError turns those into a
// Diagnostic with a stable Code, a short message and the primary span.
// The driver adds I/O diagnostics (unreadable files, cache failures) of its
// own.
//
// Diagnostic fields:
//
//   - Severity – Info, Warning or Error.
//   - Code – numeric identifier with a stable string form (LEX1003, SYN2001).
//   - Message – human oriented text; keep it short.
//   - Primary – the span the diagnostic points at.
//   - Notes – optional secondary spans with extra context.
//
// Producers emit through a Reporter, usually a BagReporter. A Bag keeps at
// most its limit of diagnostics and can be merged with the bags of other
// files before sorting and deduplication. ReportIO builds the span-less I/O
// diagnostics.
//
// Package diag does no formatting or IO; rendering lives in internal/diagfmt.
package diag
