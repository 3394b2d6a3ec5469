// Package logtail reads the tail of the bookshelf activity log.
//
// The application writes one line per applied action through the standard
// log package. The UI's activity view shows the last few of those lines, so
// this package only needs to read a bounded suffix of a possibly large file.
//
// # Ring Buffer
//
// Read scans the file once and keeps the last maxLines lines in a circular
// buffer, so memory is O(maxLines) regardless of file size:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// # Parsing
//
// ParseLine understands the log.LstdFlags prefix ("2006/01/02 15:04:05") and
// splits it from the message. Anything else is kept verbatim:
//
//	"2026/10/18 09:12:44 [Books] Load Books"  → {09:12:44, "[Books] Load Books"}
//	"plain text"                              → {zero, "plain text"}
package logtail
