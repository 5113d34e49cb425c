package ports

// HeaderParser turns raw header text into a structured document. Parsing is
// lenient: a section that fails to match yields an empty sequence, never an
// error. The concrete implementation lives in internal/domain/header.
type HeaderParser interface {
	// Parse extracts interfaces, protocols, properties, methods, and comments
	// from header text. Never fails; malformed sections degrade to empty.
	Parse(content string) *HeaderDocument

	// ParseFile reads and parses a header file. Read failures are not
	// propagated: the returned document carries Err and empty collections.
	ParseFile(path string) *HeaderDocument
}
