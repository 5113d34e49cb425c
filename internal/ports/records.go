// Package ports defines the interfaces (contracts) that adapters must implement
// and the data records that cross component boundaries. Domain logic depends
// only on these, never on concrete implementations.
package ports

// MethodKind distinguishes instance methods ("-" marker) from class methods
// ("+" marker) in a header declaration.
type MethodKind string

const (
	InstanceMethod MethodKind = "instance"
	ClassMethod    MethodKind = "class"
)

// MethodRecord is one method declaration extracted from a header.
// Parameters holds ordered "type label" strings in declaration order; the
// order is significant — it determines bridged-name segment order.
type MethodRecord struct {
	Name             string     `json:"name"`       // first selector keyword, e.g. "drawRect" or "title"
	ReturnType       string     `json:"returnType"` // opaque type text, e.g. "NSArray<NSString *> *"
	Kind             MethodKind `json:"kind"`
	Parameters       []string   `json:"parameters"` // e.g. ["CALayer * layer", "NSDictionary * options"]
	FullSignature    string     `json:"fullSignature"`
	Deprecated       bool       `json:"deprecated"`
	PropertyAccessor bool       `json:"propertyAccessor"` // backed by a declared @property in the same protocol
}

// PropertyRecord is one @property declaration. Type keeps everything up to the
// last whitespace boundary so generic types survive intact.
type PropertyRecord struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Attributes []string `json:"attributes"` // e.g. ["nonatomic", "readonly"]
}

// InterfaceRecord is one "@interface Name : Superclass" pair.
type InterfaceRecord struct {
	Name       string `json:"name"`
	Superclass string `json:"superclass"`
}

// ProtocolRecord is one body-bearing @protocol block: a named, optionally
// multiply-inherited set of required and optional member declarations.
//
// Invariant: every entry in DeprecatedMethodNames also appears, with
// Deprecated=true, in RequiredMethods or OptionalMethods.
type ProtocolRecord struct {
	Name                  string            `json:"name"`
	Parents               []string          `json:"parents"`
	RequiredMethods       []*MethodRecord   `json:"requiredMethods"`
	OptionalMethods       []*MethodRecord   `json:"optionalMethods"`
	Properties            []*PropertyRecord `json:"properties"`
	DeprecatedMethodNames []string          `json:"deprecatedMethodNames"`
}

// CommentRecord is a block or line comment with a best-effort context label:
// the first interface or method name found shortly after the comment, or
// "general" when no anchor could be located.
type CommentRecord struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

// HeaderDocument is the transient result of one parse call. Sections that
// failed to match are empty, never nil-panicking; Diagnostics records which
// sections matched nothing at all (as opposed to matching zero items cleanly).
type HeaderDocument struct {
	Interfaces  []*InterfaceRecord
	Protocols   []*ProtocolRecord
	Properties  []*PropertyRecord // declared outside any protocol body
	Methods     []*MethodRecord   // declared outside any protocol body
	Comments    []*CommentRecord
	Diagnostics []string
	Err         string // set by ParseFile when the file could not be read
}

// Protocol returns the protocol with the given name, or nil.
func (d *HeaderDocument) Protocol(name string) *ProtocolRecord {
	for _, p := range d.Protocols {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// MethodBuckets is the categorized query result: bridged names split by
// protocol section.
type MethodBuckets struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

// BaselineDiff reports drift between the parsed bridged-name set and a
// hand-curated baseline. MatchRate is |parsed ∩ baseline| / |parsed ∪ baseline|,
// 0.0 when the union is empty.
type BaselineDiff struct {
	MissingInBaseline map[string]bool `json:"missingInBaseline"` // parsed − baseline
	ExtraInBaseline   map[string]bool `json:"extraInBaseline"`   // baseline − parsed
	MatchRate         float64         `json:"matchRate"`
}
