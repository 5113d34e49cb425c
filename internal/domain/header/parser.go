// Package header extracts structure from Objective-C-style header text:
// interfaces, protocols with required/optional sections, typed properties,
// instance and class methods, and comments. Extraction is regex-grounded and
// lenient — a section that fails to match degrades to an empty sequence, the
// same way swarm-style heuristic parsers treat unrecognized source.
package header

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/corey/protodex/internal/ports"
)

var (
	interfaceRe = regexp.MustCompile(`@interface\s+(\w+)\s*:\s*(\w+)`)

	// propertyRe captures the attribute list and the declaration up to the
	// terminator. The attribute parens are optional in the wild.
	propertyRe = regexp.MustCompile(`@property\s*(?:\(([^)]*)\))?\s*([^;]+);`)

	// Method declarations: marker, parenthesized return type, signature body
	// up to the terminator. Anchored at line start so a stray dash in prose
	// is not mistaken for a declaration.
	instanceMethodRe = regexp.MustCompile(`(?m)^\s*-\s*\(([^)]*)\)\s*([^;]+);`)
	classMethodRe    = regexp.MustCompile(`(?m)^\s*\+\s*\(([^)]*)\)\s*([^;]+);`)

	// paramRe scans a signature body for "(type) label" pairs in order.
	paramRe = regexp.MustCompile(`\(([^)]*)\)\s*(\w+)`)

	// annotationRe strips availability macros when deriving a method name.
	// The full signature keeps them — the deprecation pass depends on that.
	annotationRe = regexp.MustCompile(`__attribute__\s*\(\(.*\)\)|\b(?:NS|API|CF)_[A-Z][A-Z0-9_]*(?:\([^)]*\))?`)
)

// Parser implements ports.HeaderParser. Stateless; the zero value is usable
// but New is the conventional constructor.
type Parser struct{}

// New returns a header parser.
func New() *Parser {
	return &Parser{}
}

// Parse extracts a structured document from header text. Never fails.
func (p *Parser) Parse(content string) *ports.HeaderDocument {
	doc := &ports.HeaderDocument{}

	doc.Interfaces = parseInterfaces(content)
	doc.Protocols = parseProtocols(content, doc)

	// Top-level members are whatever remains once protocol blocks are cut
	// out; interface bodies count as top level.
	remainder := protocolRe.ReplaceAllString(stripForwardDecls(content), "")
	doc.Properties = parseProperties(remainder)
	doc.Methods = append(
		parseMethods(remainder, ports.InstanceMethod),
		parseMethods(remainder, ports.ClassMethod)...)

	noteUnparsedSection(doc, content, "@interface", len(doc.Interfaces) == 0, "interface")
	noteUnparsedSection(doc, content, "@property", topLevelPropertyCount(doc) == 0, "property")

	doc.Comments = parseComments(content, knownNames(doc))
	return doc
}

// ParseFile reads and parses a header file. A read failure is surfaced as
// Err on the document, never as a raised error.
func (p *Parser) ParseFile(path string) *ports.HeaderDocument {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ports.HeaderDocument{Err: fmt.Sprintf("read %s: %v", path, err)}
	}
	return p.Parse(string(data))
}

func parseInterfaces(content string) []*ports.InterfaceRecord {
	var out []*ports.InterfaceRecord
	for _, m := range interfaceRe.FindAllStringSubmatch(content, -1) {
		out = append(out, &ports.InterfaceRecord{Name: m[1], Superclass: m[2]})
	}
	return out
}

// parseProperties extracts @property declarations. The type/name boundary is
// the LAST whitespace in the declaration, so multi-word and generic types
// ("NSArray<NSString *> *") stay intact; a leading pointer star belongs to
// the declarator, not the name.
func parseProperties(text string) []*ports.PropertyRecord {
	var out []*ports.PropertyRecord
	for _, m := range propertyRe.FindAllStringSubmatch(text, -1) {
		var attrs []string
		for _, a := range strings.Split(m[1], ",") {
			if a = strings.TrimSpace(a); a != "" {
				attrs = append(attrs, a)
			}
		}

		decl := strings.TrimSpace(m[2])
		idx := strings.LastIndexFunc(decl, unicode.IsSpace)
		if idx < 0 {
			// No type — degrade to a bare name.
			out = append(out, &ports.PropertyRecord{Name: strings.TrimLeft(decl, "*"), Attributes: attrs})
			continue
		}
		out = append(out, &ports.PropertyRecord{
			Name:       strings.TrimLeft(strings.TrimSpace(decl[idx+1:]), "*"),
			Type:       strings.TrimSpace(decl[:idx]),
			Attributes: attrs,
		})
	}
	return out
}

// parseMethods runs one extraction pass for the given kind. The method name
// is the signature body up to the first parameter marker; parameters are
// retained as opaque "type label" strings in declaration order.
func parseMethods(text string, kind ports.MethodKind) []*ports.MethodRecord {
	re := instanceMethodRe
	if kind == ports.ClassMethod {
		re = classMethodRe
	}

	var out []*ports.MethodRecord
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		body := strings.TrimSpace(m[2])

		name := body
		if i := strings.Index(body, ":"); i >= 0 {
			name = body[:i]
		}
		name = strings.TrimSpace(annotationRe.ReplaceAllString(name, ""))

		var params []string
		for _, pm := range paramRe.FindAllStringSubmatch(body, -1) {
			params = append(params, strings.TrimSpace(pm[1])+" "+pm[2])
		}

		out = append(out, &ports.MethodRecord{
			Name:          strings.TrimSpace(name),
			ReturnType:    strings.TrimSpace(m[1]),
			Kind:          kind,
			Parameters:    params,
			FullSignature: strings.TrimSpace(m[0]),
		})
	}
	return out
}

// noteUnparsedSection distinguishes "matched zero items" from "section text
// present but unparsed": only the latter gets a diagnostic.
func noteUnparsedSection(doc *ports.HeaderDocument, content, marker string, empty bool, section string) {
	if empty && strings.Contains(content, marker) {
		doc.Diagnostics = append(doc.Diagnostics, section+" section present but unparsed")
	}
}

func topLevelPropertyCount(doc *ports.HeaderDocument) int {
	n := len(doc.Properties)
	for _, p := range doc.Protocols {
		n += len(p.Properties)
	}
	return n
}

// knownNames collects every interface and method name for comment context
// labeling.
func knownNames(doc *ports.HeaderDocument) []string {
	var names []string
	for _, i := range doc.Interfaces {
		names = append(names, i.Name)
	}
	for _, m := range doc.Methods {
		names = append(names, m.Name)
	}
	for _, p := range doc.Protocols {
		for _, m := range append(append([]*ports.MethodRecord{}, p.RequiredMethods...), p.OptionalMethods...) {
			names = append(names, m.Name)
		}
	}
	return names
}
