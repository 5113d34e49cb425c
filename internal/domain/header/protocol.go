package header

import (
	"regexp"
	"strings"

	"github.com/corey/protodex/internal/ports"
)

var (
	// forwardDeclRe matches bodiless forward declarations. These must be
	// removed before the block pass or "@protocol Name;" would swallow text
	// through the next real protocol's @end.
	forwardDeclRe = regexp.MustCompile(`@protocol\s+\w+\s*(?:<[^>]*>)?\s*;`)

	// protocolRe matches a body-bearing protocol block. The body quantifier
	// is non-greedy: greedy matching would merge two adjacent protocols into
	// a single record.
	protocolRe = regexp.MustCompile(`(?s)@protocol\s+(\w+)\s*(?:<([^>]*)>)?(.*?)@end`)

	unavailableRe = regexp.MustCompile(`(?i)unavailable`)
)

func stripForwardDecls(content string) string {
	return forwardDeclRe.ReplaceAllString(content, "")
}

// parseProtocols extracts every body-bearing @protocol block.
func parseProtocols(content string, doc *ports.HeaderDocument) []*ports.ProtocolRecord {
	stripped := stripForwardDecls(content)

	var out []*ports.ProtocolRecord
	for _, m := range protocolRe.FindAllStringSubmatch(stripped, -1) {
		rec := &ports.ProtocolRecord{Name: m[1]}

		for _, parent := range strings.Split(m[2], ",") {
			if parent = strings.TrimSpace(parent); parent != "" {
				rec.Parents = append(rec.Parents, parent)
			}
		}

		required, optional := splitSections(m[3])

		rec.RequiredMethods = append(
			parseMethods(required, ports.InstanceMethod),
			parseMethods(required, ports.ClassMethod)...)
		rec.OptionalMethods = append(
			parseMethods(optional, ports.InstanceMethod),
			parseMethods(optional, ports.ClassMethod)...)
		rec.Properties = append(parseProperties(required), parseProperties(optional)...)

		markDeprecated(rec)
		markPropertyAccessors(rec)
		out = append(out, rec)
	}

	if len(out) == 0 && strings.Contains(stripped, "@protocol") {
		doc.Diagnostics = append(doc.Diagnostics, "protocol section present but unparsed")
	}
	return out
}

// splitSections divides a protocol body into its required and optional
// halves. A line scanner with explicit section state, rather than a single
// string split, so marker text inside a comment cannot flip sections.
func splitSections(body string) (required, optional string) {
	var req, opt strings.Builder
	cur := &req
	inBlockComment := false

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inBlockComment && !strings.HasPrefix(trimmed, "//") {
			switch {
			case strings.HasPrefix(trimmed, "@optional"):
				cur = &opt
				continue
			case strings.HasPrefix(trimmed, "@required"):
				cur = &req
				continue
			}
		}

		cur.WriteString(line)
		cur.WriteString("\n")

		// Track block-comment state after consuming the line; an unterminated
		// opener suppresses markers until the closer appears.
		rest := line
		for {
			if inBlockComment {
				end := strings.Index(rest, "*/")
				if end < 0 {
					break
				}
				inBlockComment = false
				rest = rest[end+2:]
			} else {
				start := strings.Index(rest, "/*")
				if start < 0 {
					break
				}
				inBlockComment = true
				rest = rest[start+2:]
			}
		}
	}
	return req.String(), opt.String()
}

// markDeprecated flags every method whose declaration carries an unavailable
// attribute and records its name on the protocol.
func markDeprecated(rec *ports.ProtocolRecord) {
	for _, m := range append(append([]*ports.MethodRecord{}, rec.RequiredMethods...), rec.OptionalMethods...) {
		if unavailableRe.MatchString(m.FullSignature) {
			m.Deprecated = true
			rec.DeprecatedMethodNames = append(rec.DeprecatedMethodNames, m.Name)
		}
	}
}

// markPropertyAccessors flags methods that mirror a declared @property in the
// same protocol: the conventional getter (same name) or setter ("setX").
// The registry skips these — the bridge surfaces properties separately.
func markPropertyAccessors(rec *ports.ProtocolRecord) {
	if len(rec.Properties) == 0 {
		return
	}

	accessors := make(map[string]bool, len(rec.Properties)*2)
	for _, p := range rec.Properties {
		accessors[p.Name] = true
		accessors[setterName(p.Name)] = true
	}

	for _, m := range append(append([]*ports.MethodRecord{}, rec.RequiredMethods...), rec.OptionalMethods...) {
		if m.Kind == ports.InstanceMethod && accessors[m.Name] {
			m.PropertyAccessor = true
		}
	}
}

func setterName(property string) string {
	if property == "" {
		return ""
	}
	return "set" + strings.ToUpper(property[:1]) + property[1:]
}
