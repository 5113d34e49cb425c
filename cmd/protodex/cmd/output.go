package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corey/protodex/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// sortedNames returns a set's members in stable order for display.
func sortedNames(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// formatMethodInfo renders one parsed method record.
//
//	⚡ drawRect_inView_
//	  Declared:   - (void)drawRect:(NSRect)rect inView:(NSView *)view;
//	  Returns:    void  (instance)
//	  Parameters: NSRect rect, NSView * view
func formatMethodInfo(bridged string, m *ports.MethodRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %s%s\n", colorBold, bridged, colorReset))
	sb.WriteString(fmt.Sprintf("  Declared:   %s\n", m.FullSignature))
	sb.WriteString(fmt.Sprintf("  Returns:    %s  (%s)\n", m.ReturnType, m.Kind))
	if len(m.Parameters) > 0 {
		sb.WriteString(fmt.Sprintf("  Parameters: %s\n", strings.Join(m.Parameters, ", ")))
	}
	if m.Deprecated {
		sb.WriteString(fmt.Sprintf("  %sdeprecated%s\n", colorYellow, colorReset))
	}
	return sb.String()
}

// formatDocument renders a parsed header document for the parse command.
func formatDocument(doc *ports.HeaderDocument) string {
	var sb strings.Builder

	if doc.Err != "" {
		sb.WriteString(fmt.Sprintf("%serror: %s%s\n", colorYellow, doc.Err, colorReset))
		return sb.String()
	}

	for _, i := range doc.Interfaces {
		sb.WriteString(fmt.Sprintf("%s@interface %s%s : %s\n", colorBold, i.Name, colorReset, i.Superclass))
	}
	for _, p := range doc.Protocols {
		sb.WriteString(fmt.Sprintf("%s@protocol %s%s", colorBold, p.Name, colorReset))
		if len(p.Parents) > 0 {
			sb.WriteString(" <" + strings.Join(p.Parents, ", ") + ">")
		}
		sb.WriteString("\n")
		for _, m := range p.RequiredMethods {
			sb.WriteString("  required  " + methodLine(m) + "\n")
		}
		for _, m := range p.OptionalMethods {
			sb.WriteString("  optional  " + methodLine(m) + "\n")
		}
		for _, prop := range p.Properties {
			sb.WriteString(fmt.Sprintf("  property  %s %s\n", prop.Type, prop.Name))
		}
	}
	for _, p := range doc.Properties {
		sb.WriteString(fmt.Sprintf("property  %s %s\n", p.Type, p.Name))
	}
	for _, m := range doc.Methods {
		sb.WriteString("method    " + methodLine(m) + "\n")
	}
	for _, d := range doc.Diagnostics {
		sb.WriteString(fmt.Sprintf("%snote: %s%s\n", colorGray, d, colorReset))
	}
	return sb.String()
}

func methodLine(m *ports.MethodRecord) string {
	line := m.FullSignature
	if m.Deprecated {
		line += fmt.Sprintf("  %s[deprecated]%s", colorYellow, colorReset)
	}
	if m.PropertyAccessor {
		line += fmt.Sprintf("  %s[property accessor]%s", colorGray, colorReset)
	}
	return line
}
