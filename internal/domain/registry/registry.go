// Package registry composes the header parser and the naming bridge: given a
// protocol name and a search directory it resolves the candidate header,
// bridges every live method to its underscore name, and caches the result for
// the life of the registry. Caches have no internal locking — one registry
// per goroutine, or serialize externally. Headers are treated as immutable
// for the process lifetime, so entries are never evicted.
package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/corey/protodex/internal/domain/bridge"
	"github.com/corey/protodex/internal/ports"
)

// Registry answers bridged-name queries for protocols found in one search
// directory. Construct with New and inject where needed; there is no
// package-level cache state.
type Registry struct {
	dir    string
	parser ports.HeaderParser

	// Both caches are keyed by protocol name and never evicted. A lookup
	// that resolves to "no such protocol" is cached as an empty entry so the
	// directory is not re-scanned; callers cannot distinguish that from a
	// protocol with zero live methods.
	names map[string]map[string]bool
	info  map[string]map[string]*ports.MethodRecord
}

// New returns a registry over the given header directory.
func New(dir string, parser ports.HeaderParser) *Registry {
	return &Registry{
		dir:    dir,
		parser: parser,
		names:  make(map[string]map[string]bool),
		info:   make(map[string]map[string]*ports.MethodRecord),
	}
}

// Methods returns the bridged names of every live (non-deprecated,
// non-property-accessor) method of the protocol. The returned set is the
// cached object itself — identity-stable across calls.
func (r *Registry) Methods(protocol string) map[string]bool {
	if set, ok := r.names[protocol]; ok {
		return set
	}

	set := make(map[string]bool)
	info := make(map[string]*ports.MethodRecord)

	if rec := r.findProtocol(protocol); rec != nil {
		for _, m := range liveMethods(rec) {
			bridged := bridgedName(m)
			set[bridged] = true
			info[bridged] = m
		}
	}

	r.names[protocol] = set
	r.info[protocol] = info
	return set
}

// MethodInfo returns the parsed record behind a bridged name, or nil.
// Loads the protocol on first use.
func (r *Registry) MethodInfo(protocol, bridged string) *ports.MethodRecord {
	r.Methods(protocol)
	return r.info[protocol][bridged]
}

// IsMethod reports whether the bridged name belongs to the protocol.
// Loads the protocol on first use.
func (r *Registry) IsMethod(protocol, bridged string) bool {
	return r.Methods(protocol)[bridged]
}

// Categorized returns bridged names split by protocol section. It re-derives
// from a fresh parse rather than the combined-set cache, applying the same
// deprecation and property-accessor filters.
func (r *Registry) Categorized(protocol string) ports.MethodBuckets {
	var buckets ports.MethodBuckets
	rec := r.findProtocol(protocol)
	if rec == nil {
		return buckets
	}
	for _, m := range rec.RequiredMethods {
		if live(m) {
			buckets.Required = append(buckets.Required, bridgedName(m))
		}
	}
	for _, m := range rec.OptionalMethods {
		if live(m) {
			buckets.Optional = append(buckets.Optional, bridgedName(m))
		}
	}
	return buckets
}

// DiffBaseline compares the parsed bridged-name set against a hand-curated
// baseline. MatchRate is the Jaccard index of the two sets, 0.0 when both
// are empty.
func (r *Registry) DiffBaseline(protocol string, baseline map[string]bool) ports.BaselineDiff {
	parsed := r.Methods(protocol)

	diff := ports.BaselineDiff{
		MissingInBaseline: make(map[string]bool),
		ExtraInBaseline:   make(map[string]bool),
	}

	intersect, union := 0, 0
	for name := range parsed {
		union++
		if baseline[name] {
			intersect++
		} else {
			diff.MissingInBaseline[name] = true
		}
	}
	for name := range baseline {
		if !parsed[name] {
			union++
			diff.ExtraInBaseline[name] = true
		}
	}

	if union > 0 {
		diff.MatchRate = float64(intersect) / float64(union)
	}
	return diff
}

// findProtocol resolves the candidate header file ("Name.h" preferred over
// "NameProtocol.h"), parses it, and returns the exactly-named record, or nil.
func (r *Registry) findProtocol(protocol string) *ports.ProtocolRecord {
	for _, candidate := range []string{protocol + ".h", protocol + "Protocol.h"} {
		path := filepath.Join(r.dir, candidate)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return r.parser.ParseFile(path).Protocol(protocol)
	}
	return nil
}

func live(m *ports.MethodRecord) bool {
	return !m.Deprecated && !m.PropertyAccessor
}

func liveMethods(rec *ports.ProtocolRecord) []*ports.MethodRecord {
	var out []*ports.MethodRecord
	for _, m := range append(append([]*ports.MethodRecord{}, rec.RequiredMethods...), rec.OptionalMethods...) {
		if live(m) {
			out = append(out, m)
		}
	}
	return out
}

// bridgedName prefers the full declaration; methods synthesized without one
// fall back to a pseudo-signature built from name and parameters.
func bridgedName(m *ports.MethodRecord) string {
	if m.FullSignature != "" {
		return bridge.ToTarget(m.FullSignature)
	}
	sig := m.Name
	if len(m.Parameters) > 0 {
		segs := make([]string, len(m.Parameters))
		for i, p := range m.Parameters {
			segs[i] = "(" + p + ")"
		}
		sig = m.Name + ":" + strings.Join(segs, " ")
	}
	return bridge.ToTarget(sig)
}
