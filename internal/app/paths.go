// Package app holds the small amount of wiring shared by protodex commands:
// resolved filesystem paths for the .protodex/ state directory.
package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .protodex/ directory.
// All fields are pre-computed strings.
type Paths struct {
	Root string // .protodex/
	DB   string // .protodex/baselines.db
}

// NewPaths constructs all resolved paths from a header directory root.
func NewPaths(headerRoot string) *Paths {
	root := filepath.Join(headerRoot, ".protodex")
	return &Paths{
		Root: root,
		DB:   filepath.Join(root, "baselines.db"),
	}
}

// EnsureDirs creates the state directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}
