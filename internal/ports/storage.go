package ports

// BaselineStore persists hand-curated baseline bridged-name sets, keyed by
// protocol name. The backing store (bbolt) is transactional: a crash mid-write
// must not corrupt previously committed baselines. Concurrent reads are safe;
// writes are serialized by the adapter.
type BaselineStore interface {
	// SaveBaseline persists the baseline name set for a protocol.
	// Overwrites any prior baseline for this protocol.
	SaveBaseline(protocol string, names []string) error

	// LoadBaseline retrieves the baseline for a protocol.
	// Returns nil, nil if no baseline exists.
	LoadBaseline(protocol string) ([]string, error)

	// DeleteBaseline removes the baseline for a protocol.
	// Idempotent: deleting a nonexistent baseline is not an error.
	DeleteBaseline(protocol string) error

	// Protocols lists every protocol that has a stored baseline, sorted.
	Protocols() ([]string, error)
}
