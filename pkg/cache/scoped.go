package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Shared backends (redis, mongo) can host several projects or branches;
// scoping keeps their artifact keys apart.
//
// Example usage:
//
//	// Branch-specific keys on a shared CI cache
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "branch:main:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(configHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(configHash, opts)
}
