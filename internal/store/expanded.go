package store

// ExpandedPaths tracks which container items are currently expanded, keyed by
// path key. It is maintained in lockstep with the Expanded flags on the items
// themselves so "is this path open" can be answered without scanning the
// sequence for an instance. The widget runs on a single event loop, so no
// locking is needed.
type ExpandedPaths struct {
	keys map[string]struct{}
}

// NewExpandedPaths creates an empty expanded-paths set
func NewExpandedPaths() *ExpandedPaths {
	return &ExpandedPaths{
		keys: make(map[string]struct{}),
	}
}

// Add records a path key as expanded
func (ep *ExpandedPaths) Add(key string) {
	ep.keys[key] = struct{}{}
}

// Remove drops a path key
func (ep *ExpandedPaths) Remove(key string) {
	delete(ep.keys, key)
}

// Contains reports whether the path key is currently expanded
func (ep *ExpandedPaths) Contains(key string) bool {
	_, ok := ep.keys[key]
	return ok
}

// Len returns the number of expanded path keys
func (ep *ExpandedPaths) Len() int {
	return len(ep.keys)
}
