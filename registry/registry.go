package registry

import (
	"errors"

	"github.com/ledgerlens/txgraph/store"
)

// ErrRegistryFull is returned when the node space is exhausted: every
// store.NodeID below math.MaxUint32 is already assigned.
var ErrRegistryFull = errors.New("registry: node space exhausted")

// Registry maps external ids to dense NodeIDs, assigned in first-seen
// insertion order.
type Registry struct {
	ids map[string]store.NodeID
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{ids: make(map[string]store.NodeID)}
}

// GetOrInsert returns the NodeID for externalID, assigning the next unused
// id if externalID has not been seen before. Returns ErrRegistryFull if the
// node space is exhausted: unlike store's bounds checks, this is a condition
// an external, untrusted input stream can actually trigger, so it is
// reported to the caller rather than panicked.
func (r *Registry) GetOrInsert(externalID string) (store.NodeID, error) {
	if id, ok := r.ids[externalID]; ok {
		return id, nil
	}
	if len(r.ids) == int(^store.NodeID(0)) {
		return 0, ErrRegistryFull
	}
	id := store.NodeID(len(r.ids))
	r.ids[externalID] = id
	return id, nil
}

// Lookup returns the NodeID assigned to externalID, if any.
func (r *Registry) Lookup(externalID string) (store.NodeID, bool) {
	id, ok := r.ids[externalID]
	return id, ok
}

// Len returns the number of distinct external ids registered so far.
func (r *Registry) Len() int {
	return len(r.ids)
}
