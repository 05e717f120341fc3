package types

import "fmt"

// IDMap translates snapshot-local ids into ids assigned by storage, per
// entity type. It lives for a single import run.
type IDMap map[EntityType]map[uint]uint

func NewIDMap() IDMap { return IDMap{} }

// Put records old -> new. Mapping the same old id to a different new id is
// an error.
func (m IDMap) Put(t EntityType, old, new uint) error {
	ids, ok := m[t]
	if !ok {
		ids = map[uint]uint{}
		m[t] = ids
	}
	if prev, ok := ids[old]; ok && prev != new {
		return fmt.Errorf("%s %d already mapped to %d", t, old, prev)
	}
	ids[old] = new
	return nil
}

func (m IDMap) Lookup(t EntityType, old uint) (uint, bool) {
	id, ok := m[t][old]
	return id, ok
}
