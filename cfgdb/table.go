package cfgdb

import "gnssdrv.dev/ubx"

// Table is an id-keyed set of configuration items, preserving insertion
// order for deterministic VALGET/VALSET paging.
type Table struct {
	order []uint32
	items map[uint32]*Item
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{items: make(map[uint32]*Item)}
}

// Add inserts an item, overwriting any existing entry under the same key id.
func (t *Table) Add(it Item) {
	if _, exists := t.items[it.KeyID]; !exists {
		t.order = append(t.order, it.KeyID)
	}
	cp := it
	t.items[it.KeyID] = &cp
}

// Get looks up an item by key id.
func (t *Table) Get(keyID uint32) (*Item, bool) {
	it, ok := t.items[keyID]
	return it, ok
}

// ByName looks up an item by its human-readable name.
func (t *Table) ByName(name string) (*Item, bool) {
	for _, id := range t.order {
		if t.items[id].Name == name {
			return t.items[id], true
		}
	}
	return nil, false
}

// Len reports the number of items in the table.
func (t *Table) Len() int { return len(t.order) }

// KeyIDs returns the key ids in insertion order.
func (t *Table) KeyIDs() []uint32 {
	out := make([]uint32, len(t.order))
	copy(out, t.order)
	return out
}

// Items returns the items in insertion order.
func (t *Table) Items() []*Item {
	out := make([]*Item, len(t.order))
	for i, id := range t.order {
		out[i] = t.items[id]
	}
	return out
}

// Clone deep-copies the table, used when a mode resets its configuration
// working state without disturbing the canonical table it started from.
func (t *Table) Clone() *Table {
	c := NewTable()
	for _, id := range t.order {
		c.Add(*t.items[id])
	}
	return c
}

// SetObserved records a value read back from the receiver, marking the
// item Known.
func (t *Table) SetObserved(keyID uint32, v ubx.Value) bool {
	it, ok := t.items[keyID]
	if !ok {
		return false
	}
	it.Observed = v
	it.Known = true
	return true
}

// Mismatched returns the items whose Observed value disagrees with
// Expected, or has not yet been observed.
func (t *Table) Mismatched() []*Item {
	var out []*Item
	for _, id := range t.order {
		it := t.items[id]
		if !it.Matches() {
			out = append(out, it)
		}
	}
	return out
}

// Contains reports whether keyID is present in the table.
func (t *Table) Contains(keyID uint32) bool {
	_, ok := t.items[keyID]
	return ok
}
