// Package cfgdb holds the two configuration tables the driver reconciles
// against the receiver: a small set of application-specific overrides and
// the ICD's remaining default values. Both are id-keyed tables of Item,
// disjoint by construction.
package cfgdb

import "gnssdrv.dev/ubx"

// Item is one configuration key the driver cares about: its wire type,
// the value the driver expects the receiver to hold, and the value last
// observed on the wire.
type Item struct {
	KeyID    uint32
	Name     string
	Type     ubx.ValueType
	Expected ubx.Value
	Observed ubx.Value
	Known    bool // Observed has been set by a VALGET response
}

// Matches reports whether Observed equals Expected. It is meaningless to
// call before Known is true.
func (it *Item) Matches() bool {
	return it.Known && it.Observed.Equal(it.Expected)
}
