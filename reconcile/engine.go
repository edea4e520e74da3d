// Package reconcile implements the two-phase VALGET/VALSET engine that
// drives a configuration table's observed values toward its expected
// ones: read back what the receiver currently holds, write back whatever
// disagrees, across each writable memory layer in turn.
package reconcile

import (
	"gnssdrv.dev/cfgdb"
	"gnssdrv.dev/ubx"
)

// MemLayer enumerates the receiver's configuration storage layers, in
// the order a reconciliation pass visits them. BBR is never written.
type MemLayer int

const (
	LayerRAM MemLayer = iota
	LayerBBR
	LayerFlash
	layerDone
)

func (l MemLayer) mask() byte { return 1 << byte(l) }

const maxItemsPerRequest = 64

type phase int

const (
	phaseValget phase = iota
	phaseValset
)

// Engine drives one configuration table to convergence. A fresh Engine
// always starts by reading back the table's current values before
// writing anything, so a run that finds everything already correct
// sends a single VALGET and never a VALSET.
type Engine struct {
	table         *cfgdb.Table
	flashAttached bool

	phase        phase
	layer        MemLayer
	sentValget   bool
	sentValset   bool
	moreValget   bool
	toValset     []uint32
	success      bool
}

// New returns an Engine that will reconcile table against the receiver,
// skipping the Flash layer entirely when flashAttached is false.
func New(table *cfgdb.Table, flashAttached bool) *Engine {
	return &Engine{table: table, flashAttached: flashAttached}
}

// Done reports whether the last VALGET confirmed every item in the
// table already matches, with nothing left in flight.
func (e *Engine) Done() bool { return e.success }

// Tick returns the next frame to transmit, or nil if the engine is
// either idle (Done) or already waiting on a response to a frame sent
// on a previous tick.
func (e *Engine) Tick() []byte {
	if e.success {
		return nil
	}
	switch e.phase {
	case phaseValget:
		return e.tickValget()
	case phaseValset:
		return e.tickValset()
	default:
		return nil
	}
}

func (e *Engine) tickValget() []byte {
	if e.sentValget {
		return nil
	}
	var keyIDs []uint32
	e.moreValget = false
	for _, it := range e.table.Items() {
		if it.Known && it.Matches() {
			continue
		}
		if len(keyIDs) >= maxItemsPerRequest {
			e.moreValget = true
			break
		}
		keyIDs = append(keyIDs, it.KeyID)
	}
	if len(keyIDs) == 0 {
		e.success = true
		return nil
	}
	e.sentValget = true
	return ubx.ReqValget(byte(LayerRAM), keyIDs)
}

// HandleValget applies a UBX-CFG-VALGET response: every returned item is
// recorded as observed, and any mismatch is queued for VALSET.
func (e *Engine) HandleValget(items []ubx.KeyValue) {
	if !e.sentValget {
		return
	}
	e.sentValget = false
	for _, kv := range items {
		if !e.table.SetObserved(kv.KeyID, kv.Value) {
			continue
		}
		it, _ := e.table.Get(kv.KeyID)
		if it.Matches() {
			e.removeFromValset(kv.KeyID)
		} else {
			e.addToValset(kv.KeyID)
		}
	}
	if len(e.toValset) == 0 {
		if !e.moreValget {
			e.success = true
		}
		return
	}
	e.phase = phaseValset
	e.layer = LayerRAM
}

func (e *Engine) addToValset(keyID uint32) {
	for _, id := range e.toValset {
		if id == keyID {
			return
		}
	}
	e.toValset = append(e.toValset, keyID)
}

func (e *Engine) removeFromValset(keyID uint32) {
	for i, id := range e.toValset {
		if id == keyID {
			e.toValset = append(e.toValset[:i], e.toValset[i+1:]...)
			return
		}
	}
}

func (e *Engine) tickValset() []byte {
	if e.sentValset {
		return nil
	}
	if e.layer >= layerDone {
		e.phase = phaseValget
		return e.tickValget()
	}

	var items []ubx.KeyValue
	for _, keyID := range e.toValset {
		if len(items) >= maxItemsPerRequest {
			break
		}
		it, ok := e.table.Get(keyID)
		if !ok {
			continue
		}
		if skipOnLayer(keyID, e.layer) {
			it.Observed = it.Expected
			it.Known = true
			continue
		}
		if it.Matches() {
			continue
		}
		items = append(items, ubx.KeyValue{KeyID: keyID, Value: it.Expected})
	}

	if len(items) == 0 {
		e.advanceLayer()
		if e.layer >= layerDone {
			e.phase = phaseValget
			return e.tickValget()
		}
		return nil
	}

	e.sentValset = true
	return ubx.ReqValset(e.layer.mask(), items)
}

// HandleAck applies the ACK to an outstanding VALSET, advancing to the
// next memory layer.
func (e *Engine) HandleAck() {
	if !e.sentValset {
		return
	}
	e.sentValset = false
	e.advanceLayer()
}

// HandleNak treats a rejected VALSET the same as an ACK for layer
// progression: the items stay in toValset and are retried on the next
// VALGET pass.
func (e *Engine) HandleNak() {
	e.HandleAck()
}

func (e *Engine) advanceLayer() {
	e.layer++
	if e.layer == LayerBBR {
		// BBR is never written: with Flash attached the pass moves on to
		// Flash, otherwise it ends here and VALGET verifies the result.
		if !e.flashAttached {
			e.phase = phaseValget
			e.layer = LayerRAM
			return
		}
		e.layer = LayerFlash
	}
	if e.layer >= layerDone {
		e.phase = phaseValget
	}
}

// skipOnLayer mirrors the ICD exclusion list: CFG-I2C-ENABLED cannot be
// written to RAM.
func skipOnLayer(keyID uint32, layer MemLayer) bool {
	if layer == LayerRAM && keyID == 0x10510003 {
		return true
	}
	return false
}
