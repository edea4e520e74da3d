package cfgdb

import (
	"github.com/fxamacker/cbor/v2"
)

// ItemSnapshot is the CBOR-serializable view of a single configuration
// item, taken on demand for diagnostics export.
type ItemSnapshot struct {
	KeyID    uint32 `cbor:"key_id"`
	Name     string `cbor:"name"`
	Type     string `cbor:"type"`
	Expected uint64 `cbor:"expected"`
	Observed uint64 `cbor:"observed"`
	Known    bool   `cbor:"known"`
	Matches  bool   `cbor:"matches"`
}

// Snapshot captures a Table's current state, caller-triggered only: the
// driver never emits this on a schedule.
func Snapshot(t *Table) []ItemSnapshot {
	items := t.Items()
	out := make([]ItemSnapshot, len(items))
	for i, it := range items {
		out[i] = ItemSnapshot{
			KeyID:    it.KeyID,
			Name:     it.Name,
			Type:     it.Type.String(),
			Expected: it.Expected.Raw(),
			Observed: it.Observed.Raw(),
			Known:    it.Known,
			Matches:  it.Matches(),
		}
	}
	return out
}

// EncodeSnapshot marshals a Table snapshot to CBOR for the diagnostics
// endpoint.
func EncodeSnapshot(t *Table) ([]byte, error) {
	return cbor.Marshal(Snapshot(t))
}
