package reconcile

import (
	"testing"

	"gnssdrv.dev/cfgdb"
	"gnssdrv.dev/ubx"
)

func newTestTable() *cfgdb.Table {
	t := cfgdb.NewTable()
	t.Add(cfgdb.Item{KeyID: 0x10230001, Name: "a", Type: ubx.Bit, Expected: ubx.NewBit(false)})
	t.Add(cfgdb.Item{KeyID: 0x10510003, Name: "i2c", Type: ubx.Bit, Expected: ubx.NewBit(false)})
	return t
}

func TestEngineAllAlreadyMatchingNeedsNoValset(t *testing.T) {
	tbl := newTestTable()
	e := New(tbl, false)

	frame := e.Tick()
	if frame == nil {
		t.Fatalf("expected an initial VALGET frame")
	}
	e.HandleValget([]ubx.KeyValue{
		{KeyID: 0x10230001, Value: ubx.NewBit(false)},
		{KeyID: 0x10510003, Value: ubx.NewBit(false)},
	})
	if !e.Done() {
		t.Fatalf("engine should be done when VALGET already matches")
	}
	if e.Tick() != nil {
		t.Fatalf("a done engine should not emit further frames")
	}
}

func TestEngineMismatchTriggersValsetThenRamSkip(t *testing.T) {
	tbl := newTestTable()
	e := New(tbl, false)

	e.Tick()
	e.HandleValget([]ubx.KeyValue{
		{KeyID: 0x10230001, Value: ubx.NewBit(true)},  // mismatch
		{KeyID: 0x10510003, Value: ubx.NewBit(true)},  // mismatch, but RAM-skip item
	})
	if e.Done() {
		t.Fatalf("engine should not be done with mismatches pending")
	}

	frame := e.Tick()
	if frame == nil {
		t.Fatalf("expected a VALSET frame for RAM layer")
	}
	// Only 0x10230001 should appear in the RAM VALSET payload; the
	// RAM-skip item is resolved locally without a wire round trip.
	it, _ := tbl.Get(0x10510003)
	if !it.Matches() {
		t.Fatalf("RAM-skip item should be marked matching without a VALSET")
	}

	e.HandleAck()
	if e.Tick() == nil {
		t.Fatalf("expected a re-VALGET frame with flash unattached after RAM layer")
	}
}

func TestEngineSkipsBBRLayerWithFlashAttached(t *testing.T) {
	tbl := cfgdb.NewTable()
	tbl.Add(cfgdb.Item{KeyID: 1, Name: "x", Type: ubx.U8, Expected: ubx.NewU8(9)})
	e := New(tbl, true)

	e.Tick()
	e.HandleValget([]ubx.KeyValue{{KeyID: 1, Value: ubx.NewU8(0)}})

	ramFrame := e.Tick()
	if ramFrame == nil {
		t.Fatalf("expected RAM VALSET frame")
	}
	e.HandleAck()

	flashFrame := e.Tick()
	if flashFrame == nil {
		t.Fatalf("expected Flash VALSET frame after skipping BBR")
	}
	e.HandleAck()

	// After Flash, the engine should fall back to VALGET to confirm.
	if e.Tick() == nil {
		t.Fatalf("expected a confirming VALGET after Flash layer")
	}
}
