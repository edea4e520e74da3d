package cfgdb

import (
	"testing"

	"gnssdrv.dev/ubx"
)

func TestASCFGAndDEFCFGDisjoint(t *testing.T) {
	ascfg := NewASCFG()
	defcfg := NewDEFCFG()
	for _, id := range ascfg.KeyIDs() {
		if defcfg.Contains(id) {
			t.Fatalf("key id %#x present in both ASCFG and DEFCFG", id)
		}
	}
}

func TestASCFGKnownOverride(t *testing.T) {
	ascfg := NewASCFG()
	it, ok := ascfg.Get(0x10230001) // CFG-ANA-USE_ANA
	if !ok {
		t.Fatalf("CFG-ANA-USE_ANA missing from ASCFG")
	}
	if it.Expected.Bool() != false {
		t.Fatalf("expected ASCFG override to disable ANA, got %v", it.Expected.Bool())
	}
	if _, ok := NewDEFCFG().Get(0x10230001); ok {
		t.Fatalf("CFG-ANA-USE_ANA should be overridden out of DEFCFG")
	}
}

func TestTableCloneIsDeep(t *testing.T) {
	orig := NewTable()
	orig.Add(Item{KeyID: 1, Name: "x", Type: ubx.U8, Expected: ubx.NewU8(5)})
	clone := orig.Clone()
	clone.SetObserved(1, ubx.NewU8(5))

	origItem, _ := orig.Get(1)
	if origItem.Known {
		t.Fatalf("mutating clone affected the original table")
	}
}

func TestMismatchedReportsUnknownAndWrong(t *testing.T) {
	tbl := NewTable()
	tbl.Add(Item{KeyID: 1, Name: "a", Type: ubx.U8, Expected: ubx.NewU8(1)})
	tbl.Add(Item{KeyID: 2, Name: "b", Type: ubx.U8, Expected: ubx.NewU8(2)})
	tbl.Add(Item{KeyID: 3, Name: "c", Type: ubx.U8, Expected: ubx.NewU8(3)})
	tbl.SetObserved(1, ubx.NewU8(1))
	tbl.SetObserved(2, ubx.NewU8(99))

	mism := tbl.Mismatched()
	if len(mism) != 2 || mism[0].KeyID != 2 || mism[1].KeyID != 3 {
		t.Fatalf("Mismatched() = %+v, want keys 2 (wrong) and 3 (unknown)", mism)
	}
}

func TestSnapshotCountsItemsAndEncodes(t *testing.T) {
	tbl := NewASCFG()
	snap := Snapshot(tbl)
	if len(snap) != tbl.Len() {
		t.Fatalf("snapshot has %d items, want %d", len(snap), tbl.Len())
	}
	if _, err := EncodeSnapshot(tbl); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
}
