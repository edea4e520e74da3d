package gnss

import (
	"math"
	"sync"
	"testing"
	"time"

	"gnssdrv.dev/cfgdb"
	"gnssdrv.dev/hwreset"
	"gnssdrv.dev/ring"
	"gnssdrv.dev/ubx"
)

type fakeLink struct {
	mu          sync.Mutex
	written     [][]byte
	reconnected int
}

func (f *fakeLink) Write(frame []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, frame)
	return nil
}

func (f *fakeLink) Reconnect(r *ring.Ring) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reconnected++
	return nil
}

func smallASCFG() *cfgdb.Table {
	t := cfgdb.NewTable()
	t.Add(cfgdb.Item{KeyID: 0x10230001, Name: "CFG-ANA-USE_ANA", Type: ubx.U8, Expected: ubx.NewU8(1)})
	return t
}

func smallDEFCFG() *cfgdb.Table {
	t := cfgdb.NewTable()
	t.Add(cfgdb.Item{KeyID: 0x20240001, Name: "CFG-TEST-ITEM", Type: ubx.U8, Expected: ubx.NewU8(7)})
	return t
}

func newTestDriver() (*Driver, *ring.Ring, *fakeLink) {
	r := ring.New(4096)
	l := &fakeLink{}
	rst, _ := hwreset.Open("")
	d := New(l, r, rst)
	d.ascfg = smallASCFG()
	d.defcfg = smallDEFCFG()
	return d, r, l
}

func monVerFrame(spg, protver string) []byte {
	payload := make([]byte, 40)
	copy(payload[0:30], []byte("ROM BASE 0x11\x00"))
	copy(payload[30:40], []byte("00080000\x00"))
	extension := "FWVER=SPG " + spg + ";PROTVER=" + protver + ";\x00"
	payload = append(payload, []byte(extension)...)
	return ubx.Encode(ubx.ClassMON, ubx.MonVer, payload)
}

func logInfoFrame(capacity uint32) []byte {
	payload := make([]byte, 8)
	payload[4] = byte(capacity)
	payload[5] = byte(capacity >> 8)
	payload[6] = byte(capacity >> 16)
	payload[7] = byte(capacity >> 24)
	return ubx.Encode(ubx.ClassLOG, ubx.LogInfo, payload)
}

func monGnssFrame(enabled byte) []byte {
	payload := []byte{0x00, 0xFF, 0x00, enabled, 0x04}
	return ubx.Encode(ubx.ClassMON, ubx.MonGnss, payload)
}

func monCommsFrame(txErrors byte) []byte {
	payload := []byte{0x00, 0x01, txErrors}
	return ubx.Encode(ubx.ClassMON, ubx.MonComms, payload)
}

func monRfFrame(jamming ubx.JammingState, status ubx.AntennaStatus, power ubx.AntennaPower) []byte {
	payload := make([]byte, 9)
	payload[5] = byte(jamming)
	payload[6] = byte(status)
	payload[7] = byte(power)
	return ubx.Encode(ubx.ClassMON, ubx.MonRf, payload)
}

func cfgValgetFrame(layer byte, items ...ubx.KeyValue) []byte {
	payload := []byte{0x00, layer, 0x00, 0x00}
	for _, kv := range items {
		var b [4]byte
		b[0] = byte(kv.KeyID)
		b[1] = byte(kv.KeyID >> 8)
		b[2] = byte(kv.KeyID >> 16)
		b[3] = byte(kv.KeyID >> 24)
		payload = append(payload, b[:]...)
		payload = kv.Value.Encode(payload)
	}
	return ubx.Encode(ubx.ClassCFG, ubx.CfgValget, payload)
}

func ackFrame(class, id byte) []byte {
	return ubx.Encode(ubx.ClassACK, ubx.AckAck, []byte{class, id})
}

// pollUntil ticks d forward, advancing now by step each time, until cond
// reports true or maxIters is exhausted.
func pollUntil(t *testing.T, d *Driver, now *time.Time, step time.Duration, maxIters int, cond func() bool) {
	t.Helper()
	for i := 0; i < maxIters; i++ {
		if cond() {
			return
		}
		d.Tick(*now)
		*now = now.Add(step)
	}
	if !cond() {
		t.Fatalf("condition not satisfied within %d ticks", maxIters)
	}
}

// pollFrames ticks d forward until a tick returns at least one frame,
// returning those frames.
func pollFrames(t *testing.T, d *Driver, now *time.Time, step time.Duration, maxIters int) [][]byte {
	t.Helper()
	for i := 0; i < maxIters; i++ {
		frames := d.Tick(*now)
		*now = now.Add(step)
		if len(frames) > 0 {
			return frames
		}
	}
	t.Fatalf("no frames produced within %d ticks", maxIters)
	return nil
}

func TestPendingCommandsAtMostOneOutstanding(t *testing.T) {
	var p PendingCommands
	p.Set(CmdMonVer)
	if !p.Pending(CmdMonVer) {
		t.Fatalf("expected CmdMonVer pending")
	}
	p.Clear(CmdMonVer)
	if p.Pending(CmdMonVer) {
		t.Fatalf("expected CmdMonVer cleared")
	}
	p.Set(CmdAck)
	p.Reset()
	if p.Pending(CmdAck) {
		t.Fatalf("Reset did not clear all flags")
	}
}

const step = 10 * time.Millisecond

// driveToOperational walks a fresh Driver through PBIT up to Operational
// against a cooperative receiver, matching spec.md scenario 1 ("Happy
// PBIT"): every request answered, no ASCFG drift.
func driveToOperational(t *testing.T, d *Driver, r *ring.Ring, now time.Time) time.Time {
	t.Helper()

	pollFrames(t, d, &now, step, 20) // Rst, no response expected

	pollUntil(t, d, &now, step, 20, func() bool {
		return d.cmds.Pending(CmdMonVer) && d.cmds.Pending(CmdLogInfo)
	})
	r.Append(monVerFrame("4.04", "32.01"))
	r.Append(logInfoFrame(20_000))
	pollUntil(t, d, &now, step, 20, func() bool {
		return !d.cmds.Pending(CmdMonVer) && !d.cmds.Pending(CmdLogInfo)
	})

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdMonGnss) })
	r.Append(monGnssFrame(0b00000001))
	pollUntil(t, d, &now, step, 20, func() bool { return !d.cmds.Pending(CmdMonGnss) })

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdMonComms) })
	r.Append(monCommsFrame(0))
	pollUntil(t, d, &now, step, 20, func() bool { return !d.cmds.Pending(CmdMonComms) })

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdMonRf) })
	r.Append(monRfFrame(ubx.JammingOK, ubx.AntennaStatusOK, ubx.AntennaPowerOn))
	pollUntil(t, d, &now, step, 20, func() bool { return !d.cmds.Pending(CmdMonRf) })

	pollFrames(t, d, &now, step, 20) // AsCfgApply's first VALGET
	r.Append(cfgValgetFrame(0, ubx.KeyValue{KeyID: 0x10230001, Value: ubx.NewU8(1)}))
	pollUntil(t, d, &now, step, 20, func() bool {
		return d.pbit.engine != nil && d.pbit.engine.Done()
	})

	pollUntil(t, d, &now, step, 5, func() bool { return d.Mode == ModeOperational })
	return now
}

func TestHappyPBITReachesOperational(t *testing.T) {
	d, r, _ := newTestDriver()
	now := time.Unix(1_700_000_000, 0)
	driveToOperational(t, d, r, now)

	inv := d.Inventory()
	const epsilon = 1e-6
	if math.Abs(inv.SPGVersion-4.04) > epsilon || math.Abs(inv.ProtocolVersion-32.01) > epsilon {
		t.Fatalf("unexpected inventory versions: %+v", inv)
	}
	if !inv.FlashAttached {
		t.Fatalf("expected flash attached with a large filestore capacity")
	}
}

func TestPBITFailsWhenGPSDisabled(t *testing.T) {
	d, r, _ := newTestDriver()
	now := time.Unix(1_700_000_000, 0)

	pollFrames(t, d, &now, step, 20) // Rst
	pollUntil(t, d, &now, step, 20, func() bool {
		return d.cmds.Pending(CmdMonVer) && d.cmds.Pending(CmdLogInfo)
	})
	r.Append(monVerFrame("4.04", "32.01"))
	r.Append(logInfoFrame(20_000))
	pollUntil(t, d, &now, step, 20, func() bool {
		return !d.cmds.Pending(CmdMonVer) && !d.cmds.Pending(CmdLogInfo)
	})

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdMonGnss) })
	r.Append(monGnssFrame(0b00000000)) // GPS bit clear
	pollUntil(t, d, &now, step, 20, func() bool { return !d.cmds.Pending(CmdMonGnss) })

	pollUntil(t, d, &now, step, 20, func() bool { return d.Mode == ModeFailure })
}

func TestPBITVersionBelowMinimumLogsButContinues(t *testing.T) {
	d, r, _ := newTestDriver()
	now := time.Unix(1_700_000_000, 0)

	pollFrames(t, d, &now, step, 20)
	pollUntil(t, d, &now, step, 20, func() bool {
		return d.cmds.Pending(CmdMonVer) && d.cmds.Pending(CmdLogInfo)
	})
	r.Append(monVerFrame("4.03", "32.01"))
	r.Append(logInfoFrame(20_000))
	pollUntil(t, d, &now, step, 20, func() bool {
		return !d.cmds.Pending(CmdMonVer) && !d.cmds.Pending(CmdLogInfo)
	})

	pollUntil(t, d, &now, step, 20, func() bool { return d.pbit.subMode == pbitReqConstellations })
	if d.Mode != ModePBIT {
		t.Fatalf("Mode = %v, want PBIT (a below-minimum version must not fail PBIT)", d.Mode)
	}
}

func TestPBITTimeoutRetriesThenFails(t *testing.T) {
	d, _, _ := newTestDriver()
	now := time.Unix(1_700_000_000, 0)

	d.Tick(now)
	for i := 0; i < 10 && d.Mode == ModePBIT; i++ {
		now = now.Add(bitTimeout + time.Second)
		d.Tick(now)
	}
	if d.Mode != ModeFailure {
		t.Fatalf("Mode = %v, want Failure after repeated PBIT timeouts", d.Mode)
	}
	if d.pbit.tries < bitMaxTries {
		t.Fatalf("tries = %d, want >= %d", d.pbit.tries, bitMaxTries)
	}
}

func TestIBITRoundTripFromOperational(t *testing.T) {
	d, r, fl := newTestDriver()
	now := time.Unix(1_700_000_000, 0)
	now = driveToOperational(t, d, r, now)

	d.RequestIBIT()
	d.Tick(now) // priority handling launches IBIT this tick
	if d.Mode != ModeIBIT {
		t.Fatalf("Mode = %v, want IBIT", d.Mode)
	}
	now = now.Add(step)

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdAck) })
	r.Append(ackFrame(ubx.ClassCFG, 0x09))
	pollUntil(t, d, &now, step, 20, func() bool { return d.ibit.subMode == ibitRst })

	pollUntil(t, d, &now, step, 20, func() bool { return !d.ibit.rstAt.IsZero() })
	now = now.Add(ibitWaitAfterRst + time.Millisecond)
	d.Tick(now) // reconnects and starts BitRun
	if fl.reconnected == 0 {
		t.Fatalf("expected link.Reconnect to be called after the wait")
	}
	now = now.Add(step)

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdMonComms) })
	r.Append(monCommsFrame(0))
	pollUntil(t, d, &now, step, 20, func() bool { return !d.cmds.Pending(CmdMonComms) })

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdMonRf) })
	r.Append(monRfFrame(ubx.JammingOK, ubx.AntennaStatusOK, ubx.AntennaPowerOn))
	pollUntil(t, d, &now, step, 20, func() bool { return !d.cmds.Pending(CmdMonRf) })

	pollFrames(t, d, &now, step, 20) // AsCfgApply's VALGET
	r.Append(cfgValgetFrame(0, ubx.KeyValue{KeyID: 0x10230001, Value: ubx.NewU8(1)}))
	pollUntil(t, d, &now, step, 20, func() bool {
		return d.ibit.engine != nil && d.ibit.engine.Done()
	})

	pollUntil(t, d, &now, step, 5, func() bool { return d.Mode == ModeOperational })
}

func TestJammingCriticalStillReachesSuccess(t *testing.T) {
	d, r, _ := newTestDriver()
	now := time.Unix(1_700_000_000, 0)

	pollFrames(t, d, &now, step, 20)
	pollUntil(t, d, &now, step, 20, func() bool {
		return d.cmds.Pending(CmdMonVer) && d.cmds.Pending(CmdLogInfo)
	})
	r.Append(monVerFrame("4.04", "32.01"))
	r.Append(logInfoFrame(20_000))
	pollUntil(t, d, &now, step, 20, func() bool {
		return !d.cmds.Pending(CmdMonVer) && !d.cmds.Pending(CmdLogInfo)
	})

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdMonGnss) })
	r.Append(monGnssFrame(0b00000001))
	pollUntil(t, d, &now, step, 20, func() bool { return !d.cmds.Pending(CmdMonGnss) })

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdMonComms) })
	r.Append(monCommsFrame(0))
	pollUntil(t, d, &now, step, 20, func() bool { return !d.cmds.Pending(CmdMonComms) })

	pollUntil(t, d, &now, step, 20, func() bool { return d.cmds.Pending(CmdMonRf) })
	r.Append(monRfFrame(ubx.JammingCritical, ubx.AntennaStatusOK, ubx.AntennaPowerOn))
	pollUntil(t, d, &now, step, 20, func() bool { return !d.cmds.Pending(CmdMonRf) })

	pollUntil(t, d, &now, step, 20, func() bool { return d.pbit.subMode == pbitAsCfgApply })
}
