// Package gnss implements the receiver's top-level mode orchestrator:
// the hierarchical NoMode -> PBIT -> Operational <-> CBIT state machine,
// with IBIT preempting any mode, driven by a single cooperative tick.
package gnss

import (
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/op/go-logging"

	"gnssdrv.dev/bit"
	"gnssdrv.dev/cfgdb"
	"gnssdrv.dev/gnsslog"
	"gnssdrv.dev/hwreset"
	"gnssdrv.dev/reconcile"
	"gnssdrv.dev/ring"
	"gnssdrv.dev/ubx"
)

// Link is the subset of *link.Link the driver depends on: writing
// outgoing frames and reconnecting the underlying serial port after a
// hardware reset. Defined here so the driver can be exercised against a
// fake in tests without opening a real device.
type Link interface {
	Write(frame []byte) error
	Reconnect(r *ring.Ring) error
}

// Mode is the top-level driver state.
type Mode int

const (
	NoMode Mode = iota
	ModePBIT
	ModeCBIT
	ModeIBIT
	ModeOperational
	ModeFailure
)

func (m Mode) String() string {
	switch m {
	case NoMode:
		return "NoMode"
	case ModePBIT:
		return "PBIT"
	case ModeCBIT:
		return "CBIT"
	case ModeIBIT:
		return "IBIT"
	case ModeOperational:
		return "Operational"
	case ModeFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Driver owns every piece of receiver state: the link, the parser, the
// pending-command registry, the configuration tables, and the current
// mode/submode records. Tick is the single entry point the embedding
// command loop calls, once per tick period.
type Driver struct {
	Mode Mode

	link   Link
	ring   *ring.Ring
	parser *ubx.Parser
	reset  *hwreset.Line
	log    *logging.Logger

	cmds PendingCommands
	inv  Inventory

	ascfg  *cfgdb.Table
	defcfg *cfgdb.Table

	pbit        pbitState
	cbit        cbitState
	ibit        ibitState
	operational operationalState

	activeBit    *bit.Run
	activeEngine *reconcile.Engine
	onAck        func()
	onNak        func()

	ibitRequested bool
	now           time.Time

	cksumErrors uint64

	Dynamics bit.DynamicsPolicy
	Antenna  bit.AntennaPolicy
}

// New builds a Driver around an already-open Link and a byte ring the
// caller keeps feeding from the link's drain goroutine. resetLine may be
// a no-op Line (hwreset.Open("")).
func New(l Link, r *ring.Ring, resetLine *hwreset.Line) *Driver {
	d := &Driver{
		link:   l,
		ring:   r,
		reset:  resetLine,
		log:    gnsslog.New("gnss"),
		ascfg:  cfgdb.NewASCFG(),
		defcfg: cfgdb.NewDEFCFG(),
	}
	d.parser = ubx.NewParser(d.lookupType, d.handlers())
	return d
}

// RequestIBIT marks an external IBIT request, processed at the start of
// the next tick regardless of current mode.
func (d *Driver) RequestIBIT() { d.ibitRequested = true }

// Inventory returns a copy of the receiver inventory as last observed.
func (d *Driver) Inventory() Inventory { return d.inv }

// ChecksumErrors reports the cumulative wire-checksum error count.
func (d *Driver) ChecksumErrors() uint64 { return d.parser.Errors() }

// Tick runs one cooperative step: priority commands, mode handling, then
// ring draining, returning the frames (if any) that should be written to
// the link this tick.
func (d *Driver) Tick(now time.Time) [][]byte {
	d.now = now
	if d.ibitRequested {
		d.ibitRequested = false
		d.launchIBIT(now)
	}

	mode := d.Mode
	var frames [][]byte
	switch d.Mode {
	case NoMode:
		d.Mode = ModePBIT
	case ModePBIT:
		frames = d.runPBIT(now)
	case ModeCBIT:
		frames = d.runCBIT(now)
	case ModeIBIT:
		frames = d.runIBIT(now)
	case ModeOperational:
		frames = d.runOperational(now)
	case ModeFailure:
		// absorbing
	}
	if d.Mode != mode {
		d.cmds.Reset()
	}

	d.parser.Feed(d.ring.Drain())
	return frames
}

// launchIBIT resets every mode's working state and jumps straight to
// IBIT, regardless of the mode the driver was in.
func (d *Driver) launchIBIT(now time.Time) {
	d.log.Notice("IBIT requested, preempting current mode")
	d.resetAllInternalData()
	d.Mode = ModeIBIT
	d.ibit.startTs = now
}

func (d *Driver) resetAllInternalData() {
	d.pbit = pbitState{}
	d.cbit = cbitState{}
	d.ibit = ibitState{}
	d.operational = operationalState{}
	d.cmds.Reset()
	d.activeBit = nil
	d.activeEngine = nil
	d.onAck = nil
	d.onNak = nil
}

func (d *Driver) enterOperational(now time.Time) {
	d.cleanupPBIT()
	d.cleanupCBIT()
	d.cleanupIBIT()
	d.Mode = ModeOperational
	d.operational = operationalState{startTs: now}
}

func (d *Driver) enterCBIT(now time.Time) {
	d.cleanupOperational()
	d.Mode = ModeCBIT
	d.cbit = cbitState{}
}

func (d *Driver) enterFailure() {
	d.log.Critical("driver entering Failure mode")
	d.Mode = ModeFailure
}

// stepBit advances a shared BIT run by one tick: requests whatever
// response the current check still needs, then resolves any check that
// needs no wire round trip.
func (d *Driver) stepBit(r *bit.Run) [][]byte {
	d.activeBit = r
	var frames [][]byte
	r.Step()
	if r.NeedsMonComms() {
		frames = append(frames, ubx.ReqMonComms())
		d.cmds.Set(CmdMonComms)
		r.MonCommsSent()
	}
	if r.NeedsMonRf() {
		frames = append(frames, ubx.ReqMonRf())
		d.cmds.Set(CmdMonRf)
		r.MonRfSent()
	}
	if jam, ok := r.Jamming(); ok && jam == ubx.JammingCritical {
		d.log.Warning("BIT: interference reported critical")
	}
	return frames
}

// stepEngine advances a reconciliation engine by one tick, tracking the
// Ack it expects for any VALSET it emits.
func (d *Driver) stepEngine(e *reconcile.Engine) [][]byte {
	d.activeEngine = e
	frame := e.Tick()
	if frame == nil {
		return nil
	}
	d.cmds.Set(CmdAck)
	d.onAck = func() { e.HandleAck() }
	d.onNak = func() { e.HandleNak() }
	return [][]byte{frame}
}

func (d *Driver) lookupType(keyID uint32) (ubx.ValueType, bool) {
	if it, ok := d.ascfg.Get(keyID); ok {
		return it.Type, true
	}
	if it, ok := d.defcfg.Get(keyID); ok {
		return it.Type, true
	}
	return 0, false
}

func (d *Driver) handleAck() {
	d.cmds.Clear(CmdAck)
	if d.onAck != nil {
		w := d.onAck
		d.onAck, d.onNak = nil, nil
		w()
	}
}

func (d *Driver) handleNak() {
	d.cmds.Clear(CmdAck)
	w := d.onNak
	if w == nil {
		w = d.onAck
	}
	d.onAck, d.onNak = nil, nil
	if w != nil {
		w()
	}
}

// Diagnostics is the caller-triggered, on-demand export of the driver's
// current state, never emitted on a schedule or over the serial link.
type Diagnostics struct {
	Mode      string               `cbor:"mode"`
	Inventory Inventory            `cbor:"inventory"`
	ASCFG     []cfgdb.ItemSnapshot `cbor:"ascfg"`
	DEFCFG    []cfgdb.ItemSnapshot `cbor:"defcfg"`
}

// EncodeDiagnostics snapshots the driver's state and encodes it as CBOR.
func (d *Driver) EncodeDiagnostics() ([]byte, error) {
	snap := Diagnostics{
		Mode:      d.Mode.String(),
		Inventory: d.inv,
		ASCFG:     cfgdb.Snapshot(d.ascfg),
		DEFCFG:    cfgdb.Snapshot(d.defcfg),
	}
	return cbor.Marshal(snap)
}
