package gnss

import (
	"time"

	"gnssdrv.dev/bit"
	"gnssdrv.dev/reconcile"
	"gnssdrv.dev/ubx"
)

// ibitSubMode is one step of operator-initiated BIT.
type ibitSubMode int

const (
	ibitClearAll ibitSubMode = iota
	ibitRst
	ibitBitRun
	ibitAsCfgApply
	ibitFailure
)

type ibitState struct {
	subMode ibitSubMode
	startTs time.Time
	rstAt   time.Time

	bitRun *bit.Run
	engine *reconcile.Engine
}

// runIBIT clears every configuration layer, hard-resets the receiver,
// reconnects the link, re-runs BIT, and reapplies the application-
// specific configuration.
func (d *Driver) runIBIT(now time.Time) [][]byte {
	var frames [][]byte
	switch d.ibit.subMode {
	case ibitClearAll:
		if !d.cmds.Pending(CmdAck) && d.onAck == nil {
			frames = append(frames, ubx.ReqClearAll())
			d.cmds.Set(CmdAck)
			d.onAck = func() { d.ibit.subMode = ibitRst }
			d.onNak = func() { d.ibit.subMode = ibitRst }
		}

	case ibitRst:
		if d.ibit.rstAt.IsZero() {
			frames = append(frames, ubx.ReqHardwareReset())
			if d.reset != nil && d.reset.Wired() {
				if err := d.reset.Pulse(100 * time.Millisecond); err != nil {
					d.log.Errorf("IBIT: hardware reset line: %v", err)
				}
			}
			d.ibit.rstAt = now
		} else if now.Sub(d.ibit.rstAt) >= ibitWaitAfterRst {
			if err := d.link.Reconnect(d.ring); err != nil {
				d.log.Errorf("IBIT: reconnect failed: %v", err)
			}
			d.ibit.subMode = ibitBitRun
			d.ibit.bitRun = bit.New(d.Dynamics, d.Antenna)
		}

	case ibitBitRun:
		frames = d.stepBit(d.ibit.bitRun)
		switch d.ibit.bitRun.SubMode {
		case bit.Success:
			d.ibit.subMode = ibitAsCfgApply
			d.ibit.engine = reconcile.New(d.ascfg.Clone(), d.inv.FlashAttached)
		case bit.Failure:
			d.log.Critical("IBIT: BIT failed")
			d.ibit.subMode = ibitFailure
		}

	case ibitAsCfgApply:
		frames = d.stepEngine(d.ibit.engine)
		if d.ibit.engine.Done() {
			d.log.Info("IBIT: success, transitioning to Operational")
			d.enterOperational(now)
			return frames
		}

	case ibitFailure:
		// Nothing to do; the check below routes to Failure mode.
	}

	if d.ibit.subMode == ibitFailure {
		d.enterFailure()
		return frames
	}
	if now.Sub(d.ibit.startTs) > ibitTimeout {
		d.log.Critical("IBIT: timed out")
		d.enterFailure()
	}
	return frames
}

func (d *Driver) cleanupIBIT() {
	d.ibit = ibitState{}
	d.activeBit = nil
	d.activeEngine = nil
}
