package gnss

import (
	"time"

	"gnssdrv.dev/bit"
	"gnssdrv.dev/reconcile"
	"gnssdrv.dev/ubx"
)

// pbitSubMode is one step of Power-on BIT, in the order they run.
type pbitSubMode int

const (
	pbitRst pbitSubMode = iota
	pbitReqVer
	pbitReqConstellations
	pbitBitRun
	pbitAsCfgApply
	pbitFailure
)

type pbitState struct {
	subMode pbitSubMode
	startTs time.Time
	tries   int

	requestedVer            bool
	requestedConstellations bool

	bitRun *bit.Run
	engine *reconcile.Engine
}

// reset clears every field except the attempt counter, used when PBIT
// restarts after a timeout but still has retries left.
func (s *pbitState) reset(keepTries bool) {
	tries := 0
	if keepTries {
		tries = s.tries
	}
	*s = pbitState{tries: tries}
}

// runPBIT brings the receiver to a known RAM image, confirms identity,
// runs BIT, and applies the application-specific configuration.
func (d *Driver) runPBIT(now time.Time) [][]byte {
	if d.pbit.startTs.IsZero() {
		d.pbit.tries++
		d.pbit.startTs = now
		d.log.Infof("PBIT: launching (attempt %d)", d.pbit.tries)
	}

	var frames [][]byte
	switch d.pbit.subMode {
	case pbitRst:
		// Erase-and-reload gives no response; proceed immediately.
		frames = append(frames, ubx.ReqBBREraseAndReload())
		d.pbit.subMode = pbitReqVer

	case pbitReqVer:
		if !d.pbit.requestedVer {
			frames = append(frames, ubx.ReqMonVer())
			d.cmds.Set(CmdMonVer)
			frames = append(frames, ubx.ReqLogInfo())
			d.cmds.Set(CmdLogInfo)
			d.pbit.requestedVer = true
		} else if !d.cmds.Pending(CmdMonVer) && !d.cmds.Pending(CmdLogInfo) {
			d.checkVersion()
			d.pbit.subMode = pbitReqConstellations
		}

	case pbitReqConstellations:
		if !d.pbit.requestedConstellations {
			frames = append(frames, ubx.ReqMonGnss())
			d.cmds.Set(CmdMonGnss)
			d.pbit.requestedConstellations = true
		} else if !d.cmds.Pending(CmdMonGnss) {
			if d.inv.GPSEnabled() {
				d.pbit.subMode = pbitBitRun
				d.pbit.bitRun = bit.New(d.Dynamics, d.Antenna)
			} else {
				d.log.Error("PBIT: GPS constellation not enabled")
				d.pbit.subMode = pbitFailure
			}
		}

	case pbitBitRun:
		frames = d.stepBit(d.pbit.bitRun)
		switch d.pbit.bitRun.SubMode {
		case bit.Success:
			d.pbit.subMode = pbitAsCfgApply
			d.pbit.engine = reconcile.New(d.ascfg.Clone(), d.inv.FlashAttached)
		case bit.Failure:
			d.log.Critical("PBIT: BIT failed")
			d.pbit.subMode = pbitFailure
		}

	case pbitAsCfgApply:
		frames = d.stepEngine(d.pbit.engine)
		if d.pbit.engine.Done() {
			d.log.Info("PBIT: success, transitioning to Operational")
			d.enterOperational(now)
			return frames
		}

	case pbitFailure:
		// Nothing to do; the check below routes to Failure mode.
	}

	if d.pbit.subMode == pbitFailure {
		d.enterFailure()
		return frames
	}
	if now.Sub(d.pbit.startTs) > bitTimeout {
		if d.pbit.tries >= bitMaxTries {
			d.log.Critical("PBIT: timed out, no retries left")
			d.enterFailure()
		} else {
			d.log.Warning("PBIT: timed out, restarting BIT procedure")
			d.pbit.reset(true)
			d.cmds.Reset()
		}
	}
	return frames
}

// checkVersion logs, but does not fail PBIT on, a receiver identity
// below the minimum supported firmware or protocol version.
func (d *Driver) checkVersion() {
	if !d.inv.VersionKnown {
		return
	}
	if d.inv.SPGVersion < minProductFWVer {
		d.log.Errorf("PBIT: receiver SPG version %.2f below minimum %.2f", d.inv.SPGVersion, minProductFWVer)
	}
	if d.inv.ProtocolVersion < minProtocolVer {
		d.log.Errorf("PBIT: receiver protocol version %.2f below minimum %.2f", d.inv.ProtocolVersion, minProtocolVer)
	}
}

func (d *Driver) cleanupPBIT() {
	d.pbit = pbitState{}
	d.activeBit = nil
	d.activeEngine = nil
}
