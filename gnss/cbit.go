package gnss

import (
	"time"

	"gnssdrv.dev/bit"
	"gnssdrv.dev/reconcile"
)

// cbitSubMode is one step of Continuous BIT.
type cbitSubMode int

const (
	cbitBitRun cbitSubMode = iota
	cbitDefCfgCheck
	cbitFailure
)

type cbitState struct {
	subMode cbitSubMode
	startTs time.Time

	bitRun *bit.Run
	engine *reconcile.Engine
}

// runCBIT periodically re-runs BIT and re-verifies the ICD-default
// configuration table while the driver is otherwise Operational.
func (d *Driver) runCBIT(now time.Time) [][]byte {
	if d.cbit.startTs.IsZero() {
		d.cbit.startTs = now
		d.cbit.bitRun = bit.New(d.Dynamics, d.Antenna)
		d.log.Info("CBIT: launching")
	}

	var frames [][]byte
	switch d.cbit.subMode {
	case cbitBitRun:
		frames = d.stepBit(d.cbit.bitRun)
		switch d.cbit.bitRun.SubMode {
		case bit.Success:
			d.cbit.subMode = cbitDefCfgCheck
			d.cbit.engine = reconcile.New(d.defcfg.Clone(), d.inv.FlashAttached)
		case bit.Failure:
			d.log.Critical("CBIT: BIT failed")
			d.cbit.subMode = cbitFailure
		}

	case cbitDefCfgCheck:
		frames = d.stepEngine(d.cbit.engine)
		if d.cbit.engine.Done() {
			d.log.Info("CBIT: default configuration verified")
			d.enterOperational(now)
			return frames
		}
		if now.Sub(d.cbit.startTs) > cbitStayTime {
			d.log.Warning("CBIT: default configuration check dropped at stay-time")
			d.enterOperational(now)
			return frames
		}

	case cbitFailure:
		// Nothing to do; the check below routes to Failure mode.
	}

	if d.cbit.subMode == cbitFailure {
		d.enterFailure()
		return frames
	}
	if d.cbit.subMode == cbitBitRun && now.Sub(d.cbit.startTs) > cbitTimeout {
		d.log.Critical("CBIT: timed out")
		d.enterFailure()
	}
	return frames
}

func (d *Driver) cleanupCBIT() {
	d.cbit = cbitState{}
	d.activeBit = nil
	d.activeEngine = nil
}
