package gnss

import (
	"time"

	"gnssdrv.dev/ubx"
)

type operationalState struct {
	startTs      time.Time
	lastPVTReqTs time.Time
}

// runOperational periodically polls the navigation solution and, after
// the configured CBIT period, hands control to Continuous BIT.
func (d *Driver) runOperational(now time.Time) [][]byte {
	var frames [][]byte
	if d.operational.lastPVTReqTs.IsZero() || now.Sub(d.operational.lastPVTReqTs) >= pvtPeriod {
		frames = append(frames, ubx.ReqNavPvt())
		d.cmds.Set(CmdPvt)
		d.operational.lastPVTReqTs = now
	}
	if now.Sub(d.operational.startTs) >= cbitPeriod {
		d.enterCBIT(now)
	}
	return frames
}

func (d *Driver) cleanupOperational() {
	d.operational = operationalState{}
}
