package gnss

import "gnssdrv.dev/ubx"

// handlers binds the parser's typed-event callbacks to this driver:
// clearing the matching pending flag, updating the inventory, and
// routing into whichever BIT run or reconciliation engine is currently
// active.
func (d *Driver) handlers() ubx.Handlers {
	return ubx.Handlers{
		OnAck: func(classID, msgID byte) { d.handleAck() },
		OnNak: func(classID, msgID byte) { d.handleNak() },
		OnMonVer: func(ev ubx.MonVerEvent) {
			d.cmds.Clear(CmdMonVer)
			d.inv.ApplyMonVer(ev)
		},
		OnLogInfo: func(ev ubx.LogInfoEvent) {
			d.cmds.Clear(CmdLogInfo)
			d.inv.ApplyLogInfo(ev)
		},
		OnMonGnss: func(ev ubx.MonGnssEvent) {
			d.cmds.Clear(CmdMonGnss)
			d.inv.ApplyMonGnss(ev)
		},
		OnMonComms: func(ev ubx.MonCommsEvent) {
			d.cmds.Clear(CmdMonComms)
			d.inv.ApplyMonComms(ev)
			if d.activeBit != nil {
				d.activeBit.HandleMonComms(ev)
			}
		},
		OnMonRf: func(ev ubx.MonRfEvent) {
			d.cmds.Clear(CmdMonRf)
			d.inv.ApplyMonRf(ev)
			if d.activeBit != nil {
				d.activeBit.HandleMonRf(ev)
			}
		},
		OnNavPvt: func(ev ubx.NavPvtEvent) {
			d.cmds.Clear(CmdPvt)
			d.inv.ApplyNavPvt(d.now)
		},
		OnCfgValget: func(ev ubx.CfgValgetEvent) {
			if d.activeEngine != nil {
				d.activeEngine.HandleValget(ev.Items)
			}
		},
		OnNmea: func(ev ubx.NmeaEvent) {
			d.log.Debugf("nmea: %s sentence received", ev.Kind)
		},
	}
}
