package gnss

import (
	"time"

	"gnssdrv.dev/ubx"
)

// Inventory is the driver's running picture of the receiver: versions,
// storage, constellations, and the last BIT-relevant telemetry.
type Inventory struct {
	SWVersion       string
	HWVersion       string
	SPGVersion      float64
	ProtocolVersion float64
	VersionKnown    bool

	FlashAttached bool

	SupportedGnss    byte
	DefaultGnss      byte
	EnabledGnss      byte
	SimultaneousGnss byte

	Jamming   ubx.JammingState
	AntStatus ubx.AntennaStatus
	AntPower  ubx.AntennaPower

	TxErrorMem   bool
	TxErrorAlloc bool

	LastPVTUnixNano int64
}

// GPSEnabled reports whether the GPS constellation bit is set in the
// last observed enabled mask.
func (inv *Inventory) GPSEnabled() bool {
	const gpsBit = 0b00000001
	return inv.EnabledGnss&gpsBit != 0
}

// ApplyMonVer records a decoded UBX-MON-VER response.
func (inv *Inventory) ApplyMonVer(ev ubx.MonVerEvent) {
	inv.SWVersion = ev.SWVersion
	inv.HWVersion = ev.HWVersion
	if ev.SPGVersionKnown {
		inv.SPGVersion = ev.SPGVersion
	}
	if ev.ProtocolKnown {
		inv.ProtocolVersion = ev.ProtocolVersion
	}
	inv.VersionKnown = ev.SPGVersionKnown && ev.ProtocolKnown
}

// ApplyLogInfo records a decoded UBX-LOG-INFO response.
func (inv *Inventory) ApplyLogInfo(ev ubx.LogInfoEvent) {
	inv.FlashAttached = ev.FilestoreCapacity >= minFilestoreCapacity
}

// ApplyMonGnss records a decoded UBX-MON-GNSS response.
func (inv *Inventory) ApplyMonGnss(ev ubx.MonGnssEvent) {
	inv.SupportedGnss = ev.Supported
	inv.DefaultGnss = ev.DefaultGnss
	inv.EnabledGnss = ev.Enabled
	inv.SimultaneousGnss = ev.Simultaneous
}

// ApplyMonComms records a decoded UBX-MON-COMMS response.
func (inv *Inventory) ApplyMonComms(ev ubx.MonCommsEvent) {
	inv.TxErrorMem = ev.MemError
	inv.TxErrorAlloc = ev.AllocError
}

// ApplyMonRf records a decoded UBX-MON-RF response.
func (inv *Inventory) ApplyMonRf(ev ubx.MonRfEvent) {
	inv.Jamming = ev.Jamming
	inv.AntStatus = ev.AntStatus
	inv.AntPower = ev.AntPower
}

// ApplyNavPvt stamps the tick time at which a UBX-NAV-PVT response was
// received, the freshness input a stricter DynamicsPolicy would check.
func (inv *Inventory) ApplyNavPvt(receivedAt time.Time) {
	inv.LastPVTUnixNano = receivedAt.UnixNano()
}
