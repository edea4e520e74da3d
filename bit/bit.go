// Package bit implements the built-in-test sub-state machine shared by
// PBIT, CBIT, and IBIT: a fixed sequence of checks that either reaches
// Success or latches into Failure.
package bit

import "gnssdrv.dev/ubx"

// SubMode is one step of a BIT run.
type SubMode int

const (
	CheckComms SubMode = iota
	CheckDynamics
	CheckInterference
	CheckAntenna
	Success
	Failure
)

// DynamicsPolicy judges whether the receiver's observed motion state is
// coherent with its configured dynamics model. The original
// implementation always accepted; callers that want stricter behavior
// inject their own.
type DynamicsPolicy func() bool

// AntennaPolicy judges antenna health from the last UBX-MON-RF reading.
type AntennaPolicy func(status ubx.AntennaStatus, power ubx.AntennaPower) bool

// AlwaysOK is the default DynamicsPolicy, matching the original
// receiver driver's unconditional pass.
func AlwaysOK() bool { return true }

// StrictAntennaPolicy requires the antenna to be both powered and
// reporting a healthy connection, the behavior the original left as an
// unimplemented placeholder.
func StrictAntennaPolicy(status ubx.AntennaStatus, power ubx.AntennaPower) bool {
	return status == ubx.AntennaStatusOK && power == ubx.AntennaPowerOn
}

// Run holds one BIT sequence, stepped forward a tick at a time. It does
// no I/O of its own: the caller owns all I/O and timing, and calls its
// methods each tick with updated observations.
type Run struct {
	SubMode SubMode

	requestedComms bool
	requestedRf    bool

	Dynamics DynamicsPolicy
	Antenna  AntennaPolicy

	lastRf       ubx.MonRfEvent
	haveLastRf   bool
}

// New returns a Run ready to start at CheckComms, with the given
// policies. A nil DynamicsPolicy uses AlwaysOK; a nil AntennaPolicy uses
// StrictAntennaPolicy.
func New(dyn DynamicsPolicy, ant AntennaPolicy) *Run {
	if dyn == nil {
		dyn = AlwaysOK
	}
	if ant == nil {
		ant = StrictAntennaPolicy
	}
	return &Run{SubMode: CheckComms, Dynamics: dyn, Antenna: ant}
}

// NeedsMonComms reports whether the comms check still needs its request
// sent this tick.
func (r *Run) NeedsMonComms() bool {
	return r.SubMode == CheckComms && !r.requestedComms
}

// MonCommsSent marks the UBX-MON-COMMS poll as sent.
func (r *Run) MonCommsSent() { r.requestedComms = true }

// HandleMonComms applies a UBX-MON-COMMS response to the comms check.
func (r *Run) HandleMonComms(ev ubx.MonCommsEvent) {
	if r.SubMode != CheckComms {
		return
	}
	if ev.MemError || ev.AllocError {
		r.SubMode = Failure
		return
	}
	r.SubMode = CheckDynamics
}

// Step advances checks that need no wire round trip: dynamics coherence
// and, once an interference reading is in hand, antenna health.
func (r *Run) Step() {
	switch r.SubMode {
	case CheckDynamics:
		if r.Dynamics() {
			r.SubMode = CheckInterference
		} else {
			r.SubMode = Failure
		}
	case CheckAntenna:
		if r.Antenna(r.lastRf.AntStatus, r.lastRf.AntPower) {
			r.SubMode = Success
		} else {
			r.SubMode = Failure
		}
	}
}

// NeedsMonRf reports whether the interference check still needs its
// request sent this tick.
func (r *Run) NeedsMonRf() bool {
	return r.SubMode == CheckInterference && !r.requestedRf
}

// MonRfSent marks the UBX-MON-RF poll as sent.
func (r *Run) MonRfSent() { r.requestedRf = true }

// HandleMonRf applies a UBX-MON-RF response, settling the interference
// check. The antenna check reuses the same reading on the next Step,
// with no separate request.
func (r *Run) HandleMonRf(ev ubx.MonRfEvent) {
	if r.SubMode != CheckInterference {
		return
	}
	r.lastRf, r.haveLastRf = ev, true
	r.SubMode = CheckAntenna
}

// Jamming reports the jamming state from the last UBX-MON-RF reading, if any.
func (r *Run) Jamming() (ubx.JammingState, bool) {
	if !r.haveLastRf {
		return ubx.JammingUnknown, false
	}
	return r.lastRf.Jamming, true
}
