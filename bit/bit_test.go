package bit

import (
	"testing"

	"gnssdrv.dev/ubx"
)

func TestFullRunSucceeds(t *testing.T) {
	r := New(nil, nil)

	if !r.NeedsMonComms() {
		t.Fatalf("expected a MON-COMMS request at start")
	}
	r.MonCommsSent()
	r.HandleMonComms(ubx.MonCommsEvent{})
	if r.SubMode != CheckDynamics {
		t.Fatalf("SubMode = %v, want CheckDynamics", r.SubMode)
	}

	r.Step()
	if r.SubMode != CheckInterference {
		t.Fatalf("SubMode = %v, want CheckInterference", r.SubMode)
	}

	if !r.NeedsMonRf() {
		t.Fatalf("expected a MON-RF request")
	}
	r.MonRfSent()
	r.HandleMonRf(ubx.MonRfEvent{AntStatus: ubx.AntennaStatusOK, AntPower: ubx.AntennaPowerOn})
	if r.SubMode != CheckAntenna {
		t.Fatalf("SubMode = %v, want CheckAntenna", r.SubMode)
	}

	r.Step()
	if r.SubMode != Success {
		t.Fatalf("SubMode = %v, want Success", r.SubMode)
	}
}

func TestCommsErrorFails(t *testing.T) {
	r := New(nil, nil)
	r.MonCommsSent()
	r.HandleMonComms(ubx.MonCommsEvent{MemError: true})
	if r.SubMode != Failure {
		t.Fatalf("SubMode = %v, want Failure", r.SubMode)
	}
}

func TestBadAntennaFails(t *testing.T) {
	r := New(nil, nil)
	r.MonCommsSent()
	r.HandleMonComms(ubx.MonCommsEvent{})
	r.Step()
	r.MonRfSent()
	r.HandleMonRf(ubx.MonRfEvent{AntStatus: ubx.AntennaStatusOpen, AntPower: ubx.AntennaPowerOff})
	r.Step()
	if r.SubMode != Failure {
		t.Fatalf("SubMode = %v, want Failure", r.SubMode)
	}
}

func TestCustomDynamicsPolicyCanFail(t *testing.T) {
	r := New(func() bool { return false }, nil)
	r.MonCommsSent()
	r.HandleMonComms(ubx.MonCommsEvent{})
	r.Step()
	if r.SubMode != Failure {
		t.Fatalf("SubMode = %v, want Failure", r.SubMode)
	}
}

func TestJammingReportedAfterMonRf(t *testing.T) {
	r := New(nil, nil)
	r.MonCommsSent()
	r.HandleMonComms(ubx.MonCommsEvent{})
	r.Step()
	if _, ok := r.Jamming(); ok {
		t.Fatalf("Jamming should be unknown before MON-RF arrives")
	}
	r.MonRfSent()
	r.HandleMonRf(ubx.MonRfEvent{Jamming: ubx.JammingCritical, AntStatus: ubx.AntennaStatusOK, AntPower: ubx.AntennaPowerOn})
	state, ok := r.Jamming()
	if !ok || state != ubx.JammingCritical {
		t.Fatalf("Jamming() = (%v, %v), want (Critical, true)", state, ok)
	}
}
