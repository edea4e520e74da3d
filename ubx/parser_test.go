package ubx

import "testing"

func lookupNone(uint32) (ValueType, bool) { return 0, false }

func TestParserChecksumErrorResyncs(t *testing.T) {
	h := Handlers{}
	p := NewParser(lookupNone, h)
	// UBX-MON-VER poll frame with a corrupted checksum byte.
	frame := []byte{SyncByte1, SyncByte2, ClassMON, MonVer, 0x00, 0x00, 0xFF, 0xFF}
	p.Feed(frame)
	if p.Errors() != 1 {
		t.Fatalf("Errors() = %d, want 1", p.Errors())
	}
	if p.state != stateIdle {
		t.Fatalf("state = %v, want Idle after a bad frame", p.state)
	}
}

func TestParserMonVer(t *testing.T) {
	var got *MonVerEvent
	h := Handlers{OnMonVer: func(ev MonVerEvent) { got = &ev }}
	p := NewParser(lookupNone, h)

	payload := make([]byte, 40)
	copy(payload[0:30], "ROM CORE 3.01 (107888)")
	copy(payload[30:40], "00080000")
	extension := []byte("FWVER=SPG 4.04\x00PROTVER=32.01\x00")
	payload = append(payload, extension...)

	frame := Encode(ClassMON, MonVer, payload)
	p.Feed(frame)

	if got == nil {
		t.Fatalf("OnMonVer not invoked")
	}
	if !got.SPGVersionKnown || got.SPGVersion != 4.04 {
		t.Fatalf("SPGVersion = %v (known=%v), want 4.04", got.SPGVersion, got.SPGVersionKnown)
	}
	if !got.ProtocolKnown || got.ProtocolVersion != 32.01 {
		t.Fatalf("ProtocolVersion = %v (known=%v), want 32.01", got.ProtocolVersion, got.ProtocolKnown)
	}
}

func TestParserAck(t *testing.T) {
	var class, id byte
	h := Handlers{OnAck: func(c, i byte) { class, id = c, i }}
	p := NewParser(lookupNone, h)
	frame := Encode(ClassACK, AckAck, []byte{ClassCFG, CfgValset})
	p.Feed(frame)
	if class != ClassCFG || id != CfgValset {
		t.Fatalf("OnAck got (%x,%x), want (%x,%x)", class, id, ClassCFG, CfgValset)
	}
}

func TestParserCfgValget(t *testing.T) {
	lookup := func(keyID uint32) (ValueType, bool) {
		if keyID == 0x10740001 {
			return Bit, true
		}
		return 0, false
	}
	var got *CfgValgetEvent
	h := Handlers{OnCfgValget: func(ev CfgValgetEvent) { got = &ev }}
	p := NewParser(lookup, h)

	payload := []byte{0x00, 0x00, 0x00, 0x00} // version, layer, position
	var keyb [4]byte
	keyb[0], keyb[1], keyb[2], keyb[3] = 0x01, 0x00, 0x74, 0x10
	payload = append(payload, keyb[:]...)
	payload = append(payload, 0x01) // bit value = true

	frame := Encode(ClassCFG, CfgValget, payload)
	p.Feed(frame)

	if got == nil || len(got.Items) != 1 {
		t.Fatalf("OnCfgValget: got %+v", got)
	}
	if !got.Items[0].Value.Bool() {
		t.Fatalf("item value = false, want true")
	}
}

func TestParserNmeaBadChecksumDropped(t *testing.T) {
	var calls int
	h := Handlers{OnNmea: func(NmeaEvent) { calls++ }}
	p := NewParser(lookupNone, h)
	p.Feed([]byte("$GPGGA,*00\r\n"))
	if calls != 0 {
		t.Fatalf("OnNmea called %d times, want 0", calls)
	}
	if p.Errors() != 1 {
		t.Fatalf("Errors() = %d, want 1", p.Errors())
	}
}

func TestParserNmeaGood(t *testing.T) {
	var sum byte
	for _, b := range []byte("GPGGA,") {
		sum ^= b
	}
	const digits = "0123456789ABCDEF"
	cksum := []byte{digits[sum>>4], digits[sum&0xF]}
	sentence := append([]byte("$GPGGA,*"), cksum...)
	sentence = append(sentence, '\r', '\n')

	var got *NmeaEvent
	h := Handlers{OnNmea: func(ev NmeaEvent) { got = &ev }}
	p := NewParser(lookupNone, h)
	p.Feed(sentence)

	if got == nil {
		t.Fatalf("OnNmea not invoked")
	}
	if got.Kind != "GGA" {
		t.Fatalf("Kind = %q, want GGA", got.Kind)
	}
}

func TestParserFeedInSmallChunks(t *testing.T) {
	var calls int
	h := Handlers{OnAck: func(byte, byte) { calls++ }}
	p := NewParser(lookupNone, h)
	frame := Encode(ClassACK, AckAck, []byte{ClassCFG, CfgValset})
	for _, b := range frame {
		p.Feed([]byte{b})
	}
	if calls != 1 {
		t.Fatalf("OnAck called %d times, want 1", calls)
	}
}
