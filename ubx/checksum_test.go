package ubx

import "testing"

func TestChecksumDeterministic(t *testing.T) {
	data := []byte{0x0A, 0x04, 0x00, 0x00}
	a1, b1 := Checksum(data)
	a2, b2 := Checksum(data)
	if a1 != a2 || b1 != b2 {
		t.Fatalf("checksum not deterministic: (%x,%x) vs (%x,%x)", a1, b1, a2, b2)
	}
}

func TestChecksumKnownFrame(t *testing.T) {
	// UBX-MON-VER poll: class 0x0A id 0x04 len 0x0000.
	a, b := Checksum([]byte{0x0A, 0x04, 0x00, 0x00})
	if a != 0x0E || b != 0x34 {
		t.Fatalf("Checksum = (%#x,%#x), want (0x0e,0x34)", a, b)
	}
}
