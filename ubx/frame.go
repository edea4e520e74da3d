package ubx

// Encode assembles a complete binary frame: sync bytes, class, id,
// little-endian length, payload, and the Fletcher-8 checksum over
// class through the end of payload.
func Encode(class, id byte, payload []byte) []byte {
	frame := make([]byte, 0, 8+len(payload))
	frame = append(frame, SyncByte1, SyncByte2, class, id, byte(len(payload)), byte(len(payload)>>8))
	frame = append(frame, payload...)
	ckA, ckB := Checksum(frame[2:])
	frame = append(frame, ckA, ckB)
	return frame
}
