package ubx

import "encoding/binary"

// Device storage masks for the deviceMask field of the UBX-CFG-CFG
// requests below. VALGET/VALSET use their own layer encoding.
const (
	DeviceBBR       = 0x01
	DeviceFlash     = 0x02
	DeviceEEPROM    = 0x04
	DeviceSPIFlash  = 0x10
	DeviceEraseAll  = DeviceBBR | DeviceFlash | DeviceEEPROM | DeviceSPIFlash
)

// ReqMonVer polls UBX-MON-VER.
func ReqMonVer() []byte { return Encode(ClassMON, MonVer, nil) }

// ReqMonComms polls UBX-MON-COMMS.
func ReqMonComms() []byte { return Encode(ClassMON, MonComms, nil) }

// ReqMonRf polls UBX-MON-RF.
func ReqMonRf() []byte { return Encode(ClassMON, MonRf, nil) }

// ReqLogInfo polls UBX-LOG-INFO, used to detect flash presence.
func ReqLogInfo() []byte { return Encode(ClassLOG, LogInfo, nil) }

// ReqMonGnss polls UBX-MON-GNSS, used to check enabled constellations.
func ReqMonGnss() []byte { return Encode(ClassMON, MonGnss, nil) }

// ReqNavPvt polls UBX-NAV-PVT.
func ReqNavPvt() []byte { return Encode(ClassNAV, NavPvt, nil) }

// ReqBBREraseAndReload issues a UBX-CFG-CFG clearing the BBR layer and
// reloading RAM from the remaining layers. It is PBIT's Rst step: no
// acknowledgement is expected.
func ReqBBREraseAndReload() []byte {
	payload := []byte{
		0xFF, 0xFF, 0x00, 0x00, // clearMask
		0x00, 0x00, 0x00, 0x00, // saveMask
		0xFF, 0xFF, 0x00, 0x00, // loadMask
		DeviceBBR, // deviceMask
	}
	return Encode(ClassCFG, CfgCfg, payload)
}

// ReqClearAll issues a UBX-CFG-CFG clearing every configuration layer.
// It is IBIT's ClearAll step, acknowledged.
func ReqClearAll() []byte {
	payload := []byte{
		0xFF, 0xFF, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0x00, 0x00,
		DeviceEraseAll,
	}
	return Encode(ClassCFG, CfgCfg, payload)
}

// ReqHardwareReset issues a UBX-CFG-RST cold-start hardware (watchdog)
// reset. The receiver never acknowledges this command.
func ReqHardwareReset() []byte {
	navBbrMask := uint16(0xFFFF)
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint16(payload[0:2], navBbrMask)
	payload[2] = 0x00 // resetMode: hardware reset immediately
	payload[3] = 0x00 // reserved0
	return Encode(ClassCFG, CfgRst, payload)
}

// ReqValget builds a UBX-CFG-VALGET request for up to 64 key ids from
// the given layer, at page position 0.
func ReqValget(layer byte, keyIDs []uint32) []byte {
	payload := make([]byte, 4, 4+4*len(keyIDs))
	payload[0] = 0x00 // version
	payload[1] = layer
	payload[2] = 0x00 // position low
	payload[3] = 0x00 // position high
	for _, id := range keyIDs {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], id)
		payload = append(payload, b[:]...)
	}
	return Encode(ClassCFG, CfgValget, payload)
}

// ReqValset builds a UBX-CFG-VALSET request writing the given
// key/value pairs to the layers set in layerMask (a bit per layer,
// 1<<layerIndex).
func ReqValset(layerMask byte, items []KeyValue) []byte {
	payload := []byte{0x00, layerMask, 0x00, 0x00} // version, layerMask, reserved0
	for _, kv := range items {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], kv.KeyID)
		payload = append(payload, b[:]...)
		payload = kv.Value.Encode(payload)
	}
	return Encode(ClassCFG, CfgValset, payload)
}
