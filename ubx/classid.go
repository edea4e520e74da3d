package ubx

// Message classes referenced by the driver.
const (
	ClassNAV = 0x01
	ClassRXM = 0x02
	ClassINF = 0x04
	ClassACK = 0x05
	ClassCFG = 0x06
	ClassUPD = 0x09
	ClassMON = 0x0A
	ClassTIM = 0x0D
	ClassMGA = 0x13
	ClassSEC = 0x27
	ClassLOG = 0x21
)

// Message ids, grouped by class.
const (
	AckNak = 0x00
	AckAck = 0x01

	CfgRst    = 0x04
	CfgCfg    = 0x09
	CfgValset = 0x8A
	CfgValget = 0x8B
	CfgValdel = 0x8C

	MonVer   = 0x04
	MonComms = 0x36
	MonGnss  = 0x28
	MonRf    = 0x38

	LogInfo = 0x08

	NavPvt    = 0x07
	NavStatus = 0x03
)

// SyncByte1 and SyncByte2 mark the start of every binary frame.
const (
	SyncByte1 = 0xB5
	SyncByte2 = 0x62
)

// supportedMsgs mirrors the ICD's full known class/id table; the header
// validator rejects anything outside it before allocating payload space.
var supportedMsgs = map[byte]map[byte]bool{
	ClassACK: {AckNak: true, AckAck: true},
	ClassCFG: {
		0x13: true, 0x93: true, CfgCfg: true, 0x06: true,
		0x69: true, 0x3E: true, 0x02: true, 0x39: true,
		0x47: true, 0x01: true, 0x24: true, 0x23: true,
		0x17: true, 0x1E: true, 0x3B: true, 0x86: true,
		0x00: true, 0x57: true, 0x08: true, 0x34: true,
		CfgRst: true, 0x11: true, 0x16: true, 0x31: true,
		0x1B: true, CfgValdel: true, CfgValget: true, CfgValset: true,
	},
	ClassINF: {0x00: true, 0x01: true, 0x02: true, 0x03: true, 0x04: true},
	ClassLOG: {
		0x11: true, 0x07: true, 0x03: true, 0x0E: true,
		LogInfo: true, 0x09: true, 0x10: true, 0x0B: true,
		0x0F: true, 0x0D: true, 0x04: true,
	},
	ClassMGA: {
		0x60: true, 0x20: true, 0x03: true, 0x80: true,
		0x21: true, 0x02: true, 0x06: true, 0x00: true,
		0x40: true, 0x05: true,
	},
	ClassMON: {
		0x32: true, MonComms: true, MonGnss: true, 0x09: true,
		0x0B: true, 0x37: true, 0x02: true, 0x06: true,
		0x27: true, MonRf: true, 0x07: true, 0x21: true,
		0x2B: true, 0x08: true, MonVer: true,
	},
	ClassNAV: {
		0x60: true, 0x22: true, 0x36: true, 0x04: true,
		0x61: true, 0x39: true, 0x09: true, 0x34: true,
		0x01: true, 0x02: true, NavPvt: true, 0x14: true,
		0x35: true, 0x16: true, 0x43: true, 0x42: true,
		NavStatus: true, 0x24: true, 0x25: true, 0x23: true,
		0x20: true, 0x26: true, 0x27: true, 0x21: true,
		0x11: true, 0x12: true,
	},
	ClassRXM: {0x14: true, 0x41: true, 0x59: true, 0x32: true, 0x13: true},
	ClassSEC: {0x03: true},
	ClassTIM: {0x03: true, 0x01: true, 0x06: true},
	ClassUPD: {0x14: true},
}

// KnownClassID reports whether (class, id) appears in the ICD's message
// table. The parser uses it to reject garbage before trusting a declared
// payload length.
func KnownClassID(class, id byte) bool {
	ids, ok := supportedMsgs[class]
	if !ok {
		return false
	}
	return ids[id]
}
