package ubx

import (
	"encoding/binary"
	"fmt"
	"math"
	"regexp"

	"gnssdrv.dev/nmea"
)

// BufferSize is the maximum size of a single frame the parser will
// assemble, matching the receiver's largest expected message.
const BufferSize = 1024

type parserState int

const (
	stateIdle parserState = iota
	stateUbxSync2
	stateUbxHeader
	stateUbxPayload
	stateNmea
)

// ValueTypeLookup resolves the semantic type of a configuration key id,
// so CFG-VALGET payloads can be decoded without the wire codec
// depending on the configuration database package.
type ValueTypeLookup func(keyID uint32) (ValueType, bool)

// Parser implements the byte-stream parser state machine shared by the
// binary and text protocols: a single discriminator on the first byte
// routes into one of two sub-parsers, both driven from the same
// buffer/need bookkeeping.
type Parser struct {
	Handlers Handlers
	Lookup   ValueTypeLookup

	state parserState
	buf   [BufferSize]byte
	idx   int
	need  int

	errors uint64
}

// NewParser returns a Parser ready to consume bytes via Feed.
func NewParser(lookup ValueTypeLookup, h Handlers) *Parser {
	return &Parser{Lookup: lookup, Handlers: h, need: 1}
}

// Errors reports the cumulative count of checksum mismatches observed,
// across both protocols.
func (p *Parser) Errors() uint64 { return p.errors }

// Feed consumes data, advancing the parser state machine and invoking
// Handlers synchronously as complete frames are decoded. The parser
// always returns to Idle after dispatching or dropping a frame.
func (p *Parser) Feed(data []byte) {
	for len(data) > 0 {
		n := p.need
		if n > len(data) {
			n = len(data)
		}
		if p.idx+n > len(p.buf) {
			// Runaway frame; resynchronize.
			p.reset()
			data = data[n:]
			continue
		}
		copy(p.buf[p.idx:], data[:n])
		p.idx += n
		p.need -= n
		data = data[n:]
		if p.need == 0 {
			p.step()
		}
	}
}

func (p *Parser) reset() {
	p.state = stateIdle
	p.idx = 0
	p.need = 1
}

func (p *Parser) step() {
	switch p.state {
	case stateIdle:
		p.stepIdle()
	case stateUbxSync2:
		p.stepUbxSync2()
	case stateUbxHeader:
		p.stepUbxHeader()
	case stateUbxPayload:
		p.stepUbxPayload()
	case stateNmea:
		p.stepNmea()
	}
}

func (p *Parser) stepIdle() {
	switch p.buf[0] {
	case SyncByte1:
		p.state = stateUbxSync2
		p.need = 1
	case '$':
		p.state = stateNmea
		p.need = 1
	default:
		p.idx = 0
		p.need = 1
	}
}

func (p *Parser) stepUbxSync2() {
	if p.buf[1] == SyncByte2 {
		p.state = stateUbxHeader
		p.need = 4 // class, id, len lo, len hi
	} else {
		p.reset()
	}
}

const (
	posClass  = 2
	posID     = 3
	posLenLo  = 4
	posLenHi  = 5
	posPayload = 6
)

func (p *Parser) stepUbxHeader() {
	class, id := p.buf[posClass], p.buf[posID]
	if !KnownClassID(class, id) {
		p.reset()
		return
	}
	p.state = stateUbxPayload
	payloadLen := int(p.buf[posLenLo]) | int(p.buf[posLenHi])<<8
	p.need = payloadLen + 2 // + checksum
}

func (p *Parser) stepUbxPayload() {
	class := p.buf[posClass]
	id := p.buf[posID]
	end := p.idx
	ckA, ckB := Checksum(p.buf[posClass : end-2])
	if ckA != p.buf[end-2] || ckB != p.buf[end-1] {
		p.errors++
		p.reset()
		return
	}
	payload := p.buf[posPayload : end-2]
	p.dispatchUbx(class, id, payload)
	p.reset()
}

func (p *Parser) dispatchUbx(class, id byte, payload []byte) {
	switch class {
	case ClassACK:
		if len(payload) < 2 {
			return
		}
		switch id {
		case AckAck:
			if p.Handlers.OnAck != nil {
				p.Handlers.OnAck(payload[0], payload[1])
			}
		case AckNak:
			if p.Handlers.OnNak != nil {
				p.Handlers.OnNak(payload[0], payload[1])
			}
		}
	case ClassCFG:
		if id == CfgValget {
			p.dispatchCfgValget(payload)
		}
	case ClassLOG:
		if id == LogInfo {
			p.dispatchLogInfo(payload)
		}
	case ClassMON:
		switch id {
		case MonVer:
			p.dispatchMonVer(payload)
		case MonGnss:
			p.dispatchMonGnss(payload)
		case MonComms:
			p.dispatchMonComms(payload)
		case MonRf:
			p.dispatchMonRf(payload)
		}
	case ClassNAV:
		if id == NavPvt {
			p.dispatchNavPvt(payload)
		}
	}
}

func (p *Parser) dispatchCfgValget(payload []byte) {
	if len(payload) < 4 || p.Handlers.OnCfgValget == nil {
		return
	}
	ev := CfgValgetEvent{
		Version:  payload[0],
		Layer:    payload[1],
		Position: binary.LittleEndian.Uint16(payload[2:4]),
	}
	i := 4
	for i < len(payload) {
		if i+4 > len(payload) {
			break
		}
		keyID := binary.LittleEndian.Uint32(payload[i : i+4])
		i += 4
		typ, ok := p.Lookup(keyID)
		if !ok {
			continue
		}
		v, n, err := Decode(typ, payload[i:])
		if err != nil {
			break
		}
		i += n
		ev.Items = append(ev.Items, KeyValue{KeyID: keyID, Value: v})
	}
	p.Handlers.OnCfgValget(ev)
}

func (p *Parser) dispatchLogInfo(payload []byte) {
	if len(payload) < 8 || p.Handlers.OnLogInfo == nil {
		return
	}
	p.Handlers.OnLogInfo(LogInfoEvent{
		FilestoreCapacity: binary.LittleEndian.Uint32(payload[4:8]),
	})
}

var (
	spgRe     = regexp.MustCompile(`FWVER=SPG (\d+\.\d+)`)
	protverRe = regexp.MustCompile(`PROTVER=(\d+\.\d+)`)
)

func (p *Parser) dispatchMonVer(payload []byte) {
	const swLen, hwLen = 30, 10
	if len(payload) < swLen+hwLen || p.Handlers.OnMonVer == nil {
		return
	}
	ev := MonVerEvent{
		SWVersion: asciiZ(payload[0:swLen]),
		HWVersion: asciiZ(payload[swLen : swLen+hwLen]),
	}
	extension := asciiBlob(payload[swLen+hwLen:])
	if m := spgRe.FindStringSubmatch(extension); m != nil {
		if v, err := parseFloat(m[1]); err == nil {
			ev.SPGVersion, ev.SPGVersionKnown = v, true
		}
	}
	if m := protverRe.FindStringSubmatch(extension); m != nil {
		if v, err := parseFloat(m[1]); err == nil {
			ev.ProtocolVersion, ev.ProtocolKnown = v, true
		}
	}
	p.Handlers.OnMonVer(ev)
}

func (p *Parser) dispatchMonGnss(payload []byte) {
	if len(payload) < 5 || p.Handlers.OnMonGnss == nil {
		return
	}
	p.Handlers.OnMonGnss(MonGnssEvent{
		Supported:    payload[1],
		DefaultGnss:  payload[2],
		Enabled:      payload[3],
		Simultaneous: payload[4],
	})
}

func (p *Parser) dispatchMonComms(payload []byte) {
	if len(payload) < 3 || p.Handlers.OnMonComms == nil {
		return
	}
	txErrors := payload[2]
	p.Handlers.OnMonComms(MonCommsEvent{
		MemError:   txErrors&0b0001 != 0,
		AllocError: txErrors&0b0010 != 0,
	})
}

func (p *Parser) dispatchMonRf(payload []byte) {
	if len(payload) < 9 || p.Handlers.OnMonRf == nil {
		return
	}
	p.Handlers.OnMonRf(MonRfEvent{
		Jamming:   JammingState(payload[5]),
		AntStatus: AntennaStatus(payload[6]),
		AntPower:  AntennaPower(payload[7]),
	})
}

func (p *Parser) dispatchNavPvt(payload []byte) {
	if len(payload) < 36 || p.Handlers.OnNavPvt == nil {
		return
	}
	lon := int32(binary.LittleEndian.Uint32(payload[24:28]))
	lat := int32(binary.LittleEndian.Uint32(payload[28:32]))
	height := int32(binary.LittleEndian.Uint32(payload[32:36]))
	p.Handlers.OnNavPvt(NavPvtEvent{
		NumSV:  payload[23],
		Lon:    float64(lon) * 1e-7,
		Lat:    float64(lat) * 1e-7,
		Height: float64(height) * 1e-3,
	})
}

func (p *Parser) stepNmea() {
	if p.idx >= 2 && p.buf[p.idx-2] == '\r' && p.buf[p.idx-1] == '\n' {
		sentence := append([]byte(nil), p.buf[:p.idx]...)
		kind, ok, err := nmea.Validate(sentence)
		if err != nil {
			p.reset()
			return
		}
		if !ok {
			p.errors++
		} else if p.Handlers.OnNmea != nil {
			p.Handlers.OnNmea(NmeaEvent{Kind: kind, Raw: sentence})
		}
		p.reset()
		return
	}
	p.need = 1
}

func asciiZ(b []byte) string {
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	return asciiBlob(b)
}

// asciiBlob decodes b as ASCII the way buffer2Ascii does: every byte
// outside the printable range (including embedded NULs) is dropped,
// rather than ending the scan at the first one. MON-VER's extension
// field is an array of NUL-padded 30-byte strings concatenated
// together, so a field boundary must not stop the scan the way a
// single NUL-terminated field does.
func asciiBlob(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c >= 0x20 && c < 0x7f {
			out = append(out, c)
		}
	}
	return string(out)
}

func parseFloat(s string) (float64, error) {
	var v float64
	var frac float64 = 1
	var seenDot bool
	var sign float64 = 1
	for _, c := range s {
		switch {
		case c == '.':
			if seenDot {
				return 0, fmt.Errorf("ubx: malformed float %q", s)
			}
			seenDot = true
		case c >= '0' && c <= '9':
			d := float64(c - '0')
			if !seenDot {
				v = v*10 + d
			} else {
				frac /= 10
				v += d * frac
			}
		default:
			return 0, fmt.Errorf("ubx: malformed float %q", s)
		}
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("ubx: malformed float %q", s)
	}
	return sign * v, nil
}
