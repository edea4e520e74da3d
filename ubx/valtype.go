package ubx

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ValueType is the semantic type tag carried by every configuration
// item. Keeping it distinct from the raw wire width prevents the codec
// from silently mixing an i32 and a u32, say.
type ValueType uint8

const (
	Bit ValueType = iota
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	Enum8
	Bitfield8
	Bitfield16
	Bitfield32
	Bitfield64
)

// Width returns the wire width, in bytes, for t.
func (t ValueType) Width() int {
	switch t {
	case Bit, U8, I8, Enum8, Bitfield8:
		return 1
	case U16, I16, Bitfield16:
		return 2
	case U32, I32, F32, Bitfield32:
		return 4
	case U64, I64, F64, Bitfield64:
		return 8
	default:
		return 0
	}
}

func (t ValueType) String() string {
	switch t {
	case Bit:
		return "bit"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Enum8:
		return "enum8"
	case Bitfield8:
		return "bitfield8"
	case Bitfield16:
		return "bitfield16"
	case Bitfield32:
		return "bitfield32"
	case Bitfield64:
		return "bitfield64"
	default:
		return "unknown"
	}
}

// Value is a tagged union over ValueType: it stores every scalar in a
// common 64-bit slot and refuses to be read back under the wrong tag,
// so the codec cannot mix widths at runtime.
type Value struct {
	typ  ValueType
	bits uint64
}

func NewBit(v bool) Value {
	var b uint64
	if v {
		b = 1
	}
	return Value{typ: Bit, bits: b}
}

func NewU8(v uint8) Value   { return Value{typ: U8, bits: uint64(v)} }
func NewU16(v uint16) Value { return Value{typ: U16, bits: uint64(v)} }
func NewU32(v uint32) Value { return Value{typ: U32, bits: uint64(v)} }
func NewU64(v uint64) Value { return Value{typ: U64, bits: v} }
func NewI8(v int8) Value    { return Value{typ: I8, bits: uint64(uint8(v))} }
func NewI16(v int16) Value  { return Value{typ: I16, bits: uint64(uint16(v))} }
func NewI32(v int32) Value  { return Value{typ: I32, bits: uint64(uint32(v))} }
func NewI64(v int64) Value  { return Value{typ: I64, bits: uint64(v)} }
func NewF32(v float32) Value {
	return Value{typ: F32, bits: uint64(math.Float32bits(v))}
}
func NewF64(v float64) Value { return Value{typ: F64, bits: math.Float64bits(v)} }
func NewEnum8(v uint8) Value { return Value{typ: Enum8, bits: uint64(v)} }
func NewBitfield8(v uint8) Value {
	return Value{typ: Bitfield8, bits: uint64(v)}
}
func NewBitfield16(v uint16) Value {
	return Value{typ: Bitfield16, bits: uint64(v)}
}
func NewBitfield32(v uint32) Value {
	return Value{typ: Bitfield32, bits: uint64(v)}
}
func NewBitfield64(v uint64) Value {
	return Value{typ: Bitfield64, bits: v}
}

// Type reports the value's semantic type tag.
func (v Value) Type() ValueType { return v.typ }

func (v Value) mustBe(t ValueType) {
	if v.typ != t {
		panic(fmt.Sprintf("ubx: value has type %s, not %s", v.typ, t))
	}
}

func (v Value) Bool() bool { v.mustBe(Bit); return v.bits != 0 }
func (v Value) U8() uint8  { v.mustBe(U8); return uint8(v.bits) }
func (v Value) U16() uint16 {
	v.mustBe(U16)
	return uint16(v.bits)
}
func (v Value) U32() uint32 {
	v.mustBe(U32)
	return uint32(v.bits)
}
func (v Value) U64() uint64 { v.mustBe(U64); return v.bits }
func (v Value) I8() int8    { v.mustBe(I8); return int8(v.bits) }
func (v Value) I16() int16 {
	v.mustBe(I16)
	return int16(v.bits)
}
func (v Value) I32() int32 {
	v.mustBe(I32)
	return int32(v.bits)
}
func (v Value) I64() int64 { v.mustBe(I64); return int64(v.bits) }
func (v Value) F32() float32 {
	v.mustBe(F32)
	return math.Float32frombits(uint32(v.bits))
}
func (v Value) F64() float64 {
	v.mustBe(F64)
	return math.Float64frombits(v.bits)
}
func (v Value) Enum8() uint8 { v.mustBe(Enum8); return uint8(v.bits) }
func (v Value) Bitfield8() uint8 {
	v.mustBe(Bitfield8)
	return uint8(v.bits)
}
func (v Value) Bitfield16() uint16 {
	v.mustBe(Bitfield16)
	return uint16(v.bits)
}
func (v Value) Bitfield32() uint32 {
	v.mustBe(Bitfield32)
	return uint32(v.bits)
}
func (v Value) Bitfield64() uint64 {
	v.mustBe(Bitfield64)
	return v.bits
}

// Raw returns the value's bit pattern in its wire width, regardless of
// type (cfgdb's diagnostics snapshot exports it; comparisons use Equal).
func (v Value) Raw() uint64 { return v.bits }

// Equal reports whether v and o carry the same type and bit pattern.
func (v Value) Equal(o Value) bool { return v.typ == o.typ && v.bits == o.bits }

// Encode appends the little-endian wire encoding of v to dst and
// returns the result.
func (v Value) Encode(dst []byte) []byte {
	w := v.typ.Width()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v.bits)
	return append(dst, buf[:w]...)
}

// Decode reads a Value of type t from the front of data, returning the
// value and the number of bytes consumed.
func Decode(t ValueType, data []byte) (Value, int, error) {
	w := t.Width()
	if w == 0 {
		return Value{}, 0, fmt.Errorf("ubx: unknown value type %v", t)
	}
	if len(data) < w {
		return Value{}, 0, fmt.Errorf("ubx: short read decoding %s: need %d, have %d", t, w, len(data))
	}
	var buf [8]byte
	copy(buf[:w], data[:w])
	return Value{typ: t, bits: binary.LittleEndian.Uint64(buf[:])}, w, nil
}
