package pgp

import "encoding/binary"

// Sink is the write capability that every encodable value in this package
// writes itself into. It is implemented by *Encoder.
type Sink interface {
	InsertBits(count uint, value uint8) error
	InsertByte(b byte) error
	InsertBytes(b []byte) error
	InsertEnum(e Enumerant) error
}

// Encodable is implemented by every value which has a fixed binary encoding.
// Encode must write exactly Size bytes to the sink.
type Encodable interface {
	Size() int
	Encode(w Sink) error
}

// Encoder writes bits and bytes into a fixed-size buffer owned by the caller.
// It never allocates or grows the buffer. Bit-level writes fill the current
// byte from the most significant bit downward, and may not straddle a byte
// boundary.
type Encoder struct {
	data     []byte
	size     int
	current  byte
	skipBits uint
}

// NewEncoder returns an Encoder which writes into buf, starting at index 0.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{data: buf}
}

// Size returns the number of committed bytes. A partially written byte is
// not counted until it is completed or flushed.
func (enc *Encoder) Size() int {
	return enc.size
}

// Bytes returns the committed prefix of the underlying buffer.
func (enc *Encoder) Bytes() []byte {
	return enc.data[:enc.size]
}

// InsertBits writes the low count bits of value into the current byte.
func (enc *Encoder) InsertBits(count uint, value uint8) error {
	if count > 8 {
		return fieldErrorf("bits", ErrBoundary, "cannot write %d bits at once", count)
	}
	if uint16(value) >= 1<<count {
		return fieldErrorf("bits", ErrValueRange, "value %d does not fit in %d bits", value, count)
	}
	if count+enc.skipBits > 8 {
		return fieldErrorf(
			"bits", ErrBoundary,
			"writing %d bits with %d pending would cross a byte boundary",
			count, enc.skipBits,
		)
	}
	if count == 0 {
		return nil
	}
	if enc.size >= len(enc.data) {
		return fieldErrorf("bits", ErrBoundary, "output buffer of %d bytes is full", len(enc.data))
	}

	enc.current |= value << (8 - enc.skipBits - count)

	if count+enc.skipBits == 8 {
		enc.commit()
	} else {
		enc.skipBits += count
	}
	return nil
}

// Flush commits a partially written byte, if any. Unwritten bits are zero.
// Bit-level writes start at the most significant bit of a fresh byte afterward.
func (enc *Encoder) Flush() error {
	if enc.skipBits == 0 {
		return nil
	}
	if enc.size >= len(enc.data) {
		return fieldErrorf("flush", ErrBoundary, "output buffer of %d bytes is full", len(enc.data))
	}
	enc.commit()
	return nil
}

func (enc *Encoder) commit() {
	enc.data[enc.size] = enc.current
	enc.size++
	enc.current = 0
	enc.skipBits = 0
}

// reserve checks that n whole bytes can be appended.
func (enc *Encoder) reserve(n int) error {
	if enc.skipBits != 0 {
		return fieldErrorf(
			"bytes", ErrBoundary,
			"byte write with %d bits pending; flush first", enc.skipBits,
		)
	}
	if remaining := len(enc.data) - enc.size; n > remaining {
		return fieldErrorf(
			"bytes", ErrBoundary,
			"writing %d bytes overflows output buffer by %d", n, n-remaining,
		)
	}
	return nil
}

// InsertByte appends a single byte.
func (enc *Encoder) InsertByte(b byte) error {
	if err := enc.reserve(1); err != nil {
		return err
	}
	enc.data[enc.size] = b
	enc.size++
	return nil
}

// InsertUint16 appends n in big-endian order.
func (enc *Encoder) InsertUint16(n uint16) error {
	if err := enc.reserve(2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(enc.data[enc.size:], n)
	enc.size += 2
	return nil
}

// InsertUint32 appends n in big-endian order.
func (enc *Encoder) InsertUint32(n uint32) error {
	if err := enc.reserve(4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(enc.data[enc.size:], n)
	enc.size += 4
	return nil
}

// InsertBytes appends b verbatim.
func (enc *Encoder) InsertBytes(b []byte) error {
	if err := enc.reserve(len(b)); err != nil {
		return err
	}
	enc.size += copy(enc.data[enc.size:], b)
	return nil
}

// InsertEnum appends a one-byte enumerant, refusing values which
// are not recognized members of their enumeration.
func (enc *Encoder) InsertEnum(e Enumerant) error {
	if !e.Valid() {
		return fieldErrorf(e.Field(), ErrFormat, "unrecognized value %d", e.Byte())
	}
	return enc.InsertByte(e.Byte())
}

// Marshal encodes v into a freshly allocated buffer of exactly v.Size() bytes.
func Marshal(v Encodable) ([]byte, error) {
	buf := make([]byte, v.Size())
	enc := NewEncoder(buf)
	if err := v.Encode(enc); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	if enc.Size() != len(buf) {
		return nil, fieldErrorf("size", ErrBoundary, "encoded %d bytes, expected %d", enc.Size(), len(buf))
	}
	return buf, nil
}

// uint16Sink and uint32Sink are satisfied by *Encoder. Values use them when
// present so that multi-byte integers are written in a single bounds check.
type uint16Sink interface {
	InsertUint16(uint16) error
}

func insertUint16(w Sink, n uint16) error {
	if u, ok := w.(uint16Sink); ok {
		return u.InsertUint16(n)
	}
	return w.InsertBytes([]byte{byte(n >> 8), byte(n)})
}

type uint32Sink interface {
	InsertUint32(uint32) error
}

func insertUint32(w Sink, n uint32) error {
	if u, ok := w.(uint32Sink); ok {
		return u.InsertUint32(n)
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], n)
	return w.InsertBytes(buf[:])
}
