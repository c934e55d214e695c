package pgp

import (
	"bytes"

	"golang.org/x/crypto/cryptobyte"
)

// Decoder reads bits and bytes from a borrowed input buffer. It mirrors
// Encoder: bit-level reads consume the current byte from the most significant
// bit downward and may not straddle a byte boundary.
//
// Values returned by a Decoder never alias its input.
type Decoder struct {
	input    cryptobyte.String
	current  byte
	skipBits uint
}

// NewDecoder returns a Decoder reading from data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{input: cryptobyte.String(data)}
}

// Len returns the number of whole bytes remaining.
func (dec *Decoder) Len() int {
	return len(dec.input)
}

// Empty returns true if every byte of input, including any partially read
// byte, has been consumed.
func (dec *Decoder) Empty() bool {
	return dec.input.Empty() && dec.skipBits == 0
}

func truncated(field string, want int, have int) error {
	return fieldErrorf(field, ErrFormat, "need %d bytes, only %d remain", want, have)
}

func (dec *Decoder) aligned(field string) error {
	if dec.skipBits != 0 {
		return fieldErrorf(field, ErrBoundary, "byte read with %d bits of the current byte consumed", dec.skipBits)
	}
	return nil
}

// ExtractBits reads count bits from the current byte.
func (dec *Decoder) ExtractBits(count uint) (uint8, error) {
	if count > 8 || count+dec.skipBits > 8 {
		return 0, fieldErrorf(
			"bits", ErrBoundary,
			"reading %d bits with %d consumed would cross a byte boundary",
			count, dec.skipBits,
		)
	}
	if count == 0 {
		return 0, nil
	}
	if dec.skipBits == 0 {
		if !dec.input.ReadUint8(&dec.current) {
			return 0, truncated("bits", 1, 0)
		}
	}

	value := (dec.current >> (8 - dec.skipBits - count)) & byte(uint16(1)<<count-1)
	dec.skipBits = (dec.skipBits + count) % 8
	return value, nil
}

// ExtractUint8 reads a single byte.
func (dec *Decoder) ExtractUint8() (uint8, error) {
	if err := dec.aligned("uint8"); err != nil {
		return 0, err
	}
	var n uint8
	if !dec.input.ReadUint8(&n) {
		return 0, truncated("uint8", 1, dec.Len())
	}
	return n, nil
}

// ExtractUint16 reads a big-endian 16-bit integer.
func (dec *Decoder) ExtractUint16() (uint16, error) {
	if err := dec.aligned("uint16"); err != nil {
		return 0, err
	}
	var n uint16
	if !dec.input.ReadUint16(&n) {
		return 0, truncated("uint16", 2, dec.Len())
	}
	return n, nil
}

// ExtractUint32 reads a big-endian 32-bit integer.
func (dec *Decoder) ExtractUint32() (uint32, error) {
	if err := dec.aligned("uint32"); err != nil {
		return 0, err
	}
	var n uint32
	if !dec.input.ReadUint32(&n) {
		return 0, truncated("uint32", 4, dec.Len())
	}
	return n, nil
}

// ExtractBytes reads n bytes into a new slice.
func (dec *Decoder) ExtractBytes(n int) ([]byte, error) {
	if err := dec.aligned("bytes"); err != nil {
		return nil, err
	}
	var b []byte
	if n < 0 || !dec.input.ReadBytes(&b, n) {
		return nil, truncated("bytes", n, dec.Len())
	}
	return bytes.Clone(b), nil
}

// Sub consumes the next n bytes and returns a Decoder bounded to them.
func (dec *Decoder) Sub(n int) (*Decoder, error) {
	if err := dec.aligned("region"); err != nil {
		return nil, err
	}
	var region []byte
	if n < 0 || !dec.input.ReadBytes(&region, n) {
		return nil, truncated("region", n, dec.Len())
	}
	return NewDecoder(region), nil
}

// expectEmpty fails if any input remains in dec.
func (dec *Decoder) expectEmpty(field string) error {
	if !dec.Empty() {
		return fieldErrorf(field, ErrFormat, "%d unexpected trailing bytes", dec.Len())
	}
	return nil
}
