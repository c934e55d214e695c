package pgp

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"
)

// MPI is an OpenPGP multiprecision integer: a non-negative big-endian integer
// prefixed by its length in bits.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-3.2
//
// An MPI parsed from the wire keeps the bit length it was stored with, so
// that it can be re-encoded exactly even if the sender did not use the
// minimal encoding.
type MPI struct {
	bitLength uint16
	bytes     []byte

	// negative is set by NewMPI for values which cannot be encoded.
	negative bool
}

// maxMPIBytes is the longest value whose bit length fits in the prefix.
const maxMPIBytes = (math.MaxUint16 + 7) / 8

// NewMPI returns the minimal MPI encoding of n. If n is negative or longer
// than 65535 bits, encoding the returned MPI fails with ErrValueRange.
func NewMPI(n *big.Int) MPI {
	return MPI{
		bitLength: uint16(n.BitLen()),
		bytes:     n.Bytes(),
		negative:  n.Sign() < 0,
	}
}

// NewMPIFromBytes returns the minimal MPI encoding of the big-endian integer b.
func NewMPIFromBytes(b []byte) MPI {
	b = bytes.TrimLeft(b, "\x00")
	mpi := MPI{bytes: bytes.Clone(b)}
	if len(b) > 0 {
		mpi.bitLength = uint16(8*(len(b)-1) + bits.Len8(b[0]))
	}
	return mpi
}

// DecodeMPI reads an MPI from dec. The stored bit length determines how many
// value bytes follow; it is not checked against the value itself.
func DecodeMPI(dec *Decoder) (MPI, error) {
	bitLength, err := dec.ExtractUint16()
	if err != nil {
		return MPI{}, withField("mpi", err)
	}
	value, err := dec.ExtractBytes((int(bitLength) + 7) / 8)
	if err != nil {
		return MPI{}, withField("mpi", err)
	}
	return MPI{bitLength: bitLength, bytes: value}, nil
}

// BitLength returns the bit length prefix of the MPI.
func (mpi MPI) BitLength() uint16 {
	return mpi.bitLength
}

// Bytes returns a copy of the big-endian value bytes.
func (mpi MPI) Bytes() []byte {
	return bytes.Clone(mpi.bytes)
}

// Int returns the value of the MPI as a big.Int.
func (mpi MPI) Int() *big.Int {
	return new(big.Int).SetBytes(mpi.bytes)
}

// IsZero returns true if the MPI holds the integer zero.
func (mpi MPI) IsZero() bool {
	return len(bytes.TrimLeft(mpi.bytes, "\x00")) == 0
}

// Equal reports whether both MPIs have identical encodings.
func (mpi MPI) Equal(other MPI) bool {
	return mpi.bitLength == other.bitLength &&
		mpi.negative == other.negative &&
		bytes.Equal(mpi.bytes, other.bytes)
}

// Size returns the encoded size of the MPI in bytes.
func (mpi MPI) Size() int {
	return 2 + len(mpi.bytes)
}

// Encode writes the bit length and value bytes to w. The value must be
// non-negative and span exactly as many bytes as its bit length calls for.
func (mpi MPI) Encode(w Sink) error {
	if mpi.negative {
		return fieldErrorf("mpi", ErrValueRange, "negative integer")
	}
	if len(mpi.bytes) > maxMPIBytes {
		return fieldErrorf("mpi", ErrValueRange, "%d-byte integer is longer than 65535 bits", len(mpi.bytes))
	}
	if (int(mpi.bitLength)+7)/8 != len(mpi.bytes) {
		return fieldErrorf("mpi", ErrValueRange, "bit length %d does not match %d value bytes", mpi.bitLength, len(mpi.bytes))
	}
	if err := insertUint16(w, mpi.bitLength); err != nil {
		return withField("mpi", err)
	}
	if err := w.InsertBytes(mpi.bytes); err != nil {
		return withField("mpi", err)
	}
	return nil
}

// checksumMPI returns a checksum of the given MPI data, the sum of its bytes modulo 65536.
func checksumMPI(mpi []byte) []byte {
	var checksum uint16
	for _, b := range mpi {
		checksum += uint16(b)
	}
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], checksum)
	return buf[:]
}
