package pgp

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMPI(t *testing.T) {
	cases := []struct {
		n       int64
		encoded []byte
	}{
		{0, []byte{0x00, 0x00}},
		{1, []byte{0x00, 0x01, 0x01}},
		{0x7F, []byte{0x00, 0x07, 0x7F}},
		{0x1FF, []byte{0x00, 0x09, 0x01, 0xFF}},
		{0x8000, []byte{0x00, 0x10, 0x80, 0x00}},
	}

	for _, tc := range cases {
		mpi := NewMPI(big.NewInt(tc.n))
		assert.Equal(t, len(tc.encoded), mpi.Size())

		encoded, err := Marshal(mpi)
		require.NoError(t, err)
		assert.Equal(t, tc.encoded, encoded)

		decoded, err := DecodeMPI(NewDecoder(encoded))
		require.NoError(t, err)
		assert.True(t, mpi.Equal(decoded))
		assert.Equal(t, tc.n, decoded.Int().Int64())
	}
}

func TestMPIZero(t *testing.T) {
	zero := NewMPI(new(big.Int))
	assert.True(t, zero.IsZero())
	assert.Equal(t, uint16(0), zero.BitLength())
	assert.Equal(t, 2, zero.Size())
	assert.True(t, zero.Equal(NewMPIFromBytes([]byte{0, 0, 0})))
}

func TestMPIFromBytes(t *testing.T) {
	mpi := NewMPIFromBytes([]byte{0x00, 0x00, 0x40, 0x01})
	assert.Equal(t, uint16(15), mpi.BitLength())
	assert.Equal(t, []byte{0x40, 0x01}, mpi.Bytes())

	// Bytes returns a copy
	mpi.Bytes()[0] = 0
	assert.Equal(t, []byte{0x40, 0x01}, mpi.Bytes())
}

func TestMPINonMinimalRoundTrip(t *testing.T) {
	// bit length claims 16 bits, but the value only needs 1
	encoded := []byte{0x00, 0x10, 0x00, 0x01}

	mpi, err := DecodeMPI(NewDecoder(encoded))
	require.NoError(t, err)
	assert.Equal(t, uint16(16), mpi.BitLength())
	assert.Equal(t, int64(1), mpi.Int().Int64())
	assert.False(t, mpi.IsZero())

	reencoded, err := Marshal(mpi)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)
}

func TestMPIOutOfRange(t *testing.T) {
	longest := NewMPI(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 65535), big.NewInt(1)))
	assert.Equal(t, uint16(65535), longest.BitLength())
	encoded, err := Marshal(longest)
	require.NoError(t, err)
	assert.Len(t, encoded, 2+8192)

	cases := map[string]MPI{
		"too many bits":   NewMPI(new(big.Int).Lsh(big.NewInt(1), 65536)),
		"too many bytes":  NewMPIFromBytes(bytes.Repeat([]byte{0x01}, 8193)),
		"negative":        NewMPI(big.NewInt(-5)),
		"length mismatch": {bitLength: 9, bytes: []byte{0x01}},
	}
	for name, mpi := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Marshal(mpi)
			assert.ErrorIs(t, err, ErrValueRange)
		})
	}
}

func TestSecretKeyOutOfRange(t *testing.T) {
	_, err := MarshalUnprotected(NewDSASecretKey(big.NewInt(-1)))
	assert.ErrorIs(t, err, ErrValueRange)

	_, err = MarshalUnprotected(NewECDSASecretKey(new(big.Int).Lsh(big.NewInt(1), 70000)))
	assert.ErrorIs(t, err, ErrValueRange)
}

func TestDecodeMPITruncated(t *testing.T) {
	for _, input := range [][]byte{
		{},
		{0x00},
		{0x00, 0x09, 0x01},
	} {
		_, err := DecodeMPI(NewDecoder(input))
		assert.ErrorIs(t, err, ErrFormat, "input %X", input)
	}
}

func TestChecksumMPI(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x09}, checksumMPI([]byte{0x00, 0x09, 0x01, 0xFF}))

	// wraps modulo 65536
	large := make([]byte, 300)
	for i := range large {
		large[i] = 0xFF
	}
	// 300 * 255 = 76500 = 65536 + 10964
	assert.Equal(t, []byte{0x2A, 0xD4}, checksumMPI(large))
}
