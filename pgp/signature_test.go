package pgp

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSignatureBytes = []byte{
	0x04,       // version
	0x00,       // binary signature
	19,         // ECDSA
	8,          // SHA256
	0x00, 0x09, // hashed area
	0x05, 2, 0x5F, 0x00, 0x00, 0x00,
	0x02, 27, 0x03,
	0x00, 0x04, // unhashed area
	0x03, 0x80 | 105, 0xAA, 0xBB,
}

func TestParseSignature(t *testing.T) {
	dec := NewDecoder(testSignatureBytes)
	sig, err := ParseSignature(dec)
	require.NoError(t, err)
	require.True(t, dec.Empty())

	assert.Equal(t, SignatureVersion4, sig.Version())
	assert.Equal(t, SignatureTypeBinary, sig.Type())
	assert.Equal(t, PublicKeyAlgorithmECDSA, sig.PublicKeyAlgorithm())
	assert.Equal(t, HashFuncSHA256, sig.HashFunction())
	assert.Len(t, sig.HashedSubpackets(), 2)
	assert.Len(t, sig.UnhashedSubpackets(), 1)

	keyFlags, ok := sig.HashedSubpackets().KeyFlags()
	require.True(t, ok)
	assert.Equal(t, KeyFlagCertify|KeyFlagSign, keyFlags.Flags())

	assert.Equal(t, len(testSignatureBytes), sig.Size())
	encoded, err := Marshal(sig)
	require.NoError(t, err)
	assert.Equal(t, testSignatureBytes, encoded)
}

func TestParseSignatureErrors(t *testing.T) {
	withByte := func(index int, value byte) []byte {
		input := append([]byte(nil), testSignatureBytes...)
		input[index] = value
		return input
	}

	cases := map[string]struct {
		input []byte
		field string
	}{
		"version 3":              {withByte(0, 3), "signature.version"},
		"unknown signature type": {withByte(1, 0x77), "signature.signature type"},
		"unknown algorithm":      {withByte(2, 99), "signature.public key algorithm"},
		"unknown hash":           {withByte(3, 4), "signature.hash algorithm"},
		"truncated":              {testSignatureBytes[:10], "signature.hashed.subpackets.region"},
		"empty":                  {nil, "signature.version.uint8"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSignature(NewDecoder(tc.input))
			require.ErrorIs(t, err, ErrFormat)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestParseSignaturePrivateAlgorithms(t *testing.T) {
	input := append([]byte(nil), testSignatureBytes...)
	input[2] = 100
	input[3] = 110

	sig, err := ParseSignature(NewDecoder(input))
	require.NoError(t, err)
	assert.Equal(t, PublicKeyAlgorithm(100), sig.PublicKeyAlgorithm())
	assert.Equal(t, HashFuncID(110), sig.HashFunction())
}

func TestNewSignatureValidatesEnumerants(t *testing.T) {
	_, err := NewSignature(SignatureType(0x77), PublicKeyAlgorithmDSA, HashFuncSHA256, nil, nil)
	require.ErrorIs(t, err, ErrFormat)

	_, err = NewSignature(SignatureTypeBinary, PublicKeyAlgorithm(50), HashFuncSHA256, nil, nil)
	require.ErrorIs(t, err, ErrFormat)

	_, err = NewSignature(SignatureTypeBinary, PublicKeyAlgorithmDSA, HashFuncID(1), nil, nil)
	require.ErrorIs(t, err, ErrFormat)

	sig, err := NewSignature(SignatureTypeBinary, PublicKeyAlgorithmDSA, HashFuncSHA256, nil, nil)
	require.NoError(t, err)

	encoded, err := Marshal(sig)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 0, 17, 8, 0, 0, 0, 0}, encoded)
}

func TestSignatureSizeOverflow(t *testing.T) {
	sig, err := NewSignature(SignatureTypeBinary, PublicKeyAlgorithmDSA, HashFuncSHA256, nil, nil)
	require.NoError(t, err)

	buf := make([]byte, sig.Size()-1)
	err = sig.Encode(NewEncoder(buf))
	require.ErrorIs(t, err, ErrBoundary)
}

func TestSignatureDigest(t *testing.T) {
	sig, err := NewSignature(
		SignatureTypeBinary,
		PublicKeyAlgorithmEdDSA,
		HashFuncSHA256,
		SubpacketSet{creationTimeAt(t, 1000)},
		SubpacketSet{&OpaqueSubpacket{Tag: 100, Body: []byte{1}}},
	)
	require.NoError(t, err)

	preimage, err := sig.HashedPreimage()
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 0, 22, 8, 0x00, 0x06, 0x05, 2, 0x00, 0x00, 0x03, 0xE8}, preimage)

	data := []byte("hello")
	h := sha256.New()
	h.Write(data)
	h.Write(preimage)
	h.Write([]byte{0x04, 0xFF})
	binary.Write(h, binary.BigEndian, uint32(len(preimage)))

	digest, err := sig.Digest(data)
	require.NoError(t, err)
	assert.Equal(t, h.Sum(nil), digest)

	// the unhashed area is not committed to
	sig.unhashed = nil
	sameDigest, err := sig.Digest(data)
	require.NoError(t, err)
	assert.Equal(t, digest, sameDigest)
}

func TestSignatureDigestUnimplementedHash(t *testing.T) {
	sig, err := NewSignature(SignatureTypeBinary, PublicKeyAlgorithmDSA, HashFuncSHA1, nil, nil)
	require.NoError(t, err)

	_, err = sig.Digest([]byte("data"))
	require.ErrorIs(t, err, ErrFormat)
}
