package pgp

import (
	"bytes"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPublicKey() *PublicKey {
	return &PublicKey{
		Algorithm: PublicKeyAlgorithmEdDSA,
		Creation:  time.Unix(0x5F000000, 0),
		CurveOID:  []byte{0x2B, 0x06, 0x01},
		Material:  []MPI{NewMPIFromBytes([]byte{0x40, 0x01, 0x02})},
	}
}

func TestPublicKeyEncode(t *testing.T) {
	key := testPublicKey()

	encoded, err := Marshal(key)
	require.NoError(t, err)
	assert.Equal(t, key.Size(), len(encoded))

	expected := []byte{
		0x04,                         // version
		0x5F, 0x00, 0x00, 0x00,       // creation
		0x16,                         // algorithm
		0x03, 0x2B, 0x06, 0x01,       // curve
		0x00, 0x17, 0x40, 0x01, 0x02, // point
	}
	assert.Equal(t, expected, encoded)
}

func TestPublicKeyWithoutCurve(t *testing.T) {
	key := &PublicKey{
		Algorithm: PublicKeyAlgorithmDSA,
		Creation:  time.Unix(1, 0),
		Material: []MPI{
			NewMPI(big.NewInt(23)),
			NewMPI(big.NewInt(11)),
			NewMPI(big.NewInt(4)),
			NewMPI(big.NewInt(8)),
		},
	}

	encoded, err := Marshal(key)
	require.NoError(t, err)
	assert.Equal(t, key.Size(), len(encoded))
	assert.Equal(t, 6+4*3, len(encoded))
	assert.Equal(t, byte(PublicKeyAlgorithmDSA), encoded[5])
}

func TestPublicKeyFingerprint(t *testing.T) {
	key := testPublicKey()

	fingerprint, err := key.FingerprintV4()
	require.NoError(t, err)
	assert.Len(t, fingerprint, 20)

	again, err := key.FingerprintV4()
	require.NoError(t, err)
	assert.Equal(t, fingerprint, again)

	key.Creation = key.Creation.Add(time.Second)
	changed, err := key.FingerprintV4()
	require.NoError(t, err)
	assert.NotEqual(t, fingerprint, changed)
}

func TestPublicKeyEncodePacket(t *testing.T) {
	key := testPublicKey()

	packet, err := key.EncodePacket()
	require.NoError(t, err)
	assert.Equal(t, byte(0xC6), packet[0])
	assert.Equal(t, byte(key.Size()), packet[1])

	tag, body, err := ParsePacket(NewDecoder(packet))
	require.NoError(t, err)
	assert.Equal(t, PacketTagPublicKey, tag)
	assert.Equal(t, key.Size(), body.Len())
}

func TestPublicKeyCreationOutOfRange(t *testing.T) {
	for name, creation := range map[string]time.Time{
		"before 1970": time.Unix(-1, 0),
		"after 2106":  time.Unix(1<<32, 0),
		"zero time":   {},
	} {
		t.Run(name, func(t *testing.T) {
			key := testPublicKey()
			key.Creation = creation

			buf := make([]byte, key.Size())
			err := key.Encode(NewEncoder(buf))
			assert.ErrorIs(t, err, ErrValueRange)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, "public key.creation", fieldErr.Field)

			_, err = key.FingerprintV4()
			assert.ErrorIs(t, err, ErrValueRange)
		})
	}
}

// oversizedPublicKey returns a key which encodes to more than 65535 bytes
// while every one of its MPIs is individually valid.
func oversizedPublicKey() *PublicKey {
	material := make([]MPI, 9)
	for i := range material {
		material[i] = NewMPIFromBytes(bytes.Repeat([]byte{0xFF}, 8000))
	}
	return &PublicKey{
		Algorithm: PublicKeyAlgorithmDSA,
		Creation:  time.Unix(0x5F000000, 0),
		Material:  material,
	}
}

func TestPublicKeyFingerprintTooLong(t *testing.T) {
	key := oversizedPublicKey()

	body, err := Marshal(key)
	require.NoError(t, err)
	require.Greater(t, len(body), 0xFFFF)

	_, err = key.FingerprintV4()
	assert.ErrorIs(t, err, ErrValueRange)
}

func TestPublicKeyCurveTooLong(t *testing.T) {
	key := testPublicKey()
	key.CurveOID = []byte(strings.Repeat("x", 0xFF))

	_, err := Marshal(key)
	assert.ErrorIs(t, err, ErrValueRange)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "public key.curve", fieldErr.Field)
}
