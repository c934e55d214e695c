package pgpsig

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kklash/pgpsig/pgp"
)

func TestArmorSignature(t *testing.T) {
	signer, err := NewSigner(testSeed(t), KeyTypeP384, "", time.Time{})
	require.NoError(t, err)

	encoded, err := signer.SignDetached([]byte("armored"), nil)
	require.NoError(t, err)

	armored, err := ArmorSignature(encoded)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(armored, "-----BEGIN PGP SIGNATURE-----"))
	assert.True(t, IsArmored([]byte("\n  "+armored)))
	assert.False(t, IsArmored(encoded))

	dearmored, err := DearmorSignature([]byte(armored))
	require.NoError(t, err)
	assert.Equal(t, encoded, dearmored)

	fromArmor, err := Inspect([]byte(armored))
	require.NoError(t, err)
	fromBinary, err := Inspect(encoded)
	require.NoError(t, err)
	assert.Equal(t, fromBinary.HashPrefix, fromArmor.HashPrefix)
	assert.True(t, fromBinary.Value.R().Equal(fromArmor.Value.R()))
}

func TestDearmorWrongType(t *testing.T) {
	signer, err := NewSigner(testSeed(t), KeyTypeEd25519, "", time.Time{})
	require.NoError(t, err)

	pubPacket, err := signer.EncodePublicKey()
	require.NoError(t, err)
	armored, err := ArmorPublicKey(pubPacket)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(armored, "-----BEGIN PGP PUBLIC KEY BLOCK-----"))

	_, err = DearmorSignature([]byte(armored))
	assert.ErrorIs(t, err, ErrUnexpectedArmorType)

	_, err = Inspect([]byte(armored))
	assert.ErrorIs(t, err, ErrUnexpectedArmorType)
}

func TestInspectRejectsOtherPackets(t *testing.T) {
	signer, err := NewSigner(testSeed(t), KeyTypeEd25519, "", time.Time{})
	require.NoError(t, err)

	pubPacket, err := signer.EncodePublicKey()
	require.NoError(t, err)

	_, err = Inspect(pubPacket)
	assert.ErrorIs(t, err, pgp.ErrFormat)

	_, err = Inspect([]byte{0xC2, 0x05, 0x04})
	assert.ErrorIs(t, err, pgp.ErrFormat)

	_, err = DearmorSignature([]byte("not armor"))
	assert.Error(t, err)
}
