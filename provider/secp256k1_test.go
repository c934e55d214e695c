package provider

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kklash/pgpsig/pgp"
)

func TestSecp256k1Sign(t *testing.T) {
	d := new(big.Int).SetBytes(testDigest("secp256k1 key"))
	key := pgp.NewECDSASecretKey(d)
	provider := &Secp256k1{}

	digest := testDigest("hello")
	r, s, err := provider.Sign(key, digest)
	require.NoError(t, err)

	var rScalar, sScalar secp256k1.ModNScalar
	require.False(t, rScalar.SetByteSlice(r.Bytes()))
	require.False(t, sScalar.SetByteSlice(s.Bytes()))

	pub := secp256k1.PrivKeyFromBytes(d.Bytes()).PubKey()
	sig := ecdsa.NewSignature(&rScalar, &sScalar)
	assert.True(t, sig.Verify(digest, pub))
	assert.False(t, sig.Verify(testDigest("goodbye"), pub))

	// nonces are deterministic
	r2, s2, err := provider.Sign(key, digest)
	require.NoError(t, err)
	assert.Equal(t, r, r2)
	assert.Equal(t, s, s2)
}

func TestSecp256k1PublicKey(t *testing.T) {
	d := new(big.Int).SetBytes(testDigest("secp256k1 key"))
	provider := &Secp256k1{}

	pub, err := provider.PublicKey(pgp.NewECDSASecretKey(d), testCreation)
	require.NoError(t, err)
	assert.Equal(t, pgp.PublicKeyAlgorithmECDSA, pub.Algorithm)
	assert.Equal(t, oidSecp256k1, pub.CurveOID)
	require.Len(t, pub.Material, 1)

	expected := secp256k1.PrivKeyFromBytes(d.Bytes()).PubKey().SerializeUncompressed()
	assert.Equal(t, expected, pub.Material[0].Bytes())
	assert.Equal(t, uint16(515), pub.Material[0].BitLength())
}

func TestSecp256k1ScalarRange(t *testing.T) {
	provider := &Secp256k1{}

	_, _, err := provider.Sign(pgp.NewECDSASecretKey(new(big.Int)), testDigest("hello"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, _, err = provider.Sign(pgp.NewECDSASecretKey(secp256k1.S256().N), testDigest("hello"))
	assert.ErrorIs(t, err, ErrInvalidKey)
}
