package provider

import (
	"crypto/ed25519"
	"fmt"
	"math/big"
	"time"

	"github.com/kklash/pgpsig/pgp"
)

// oidED25519 is the object identifier for ED25519 signing keys (OID 1.3.6.1.4.1.11591.15.1).
var oidED25519 = []byte{
	0x2B, 0x06, 0x01, 0x04, 0x01, 0xDA, 0x47, 0x0F, 0x01,
}

// mpiPrefixEddsaPoint prefixes the native encoding of an EdDSA public point.
const mpiPrefixEddsaPoint byte = 0x40

// Ed25519 signs with EdDSA keys on the Edwards 25519 curve. The digest is
// signed as the message, as OpenPGP prescribes for EdDSA.
type Ed25519 struct{}

func (p *Ed25519) privateKey(key pgp.SecretKey) (ed25519.PrivateKey, error) {
	if err := checkAlgorithm(key, pgp.PublicKeyAlgorithmEdDSA); err != nil {
		return nil, err
	}
	seed := key.Scalar().Bytes()
	if len(seed) > ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed of %d bytes is too long", ErrInvalidKey, len(seed))
	}
	seed = append(make([]byte, ed25519.SeedSize-len(seed)), seed...)
	return ed25519.NewKeyFromSeed(seed), nil
}

func (p *Ed25519) Sign(key pgp.SecretKey, digest []byte) (r, s *big.Int, err error) {
	privateKey, err := p.privateKey(key)
	if err != nil {
		return nil, nil, err
	}
	encodedSig := ed25519.Sign(privateKey, digest)

	r = new(big.Int).SetBytes(encodedSig[:32])
	s = new(big.Int).SetBytes(encodedSig[32:])
	return r, s, nil
}

func (p *Ed25519) PublicKey(key pgp.SecretKey, creation time.Time) (*pgp.PublicKey, error) {
	privateKey, err := p.privateKey(key)
	if err != nil {
		return nil, err
	}
	publicKey := privateKey.Public().(ed25519.PublicKey)

	return &pgp.PublicKey{
		Algorithm: pgp.PublicKeyAlgorithmEdDSA,
		Creation:  creation,
		CurveOID:  oidED25519,
		Material: []pgp.MPI{
			pgp.NewMPIFromBytes(append([]byte{mpiPrefixEddsaPoint}, publicKey...)),
		},
	}, nil
}
