package provider

import (
	"fmt"
	"math/big"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/kklash/pgpsig/pgp"
)

// oidSecp256k1 is the object identifier of the secp256k1 curve (OID 1.3.132.0.10).
var oidSecp256k1 = []byte{0x2B, 0x81, 0x04, 0x00, 0x0A}

// compactSigSize is the length of a compact secp256k1 signature: one
// recovery byte followed by R and S.
const compactSigSize = 65

// Secp256k1 signs with ECDSA keys on the secp256k1 curve. Nonces are derived
// deterministically from the key and digest (RFC 6979), so signing the same
// digest twice yields the same signature.
type Secp256k1 struct{}

func (p *Secp256k1) privateKey(key pgp.SecretKey) (*secp256k1.PrivateKey, error) {
	if err := checkAlgorithm(key, pgp.PublicKeyAlgorithmECDSA); err != nil {
		return nil, err
	}

	d := key.Scalar().Int()
	if d.Sign() <= 0 || d.Cmp(secp256k1.S256().N) >= 0 {
		return nil, fmt.Errorf("%w: secp256k1 scalar out of range", ErrInvalidKey)
	}
	return secp256k1.PrivKeyFromBytes(d.Bytes()), nil
}

func (p *Secp256k1) Sign(key pgp.SecretKey, digest []byte) (r, s *big.Int, err error) {
	priv, err := p.privateKey(key)
	if err != nil {
		return nil, nil, err
	}

	sig := ecdsa.SignCompact(priv, digest, false)
	if len(sig) != compactSigSize {
		return nil, nil, fmt.Errorf("unexpected compact signature length %d", len(sig))
	}
	r = new(big.Int).SetBytes(sig[1:33])
	s = new(big.Int).SetBytes(sig[33:])
	return r, s, nil
}

func (p *Secp256k1) PublicKey(key pgp.SecretKey, creation time.Time) (*pgp.PublicKey, error) {
	priv, err := p.privateKey(key)
	if err != nil {
		return nil, err
	}
	return &pgp.PublicKey{
		Algorithm: pgp.PublicKeyAlgorithmECDSA,
		Creation:  creation,
		CurveOID:  oidSecp256k1,
		Material:  []pgp.MPI{pgp.NewMPIFromBytes(priv.PubKey().SerializeUncompressed())},
	}, nil
}
