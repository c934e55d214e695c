package provider

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/kklash/pgpsig/pgp"
)

// Object identifiers of the NIST curves.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-9.2
var (
	oidP256 = []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x03, 0x01, 0x07}
	oidP384 = []byte{0x2B, 0x81, 0x04, 0x00, 0x22}
	oidP521 = []byte{0x2B, 0x81, 0x04, 0x00, 0x23}
)

// ECDSA signs with ECDSA keys on one of the NIST curves P-256, P-384 or P-521.
type ECDSA struct {
	Curve elliptic.Curve

	// Rand is mixed into per-signature nonces. Defaults to crypto/rand.
	Rand io.Reader
}

func (p *ECDSA) curveOID() ([]byte, error) {
	if p.Curve == nil {
		return nil, fmt.Errorf("%w: no curve set", ErrInvalidKey)
	}
	switch p.Curve.Params().Name {
	case "P-256":
		return oidP256, nil
	case "P-384":
		return oidP384, nil
	case "P-521":
		return oidP521, nil
	}
	return nil, fmt.Errorf("%w: unsupported curve %s", ErrInvalidKey, p.Curve.Params().Name)
}

func (p *ECDSA) privateKey(key pgp.SecretKey) (*ecdsa.PrivateKey, error) {
	if err := checkAlgorithm(key, pgp.PublicKeyAlgorithmECDSA); err != nil {
		return nil, err
	}
	if _, err := p.curveOID(); err != nil {
		return nil, err
	}

	d := key.Scalar().Int()
	if d.Sign() <= 0 || d.Cmp(p.Curve.Params().N) >= 0 {
		return nil, fmt.Errorf("%w: ECDSA scalar out of range", ErrInvalidKey)
	}

	priv := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: p.Curve},
		D:         d,
	}
	priv.X, priv.Y = p.Curve.ScalarBaseMult(d.Bytes())
	return priv, nil
}

func (p *ECDSA) Sign(key pgp.SecretKey, digest []byte) (r, s *big.Int, err error) {
	priv, err := p.privateKey(key)
	if err != nil {
		return nil, nil, err
	}
	return ecdsa.Sign(randReader(p.Rand), priv, digest)
}

func (p *ECDSA) PublicKey(key pgp.SecretKey, creation time.Time) (*pgp.PublicKey, error) {
	priv, err := p.privateKey(key)
	if err != nil {
		return nil, err
	}
	oid, _ := p.curveOID()

	//nolint:staticcheck
	point := elliptic.Marshal(p.Curve, priv.X, priv.Y)
	return &pgp.PublicKey{
		Algorithm: pgp.PublicKeyAlgorithmECDSA,
		Creation:  creation,
		CurveOID:  oid,
		Material:  []pgp.MPI{pgp.NewMPIFromBytes(point)},
	}, nil
}
