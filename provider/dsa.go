package provider

import (
	"crypto/dsa" //nolint:staticcheck
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/kklash/pgpsig/pgp"
)

// DSA signs with DSA keys over a fixed set of domain parameters.
type DSA struct {
	Parameters dsa.Parameters

	// Rand is the source of per-signature nonces. Defaults to crypto/rand.
	Rand io.Reader
}

func (p *DSA) privateKey(key pgp.SecretKey) (*dsa.PrivateKey, error) {
	if err := checkAlgorithm(key, pgp.PublicKeyAlgorithmDSA); err != nil {
		return nil, err
	}
	if p.Parameters.P == nil || p.Parameters.Q == nil || p.Parameters.G == nil {
		return nil, fmt.Errorf("%w: DSA domain parameters not set", ErrInvalidKey)
	}

	x := key.Scalar().Int()
	if x.Sign() <= 0 || x.Cmp(p.Parameters.Q) >= 0 {
		return nil, fmt.Errorf("%w: DSA secret exponent out of range", ErrInvalidKey)
	}

	priv := &dsa.PrivateKey{
		PublicKey: dsa.PublicKey{Parameters: p.Parameters},
		X:         x,
	}
	priv.Y = new(big.Int).Exp(p.Parameters.G, x, p.Parameters.P)
	return priv, nil
}

func (p *DSA) Sign(key pgp.SecretKey, digest []byte) (r, s *big.Int, err error) {
	priv, err := p.privateKey(key)
	if err != nil {
		return nil, nil, err
	}

	// Digests longer than the subgroup order are truncated to its size.
	if n := (priv.Q.BitLen() + 7) / 8; len(digest) > n {
		digest = digest[:n]
	}
	return dsa.Sign(randReader(p.Rand), priv, digest)
}

func (p *DSA) PublicKey(key pgp.SecretKey, creation time.Time) (*pgp.PublicKey, error) {
	priv, err := p.privateKey(key)
	if err != nil {
		return nil, err
	}
	return &pgp.PublicKey{
		Algorithm: pgp.PublicKeyAlgorithmDSA,
		Creation:  creation,
		Material: []pgp.MPI{
			pgp.NewMPI(priv.P),
			pgp.NewMPI(priv.Q),
			pgp.NewMPI(priv.G),
			pgp.NewMPI(priv.Y),
		},
	}, nil
}
