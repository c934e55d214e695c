package pgpsig

import (
	"crypto/elliptic"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/kklash/pgpsig/pgp"
	"github.com/kklash/pgpsig/provider"
)

// ErrUnknownKeyType is returned when a KeyType is not one of the supported values.
var ErrUnknownKeyType = errors.New("unknown key type")

// KeyType names a kind of signing key which can be derived from a seed.
type KeyType string

const (
	KeyTypeSecp256k1 KeyType = "secp256k1"
	KeyTypeP256      KeyType = "p256"
	KeyTypeP384      KeyType = "p384"
	KeyTypeEd25519   KeyType = "ed25519"
)

// KeyTypes lists every supported KeyType.
var KeyTypes = []KeyType{
	KeyTypeSecp256k1,
	KeyTypeP256,
	KeyTypeP384,
	KeyTypeEd25519,
}

func (keyType KeyType) check() error {
	for _, known := range KeyTypes {
		if keyType == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKeyType, string(keyType))
}

// Algorithm returns the OpenPGP public key algorithm used by keys of this type.
func (keyType KeyType) Algorithm() pgp.PublicKeyAlgorithm {
	if keyType == KeyTypeEd25519 {
		return pgp.PublicKeyAlgorithmEdDSA
	}
	return pgp.PublicKeyAlgorithmECDSA
}

// Backend returns the signing provider for keys of this type.
func (keyType KeyType) Backend() (provider.Provider, error) {
	switch keyType {
	case KeyTypeSecp256k1:
		return new(provider.Secp256k1), nil
	case KeyTypeP256:
		return &provider.ECDSA{Curve: elliptic.P256()}, nil
	case KeyTypeP384:
		return &provider.ECDSA{Curve: elliptic.P384()}, nil
	case KeyTypeEd25519:
		return new(provider.Ed25519), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKeyType, string(keyType))
}

// curve returns the elliptic curve whose order bounds ECDSA scalars of this type.
func (keyType KeyType) curve() elliptic.Curve {
	switch keyType {
	case KeyTypeSecp256k1:
		return secp256k1.S256()
	case KeyTypeP256:
		return elliptic.P256()
	case KeyTypeP384:
		return elliptic.P384()
	}
	return nil
}
