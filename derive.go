package pgpsig

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/kklash/pgpsig/pgp"
)

// keyExpandInfoPrefix prefixes the 'info' parameter given to the HKDF-Expand
// function when deriving a signing key from a seed.
const keyExpandInfoPrefix = "pgpsig signing key "

// scalarExpandPadding is the number of extra bytes expanded when deriving an
// ECDSA scalar, so that reducing it modulo the curve order is not biased.
const scalarExpandPadding = 8

var bigOne = big.NewInt(1)

// hkdfExpand expands the given seed into a key of the given size, scoped under info.
func hkdfExpand(seedBytes []byte, size int, info []byte) ([]byte, error) {
	keyOutput := make([]byte, size)
	keyReader := hkdf.Expand(sha256.New, seedBytes, info)
	if _, err := io.ReadFull(keyReader, keyOutput); err != nil {
		return nil, err
	}
	return keyOutput, nil
}

// keyExpandInfo builds the HKDF-Expand 'info' parameter for a key type and
// a caller-chosen label. Different labels yield independent keys.
func keyExpandInfo(keyType KeyType, label string) []byte {
	return []byte(keyExpandInfoPrefix + string(keyType) + " " + label)
}

// DeriveSecretKey deterministically derives a signing key of the given type
// by expanding seed with the HMAC-based Key Derivation Function (defined in
// RFC-5869) with SHA256.
//
// ECDSA scalars are reduced into the range [1, N-1] of the curve order N.
func DeriveSecretKey(seed []byte, keyType KeyType, label string) (pgp.SecretKey, error) {
	if err := keyType.check(); err != nil {
		return nil, err
	}
	info := keyExpandInfo(keyType, label)

	if keyType == KeyTypeEd25519 {
		keySeed, err := hkdfExpand(seed, 32, info)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s key from seed: %w", keyType, err)
		}
		return pgp.NewEdDSASecretKey(keySeed), nil
	}

	order := keyType.curve().Params().N
	expanded, err := hkdfExpand(seed, (order.BitLen()+7)/8+scalarExpandPadding, info)
	if err != nil {
		return nil, fmt.Errorf("failed to derive %s key from seed: %w", keyType, err)
	}

	// d = (expanded mod (N - 1)) + 1
	nMinusOne := new(big.Int).Sub(order, bigOne)
	d := new(big.Int).SetBytes(expanded)
	d.Mod(d, nMinusOne)
	d.Add(d, bigOne)

	return pgp.NewECDSASecretKey(d), nil
}
