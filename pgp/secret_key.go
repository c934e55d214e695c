package pgp

import (
	"bytes"
	"math/big"
)

// stringToKeyUsageNone marks secret key material as unencrypted.
const stringToKeyUsageNone byte = 0

// secretScalar is the single-MPI secret material shared by DSA, ECDSA and
// EdDSA secret keys.
type secretScalar struct {
	scalar MPI
}

func (k secretScalar) Scalar() MPI { return k.scalar }

func (k secretScalar) Size() int { return k.scalar.Size() }

func (k secretScalar) Encode(w Sink) error { return k.scalar.Encode(w) }

// DSASecretKey holds the secret exponent x of a DSA key.
type DSASecretKey struct{ secretScalar }

// NewDSASecretKey wraps the secret exponent x.
func NewDSASecretKey(x *big.Int) *DSASecretKey {
	return &DSASecretKey{secretScalar{NewMPI(x)}}
}

// ParseDSASecretKey reads the secret exponent from dec.
func ParseDSASecretKey(dec *Decoder) (*DSASecretKey, error) {
	x, err := DecodeMPI(dec)
	if err != nil {
		return nil, withField("dsa secret key", err)
	}
	return &DSASecretKey{secretScalar{x}}, nil
}

func (k *DSASecretKey) Algorithm() PublicKeyAlgorithm { return PublicKeyAlgorithmDSA }

// ECDSASecretKey holds the secret scalar k of an ECDSA key.
type ECDSASecretKey struct{ secretScalar }

// NewECDSASecretKey wraps the secret scalar k.
func NewECDSASecretKey(k *big.Int) *ECDSASecretKey {
	return &ECDSASecretKey{secretScalar{NewMPI(k)}}
}

// ParseECDSASecretKey reads the secret scalar from dec.
func ParseECDSASecretKey(dec *Decoder) (*ECDSASecretKey, error) {
	k, err := DecodeMPI(dec)
	if err != nil {
		return nil, withField("ecdsa secret key", err)
	}
	return &ECDSASecretKey{secretScalar{k}}, nil
}

func (k *ECDSASecretKey) Algorithm() PublicKeyAlgorithm { return PublicKeyAlgorithmECDSA }

// EdDSASecretKey holds the 32-byte seed of an Ed25519 key.
type EdDSASecretKey struct{ secretScalar }

// NewEdDSASecretKey wraps an Ed25519 seed.
func NewEdDSASecretKey(seed []byte) *EdDSASecretKey {
	return &EdDSASecretKey{secretScalar{NewMPIFromBytes(seed)}}
}

// ParseEdDSASecretKey reads the seed from dec.
func ParseEdDSASecretKey(dec *Decoder) (*EdDSASecretKey, error) {
	seed, err := DecodeMPI(dec)
	if err != nil {
		return nil, withField("eddsa secret key", err)
	}
	return &EdDSASecretKey{secretScalar{seed}}, nil
}

func (k *EdDSASecretKey) Algorithm() PublicKeyAlgorithm { return PublicKeyAlgorithmEdDSA }

// Seed returns the Ed25519 seed, left-padded to 32 bytes. Leading zero
// bytes of the seed are not stored in its MPI.
func (k *EdDSASecretKey) Seed() []byte {
	b := k.scalar.Bytes()
	if len(b) >= 32 {
		return b
	}
	return append(make([]byte, 32-len(b)), b...)
}

// MarshalUnprotected encodes the secret material of key as it appears in an
// unencrypted secret key packet: the string-to-key usage octet 0, the secret
// MPI, and the two-byte checksum of the MPI.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-5.5.3
func MarshalUnprotected(key SecretKey) ([]byte, error) {
	mpiEncodedKey, err := Marshal(key.Scalar())
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	buf.WriteByte(stringToKeyUsageNone)
	buf.Write(mpiEncodedKey)
	buf.Write(checksumMPI(mpiEncodedKey))
	return buf.Bytes(), nil
}

// ParseUnprotected reads unencrypted secret material of the given algorithm
// from dec, and checks its checksum.
func ParseUnprotected(alg PublicKeyAlgorithm, dec *Decoder) (SecretKey, error) {
	usage, err := dec.ExtractUint8()
	if err != nil {
		return nil, withField("secret key", err)
	}
	if usage != stringToKeyUsageNone {
		return nil, fieldErrorf("secret key", ErrFormat, "encrypted secret keys (usage %d) are not supported", usage)
	}

	scalar, err := DecodeMPI(dec)
	if err != nil {
		return nil, withField("secret key", err)
	}
	checksum, err := dec.ExtractBytes(2)
	if err != nil {
		return nil, withField("secret key", err)
	}
	mpiEncodedKey, err := Marshal(scalar)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(checksum, checksumMPI(mpiEncodedKey)) {
		return nil, fieldErrorf("secret key", ErrFormat, "checksum mismatch")
	}

	switch alg {
	case PublicKeyAlgorithmDSA:
		return &DSASecretKey{secretScalar{scalar}}, nil
	case PublicKeyAlgorithmECDSA:
		return &ECDSASecretKey{secretScalar{scalar}}, nil
	case PublicKeyAlgorithmEdDSA:
		return &EdDSASecretKey{secretScalar{scalar}}, nil
	}
	return nil, fieldErrorf(alg.Field(), ErrFormat, "no secret key format for %s (%d)", alg, alg)
}
