package pgp

import (
	"fmt"
	"math"
	"math/big"
)

// SecretKey is the secret material a SigningProvider signs with.
type SecretKey interface {
	Algorithm() PublicKeyAlgorithm

	// Scalar returns the secret scalar of the key: x for DSA, the private
	// scalar for ECDSA, or the 32-byte seed for EdDSA.
	Scalar() MPI
}

// SigningProvider performs the asymmetric arithmetic of a signing operation.
// It receives a digest which has already been computed, and returns the two
// resulting scalars.
//
// A provider is not required to be safe for concurrent use.
type SigningProvider interface {
	Sign(key SecretKey, digest []byte) (r, s *big.Int, err error)
}

func newSigningError(format string, args ...any) error {
	return fieldErrorf("sign", ErrSigning, format, args...)
}

// SigningBridge drives a SigningProvider for a single signing operation, and
// converts its output into MPIs. It holds the secret key only until Sign
// returns.
type SigningBridge struct {
	provider SigningProvider
	key      SecretKey
}

// NewSigningBridge binds key to provider for one call to Sign.
func NewSigningBridge(provider SigningProvider, key SecretKey) *SigningBridge {
	return &SigningBridge{provider: provider, key: key}
}

// Sign signs digest on behalf of a signature of the given algorithm. The
// bridge cannot be reused afterward.
func (bridge *SigningBridge) Sign(alg PublicKeyAlgorithm, digest []byte) (r, s MPI, err error) {
	key := bridge.key
	bridge.key = nil

	if bridge.provider == nil {
		return MPI{}, MPI{}, newSigningError("no signing provider")
	}
	if key == nil {
		return MPI{}, MPI{}, newSigningError("no secret key; bridge already used")
	}
	if key.Algorithm() != alg {
		return MPI{}, MPI{}, newSigningError("%s key cannot make a %s signature", key.Algorithm(), alg)
	}
	if len(digest) != DigestSize {
		return MPI{}, MPI{}, newSigningError("digest is %d bytes, expected %d", len(digest), DigestSize)
	}

	rInt, sInt, err := bridge.provider.Sign(key, digest)
	if err != nil {
		return MPI{}, MPI{}, &FieldError{Field: "sign", Err: fmt.Errorf("%w: %w", ErrSigning, err)}
	}

	if r, err = scalarToMPI("r", rInt); err != nil {
		return MPI{}, MPI{}, err
	}
	if s, err = scalarToMPI("s", sInt); err != nil {
		return MPI{}, MPI{}, err
	}
	return r, s, nil
}

func scalarToMPI(name string, n *big.Int) (MPI, error) {
	if n == nil {
		return MPI{}, newSigningError("provider returned no %s value", name)
	}
	if n.Sign() < 0 {
		return MPI{}, newSigningError("provider returned negative %s value", name)
	}
	if n.BitLen() > math.MaxUint16 {
		return MPI{}, newSigningError("%s value of %d bits is too large for an MPI", name, n.BitLen())
	}
	return NewMPI(n), nil
}
