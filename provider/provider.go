// Package provider implements pgp.SigningProvider with concrete cryptographic
// backends. Each provider can also derive the public key which belongs to a
// secret key, so that callers can compute issuer fingerprints.
package provider

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kklash/pgpsig/pgp"
)

// ErrInvalidKey is returned when a secret key cannot be used with a provider.
var ErrInvalidKey = errors.New("invalid secret key")

// Provider signs digests and derives public keys for one family of keys.
type Provider interface {
	pgp.SigningProvider

	// PublicKey returns the public key packet body for key, with the given
	// creation time.
	PublicKey(key pgp.SecretKey, creation time.Time) (*pgp.PublicKey, error)
}

func checkAlgorithm(key pgp.SecretKey, expected pgp.PublicKeyAlgorithm) error {
	if key == nil {
		return fmt.Errorf("%w: no key given", ErrInvalidKey)
	}
	if key.Algorithm() != expected {
		return fmt.Errorf("%w: %s key given to %s provider", ErrInvalidKey, key.Algorithm(), expected)
	}
	return nil
}

func randReader(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}
