package pgpsig

import (
	"fmt"
	"time"

	"github.com/kklash/pgpsig/pgp"
	"github.com/kklash/pgpsig/provider"
)

// DefaultKeyCreation is the key creation time used when none is given. The
// creation time is part of the key fingerprint, so it must stay fixed for a
// seed to always derive the same OpenPGP key.
var DefaultKeyCreation = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// SignOptions are optional parameters for a detached signature.
type SignOptions struct {
	// Type is the kind of signature to make. Defaults to pgp.SignatureTypeBinary.
	Type pgp.SignatureType

	// HashFunction defaults to pgp.DefaultHashFunction.
	HashFunction pgp.HashFuncID

	// Time is the signature creation time. Defaults to the current time.
	Time time.Time

	// Expiry, if non-zero, is how long after Time the signature expires.
	Expiry time.Duration
}

// Signer makes detached OpenPGP signatures with a key derived from a seed.
type Signer struct {
	keyType     KeyType
	key         pgp.SecretKey
	backend     provider.Provider
	publicKey   *pgp.PublicKey
	fingerprint []byte
}

// NewSigner derives a signing key of the given type from seed. The label
// selects one of many independent keys which can be derived from one seed.
//
// The key creation time is hashed into the key fingerprint, so the same
// creation time must be given to reproduce a key's fingerprint. It is
// truncated to whole seconds. If zero, DefaultKeyCreation is used.
func NewSigner(seed *Seed, keyType KeyType, label string, creation time.Time) (*Signer, error) {
	if creation.IsZero() {
		creation = DefaultKeyCreation
	}
	key, err := DeriveSecretKey(seed.Bytes(), keyType, label)
	if err != nil {
		return nil, err
	}
	backend, err := keyType.Backend()
	if err != nil {
		return nil, err
	}

	publicKey, err := backend.PublicKey(key, time.Unix(creation.Unix(), 0))
	if err != nil {
		return nil, fmt.Errorf("failed to compute public key: %w", err)
	}
	fingerprint, err := publicKey.FingerprintV4()
	if err != nil {
		return nil, fmt.Errorf("failed to compute key fingerprint: %w", err)
	}

	signer := &Signer{
		keyType:     keyType,
		key:         key,
		backend:     backend,
		publicKey:   publicKey,
		fingerprint: fingerprint,
	}
	return signer, nil
}

// KeyType returns the type of the signing key.
func (signer *Signer) KeyType() KeyType {
	return signer.keyType
}

// CreatedAt returns the key creation time.
func (signer *Signer) CreatedAt() time.Time {
	return signer.publicKey.Creation
}

// FingerprintV4 returns the SHA1 hash of the public key.
func (signer *Signer) FingerprintV4() []byte {
	return append([]byte(nil), signer.fingerprint...)
}

// PublicKey returns the public key packet body of the signing key.
func (signer *Signer) PublicKey() *pgp.PublicKey {
	return signer.publicKey
}

// EncodePublicKey encodes the signing key's public key as a binary OpenPGP packet.
func (signer *Signer) EncodePublicKey() ([]byte, error) {
	return signer.publicKey.EncodePacket()
}

// SelfCertify certifies userID with the signing key, so that the public key
// can be imported into keyrings which require a user ID. The certification is
// timestamped at the key creation time, so its encoding is reproducible for
// deterministic providers. If keyExpiry is non-zero, the key expires that
// long after its creation.
func (signer *Signer) SelfCertify(userID *pgp.UserID, keyExpiry time.Duration) (*pgp.KeySet, error) {
	return pgp.SelfCertify(signer.backend, signer.key, signer.publicKey, userID, signer.CreatedAt(), keyExpiry)
}

// Sign makes a detached signature over data.
func (signer *Signer) Sign(data []byte, opts *SignOptions) (*pgp.SignaturePacket, error) {
	if opts == nil {
		opts = new(SignOptions)
	}
	now := opts.Time
	if now.IsZero() {
		now = time.Now()
	}

	req := &pgp.SignatureRequest{
		SigningKeyFingerprint: signer.fingerprint,
		HashFunction:          opts.HashFunction,
		Data:                  data,
		Type:                  opts.Type,
		Time:                  now,
	}
	if opts.Expiry != 0 {
		expiry, err := pgp.NewExpirySubpacket(pgp.SubpacketTypeSignatureExpiry, opts.Expiry)
		if err != nil {
			return nil, err
		}
		req.HashedSubpackets = append(req.HashedSubpackets, expiry)
	}

	return pgp.Sign(signer.backend, signer.key, req)
}

// SignDetached makes a detached signature over data and encodes it as a
// binary OpenPGP signature packet.
func (signer *Signer) SignDetached(data []byte, opts *SignOptions) ([]byte, error) {
	packet, err := signer.Sign(data, opts)
	if err != nil {
		return nil, err
	}
	return packet.EncodePacket()
}
