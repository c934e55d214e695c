package pgp

import (
	"time"
)

// SignatureRequest is the input data needed for an OpenPGP signature.
type SignatureRequest struct {
	// SigningKeyFingerprint is the V4 fingerprint of the signing PGP key.
	SigningKeyFingerprint []byte

	// HashFunction describes how the signed data and signature fields are
	// hashed. It must produce DigestSize-byte digests. If zero,
	// DefaultHashFunction is used.
	HashFunction HashFuncID

	// Data is the arbitrary context-dependent data to be signed.
	Data []byte

	// Type describes what kind of signature should be made.
	Type SignatureType

	// HashedSubpackets is a collection of extra data which will be committed
	// to by the signature.
	HashedSubpackets []Subpacket

	// UnhashedSubpackets is a collection of extra subpackets which are not
	// committed to by the signature.
	UnhashedSubpackets []Subpacket

	// Time is the timestamp when the signature is created. It is required.
	Time time.Time
}

// Sign signs the signature request with the given secret key, using provider
// to do the arithmetic. The signature's public key algorithm is that of key.
func Sign(provider SigningProvider, key SecretKey, req *SignatureRequest) (*SignaturePacket, error) {
	if key == nil {
		return nil, newSigningError("no secret key given")
	}

	hashFunction := req.HashFunction
	if hashFunction == 0 {
		hashFunction = DefaultHashFunction
	}

	issuer, err := NewIssuerSubpacket(req.SigningKeyFingerprint)
	if err != nil {
		return nil, withField("issuer", err)
	}

	if req.Time.IsZero() {
		return nil, fieldErrorf("creation time", ErrValueRange, "signature request has no time")
	}
	creation, err := NewCreationTimeSubpacket(req.Time)
	if err != nil {
		return nil, withField("creation time", err)
	}

	hashedSubpackets := SubpacketSet{
		NewIssuerFingerprintSubpacket(req.SigningKeyFingerprint),
		creation,
	}
	hashedSubpackets = append(hashedSubpackets, req.HashedSubpackets...)

	unhashedSubpackets := SubpacketSet{issuer}
	unhashedSubpackets = append(unhashedSubpackets, req.UnhashedSubpackets...)

	sig, err := NewSignature(req.Type, key.Algorithm(), hashFunction, hashedSubpackets, unhashedSubpackets)
	if err != nil {
		return nil, err
	}

	digest, err := sig.Digest(req.Data)
	if err != nil {
		return nil, err
	}
	if len(digest) != DigestSize {
		return nil, newSigningError("hash %d produces %d-byte digests, expected %d", hashFunction, len(digest), DigestSize)
	}

	value, err := signDigest(provider, key, [DigestSize]byte(digest))
	if err != nil {
		return nil, err
	}

	packet := &SignaturePacket{
		Signature: sig,
		Value:     value,
	}
	copy(packet.HashPrefix[:], digest)
	return packet, nil
}
