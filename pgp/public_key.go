package pgp

import (
	"crypto/sha1"
	"encoding/binary"
	"math"
	"time"
)

const publicKeyPrefixV4 byte = 0x99

// PublicKey is the body of a V4 public key packet. It is needed by signers to
// compute the fingerprint which signatures refer to their issuer by.
type PublicKey struct {
	Algorithm PublicKeyAlgorithm
	Creation  time.Time

	// CurveOID is the object identifier of the curve for ECDSA, ECDH and
	// EdDSA keys, and nil otherwise.
	CurveOID []byte

	// Material holds the public MPIs of the key: p, q, g, y for DSA, or the
	// encoded curve point for elliptic curve keys.
	Material []MPI
}

func (key *PublicKey) Size() int {
	size := 1 + 4 + 1
	if key.CurveOID != nil {
		size += 1 + len(key.CurveOID)
	}
	for _, mpi := range key.Material {
		size += mpi.Size()
	}
	return size
}

func (key *PublicKey) Encode(w Sink) error {
	// Packet version
	if err := w.InsertByte(keyPacketVersion); err != nil {
		return withField("public key", err)
	}

	// Specify key creation time
	creation, err := unixSeconds(key.Creation)
	if err != nil {
		return withField("public key.creation", err)
	}
	if err := insertUint32(w, creation); err != nil {
		return withField("public key", err)
	}

	if err := w.InsertEnum(key.Algorithm); err != nil {
		return withField("public key", err)
	}

	// Specify which curve the key uses
	if key.CurveOID != nil {
		if len(key.CurveOID) > 0xFE {
			return fieldErrorf("public key.curve", ErrValueRange, "OID of %d bytes is too long", len(key.CurveOID))
		}
		if err := w.InsertByte(byte(len(key.CurveOID))); err != nil {
			return withField("public key.curve", err)
		}
		if err := w.InsertBytes(key.CurveOID); err != nil {
			return withField("public key.curve", err)
		}
	}

	for _, mpi := range key.Material {
		if err := mpi.Encode(w); err != nil {
			return withField("public key", err)
		}
	}
	return nil
}

// FingerprintV4 returns the 20-byte SHA1 hash of the serialized public key.
func (key *PublicKey) FingerprintV4() ([]byte, error) {
	publicKeyPayload, err := Marshal(key)
	if err != nil {
		return nil, err
	}

	hashed, err := appendPublicKeyCommitment(nil, publicKeyPayload)
	if err != nil {
		return nil, err
	}
	fingerprint := sha1.Sum(hashed)
	return fingerprint[:], nil
}

// appendPublicKeyCommitment appends the serialized public key to buf the way
// fingerprints and certifications hash it: a prefix byte, then a two-byte length.
func appendPublicKeyCommitment(buf, publicKeyPayload []byte) ([]byte, error) {
	if len(publicKeyPayload) > math.MaxUint16 {
		return nil, fieldErrorf("public key", ErrValueRange, "%d-byte key does not fit a two-byte length", len(publicKeyPayload))
	}
	buf = append(buf, publicKeyPrefixV4)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(publicKeyPayload)))
	return append(buf, publicKeyPayload...), nil
}

// EncodePacket encodes the public key into a serialized OpenPGP packet.
func (key *PublicKey) EncodePacket() ([]byte, error) {
	publicKeyPayload, err := Marshal(key)
	if err != nil {
		return nil, err
	}
	return EncodePacket(PacketTagPublicKey, publicKeyPayload)
}
