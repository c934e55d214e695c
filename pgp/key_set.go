package pgp

import (
	"bytes"
	"fmt"
	"time"
)

// KeySet is a transferable public key: a public key, a user ID, and the
// key's certification of that user ID. Most OpenPGP implementations will not
// import a key which has no certified user ID.
type KeySet struct {
	PublicKey         *PublicKey
	UserID            *UserID
	SelfCertification *SignaturePacket
}

// SelfCertify signs a positive certification of userID with the secret key
// which belongs to publicKey. The certification marks the key as usable for
// certifying and signing. If keyExpiry is non-zero, the key expires that long
// after its creation.
func SelfCertify(
	provider SigningProvider,
	key SecretKey,
	publicKey *PublicKey,
	userID *UserID,
	now time.Time,
	keyExpiry time.Duration,
) (*KeySet, error) {
	fingerprint, err := publicKey.FingerprintV4()
	if err != nil {
		return nil, err
	}
	data, err := CertificationData(publicKey, userID)
	if err != nil {
		return nil, err
	}

	// Signed subpackets should use the same ordering as default GPG keys.
	// - Issuer fingerprint (added by the Sign() function)
	// - Signature time (added by the Sign() function)
	// - Key flags
	// - Expiry
	// - Cipher preferences
	// - Hash preferences
	// - Compression preferences
	// - Features (MDC)
	subpackets := []Subpacket{NewKeyFlagsSubpacket(KeyFlagCertify, KeyFlagSign)}

	if keyExpiry != 0 {
		expiry, err := NewExpirySubpacket(SubpacketTypeKeyExpiry, keyExpiry)
		if err != nil {
			return nil, withField("key expiry", err)
		}
		subpackets = append(subpackets, expiry)
	}

	subpackets = append(subpackets,
		NewPreferencesSubpacket(
			SubpacketTypePreferredCipherAlgorithms,
			byte(CipherAlgoAES256),
			byte(CipherAlgoAES192),
			byte(CipherAlgoAES128),
		),
		NewPreferencesSubpacket(
			SubpacketTypePreferredHashAlgorithms,
			byte(HashFuncSHA512),
			byte(HashFuncSHA384),
			byte(HashFuncSHA256),
			byte(HashFuncSHA224),
		),
		NewPreferencesSubpacket(
			SubpacketTypePreferredCompressionAlgorithms,
			byte(CompressionAlgoZLIB),
			byte(CompressionAlgoBZIP2),
			byte(CompressionAlgoZIP),
		),
		&OpaqueSubpacket{
			Tag:  byte(SubpacketTypeFeatures),
			Body: []byte{featureModificationDetection},
		},
	)

	certification, err := Sign(provider, key, &SignatureRequest{
		SigningKeyFingerprint: fingerprint,
		HashFunction:          HashFuncSHA256,
		Data:                  data,
		Type:                  SignatureTypePositiveCertification,
		HashedSubpackets:      subpackets,
		Time:                  now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign self-certification: %w", err)
	}

	keySet := &KeySet{
		PublicKey:         publicKey,
		UserID:            userID,
		SelfCertification: certification,
	}
	return keySet, nil
}

// EncodePackets encodes the KeySet as a series of binary OpenPGP packets.
func (keySet *KeySet) EncodePackets() ([]byte, error) {
	buf := new(bytes.Buffer)

	publicKeyPacket, err := keySet.PublicKey.EncodePacket()
	if err != nil {
		return nil, fmt.Errorf("failed to encode public key packet: %w", err)
	}
	buf.Write(publicKeyPacket)

	userIDPacket, err := keySet.UserID.EncodePacket()
	if err != nil {
		return nil, fmt.Errorf("failed to encode user ID packet: %w", err)
	}
	buf.Write(userIDPacket)

	certificationPacket, err := keySet.SelfCertification.EncodePacket()
	if err != nil {
		return nil, fmt.Errorf("failed to encode self-certification packet: %w", err)
	}
	buf.Write(certificationPacket)

	return buf.Bytes(), nil
}
