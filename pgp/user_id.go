package pgp

import (
	"encoding/binary"
	"fmt"
	"math"
)

// userIDPrefix precedes the user ID when it is hashed by a certification.
const userIDPrefix byte = 0xB4

// UserID represents a human-readable user identity.
type UserID struct {
	Name  string
	Email string
}

// String formats the user ID as it appears in a user ID packet.
func (id *UserID) String() string {
	if id.Email == "" {
		return id.Name
	}
	if id.Name == "" {
		return id.Email
	}
	return fmt.Sprintf("%s <%s>", id.Name, id.Email)
}

// EncodePacket encodes the user ID as a binary OpenPGP packet.
func (id *UserID) EncodePacket() ([]byte, error) {
	return EncodePacket(PacketTagUserID, []byte(id.String()))
}

// CertificationData returns the data which a certification of id by key
// signs: the public key, then the user ID, each with its length.
func CertificationData(key *PublicKey, id *UserID) ([]byte, error) {
	publicKeyPayload, err := Marshal(key)
	if err != nil {
		return nil, err
	}
	userIDPayload := []byte(id.String())
	if uint64(len(userIDPayload)) > math.MaxUint32 {
		return nil, fieldErrorf("user id", ErrValueRange, "%d-byte user ID does not fit a four-byte length", len(userIDPayload))
	}

	// Commit to the public key
	buf, err := appendPublicKeyCommitment(nil, publicKeyPayload)
	if err != nil {
		return nil, err
	}

	// Commit to the user ID
	buf = append(buf, userIDPrefix)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(userIDPayload)))
	return append(buf, userIDPayload...), nil
}
