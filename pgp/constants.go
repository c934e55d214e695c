package pgp

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
	"golang.org/x/crypto/sha3"
)

const (
	keyPacketVersion byte = 4

	packetTagFormatNew byte = 0b11000000

	subpacketCriticalBit byte = 0x80

	// DigestSize is the size of digests accepted by the signing bridge.
	DigestSize = 32

	// keyIDSize is the size of an OpenPGP V4 key ID.
	keyIDSize = 8
)

// Enumerant is a one-byte value drawn from a closed OpenPGP registry.
type Enumerant interface {
	Byte() byte
	Valid() bool

	// Field names the registry, for error reporting.
	Field() string
}

// SignatureVersion is the version number of a signature packet. Only
// version 4 signatures are supported.
type SignatureVersion byte

const SignatureVersion4 SignatureVersion = 4

func (v SignatureVersion) Byte() byte    { return byte(v) }
func (v SignatureVersion) Valid() bool   { return v == SignatureVersion4 }
func (v SignatureVersion) Field() string { return "version" }

// Size returns the encoded size of the version, in bytes.
func (v SignatureVersion) Size() int { return 1 }

// HashFuncID identifies a hash algorithm.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-9.5
type HashFuncID byte

const (
	HashFuncSHA1      HashFuncID = 2
	HashFuncRIPEMD160 HashFuncID = 3
	HashFuncSHA256    HashFuncID = 8
	HashFuncSHA384    HashFuncID = 9
	HashFuncSHA512    HashFuncID = 10
	HashFuncSHA224    HashFuncID = 11
	HashFuncSHA3_256  HashFuncID = 12
	HashFuncSHA3_512  HashFuncID = 14
)

// DefaultHashFunction is the hash function used by Sign when a
// SignatureRequest does not specify one.
var DefaultHashFunction = HashFuncSHA256

// New returns a new hash.Hash for the algorithm, or nil if the algorithm has
// no implementation. SHA1 signatures are parsed but never produced.
func (id HashFuncID) New() hash.Hash {
	switch id {
	case HashFuncRIPEMD160:
		return ripemd160.New()
	case HashFuncSHA256:
		return sha256.New()
	case HashFuncSHA384:
		return sha512.New384()
	case HashFuncSHA512:
		return sha512.New()
	case HashFuncSHA224:
		return sha256.New224()
	case HashFuncSHA3_256:
		return sha3.New256()
	case HashFuncSHA3_512:
		return sha3.New512()
	}
	return nil
}

func (id HashFuncID) Byte() byte    { return byte(id) }
func (id HashFuncID) Field() string { return "hash algorithm" }

func (id HashFuncID) Valid() bool {
	switch id {
	case HashFuncSHA1, HashFuncRIPEMD160, HashFuncSHA256, HashFuncSHA384,
		HashFuncSHA512, HashFuncSHA224, HashFuncSHA3_256, HashFuncSHA3_512:
		return true
	}
	return isPrivateAlgorithm(byte(id))
}

var hashFuncNames = map[HashFuncID]string{
	HashFuncSHA1:      "SHA1",
	HashFuncRIPEMD160: "RIPEMD160",
	HashFuncSHA256:    "SHA256",
	HashFuncSHA384:    "SHA384",
	HashFuncSHA512:    "SHA512",
	HashFuncSHA224:    "SHA224",
	HashFuncSHA3_256:  "SHA3-256",
	HashFuncSHA3_512:  "SHA3-512",
}

func (id HashFuncID) String() string {
	if name, ok := hashFuncNames[id]; ok {
		return name
	}
	return "unknown"
}

// isPrivateAlgorithm reports whether id is in the 100-110 range reserved for
// private and experimental algorithms.
func isPrivateAlgorithm(id byte) bool {
	return id >= 100 && id <= 110
}

// PublicKeyAlgorithm identifies an asymmetric algorithm.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-9.1
type PublicKeyAlgorithm byte

const (
	PublicKeyAlgorithmRSA            PublicKeyAlgorithm = 1
	PublicKeyAlgorithmRSAEncryptOnly PublicKeyAlgorithm = 2
	PublicKeyAlgorithmRSASignOnly    PublicKeyAlgorithm = 3
	PublicKeyAlgorithmElgamal        PublicKeyAlgorithm = 16
	PublicKeyAlgorithmDSA            PublicKeyAlgorithm = 17
	PublicKeyAlgorithmECDH           PublicKeyAlgorithm = 18
	PublicKeyAlgorithmECDSA          PublicKeyAlgorithm = 19
	PublicKeyAlgorithmEdDSA          PublicKeyAlgorithm = 22
)

func (alg PublicKeyAlgorithm) Byte() byte    { return byte(alg) }
func (alg PublicKeyAlgorithm) Field() string { return "public key algorithm" }

func (alg PublicKeyAlgorithm) Valid() bool {
	switch alg {
	case PublicKeyAlgorithmRSA, PublicKeyAlgorithmRSAEncryptOnly, PublicKeyAlgorithmRSASignOnly,
		PublicKeyAlgorithmElgamal, PublicKeyAlgorithmDSA, PublicKeyAlgorithmECDH,
		PublicKeyAlgorithmECDSA, PublicKeyAlgorithmEdDSA:
		return true
	}
	return isPrivateAlgorithm(byte(alg))
}

func (alg PublicKeyAlgorithm) String() string {
	switch alg {
	case PublicKeyAlgorithmRSA, PublicKeyAlgorithmRSAEncryptOnly, PublicKeyAlgorithmRSASignOnly:
		return "RSA"
	case PublicKeyAlgorithmElgamal:
		return "Elgamal"
	case PublicKeyAlgorithmDSA:
		return "DSA"
	case PublicKeyAlgorithmECDH:
		return "ECDH"
	case PublicKeyAlgorithmECDSA:
		return "ECDSA"
	case PublicKeyAlgorithmEdDSA:
		return "EdDSA"
	}
	return "unknown"
}

// SignatureType denotes the intent of a signature.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-5.2.1
type SignatureType byte

const (
	SignatureTypeBinary                  SignatureType = 0x00
	SignatureTypeText                    SignatureType = 0x01
	SignatureTypeStandalone              SignatureType = 0x02
	SignatureTypeGenericCertification    SignatureType = 0x10
	SignatureTypePersonaCertification    SignatureType = 0x11
	SignatureTypeCasualCertification     SignatureType = 0x12
	SignatureTypePositiveCertification   SignatureType = 0x13
	SignatureTypeSubkeyBinding           SignatureType = 0x18
	SignatureTypePrimaryKeyBinding       SignatureType = 0x19
	SignatureTypeDirectKey               SignatureType = 0x1F
	SignatureTypeKeyRevocation           SignatureType = 0x20
	SignatureTypeSubkeyRevocation        SignatureType = 0x28
	SignatureTypeCertificationRevocation SignatureType = 0x30
	SignatureTypeTimestamp               SignatureType = 0x40
	SignatureTypeThirdPartyConfirmation  SignatureType = 0x50
)

func (t SignatureType) Byte() byte    { return byte(t) }
func (t SignatureType) Field() string { return "signature type" }

func (t SignatureType) Valid() bool {
	switch t {
	case SignatureTypeBinary, SignatureTypeText, SignatureTypeStandalone,
		SignatureTypeGenericCertification, SignatureTypePersonaCertification,
		SignatureTypeCasualCertification, SignatureTypePositiveCertification,
		SignatureTypeSubkeyBinding, SignatureTypePrimaryKeyBinding, SignatureTypeDirectKey,
		SignatureTypeKeyRevocation, SignatureTypeSubkeyRevocation,
		SignatureTypeCertificationRevocation, SignatureTypeTimestamp,
		SignatureTypeThirdPartyConfirmation:
		return true
	}
	return false
}

type PacketTag byte

const (
	PacketTagSignature    PacketTag = 2
	PacketTagSecretKey    PacketTag = 5
	PacketTagPublicKey    PacketTag = 6
	PacketTagSecretSubkey PacketTag = 7
	PacketTagUserID       PacketTag = 13
	PacketTagPublicSubkey PacketTag = 14
)

// SubpacketType identifies the kind of a signature subpacket. The critical
// bit is not part of the type.
type SubpacketType byte

const (
	SubpacketTypeCreationTime                   SubpacketType = 2
	SubpacketTypeSignatureExpiry                SubpacketType = 3
	SubpacketTypeKeyExpiry                      SubpacketType = 9
	SubpacketTypePreferredCipherAlgorithms      SubpacketType = 11
	SubpacketTypeIssuer                         SubpacketType = 16
	SubpacketTypePreferredHashAlgorithms        SubpacketType = 21
	SubpacketTypePreferredCompressionAlgorithms SubpacketType = 22
	SubpacketTypeKeyFlags                       SubpacketType = 27
	SubpacketTypeFeatures                       SubpacketType = 30
	SubpacketTypeIssuerFingerprint              SubpacketType = 33
)

func (t SubpacketType) Byte() byte    { return byte(t) }
func (t SubpacketType) Field() string { return "subpacket type" }

// Valid reports whether t fits in a subpacket tag without touching the critical bit.
func (t SubpacketType) Valid() bool { return byte(t)&subpacketCriticalBit == 0 }

// KeyFlag is a single bit of the key flags subpacket.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-5.2.3.22
type KeyFlag byte

const (
	KeyFlagCertify               KeyFlag = 0b00000001
	KeyFlagSign                  KeyFlag = 0b00000010
	KeyFlagEncryptCommunications KeyFlag = 0b00000100
	KeyFlagEncryptStorage        KeyFlag = 0b00001000
	KeyFlagSplit                 KeyFlag = 0b00010000
	KeyFlagAuthenticate          KeyFlag = 0b00100000
	KeyFlagShared                KeyFlag = 0b10000000
)

// CipherAlgoID identifies a symmetric cipher in preference lists.
type CipherAlgoID byte

const (
	CipherAlgoAES128 CipherAlgoID = 7
	CipherAlgoAES192 CipherAlgoID = 8
	CipherAlgoAES256 CipherAlgoID = 9
)

// CompressionAlgoID identifies a compression algorithm in preference lists.
type CompressionAlgoID byte

const (
	CompressionAlgoZIP   CompressionAlgoID = 1
	CompressionAlgoZLIB  CompressionAlgoID = 2
	CompressionAlgoBZIP2 CompressionAlgoID = 3
)

// featureModificationDetection advertises support for the modification
// detection code in the features subpacket.
const featureModificationDetection byte = 0x01
