package pgp

import (
	"encoding/binary"
	"fmt"
)

// signatureTrailer follows the hashed part of a V4 signature in its hash preimage.
var signatureTrailer = []byte{byte(SignatureVersion4), 0xFF}

// Signature holds the fields of an OpenPGP V4 signature packet which precede
// the signature value: version, signature type, public key and hash
// algorithms, and the hashed and unhashed subpacket areas.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-5.2.3
type Signature struct {
	version            SignatureVersion
	sigType            SignatureType
	publicKeyAlgorithm PublicKeyAlgorithm
	hashFunction       HashFuncID
	hashed             SubpacketSet
	unhashed           SubpacketSet
}

// NewSignature constructs a V4 signature. It fails if any of the
// enumerated fields is not recognized.
func NewSignature(
	sigType SignatureType,
	publicKeyAlgorithm PublicKeyAlgorithm,
	hashFunction HashFuncID,
	hashed, unhashed SubpacketSet,
) (*Signature, error) {
	sig := &Signature{
		version:            SignatureVersion4,
		sigType:            sigType,
		publicKeyAlgorithm: publicKeyAlgorithm,
		hashFunction:       hashFunction,
		hashed:             append(SubpacketSet{}, hashed...),
		unhashed:           append(SubpacketSet{}, unhashed...),
	}
	for _, e := range []Enumerant{sigType, publicKeyAlgorithm, hashFunction} {
		if !e.Valid() {
			return nil, fieldErrorf(e.Field(), ErrFormat, "unrecognized value %d", e.Byte())
		}
	}
	return sig, nil
}

// extractEnum reads a single byte and checks it against its enumeration.
func extractEnum[E interface {
	~byte
	Enumerant
}](dec *Decoder) (E, error) {
	b, err := dec.ExtractUint8()
	if err != nil {
		var e E
		return e, withField(e.Field(), err)
	}
	e := E(b)
	if !e.Valid() {
		return e, fieldErrorf(e.Field(), ErrFormat, "unrecognized value %d", b)
	}
	return e, nil
}

// ParseSignature reads the fields of a signature from dec, in wire order.
func ParseSignature(dec *Decoder) (*Signature, error) {
	var (
		sig = new(Signature)
		err error
	)

	if sig.version, err = extractEnum[SignatureVersion](dec); err != nil {
		return nil, withField("signature", err)
	}
	if sig.sigType, err = extractEnum[SignatureType](dec); err != nil {
		return nil, withField("signature", err)
	}
	if sig.publicKeyAlgorithm, err = extractEnum[PublicKeyAlgorithm](dec); err != nil {
		return nil, withField("signature", err)
	}
	if sig.hashFunction, err = extractEnum[HashFuncID](dec); err != nil {
		return nil, withField("signature", err)
	}
	if sig.hashed, err = ParseSubpacketSet(dec); err != nil {
		return nil, withField("signature.hashed", err)
	}
	if sig.unhashed, err = ParseSubpacketSet(dec); err != nil {
		return nil, withField("signature.unhashed", err)
	}
	return sig, nil
}

func (sig *Signature) Version() SignatureVersion { return sig.version }

func (sig *Signature) Type() SignatureType { return sig.sigType }

func (sig *Signature) PublicKeyAlgorithm() PublicKeyAlgorithm { return sig.publicKeyAlgorithm }

func (sig *Signature) HashFunction() HashFuncID { return sig.hashFunction }

// HashedSubpackets returns the subpackets committed to by the signature.
func (sig *Signature) HashedSubpackets() SubpacketSet { return sig.hashed }

// UnhashedSubpackets returns the subpackets not committed to by the signature.
func (sig *Signature) UnhashedSubpackets() SubpacketSet { return sig.unhashed }

// hashedSize is the size of the fields covered by the signature hash.
func (sig *Signature) hashedSize() int {
	return sig.version.Size() + 3 + sig.hashed.Size()
}

// Size returns the encoded size of the signature fields.
func (sig *Signature) Size() int {
	return sig.hashedSize() + sig.unhashed.Size()
}

func (sig *Signature) encodeHashed(w Sink) error {
	for _, e := range []Enumerant{sig.version, sig.sigType, sig.publicKeyAlgorithm, sig.hashFunction} {
		if err := w.InsertEnum(e); err != nil {
			return withField("signature", err)
		}
	}
	return withField("signature.hashed", sig.hashed.Encode(w))
}

// Encode writes all fields of the signature to w, in wire order.
func (sig *Signature) Encode(w Sink) error {
	if err := sig.encodeHashed(w); err != nil {
		return err
	}
	return withField("signature.unhashed", sig.unhashed.Encode(w))
}

// hashedPart adapts the hashed fields of a signature into an Encodable.
type hashedPart struct{ sig *Signature }

func (h hashedPart) Size() int           { return h.sig.hashedSize() }
func (h hashedPart) Encode(w Sink) error { return h.sig.encodeHashed(w) }

// HashedPreimage encodes the fields committed to by the signature: everything
// up to and including the hashed subpacket area.
func (sig *Signature) HashedPreimage() ([]byte, error) {
	return Marshal(hashedPart{sig})
}

// Digest returns the hash which must be signed to attest to data.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-5.2.4
func (sig *Signature) Digest(data []byte) ([]byte, error) {
	h := sig.hashFunction.New()
	if h == nil {
		return nil, fieldErrorf(sig.hashFunction.Field(), ErrFormat, "no implementation for hash %d", sig.hashFunction)
	}

	preimage, err := sig.HashedPreimage()
	if err != nil {
		return nil, err
	}

	h.Write(data)
	h.Write(preimage)
	h.Write(signatureTrailer)
	if err := binary.Write(h, binary.BigEndian, uint32(len(preimage))); err != nil {
		return nil, fmt.Errorf("failed to hash preimage length: %w", err)
	}
	return h.Sum(nil), nil
}
