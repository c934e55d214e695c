package pgp

import "bytes"

// Subpacket is a single type-length-value record in the hashed or unhashed
// area of a signature. Subpackets contain extra metadata about the conditions
// of a signature's assertion.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-5.2.3.1
//
// Concrete subpackets are *KeyFlagsSubpacket, *TimeSubpacket, *IssuerSubpacket,
// *IssuerFingerprintSubpacket, *PreferencesSubpacket, and *OpaqueSubpacket for
// everything else.
type Subpacket interface {
	Encodable
	Type() SubpacketType
}

// subpacketSize returns the encoded size of a subpacket whose body is
// payloadSize bytes long. The length field covers the tag byte as well as the
// body, and its own width depends on that total.
func subpacketSize(payloadSize int) int {
	size := 1 + payloadSize
	return VariableNumber(size).Size() + size
}

// encodeSubpacketHeader writes the length and tag of a subpacket.
func encodeSubpacketHeader(w Sink, t SubpacketType, critical bool, payloadSize int) error {
	if !t.Valid() {
		return fieldErrorf("subpacket", ErrFormat, "type %d overlaps the critical bit", t)
	}
	if err := VariableNumber(1 + payloadSize).Encode(w); err != nil {
		return withField("subpacket", err)
	}

	tag := byte(t)
	if critical {
		tag |= subpacketCriticalBit
	}
	return withField("subpacket", w.InsertByte(tag))
}

// errWrongSubpacket is returned by subpacket parsers which did not consume
// their entire body.
func errWrongSubpacket(t SubpacketType, body *Decoder) error {
	return fieldErrorf(
		"subpacket", ErrFormat,
		"incorrect subpacket type detected: %d bytes left after parsing type %d",
		body.Len(), t,
	)
}

// subpacketParsers parse the body of known subpacket types. Each parser must
// consume its body exactly.
var subpacketParsers = map[SubpacketType]func(body *Decoder) (Subpacket, error){
	SubpacketTypeCreationTime: func(body *Decoder) (Subpacket, error) {
		return ParseTimeSubpacket(SubpacketTypeCreationTime, body)
	},
	SubpacketTypeSignatureExpiry: func(body *Decoder) (Subpacket, error) {
		return ParseTimeSubpacket(SubpacketTypeSignatureExpiry, body)
	},
	SubpacketTypeKeyExpiry: func(body *Decoder) (Subpacket, error) {
		return ParseTimeSubpacket(SubpacketTypeKeyExpiry, body)
	},
	SubpacketTypePreferredCipherAlgorithms: func(body *Decoder) (Subpacket, error) {
		return ParsePreferencesSubpacket(SubpacketTypePreferredCipherAlgorithms, body)
	},
	SubpacketTypePreferredHashAlgorithms: func(body *Decoder) (Subpacket, error) {
		return ParsePreferencesSubpacket(SubpacketTypePreferredHashAlgorithms, body)
	},
	SubpacketTypePreferredCompressionAlgorithms: func(body *Decoder) (Subpacket, error) {
		return ParsePreferencesSubpacket(SubpacketTypePreferredCompressionAlgorithms, body)
	},
	SubpacketTypeIssuer: func(body *Decoder) (Subpacket, error) {
		return ParseIssuerSubpacket(body)
	},
	SubpacketTypeKeyFlags: func(body *Decoder) (Subpacket, error) {
		return ParseKeyFlagsSubpacket(body)
	},
	SubpacketTypeIssuerFingerprint: func(body *Decoder) (Subpacket, error) {
		return ParseIssuerFingerprintSubpacket(body)
	},
}

// criticalSetter is implemented by every known subpacket type.
type criticalSetter interface {
	setCritical(bool)
}

// ParseSubpacket reads one complete subpacket record from dec, dispatching on
// its type. Unrecognized types are returned as an *OpaqueSubpacket.
func ParseSubpacket(dec *Decoder) (Subpacket, error) {
	length, err := DecodeVariableNumber(dec)
	if err != nil {
		return nil, withField("subpacket", err)
	}
	if length == 0 {
		return nil, fieldErrorf("subpacket", ErrFormat, "zero length subpacket has no type")
	}

	record, err := dec.Sub(int(length))
	if err != nil {
		return nil, withField("subpacket", err)
	}

	tag, err := record.ExtractUint8()
	if err != nil {
		return nil, withField("subpacket", err)
	}
	critical := tag&subpacketCriticalBit != 0
	subpacketType := SubpacketType(tag &^ subpacketCriticalBit)

	parse, ok := subpacketParsers[subpacketType]
	if !ok {
		body, err := record.ExtractBytes(record.Len())
		if err != nil {
			return nil, withField("subpacket", err)
		}
		return &OpaqueSubpacket{Tag: tag, Body: body}, nil
	}

	sp, err := parse(record)
	if err != nil {
		return nil, err
	}
	sp.(criticalSetter).setCritical(critical)
	return sp, nil
}

// OpaqueSubpacket preserves a subpacket of a type this package does not
// interpret. Tag is the raw tag byte, including the critical bit.
type OpaqueSubpacket struct {
	Tag  byte
	Body []byte
}

// Type returns the subpacket type, without the critical bit.
func (sp *OpaqueSubpacket) Type() SubpacketType {
	return SubpacketType(sp.Tag &^ subpacketCriticalBit)
}

// IsCritical returns true if the sender marked the subpacket as critical.
func (sp *OpaqueSubpacket) IsCritical() bool {
	return sp.Tag&subpacketCriticalBit != 0
}

func (sp *OpaqueSubpacket) Size() int {
	return subpacketSize(len(sp.Body))
}

func (sp *OpaqueSubpacket) Encode(w Sink) error {
	if err := VariableNumber(1 + len(sp.Body)).Encode(w); err != nil {
		return withField("subpacket", err)
	}
	if err := w.InsertByte(sp.Tag); err != nil {
		return withField("subpacket", err)
	}
	return withField("subpacket", w.InsertBytes(sp.Body))
}

// Equal reports whether both subpackets have identical tags and bodies.
func (sp *OpaqueSubpacket) Equal(other *OpaqueSubpacket) bool {
	return sp.Tag == other.Tag && bytes.Equal(sp.Body, other.Body)
}
