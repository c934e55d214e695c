package pgp

import (
	"bytes"
	"fmt"
	"math"
	"time"
)

// TimeSubpacket carries a four-byte count of seconds. For creation time
// subpackets it is a Unix timestamp; for signature and key expiry subpackets
// it is an offset from the creation time of the signature or key.
type TimeSubpacket struct {
	kind    SubpacketType
	seconds uint32

	// Critical marks the subpacket as one the receiver must understand.
	Critical bool
}

// unixSeconds returns t as an unsigned 32-bit Unix timestamp, which is how
// OpenPGP stores every absolute time.
func unixSeconds(t time.Time) (uint32, error) {
	seconds := t.Unix()
	if seconds < 0 || seconds > math.MaxUint32 {
		return 0, fmt.Errorf("%w: time %s is not representable as a 32-bit Unix timestamp", ErrValueRange, t.UTC())
	}
	return uint32(seconds), nil
}

// NewCreationTimeSubpacket returns a signature creation time subpacket. It
// fails with ErrValueRange if t is before 1970 or after early 2106.
func NewCreationTimeSubpacket(t time.Time) (*TimeSubpacket, error) {
	seconds, err := unixSeconds(t)
	if err != nil {
		return nil, err
	}
	return &TimeSubpacket{kind: SubpacketTypeCreationTime, seconds: seconds}, nil
}

// NewExpirySubpacket returns a signature or key expiry subpacket, which
// expires d after the signature or key was created. A zero d means the
// subpacket never expires; any other d must be at least one second.
func NewExpirySubpacket(kind SubpacketType, d time.Duration) (*TimeSubpacket, error) {
	if kind != SubpacketTypeSignatureExpiry && kind != SubpacketTypeKeyExpiry {
		return nil, fmt.Errorf("%w: subpacket type %d is not an expiry", ErrFormat, kind)
	}
	seconds := d / time.Second
	if seconds < 0 || seconds > math.MaxUint32 {
		return nil, fmt.Errorf("%w: expiry %s does not fit in 32 bits of seconds", ErrValueRange, d)
	}
	// Zero seconds on the wire means "never expires".
	if seconds == 0 && d != 0 {
		return nil, fmt.Errorf("%w: expiry %s is shorter than one second", ErrValueRange, d)
	}
	return &TimeSubpacket{kind: kind, seconds: uint32(seconds)}, nil
}

// ParseTimeSubpacket parses the four-byte body of a time subpacket of the given kind.
func ParseTimeSubpacket(kind SubpacketType, body *Decoder) (*TimeSubpacket, error) {
	seconds, err := body.ExtractUint32()
	if err != nil {
		return nil, withField("time", err)
	}
	if !body.Empty() {
		return nil, errWrongSubpacket(kind, body)
	}
	return &TimeSubpacket{kind: kind, seconds: seconds}, nil
}

func (sp *TimeSubpacket) Type() SubpacketType { return sp.kind }

// Seconds returns the raw encoded value.
func (sp *TimeSubpacket) Seconds() uint32 { return sp.seconds }

// Time interprets the value as a Unix timestamp.
func (sp *TimeSubpacket) Time() time.Time { return time.Unix(int64(sp.seconds), 0) }

// Duration interprets the value as an offset. Zero means no expiry.
func (sp *TimeSubpacket) Duration() time.Duration {
	return time.Duration(sp.seconds) * time.Second
}

func (sp *TimeSubpacket) Size() int { return subpacketSize(4) }

func (sp *TimeSubpacket) Encode(w Sink) error {
	if err := encodeSubpacketHeader(w, sp.kind, sp.Critical, 4); err != nil {
		return err
	}
	return withField("time", insertUint32(w, sp.seconds))
}

func (sp *TimeSubpacket) setCritical(critical bool) { sp.Critical = critical }

// IssuerSubpacket identifies the signing key by its 8-byte key ID.
type IssuerSubpacket struct {
	KeyID [keyIDSize]byte

	// Critical marks the subpacket as one the receiver must understand.
	Critical bool
}

// NewIssuerSubpacket returns an issuer subpacket for a V4 fingerprint,
// whose key ID is its last eight bytes.
func NewIssuerSubpacket(fingerprint []byte) (*IssuerSubpacket, error) {
	if len(fingerprint) < keyIDSize {
		return nil, fmt.Errorf("%w: fingerprint of %d bytes is too short", ErrFormat, len(fingerprint))
	}
	sp := new(IssuerSubpacket)
	copy(sp.KeyID[:], fingerprint[len(fingerprint)-keyIDSize:])
	return sp, nil
}

// ParseIssuerSubpacket parses the eight-byte body of an issuer subpacket.
func ParseIssuerSubpacket(body *Decoder) (*IssuerSubpacket, error) {
	keyID, err := body.ExtractBytes(keyIDSize)
	if err != nil {
		return nil, withField("issuer", err)
	}
	if !body.Empty() {
		return nil, errWrongSubpacket(SubpacketTypeIssuer, body)
	}
	sp := new(IssuerSubpacket)
	copy(sp.KeyID[:], keyID)
	return sp, nil
}

func (sp *IssuerSubpacket) Type() SubpacketType { return SubpacketTypeIssuer }

func (sp *IssuerSubpacket) Size() int { return subpacketSize(keyIDSize) }

func (sp *IssuerSubpacket) Encode(w Sink) error {
	if err := encodeSubpacketHeader(w, sp.Type(), sp.Critical, keyIDSize); err != nil {
		return err
	}
	return withField("issuer", w.InsertBytes(sp.KeyID[:]))
}

func (sp *IssuerSubpacket) setCritical(critical bool) { sp.Critical = critical }

// IssuerFingerprintSubpacket identifies the signing key by its key version
// and full fingerprint.
type IssuerFingerprintSubpacket struct {
	KeyVersion  byte
	Fingerprint []byte

	// Critical marks the subpacket as one the receiver must understand.
	Critical bool
}

// NewIssuerFingerprintSubpacket returns an issuer fingerprint subpacket for
// a V4 key.
func NewIssuerFingerprintSubpacket(fingerprint []byte) *IssuerFingerprintSubpacket {
	return &IssuerFingerprintSubpacket{
		KeyVersion:  keyPacketVersion,
		Fingerprint: bytes.Clone(fingerprint),
	}
}

// ParseIssuerFingerprintSubpacket parses the body of an issuer fingerprint
// subpacket. Everything after the version byte is taken as the fingerprint.
func ParseIssuerFingerprintSubpacket(body *Decoder) (*IssuerFingerprintSubpacket, error) {
	version, err := body.ExtractUint8()
	if err != nil {
		return nil, withField("issuer fingerprint", err)
	}
	fingerprint, err := body.ExtractBytes(body.Len())
	if err != nil {
		return nil, withField("issuer fingerprint", err)
	}
	return &IssuerFingerprintSubpacket{KeyVersion: version, Fingerprint: fingerprint}, nil
}

func (sp *IssuerFingerprintSubpacket) Type() SubpacketType {
	return SubpacketTypeIssuerFingerprint
}

func (sp *IssuerFingerprintSubpacket) Size() int {
	return subpacketSize(1 + len(sp.Fingerprint))
}

func (sp *IssuerFingerprintSubpacket) Encode(w Sink) error {
	if err := encodeSubpacketHeader(w, sp.Type(), sp.Critical, 1+len(sp.Fingerprint)); err != nil {
		return err
	}
	if err := w.InsertByte(sp.KeyVersion); err != nil {
		return withField("issuer fingerprint", err)
	}
	return withField("issuer fingerprint", w.InsertBytes(sp.Fingerprint))
}

func (sp *IssuerFingerprintSubpacket) setCritical(critical bool) { sp.Critical = critical }

// PreferencesSubpacket lists algorithm identifiers in order of preference.
// It is used for preferred cipher, hash and compression algorithms.
type PreferencesSubpacket struct {
	kind       SubpacketType
	Algorithms []byte

	// Critical marks the subpacket as one the receiver must understand.
	Critical bool
}

// NewPreferencesSubpacket returns a preferences subpacket of the given kind.
func NewPreferencesSubpacket(kind SubpacketType, algorithms ...byte) *PreferencesSubpacket {
	return &PreferencesSubpacket{
		kind:       kind,
		Algorithms: bytes.Clone(algorithms),
	}
}

// ParsePreferencesSubpacket parses the body of a preferences subpacket. The
// whole body is the preference list.
func ParsePreferencesSubpacket(kind SubpacketType, body *Decoder) (*PreferencesSubpacket, error) {
	algorithms, err := body.ExtractBytes(body.Len())
	if err != nil {
		return nil, withField("preferences", err)
	}
	return &PreferencesSubpacket{kind: kind, Algorithms: algorithms}, nil
}

func (sp *PreferencesSubpacket) Type() SubpacketType { return sp.kind }

func (sp *PreferencesSubpacket) Size() int { return subpacketSize(len(sp.Algorithms)) }

func (sp *PreferencesSubpacket) Encode(w Sink) error {
	if err := encodeSubpacketHeader(w, sp.kind, sp.Critical, len(sp.Algorithms)); err != nil {
		return err
	}
	return withField("preferences", w.InsertBytes(sp.Algorithms))
}

func (sp *PreferencesSubpacket) setCritical(critical bool) { sp.Critical = critical }
