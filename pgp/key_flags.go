package pgp

// KeyFlagsSubpacket declares what a key may be used for. Its body is a
// single byte, the bitwise OR of one or more KeyFlag values.
type KeyFlagsSubpacket struct {
	flags KeyFlag

	// Critical marks the subpacket as one the receiver must understand.
	Critical bool
}

// NewKeyFlagsSubpacket combines the given flags into a key flags subpacket.
func NewKeyFlagsSubpacket(flags ...KeyFlag) *KeyFlagsSubpacket {
	sp := new(KeyFlagsSubpacket)
	for _, flag := range flags {
		sp.flags |= flag
	}
	return sp
}

// ParseKeyFlagsSubpacket parses the body of a key flags subpacket. The body
// must contain exactly one byte.
func ParseKeyFlagsSubpacket(body *Decoder) (*KeyFlagsSubpacket, error) {
	flags, err := body.ExtractUint8()
	if err != nil {
		return nil, withField("key flags", err)
	}
	if !body.Empty() {
		return nil, errWrongSubpacket(SubpacketTypeKeyFlags, body)
	}
	return &KeyFlagsSubpacket{flags: KeyFlag(flags)}, nil
}

// Type returns SubpacketTypeKeyFlags.
func (sp *KeyFlagsSubpacket) Type() SubpacketType {
	return SubpacketTypeKeyFlags
}

// Flags returns the combined flag byte.
func (sp *KeyFlagsSubpacket) Flags() KeyFlag {
	return sp.flags
}

// IsSet returns true if any bit of flag is set.
func (sp *KeyFlagsSubpacket) IsSet(flag KeyFlag) bool {
	return sp.flags&flag != 0
}

// Equal compares the flags of both subpackets.
func (sp *KeyFlagsSubpacket) Equal(other *KeyFlagsSubpacket) bool {
	return sp.flags == other.flags
}

func (sp *KeyFlagsSubpacket) Size() int {
	return subpacketSize(1)
}

func (sp *KeyFlagsSubpacket) Encode(w Sink) error {
	if err := encodeSubpacketHeader(w, sp.Type(), sp.Critical, 1); err != nil {
		return err
	}
	return withField("key flags", w.InsertByte(byte(sp.flags)))
}

func (sp *KeyFlagsSubpacket) setCritical(critical bool) {
	sp.Critical = critical
}
