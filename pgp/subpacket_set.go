package pgp

import "math"

// SubpacketSet is the ordered list of subpackets in either the hashed or the
// unhashed area of a signature. On the wire it is prefixed by the two-byte
// count of bytes taken up by its subpackets.
type SubpacketSet []Subpacket

const subpacketSetLengthSize = 2

// ParseSubpacketSet reads a length-prefixed subpacket area from dec.
func ParseSubpacketSet(dec *Decoder) (SubpacketSet, error) {
	length, err := dec.ExtractUint16()
	if err != nil {
		return nil, withField("subpackets", err)
	}
	region, err := dec.Sub(int(length))
	if err != nil {
		return nil, withField("subpackets", err)
	}

	set := SubpacketSet{}
	for !region.Empty() {
		sp, err := ParseSubpacket(region)
		if err != nil {
			return nil, withField("subpackets", err)
		}
		set = append(set, sp)
	}
	return set, nil
}

// payloadSize returns the total size of the subpackets, without the length prefix.
func (set SubpacketSet) payloadSize() int {
	size := 0
	for _, sp := range set {
		size += sp.Size()
	}
	return size
}

// Size returns the encoded size of the set including its length prefix.
func (set SubpacketSet) Size() int {
	return subpacketSetLengthSize + set.payloadSize()
}

// Encode writes the length prefix, then every subpacket in order.
func (set SubpacketSet) Encode(w Sink) error {
	payloadSize := set.payloadSize()
	if payloadSize > math.MaxUint16 {
		return fieldErrorf("subpackets", ErrValueRange, "%d bytes of subpackets exceed 65535", payloadSize)
	}
	if err := insertUint16(w, uint16(payloadSize)); err != nil {
		return withField("subpackets", err)
	}
	for _, sp := range set {
		if err := sp.Encode(w); err != nil {
			return withField("subpackets", err)
		}
	}
	return nil
}

// Find returns the first subpacket of the given type.
func (set SubpacketSet) Find(t SubpacketType) (Subpacket, bool) {
	for _, sp := range set {
		if sp.Type() == t {
			return sp, true
		}
	}
	return nil, false
}

// KeyFlags returns the first key flags subpacket in the set, if any.
func (set SubpacketSet) KeyFlags() (*KeyFlagsSubpacket, bool) {
	sp, ok := set.Find(SubpacketTypeKeyFlags)
	if !ok {
		return nil, false
	}
	keyFlags, ok := sp.(*KeyFlagsSubpacket)
	return keyFlags, ok
}

// CreationTime returns the first signature creation time subpacket in the set, if any.
func (set SubpacketSet) CreationTime() (*TimeSubpacket, bool) {
	sp, ok := set.Find(SubpacketTypeCreationTime)
	if !ok {
		return nil, false
	}
	creation, ok := sp.(*TimeSubpacket)
	return creation, ok
}
