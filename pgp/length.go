package pgp

// VariableNumber is a length encoded in the OpenPGP new-format style, as used
// by packet headers and signature subpackets. It occupies one, two or five
// bytes depending on its magnitude.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-4.2.2
type VariableNumber uint32

const (
	oneOctetLengthMax = 191
	twoOctetLengthMax = 8383

	fiveOctetLengthPrefix byte = 0xFF
)

// Size returns the number of bytes needed to encode n.
func (n VariableNumber) Size() int {
	switch {
	case n <= oneOctetLengthMax:
		return 1
	case n <= twoOctetLengthMax:
		return 2
	}
	return 5
}

// Encode writes n to w.
func (n VariableNumber) Encode(w Sink) error {
	switch {
	case n <= oneOctetLengthMax:
		return w.InsertByte(byte(n))

	case n <= twoOctetLengthMax:
		k := n - 192
		return w.InsertBytes([]byte{byte(k>>8) + 192, byte(k)})
	}

	if err := w.InsertByte(fiveOctetLengthPrefix); err != nil {
		return err
	}
	return insertUint32(w, uint32(n))
}

// DecodeVariableNumber reads a new-format length from dec. Partial body
// lengths are not valid in any context this package decodes, and are
// rejected.
func DecodeVariableNumber(dec *Decoder) (VariableNumber, error) {
	first, err := dec.ExtractUint8()
	if err != nil {
		return 0, withField("length", err)
	}

	switch {
	case first < 192:
		return VariableNumber(first), nil

	case first < 224:
		second, err := dec.ExtractUint8()
		if err != nil {
			return 0, withField("length", err)
		}
		return VariableNumber(uint32(first-192)<<8 + uint32(second) + 192), nil

	case first == fiveOctetLengthPrefix:
		n, err := dec.ExtractUint32()
		if err != nil {
			return 0, withField("length", err)
		}
		return VariableNumber(n), nil
	}

	return 0, fieldErrorf("length", ErrFormat, "partial body length octet 0x%X not supported", first)
}
