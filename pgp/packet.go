package pgp

// EncodePacket encodes a binary Packet according to the generic OpenPGP
// packet encoding protocol, using a new-format header.
//
//	https://www.ietf.org/archive/id/draft-ietf-openpgp-rfc4880bis-10.html#section-4.2
func EncodePacket(tag PacketTag, payload []byte) ([]byte, error) {
	length := VariableNumber(len(payload))
	encoded := make([]byte, 1+length.Size()+len(payload))

	enc := NewEncoder(encoded)
	if err := enc.InsertBits(2, packetTagFormatNew>>6); err != nil {
		return nil, withField("packet tag", err)
	}
	if err := enc.InsertBits(6, byte(tag)); err != nil {
		return nil, withField("packet tag", err)
	}
	if err := length.Encode(enc); err != nil {
		return nil, withField("packet length", err)
	}
	if err := enc.InsertBytes(payload); err != nil {
		return nil, withField("packet body", err)
	}
	return encoded, nil
}

// ParsePacket reads a packet header from dec and returns the packet tag and
// a Decoder bounded to the packet body. Both new-format and old-format headers
// are accepted. Partial body lengths are not supported.
func ParsePacket(dec *Decoder) (PacketTag, *Decoder, error) {
	if marker, err := dec.ExtractBits(1); err != nil {
		return 0, nil, withField("packet tag", err)
	} else if marker != 1 {
		return 0, nil, fieldErrorf("packet tag", ErrFormat, "high bit of packet tag is not set")
	}
	newFormat, err := dec.ExtractBits(1)
	if err != nil {
		return 0, nil, withField("packet tag", err)
	}

	if newFormat == 1 {
		tag, err := dec.ExtractBits(6)
		if err != nil {
			return 0, nil, withField("packet tag", err)
		}
		length, err := DecodeVariableNumber(dec)
		if err != nil {
			return 0, nil, withField("packet length", err)
		}
		body, err := dec.Sub(int(length))
		if err != nil {
			return 0, nil, withField("packet body", err)
		}
		return PacketTag(tag), body, nil
	}

	tag, err := dec.ExtractBits(4)
	if err != nil {
		return 0, nil, withField("packet tag", err)
	}
	lengthType, err := dec.ExtractBits(2)
	if err != nil {
		return 0, nil, withField("packet tag", err)
	}

	var length int
	switch lengthType {
	case 0:
		n, err := dec.ExtractUint8()
		if err != nil {
			return 0, nil, withField("packet length", err)
		}
		length = int(n)
	case 1:
		n, err := dec.ExtractUint16()
		if err != nil {
			return 0, nil, withField("packet length", err)
		}
		length = int(n)
	case 2:
		n, err := dec.ExtractUint32()
		if err != nil {
			return 0, nil, withField("packet length", err)
		}
		length = int(n)
	default:
		// indeterminate length: the packet extends to the end of the input
		length = dec.Len()
	}

	body, err := dec.Sub(length)
	if err != nil {
		return 0, nil, withField("packet body", err)
	}
	return PacketTag(tag), body, nil
}
