package pgp

// SignaturePacket is the complete body of a V4 signature packet: the
// signature fields, the first two bytes of the signed digest, and the
// signature value.
type SignaturePacket struct {
	Signature  *Signature
	HashPrefix [2]byte
	Value      SignatureValue
}

// ParseSignaturePacket reads a complete signature packet body from dec,
// which must contain nothing else.
func ParseSignaturePacket(dec *Decoder) (*SignaturePacket, error) {
	sig, err := ParseSignature(dec)
	if err != nil {
		return nil, err
	}

	packet := &SignaturePacket{Signature: sig}
	prefix, err := dec.ExtractBytes(len(packet.HashPrefix))
	if err != nil {
		return nil, withField("hash prefix", err)
	}
	copy(packet.HashPrefix[:], prefix)

	if packet.Value, err = ParseSignatureValue(sig.PublicKeyAlgorithm(), dec); err != nil {
		return nil, withField("signature value", err)
	}
	if err := dec.expectEmpty("signature packet"); err != nil {
		return nil, err
	}
	return packet, nil
}

// ParseSignaturePacketFramed parses a signature packet including its packet
// header. Data must hold exactly one packet.
func ParseSignaturePacketFramed(data []byte) (*SignaturePacket, error) {
	dec := NewDecoder(data)
	tag, body, err := ParsePacket(dec)
	if err != nil {
		return nil, err
	}
	if tag != PacketTagSignature {
		return nil, fieldErrorf("packet tag", ErrFormat, "expected signature packet (2), found %d", tag)
	}
	if err := dec.expectEmpty("packet"); err != nil {
		return nil, err
	}
	return ParseSignaturePacket(body)
}

func (packet *SignaturePacket) Size() int {
	return packet.Signature.Size() + len(packet.HashPrefix) + packet.Value.Size()
}

func (packet *SignaturePacket) Encode(w Sink) error {
	if packet.Value.Algorithm() != packet.Signature.PublicKeyAlgorithm() {
		return fieldErrorf(
			"signature value", ErrFormat,
			"%s value in a %s signature",
			packet.Value.Algorithm(), packet.Signature.PublicKeyAlgorithm(),
		)
	}
	if err := packet.Signature.Encode(w); err != nil {
		return err
	}
	if err := w.InsertBytes(packet.HashPrefix[:]); err != nil {
		return withField("hash prefix", err)
	}
	return withField("signature value", packet.Value.Encode(w))
}

// EncodePacket encodes the signature as a framed OpenPGP packet.
func (packet *SignaturePacket) EncodePacket() ([]byte, error) {
	body, err := Marshal(packet)
	if err != nil {
		return nil, err
	}
	return EncodePacket(PacketTagSignature, body)
}
