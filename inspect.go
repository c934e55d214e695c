package pgpsig

import (
	"bytes"

	"github.com/kklash/pgpsig/pgp"
)

var armorHeaderPrefix = []byte("-----BEGIN ")

// IsArmored returns true if data looks like an ASCII armor block.
func IsArmored(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), armorHeaderPrefix)
}

// Inspect parses a single framed signature packet, in either binary or
// ASCII armored form.
func Inspect(data []byte) (*pgp.SignaturePacket, error) {
	if IsArmored(data) {
		var err error
		if data, err = DearmorSignature(data); err != nil {
			return nil, err
		}
	}
	return pgp.ParseSignaturePacketFramed(data)
}
