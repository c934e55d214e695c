package pgpsig

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
)

// ErrUnexpectedArmorType is returned when dearmoring a block whose type does
// not match the one expected.
var ErrUnexpectedArmorType = errors.New("unexpected armor block type")

// ArmorSignature formats binary signature packets as an ASCII armor block.
func ArmorSignature(packets []byte) (string, error) {
	return armorEncode(openpgp.SignatureType, packets)
}

// ArmorPublicKey formats binary public key packets as an ASCII armor block.
func ArmorPublicKey(packets []byte) (string, error) {
	return armorEncode(openpgp.PublicKeyType, packets)
}

// DearmorSignature decodes an ASCII armored signature block into binary packets.
func DearmorSignature(armored []byte) ([]byte, error) {
	return armorDecode(openpgp.SignatureType, armored)
}

func armorEncode(blockType string, data []byte) (string, error) {
	buf := new(bytes.Buffer)
	armorWriter, err := armor.Encode(buf, blockType, nil)
	if err != nil {
		return "", fmt.Errorf("failed to construct armor encoder: %w", err)
	}
	if _, err := armorWriter.Write(data); err != nil {
		return "", fmt.Errorf("failed to write PGP packets to armor encoder: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to close PGP armor encoder: %w", err)
	}
	return buf.String(), nil
}

func armorDecode(blockType string, armored []byte) ([]byte, error) {
	block, err := armor.Decode(bytes.NewReader(armored))
	if err != nil {
		return nil, fmt.Errorf("failed to decode PGP armor: %w", err)
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("%w: found %q, expected %q", ErrUnexpectedArmorType, block.Type, blockType)
	}
	data, err := io.ReadAll(block.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read PGP armor body: %w", err)
	}
	return data, nil
}
