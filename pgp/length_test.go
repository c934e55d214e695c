package pgp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableNumber(t *testing.T) {
	cases := []struct {
		n       VariableNumber
		encoded []byte
	}{
		{0, []byte{0x00}},
		{100, []byte{0x64}},
		{191, []byte{0xBF}},
		{192, []byte{0xC0, 0x00}},
		{1000, []byte{0xC3, 0x28}},
		{8383, []byte{0xDF, 0xFF}},
		{8384, []byte{0xFF, 0x00, 0x00, 0x20, 0xC0}},
		{100000, []byte{0xFF, 0x00, 0x01, 0x86, 0xA0}},
	}

	for _, tc := range cases {
		encoded, err := Marshal(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.encoded, encoded, "encoding %d", tc.n)
		assert.Equal(t, len(tc.encoded), tc.n.Size())

		decoded, err := DecodeVariableNumber(NewDecoder(tc.encoded))
		require.NoError(t, err)
		assert.Equal(t, tc.n, decoded)
	}
}

func TestDecodeVariableNumberErrors(t *testing.T) {
	for _, input := range [][]byte{
		{},
		{0xC5},
		{0xFF, 0x00, 0x01},
		{0xE0},
		{0xFE},
	} {
		_, err := DecodeVariableNumber(NewDecoder(input))
		assert.ErrorIs(t, err, ErrFormat, "input %X", input)
	}
}
