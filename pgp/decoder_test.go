package pgp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderExtractBits(t *testing.T) {
	dec := NewDecoder([]byte{0b1011_0011, 0xFF})

	value, err := dec.ExtractBits(3)
	require.NoError(t, err)
	assert.Equal(t, uint8(0b101), value)

	_, err = dec.ExtractBits(6)
	require.ErrorIs(t, err, ErrBoundary)

	_, err = dec.ExtractUint8()
	require.ErrorIs(t, err, ErrBoundary)

	value, err = dec.ExtractBits(5)
	require.NoError(t, err)
	assert.Equal(t, uint8(0b10011), value)

	value, err = dec.ExtractBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), value)
	assert.True(t, dec.Empty())

	_, err = dec.ExtractBits(1)
	require.ErrorIs(t, err, ErrFormat)
}

func TestDecoderExtractIntegers(t *testing.T) {
	dec := NewDecoder([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})

	n8, err := dec.ExtractUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), n8)

	n16, err := dec.ExtractUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), n16)

	n32, err := dec.ExtractUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04050607), n32)

	_, err = dec.ExtractUint32()
	require.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, 2, dec.Len())

	rest, err := dec.ExtractBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{8, 9}, rest)
	assert.True(t, dec.Empty())
}

func TestDecoderExtractBytesDoesNotAlias(t *testing.T) {
	input := []byte{1, 2, 3}
	dec := NewDecoder(input)

	b, err := dec.ExtractBytes(3)
	require.NoError(t, err)
	b[0] = 99
	assert.Equal(t, byte(1), input[0])
}

func TestDecoderSub(t *testing.T) {
	dec := NewDecoder([]byte{1, 2, 3, 4})

	sub, err := dec.Sub(2)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, 2, dec.Len())

	_, err = sub.ExtractUint32()
	require.ErrorIs(t, err, ErrFormat)

	require.ErrorIs(t, sub.expectEmpty("region"), ErrFormat)
	_, err = sub.ExtractUint16()
	require.NoError(t, err)
	require.NoError(t, sub.expectEmpty("region"))

	_, err = dec.Sub(3)
	require.ErrorIs(t, err, ErrFormat)
	_, err = dec.Sub(-1)
	require.ErrorIs(t, err, ErrFormat)
}
