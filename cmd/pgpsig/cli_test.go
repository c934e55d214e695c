package main

import (
	"bytes"
	"flag"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kklash/pgpsig/pgp"
)

func TestParseExpiry(t *testing.T) {
	cases := map[string]time.Duration{
		"90s":  90 * time.Second,
		"3h":   3 * time.Hour,
		"24d":  24 * 24 * time.Hour,
		"2W":   2 * 7 * 24 * time.Hour,
		"1y":   365 * 24 * time.Hour,
		"1y6m": 365 * 24 * time.Hour * 3 / 2,
		"1d0h": 24 * time.Hour,
	}
	for input, expected := range cases {
		actual, err := parseExpiry(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, actual, input)
	}

	for _, input := range []string{"", "d", "12", "-3d", "1.5y", "4x", "0d", "1d2", "9999999999999y"} {
		_, err := parseExpiry(input)
		assert.ErrorIs(t, err, ErrInvalidExpiry, input)
	}
}

func TestCommandUsage(t *testing.T) {
	buf := new(bytes.Buffer)
	RootCommand.printUsage(buf, flag.NewFlagSet("pgpsig", flag.ContinueOnError))
	output := buf.String()

	assert.True(t, strings.HasPrefix(output, "usage: pgpsig <command> [options]\n"))
	assert.Contains(t, output, "commands:\n  inspect  Parse a binary or ASCII armored OpenPGP signature packet")
	assert.Contains(t, output, "\n  seed     Generate a new random seed and print it as hex\n")
	assert.NotContains(t, output, "options:")
	assert.Less(t, strings.Index(output, "\n  inspect "), strings.Index(output, "\n  sign "))

	assert.Equal(t, "Derive a signing key from a seed and output its OpenPGP public key", PubkeyCommand.Synopsis())
}

func TestCommandDispatch(t *testing.T) {
	err := RootCommand.dispatch(nil)
	assert.ErrorIs(t, err, ErrPrintUsage)

	err = RootCommand.dispatch([]string{"verify"})
	assert.ErrorIs(t, err, ErrPrintUsage)
	assert.Contains(t, err.Error(), `no command "verify"`)

	assert.ErrorIs(t, SeedCommand.Run([]string{"help"}), ErrHelpShown)
}

func TestKeyOptionsCreatedRange(t *testing.T) {
	for _, created := range []int64{-1, 1 << 32} {
		opts := &KeyOptions{SeedHex: strings.Repeat("ab", 32), KeyType: "ed25519", Created: created}
		_, err := opts.Signer(zerolog.Nop())
		assert.ErrorIs(t, err, ErrPrintUsage, "created %d", created)
	}
}

func TestJustifyWidth(t *testing.T) {
	justified := justifyWidth(2, 10, "one two three four")
	assert.Equal(t, "  one two\n  three four", justified)

	justified = justifyWidth(0, 4, "extraordinarily long")
	assert.Equal(t, "extraordinarily\nlong", justified)
}

func TestWriteDebugInfo(t *testing.T) {
	buf := new(bytes.Buffer)
	writeDebugInfo(buf, [][2]string{{"A", "1"}, {"Longer", "2"}}, false)
	assert.Equal(t, "A:      1\nLonger: 2\n", buf.String())
}

func TestDescribeSignature(t *testing.T) {
	fingerprint := bytes.Repeat([]byte{0xAB}, 20)
	issuer, err := pgp.NewIssuerSubpacket(fingerprint)
	require.NoError(t, err)
	creation, err := pgp.NewCreationTimeSubpacket(time.Unix(1700000000, 0))
	require.NoError(t, err)

	sig, err := pgp.NewSignature(
		pgp.SignatureTypeBinary,
		pgp.PublicKeyAlgorithmEdDSA,
		pgp.HashFuncSHA256,
		pgp.SubpacketSet{
			pgp.NewIssuerFingerprintSubpacket(fingerprint),
			creation,
			&pgp.OpaqueSubpacket{Tag: 99, Body: []byte{1, 2}},
		},
		pgp.SubpacketSet{issuer},
	)
	require.NoError(t, err)

	packet := &pgp.SignaturePacket{
		Signature:  sig,
		HashPrefix: [2]byte{0xCA, 0xFE},
		Value: pgp.NewEdDSASignatureValue(
			pgp.NewMPI(big.NewInt(0x1234)),
			pgp.NewMPI(big.NewInt(7)),
		),
	}

	buf := new(bytes.Buffer)
	writeDebugInfo(buf, describeSignature(packet), false)
	output := buf.String()

	assert.Contains(t, output, "EdDSA (22)")
	assert.Contains(t, output, "created 2023-11-14T22:13:20Z")
	assert.Contains(t, output, "issuer ABABABABABABABAB")
	assert.Contains(t, output, "opaque 0102")
	assert.Contains(t, output, "cafe")
	assert.Contains(t, output, "1234 (13 bits)")
	assert.Equal(t, 11, strings.Count(output, "\n"))
}
