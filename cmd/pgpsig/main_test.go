package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kklash/pgpsig/pgp"
)

func TestMain(m *testing.M) {
	cmd := exec.Command("go", "build")
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			err = fmt.Errorf("%w: %s", err, exitErr.Stderr)
		}
		fmt.Fprintf(os.Stderr, "failed to build binary: %s\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

const testSeedHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestPgpsigCLI(t *testing.T) {
	tempDir := t.TempDir()
	dataFile := filepath.Join(tempDir, "data.txt")
	sigFile := filepath.Join(tempDir, "data.txt.sig")
	require.NoError(t, os.WriteFile(dataFile, []byte("hello world\n"), 0600))

	t.Run("seed", func(t *testing.T) {
		stdout, err := exec.Command("./pgpsig", "seed").Output()
		require.NoError(t, err)

		seedHex := strings.TrimSpace(string(stdout))
		assert.Len(t, seedHex, 64)
	})

	t.Run("pubkey", func(t *testing.T) {
		stdout, err := exec.Command("./pgpsig", "pubkey", "-seed", testSeedHex, "-armor").Output()
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(stdout, []byte("-----BEGIN PGP PUBLIC KEY BLOCK-----")))
		assert.Contains(t, string(stdout), "-----END PGP PUBLIC KEY BLOCK-----")
	})

	t.Run("pubkey with user ID", func(t *testing.T) {
		cmd := exec.Command(
			"./pgpsig", "pubkey", "-seed", testSeedHex, "-algo", "p256",
			"-name", "alice", "-email", "alice@example.com", "-key-expiry", "1y",
		)
		stdout, err := cmd.Output()
		require.NoError(t, err)

		dec := pgp.NewDecoder(stdout)
		for _, expectedTag := range []pgp.PacketTag{pgp.PacketTagPublicKey, pgp.PacketTagUserID, pgp.PacketTagSignature} {
			tag, _, err := pgp.ParsePacket(dec)
			require.NoError(t, err)
			assert.Equal(t, expectedTag, tag)
		}
		assert.True(t, dec.Empty())

		err = exec.Command("./pgpsig", "pubkey", "-seed", testSeedHex, "-key-expiry", "1y").Run()
		assert.Error(t, err)
	})

	t.Run("sign binary", func(t *testing.T) {
		for _, algo := range []string{"ed25519", "secp256k1", "p256", "p384"} {
			cmd := exec.Command("./pgpsig", "sign", "-seed", testSeedHex, "-algo", algo, "-in", dataFile)
			stdout, err := cmd.Output()
			require.NoError(t, err, algo)

			// new-format signature packet tag
			require.NotEmpty(t, stdout, algo)
			assert.Equal(t, byte(0xC2), stdout[0], algo)
		}
	})

	t.Run("sign armored and inspect", func(t *testing.T) {
		cmd := exec.Command("./pgpsig", "sign", "-seed", testSeedHex, "-algo", "secp256k1", "-armor", "-expiry", "2y")
		cmd.Stdin = bytes.NewReader([]byte("hello world\n"))
		stdout, err := cmd.Output()
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(stdout, []byte("-----BEGIN PGP SIGNATURE-----")))
		require.NoError(t, os.WriteFile(sigFile, stdout, 0600))

		stdout, err = exec.Command("./pgpsig", "inspect", sigFile).Output()
		require.NoError(t, err)

		output := string(stdout)
		assert.Contains(t, output, "ECDSA (19)")
		assert.Contains(t, output, "SHA256 (8)")
		assert.Contains(t, output, "expires after")
		assert.Contains(t, output, "issuer fingerprint v4")
	})

	t.Run("sign without seed", func(t *testing.T) {
		err := exec.Command("./pgpsig", "sign", "-in", dataFile).Run()
		require.Error(t, err)
	})

	t.Run("inspect garbage", func(t *testing.T) {
		cmd := exec.Command("./pgpsig", "inspect")
		cmd.Stdin = bytes.NewReader([]byte{0xC2, 0x05, 0x04, 0x00})
		err := cmd.Run()
		require.Error(t, err)
	})
}
