package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/kklash/pgpsig"
	"github.com/kklash/pgpsig/pgp"
)

var hashFunctionsByName = map[string]pgp.HashFuncID{
	"sha256":   pgp.HashFuncSHA256,
	"sha3-256": pgp.HashFuncSHA3_256,
}

type SignOptions struct {
	Common KeyOptions
	Input  string
	Hash   string
	Expiry string
	Text   bool
}

var SignCommand = &Command[SignOptions]{
	Name:        "pgpsig sign",
	Description: "Make a detached OpenPGP signature over a file or stdin, with a key derived from a seed.",
	UsageExamples: []string{
		"pgpsig sign -seed HEX -in release.tar.gz > release.tar.gz.sig",
		"pgpsig sign -seed HEX -algo secp256k1 -armor < message.txt",
		"pgpsig sign -seed HEX -expiry 2y -armor -in message.txt",
	},
	AddFlags: func(flags *flag.FlagSet, opts *SignOptions) {
		opts.Common.AddFlags(flags)

		flags.StringVar(
			&opts.Input,
			"in",
			"",
			justifyOptionDescription("Read the data to sign from this `file` instead of stdin. (optional)"),
		)
		flags.StringVar(
			&opts.Hash,
			"hash",
			"sha256",
			justifyOptionDescription("Hash function: sha256 or sha3-256. (optional)"),
		)
		flags.StringVar(
			&opts.Expiry,
			"expiry",
			"",
			justifyOptionDescription(
				"Expire the signature this `period` after it is made. "+expiryFormatHelp+" (optional)",
			),
		)
		flags.BoolVar(
			&opts.Text,
			"text",
			false,
			justifyOptionDescription("Mark the signature as made over text rather than binary data. (optional)"),
		)
	},
	Execute: func(opts *SignOptions, args []string) error {
		logger := newLogger(opts.Common.Verbose)

		hashFunction, ok := hashFunctionsByName[strings.ToLower(opts.Hash)]
		if !ok {
			return fmt.Errorf("%w: unsupported hash function %q", ErrPrintUsage, opts.Hash)
		}

		signOpts := &pgpsig.SignOptions{HashFunction: hashFunction}
		if opts.Text {
			signOpts.Type = pgp.SignatureTypeText
		}
		if opts.Expiry != "" {
			expiry, err := parseExpiry(opts.Expiry)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrPrintUsage, err)
			}
			signOpts.Expiry = expiry
		}

		signer, err := opts.Common.Signer(logger)
		if err != nil {
			return err
		}

		data, err := readInput(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		logger.Debug().Int("bytes", len(data)).Str("hash", opts.Hash).Msg("signing input")

		packet, err := signer.SignDetached(data, signOpts)
		if err != nil {
			return fmt.Errorf("failed to sign: %w", err)
		}
		logger.Debug().Int("packet_size", len(packet)).Msg("signature created")

		return writePackets(packet, opts.Common.Armor, pgpsig.ArmorSignature)
	},
}
