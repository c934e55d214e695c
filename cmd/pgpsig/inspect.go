package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kklash/pgpsig"
	"github.com/kklash/pgpsig/pgp"
)

type InspectOptions struct {
	Verbose bool
}

var InspectCommand = &Command[InspectOptions]{
	Name:        "pgpsig inspect",
	Description: "Parse a binary or ASCII armored OpenPGP signature packet and print its fields.",
	UsageExamples: []string{
		"pgpsig inspect file.sig",
		"pgpsig inspect < file.asc",
	},
	AddFlags: func(flags *flag.FlagSet, opts *InspectOptions) {
		flags.BoolVar(&opts.Verbose, "v", false, justifyOptionDescription("Log debug information to stderr. (optional)"))
	},
	Execute: func(opts *InspectOptions, args []string) error {
		logger := newLogger(opts.Verbose)
		if len(args) > 1 {
			return fmt.Errorf("%w: too many arguments", ErrPrintUsage)
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}
		data, err := readInput(path)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		logger.Debug().Int("bytes", len(data)).Bool("armored", pgpsig.IsArmored(data)).Msg("read signature")

		packet, err := pgpsig.Inspect(data)
		if err != nil {
			return err
		}
		printDebugInfo(os.Stdout, describeSignature(packet))
		return nil
	},
}

// describeSignature lists the fields of a signature packet as labeled strings.
func describeSignature(packet *pgp.SignaturePacket) [][2]string {
	sig := packet.Signature
	info := [][2]string{
		{"Version", strconv.Itoa(int(sig.Version()))},
		{"Type", fmt.Sprintf("0x%02X", byte(sig.Type()))},
		{"Public key algorithm", fmt.Sprintf("%s (%d)", sig.PublicKeyAlgorithm(), sig.PublicKeyAlgorithm())},
		{"Hash function", fmt.Sprintf("%s (%d)", sig.HashFunction(), sig.HashFunction())},
	}

	info = append(info, describeSubpackets("Hashed", sig.HashedSubpackets())...)
	info = append(info, describeSubpackets("Unhashed", sig.UnhashedSubpackets())...)

	info = append(info,
		[2]string{"Hash prefix", hex.EncodeToString(packet.HashPrefix[:])},
		[2]string{"R", fmt.Sprintf("%X (%d bits)", packet.Value.R().Bytes(), packet.Value.R().BitLength())},
		[2]string{"S", fmt.Sprintf("%X (%d bits)", packet.Value.S().Bytes(), packet.Value.S().BitLength())},
	)
	return info
}

func describeSubpackets(prefix string, set pgp.SubpacketSet) [][2]string {
	info := make([][2]string, 0, len(set))
	for _, sp := range set {
		key := fmt.Sprintf("%s subpacket %d", prefix, sp.Type())
		info = append(info, [2]string{key, describeSubpacket(sp)})
	}
	return info
}

func describeSubpacket(sp pgp.Subpacket) string {
	switch sp := sp.(type) {
	case *pgp.TimeSubpacket:
		if sp.Type() == pgp.SubpacketTypeCreationTime {
			return "created " + sp.Time().UTC().Format(time.RFC3339)
		}
		return "expires after " + sp.Duration().String()
	case *pgp.IssuerSubpacket:
		return fmt.Sprintf("issuer %X", sp.KeyID)
	case *pgp.IssuerFingerprintSubpacket:
		return fmt.Sprintf("issuer fingerprint v%d %X", sp.KeyVersion, sp.Fingerprint)
	case *pgp.KeyFlagsSubpacket:
		return fmt.Sprintf("key flags 0x%02X", byte(sp.Flags()))
	case *pgp.PreferencesSubpacket:
		algorithms := make([]string, len(sp.Algorithms))
		for i, alg := range sp.Algorithms {
			algorithms[i] = strconv.Itoa(int(alg))
		}
		return "preferences " + strings.Join(algorithms, ",")
	case *pgp.OpaqueSubpacket:
		return fmt.Sprintf("opaque %X", sp.Body)
	}
	return "unknown"
}
