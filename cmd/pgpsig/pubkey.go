package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kklash/pgpsig"
	"github.com/kklash/pgpsig/pgp"
)

type PubkeyOptions struct {
	Common    KeyOptions
	Name      string
	Email     string
	KeyExpiry string
}

var PubkeyCommand = &Command[PubkeyOptions]{
	Name: "pgpsig pubkey",
	Description: "Derive a signing key from a seed and output its OpenPGP public key. If a name or email " +
		"is given, the key is output with a self-certified user ID, which is needed to import it into GnuPG.",
	UsageExamples: []string{
		"pgpsig pubkey -seed HEX",
		"pgpsig pubkey -seed HEX -algo p256 -armor",
		"pgpsig pubkey -seed HEX -name username -email user@domain.com -armor | gpg --import",
	},
	AddFlags: func(flags *flag.FlagSet, opts *PubkeyOptions) {
		opts.Common.AddFlags(flags)

		flags.StringVar(
			&opts.Name,
			"name",
			"",
			justifyOptionDescription("Display name for the certified user ID. (optional)"),
		)

		flags.StringVar(
			&opts.Email,
			"email",
			"",
			justifyOptionDescription("Email address for the certified user ID. (optional)"),
		)

		flags.StringVar(
			&opts.KeyExpiry,
			"key-expiry",
			"",
			justifyOptionDescription(
				"Expire the certified key this `period` after its creation time. "+
					expiryFormatHelp+" (optional)",
			),
		)
	},
	Execute: func(opts *PubkeyOptions, args []string) error {
		logger := newLogger(opts.Common.Verbose)

		signer, err := opts.Common.Signer(logger)
		if err != nil {
			return err
		}

		var keyExpiry time.Duration
		if opts.KeyExpiry != "" {
			if keyExpiry, err = parseExpiry(opts.KeyExpiry); err != nil {
				return fmt.Errorf("%w: %s", ErrPrintUsage, err)
			}
		}

		var packets []byte
		if opts.Name == "" && opts.Email == "" {
			if keyExpiry != 0 {
				return fmt.Errorf("%w: -key-expiry requires -name or -email", ErrPrintUsage)
			}
			packets, err = signer.EncodePublicKey()
		} else {
			var keySet *pgp.KeySet
			userID := &pgp.UserID{Name: opts.Name, Email: opts.Email}
			if keySet, err = signer.SelfCertify(userID, keyExpiry); err != nil {
				return err
			}
			logger.Debug().Str("user_id", userID.String()).Msg("self-certified user ID")
			packets, err = keySet.EncodePackets()
		}
		if err != nil {
			return err
		}

		if opts.Common.Verbose {
			printDebugInfo(os.Stderr, [][2]string{
				{"Key type", string(signer.KeyType())},
				{"Fingerprint", fmt.Sprintf("%X", signer.FingerprintV4())},
				{"Created at", signer.CreatedAt().UTC().Format(time.RFC3339)},
			})
		}
		return writePackets(packets, opts.Common.Armor, pgpsig.ArmorPublicKey)
	},
}
