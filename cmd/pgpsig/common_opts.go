package main

import (
	"flag"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kklash/pgpsig"
)

// KeyOptions is the set of options common to every command which derives a key.
type KeyOptions struct {
	SeedHex string
	KeyType string
	Label   string
	Created int64
	Armor   bool
	Verbose bool
}

func keyTypeNames() string {
	names := make([]string, len(pgpsig.KeyTypes))
	for i, keyType := range pgpsig.KeyTypes {
		names[i] = string(keyType)
	}
	return strings.Join(names, ", ")
}

// AddFlags registers the common set of options as command line flags.
func (opts *KeyOptions) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(
		&opts.SeedHex,
		"seed",
		"",
		justifyOptionDescription(
			fmt.Sprintf("Hex-encoded seed of at least %d bytes to derive the key from.", pgpsig.MinSeedSize),
		),
	)

	flags.StringVar(
		&opts.KeyType,
		"algo",
		string(pgpsig.KeyTypeEd25519),
		justifyOptionDescription("Type of key to derive. One of: "+keyTypeNames()+". (optional)"),
	)

	flags.StringVar(
		&opts.Label,
		"label",
		"",
		justifyOptionDescription("Derive an independent key under this label. (optional)"),
	)

	flags.Int64Var(
		&opts.Created,
		"created",
		0,
		justifyOptionDescription(
			"Key creation time as a unix timestamp. The key fingerprint depends on it, so the "+
				"same value must be given every time. Defaults to "+
				pgpsig.DefaultKeyCreation.Format(time.DateOnly)+". (optional)",
		),
	)

	flags.BoolVar(
		&opts.Armor,
		"armor",
		false,
		justifyOptionDescription("Output ASCII armor instead of binary packets. (optional)"),
	)

	flags.BoolVar(
		&opts.Verbose,
		"v",
		false,
		justifyOptionDescription("Log debug information to stderr. (optional)"),
	)
}

// Signer derives the signer described by the options.
func (opts *KeyOptions) Signer(logger zerolog.Logger) (*pgpsig.Signer, error) {
	if opts.SeedHex == "" {
		return nil, fmt.Errorf("%w: missing -seed", ErrPrintUsage)
	}
	seed, err := pgpsig.ParseSeedHex(strings.TrimSpace(opts.SeedHex))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPrintUsage, err)
	}

	var creation time.Time
	if opts.Created < 0 || opts.Created > math.MaxUint32 {
		return nil, fmt.Errorf("%w: -created %d is not a 32-bit unix timestamp", ErrPrintUsage, opts.Created)
	} else if opts.Created != 0 {
		creation = time.Unix(opts.Created, 0)
	}

	signer, err := pgpsig.NewSigner(seed, pgpsig.KeyType(opts.KeyType), opts.Label, creation)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("algo", string(signer.KeyType())).
		Str("label", opts.Label).
		Time("created", signer.CreatedAt()).
		Str("fingerprint", fmt.Sprintf("%X", signer.FingerprintV4())).
		Msg("derived signing key")
	return signer, nil
}
