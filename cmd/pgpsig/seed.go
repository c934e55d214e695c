package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"

	"github.com/kklash/pgpsig"
)

type SeedOptions struct {
	Bits uint
}

var SeedCommand = &Command[SeedOptions]{
	Name:        "pgpsig seed",
	Description: "Generate a new random seed and print it as hex. Keep it secret: anyone who has the seed can sign with its keys.",
	UsageExamples: []string{
		"pgpsig seed",
		"pgpsig seed -bits 512",
	},
	AddFlags: func(flags *flag.FlagSet, opts *SeedOptions) {
		flags.UintVar(
			&opts.Bits,
			"bits",
			256,
			justifyOptionDescription(
				fmt.Sprintf("Bits of entropy in the seed. Must be a multiple of 8, at least %d. (optional)", pgpsig.MinSeedSize*8),
			),
		)
	},
	Execute: func(opts *SeedOptions, args []string) error {
		if opts.Bits%8 != 0 || opts.Bits < pgpsig.MinSeedSize*8 {
			return fmt.Errorf("%w: invalid seed size %d", ErrPrintUsage, opts.Bits)
		}
		seed, err := pgpsig.GenerateSeed(rand.Reader, opts.Bits)
		if err != nil {
			return err
		}
		fmt.Println(colorize(os.Stdout, bold, seed.Hex()))
		return nil
	},
}
