package main

import (
	"errors"
	"fmt"
	"os"
)

type RootOptions struct {
}

var RootCommand = &Command[RootOptions]{
	Name:        "pgpsig",
	Description: "Make and inspect OpenPGP signatures with keys derived from a seed.",
	UsageExamples: []string{
		"pgpsig <command> [options]",
		"pgpsig seed",
		"pgpsig pubkey -seed HEX -algo ed25519",
		"pgpsig sign -seed HEX -algo secp256k1 -armor < file",
		"pgpsig inspect file.sig",
	},
	Subcommands: map[string]Runner{
		"seed":    SeedCommand,
		"pubkey":  PubkeyCommand,
		"sign":    SignCommand,
		"inspect": InspectCommand,
	},
}

func main() {
	err := RootCommand.Run(os.Args[1:])
	if err != nil && !errors.Is(err, ErrHelpShown) {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}
