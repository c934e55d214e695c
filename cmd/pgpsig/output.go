package main

import (
	"errors"
	"io"
	"os"
)

// ErrBinaryToTerminal is returned when binary packets would be written to a terminal.
var ErrBinaryToTerminal = errors.New("refusing to write binary packets to a terminal; use -armor")

// writePackets writes binary packets to stdout, or their ASCII armor encoding
// if armored is true.
func writePackets(packets []byte, armored bool, armorFunc func([]byte) (string, error)) error {
	if !armored {
		if isTerminal(os.Stdout) {
			return ErrBinaryToTerminal
		}
		_, err := os.Stdout.Write(packets)
		return err
	}

	armoredPackets, err := armorFunc(packets)
	if err != nil {
		return err
	}
	_, err = io.WriteString(os.Stdout, colorize(os.Stdout, magenta, armoredPackets)+"\n")
	return err
}

// readInput reads the whole file at path, or stdin if path is empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
