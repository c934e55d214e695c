package pgpsig

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// MinSeedSize is the smallest accepted seed length in bytes.
const MinSeedSize = 16

// ErrSeedTooShort is returned when a seed holds less than MinSeedSize bytes.
var ErrSeedTooShort = errors.New("seed is too short")

// Seed represents a seed which was generated with a specific number of bits of entropy.
//
// Byte-representations of that seed should always be a fixed size, regardless of the
// actual integer value of the seed.
type Seed struct {
	Value           *big.Int
	EntropyBitCount uint
}

func NewSeed(entropyInt *big.Int, entropyBitCount uint) *Seed {
	return &Seed{
		Value:           entropyInt,
		EntropyBitCount: entropyBitCount,
	}
}

// GenerateSeed generates a random Seed of a given bit size using the given random source.
func GenerateSeed(random io.Reader, entropyBitCount uint) (*Seed, error) {
	if entropyBitCount < MinSeedSize*8 {
		return nil, fmt.Errorf("%w: %d bits", ErrSeedTooShort, entropyBitCount)
	}

	maxSeedInt := new(big.Int).Lsh(bigOne, entropyBitCount)
	entropyInt, err := rand.Int(random, maxSeedInt)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to generate %d bits of secure random seed data: %w",
			entropyBitCount, err,
		)
	}

	return NewSeed(entropyInt, entropyBitCount), nil
}

// ParseSeedHex decodes a hex-encoded seed. Leading zero digits count toward
// the seed's size.
func ParseSeedHex(s string) (*Seed, error) {
	seedBytes, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode seed hex: %w", err)
	}
	if len(seedBytes) < MinSeedSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSeedTooShort, len(seedBytes))
	}
	return NewSeed(new(big.Int).SetBytes(seedBytes), uint(len(seedBytes))*8), nil
}

// Bytes returns the big-endian byte representation of seed.Value. Its length will be:
//
//	ceil(seed.EntropyBitCount / 8)
func (seed *Seed) Bytes() []byte {
	return seed.Value.FillBytes(make([]byte, (seed.EntropyBitCount+7)/8))
}

// Hex returns the hex encoding of seed.Bytes().
func (seed *Seed) Hex() string {
	return hex.EncodeToString(seed.Bytes())
}
