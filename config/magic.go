package config

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
)

// MagicSource hands out magic numbers used to tag a strategy's orders.
type MagicSource interface {
	NextMagic() uint64
}

// MagicFunc adapts a plain function to MagicSource.
type MagicFunc func() uint64

func (f MagicFunc) NextMagic() uint64 { return f() }

// UUIDMagic derives magic numbers from random UUIDs. It is the default source.
type UUIDMagic struct{}

func (UUIDMagic) NextMagic() uint64 {
	u := uuid.New()
	return binary.BigEndian.Uint64(u[:8]) ^ binary.BigEndian.Uint64(u[8:])
}

// SeededMagic yields a reproducible sequence, for tests and replays.
type SeededMagic struct {
	rng *rand.Rand
}

func NewSeededMagic(seed uint64) *SeededMagic {
	return &SeededMagic{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededMagic) NextMagic() uint64 { return s.rng.Uint64() }
