package xorfilter

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrEmptyInput is returned by Build when the key set is empty.
var ErrEmptyInput = errors.New("xorfilter: empty key set")

// ConstructionExhaustedError is returned when no seed draw produced a
// peelable table within the retry budget. Callers hitting it should
// widen the fingerprint or restructure the key set; the core does not
// recover further.
type ConstructionExhaustedError struct {
	Keys      int
	TableSize uint32
}

func (e *ConstructionExhaustedError) Error() string {
	return fmt.Sprintf("xorfilter: construction exhausted: %d keys, final table size %d",
		e.Keys, e.TableSize)
}

// Builder constructs filters of width T. The zero value is ready to
// use; fields override the default capabilities and retry policy.
type Builder[T Unsigned] struct {
	// Hash is the seeded index hash. Defaults to murmur3.
	Hash HashFunc

	// Fingerprint digests a key; the low bits that fit T are
	// stored. Defaults to xxhash.
	Fingerprint FingerprintFunc

	// RetriesPerSize bounds the seed draws attempted at one table
	// size before growing the table. Defaults to 100.
	RetriesPerSize int

	// MaxAttempts bounds the total seed draws across all table
	// sizes. Defaults to 1000.
	MaxAttempts int

	// Growth is the factor applied to the table size when all
	// retries at the current size failed. Defaults to 1.15.
	Growth float64
}

// Build constructs a filter over keys using process-level randomness;
// two builds over the same keys will generally differ. Duplicate keys
// are removed first. Keys are read during the call only, never
// retained.
func Build[T Unsigned](keys [][]byte) (*Xor[T], error) {
	var b Builder[T]
	return b.Build(keys)
}

// BuildSeeded constructs a filter deterministically: the same keys
// and seed yield a bit-identical filter.
func BuildSeeded[T Unsigned](keys [][]byte, seed uint64) (*Xor[T], error) {
	var b Builder[T]
	return b.BuildSeeded(keys, seed)
}

// Build constructs a filter over keys using process-level randomness.
func (b *Builder[T]) Build(keys [][]byte) (*Xor[T], error) {
	return b.build(keys, rand.Uint64())
}

// BuildSeeded constructs a filter deterministically from seed: every
// hash-seed draw across every attempt derives from one splitmix64
// stream, so the table size progression, peeling order and slot
// values all reproduce.
func (b *Builder[T]) BuildSeeded(keys [][]byte, seed uint64) (*Xor[T], error) {
	return b.build(keys, seed)
}

func (b *Builder[T]) build(keys [][]byte, seed uint64) (*Xor[T], error) {
	if len(keys) == 0 {
		return nil, ErrEmptyInput
	}
	hash := b.Hash
	if hash == nil {
		hash = defaultHash
	}
	fp := b.Fingerprint
	if fp == nil {
		fp = defaultFingerprint
	}
	retries := b.RetriesPerSize
	if retries <= 0 {
		retries = 100
	}
	maxAttempts := b.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1000
	}
	growth := b.Growth
	if growth <= 1 {
		growth = 1.15
	}

	keys = dedup(keys)
	n := len(keys)

	// Fingerprints depend only on key content, not on the seed
	// draws, so compute them once up front.
	fps := make([]T, n)
	for i, k := range keys {
		fps[i] = T(fp(k))
	}

	// Scratch for one construction attempt; reused across attempts,
	// discarded when build returns.
	triples := make([][3]uint32, n)
	stack := make([]peelRecord, 0, n)

	m := tableSize(n)
	rngcounter := seed
	attempts := 0
	for {
		sets := make([]slotSet, m)
		queue := make([]uint32, 0, m)
		bd := tableBands(m)
		for try := 0; try < retries; try++ {
			attempts++
			if attempts > maxAttempts {
				return nil, &ConstructionExhaustedError{Keys: n, TableSize: m}
			}
			seeds := drawSeeds(&rngcounter)
			for i, k := range keys {
				triples[i][0], triples[i][1], triples[i][2] = bd.indexes(hash, seeds, k)
			}
			order, ok := peel(triples, sets, queue, stack)
			if !ok {
				continue
			}
			filter := &Xor[T]{
				Seeds:        seeds,
				Fingerprints: make([]T, m),
				hash:         hash,
				fp:           fp,
			}
			fill(filter.Fingerprints, order, triples, fps)
			return filter, nil
		}
		m = uint32(math.Ceil(float64(m) * growth))
	}
}

// fill assigns slots in reverse peel order so that every key's slot
// triple XORs to its fingerprint. The slot written for a key is the
// one recorded at peel time; the other two already hold their final
// values when the record is popped. A slot left at zero is a valid
// final value, never a sentinel.
func fill[T Unsigned](table []T, order []peelRecord, triples [][3]uint32, fps []T) {
	for i := len(order) - 1; i >= 0; i-- {
		rec := order[i]
		val := fps[rec.key]
		for _, s := range triples[rec.key] {
			if s != rec.slot {
				val ^= table[s]
			}
		}
		table[rec.slot] = val
	}
}

// dedup keeps the first occurrence of each distinct key, preserving
// input order so seeded builds stay reproducible.
func dedup(keys [][]byte) [][]byte {
	seen := make(map[string]struct{}, len(keys))
	out := make([][]byte, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[string(k)]; ok {
			continue
		}
		seen[string(k)] = struct{}{}
		out = append(out, k)
	}
	return out
}

func tableSize(n int) uint32 {
	m := uint32(math.Ceil(1.23 * float64(n)))
	if m < 3 {
		m = 3
	}
	return m
}

// returns random number, modifies the seed
func splitmix64(seed *uint64) uint64 {
	*seed = *seed + 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// drawSeeds takes one full splitmix64 draw per band seed; the two
// words of a single draw would correlate band 0 and band 1.
func drawSeeds(rngcounter *uint64) [3]uint32 {
	var s [3]uint32
	for i := range s {
		s[i] = uint32(splitmix64(rngcounter))
	}
	return s
}
