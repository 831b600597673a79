package xorfilter

// Unsigned covers the supported fingerprint widths.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// HashFunc maps a seed and a key to a 32-bit hash. Each of the three
// table bands uses its own seed.
type HashFunc func(seed uint32, key []byte) uint32

// FingerprintFunc reduces a key to a 64-bit digest; a filter of width
// T keeps the low bits that fit T.
type FingerprintFunc func(key []byte) uint64

// Xor is a static xor filter over byte-string keys with fingerprints
// of width T. It has no false negatives and a false-positive
// probability of about 2^-w for a w-bit T. Once built it is immutable
// and safe for concurrent readers.
type Xor[T Unsigned] struct {
	Seeds        [3]uint32
	Fingerprints []T

	hash HashFunc
	fp   FingerprintFunc
}

// Xor8 offers a ~0.39% false-positive probability.
type Xor8 = Xor[uint8]

// Xor16 offers a ~0.0015% false-positive probability.
type Xor16 = Xor[uint16]

type Xor32 = Xor[uint32]

type Xor64 = Xor[uint64]

type Filter interface {
	Contains(key []byte) bool
}

var _ Filter = (*Xor8)(nil)

// slotSet tracks, for one table slot, how many not-yet-peeled keys
// reference it and the XOR of those keys' indices. When count is 1
// the xor names the lone key outright.
type slotSet struct {
	keyxor uint32
	count  uint32
}

// peelRecord pairs a key with the slot that was referenced by that
// key alone at the moment it was peeled.
type peelRecord struct {
	key  uint32
	slot uint32
}
