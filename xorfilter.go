package xorfilter

import (
	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

func defaultHash(seed uint32, key []byte) uint32 {
	return murmur3.Sum32WithSeed(key, seed)
}

func defaultFingerprint(key []byte) uint64 {
	return xxhash.Sum64(key)
}

func (filter *Xor[T]) hashFn() HashFunc {
	if filter.hash == nil {
		return defaultHash
	}
	return filter.hash
}

func (filter *Xor[T]) fpFn() FingerprintFunc {
	if filter.fp == nil {
		return defaultFingerprint
	}
	return filter.fp
}

// Contains tells you whether the key is likely part of the set.
func (filter *Xor[T]) Contains(key []byte) bool {
	b := tableBands(uint32(len(filter.Fingerprints)))
	i0, i1, i2 := b.indexes(filter.hashFn(), filter.Seeds, key)
	x := filter.Fingerprints[i0] ^ filter.Fingerprints[i1] ^ filter.Fingerprints[i2]
	return x == T(filter.fpFn()(key))
}
