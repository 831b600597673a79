package xorfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmpty(t *testing.T) {
	_, err := Build[uint8](nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Build[uint64]([][]byte{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildTinySets(t *testing.T) {
	one := [][]byte{[]byte("solo")}
	filter, err := Build[uint8](one)
	require.NoError(t, err)
	assert.Len(t, filter.Fingerprints, 3)
	assert.Equal(t, true, filter.Contains([]byte("solo")))

	two := [][]byte{[]byte("first"), []byte("second")}
	filter, err = Build[uint8](two)
	require.NoError(t, err)
	assert.Equal(t, true, filter.Contains([]byte("first")))
	assert.Equal(t, true, filter.Contains([]byte("second")))
}

func TestDuplicateKeys(t *testing.T) {
	keys := sequentialKeys(100)
	doubled := append(append([][]byte{}, keys...), keys...)

	plain, err := BuildSeeded[uint16](keys, 7)
	require.NoError(t, err)
	dup, err := BuildSeeded[uint16](doubled, 7)
	require.NoError(t, err)

	// The table is sized to the distinct key count.
	assert.Equal(t, len(plain.Fingerprints), len(dup.Fingerprints))
	for _, k := range keys {
		assert.Equal(t, true, dup.Contains(k))
	}
}

func TestDeterminism(t *testing.T) {
	keys := sequentialKeys(5000)
	a, err := BuildSeeded[uint32](keys, 12345)
	require.NoError(t, err)
	b, err := BuildSeeded[uint32](keys, 12345)
	require.NoError(t, err)
	assert.Equal(t, a.Seeds, b.Seeds)
	assert.Equal(t, a.Fingerprints, b.Fingerprints)
}

func TestConstructionExhausted(t *testing.T) {
	b := Builder[uint8]{
		// A degenerate hash gives every key the same slot triple,
		// so peeling can never succeed.
		Hash:           func(seed uint32, key []byte) uint32 { return 0 },
		RetriesPerSize: 2,
		MaxAttempts:    8,
	}
	_, err := b.BuildSeeded(sequentialKeys(16), 1)
	var exhausted *ConstructionExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 16, exhausted.Keys)
	assert.GreaterOrEqual(t, exhausted.TableSize, uint32(20))
}

func TestZeroFingerprints(t *testing.T) {
	// A fingerprint of zero is a legitimate value, not an
	// "unassigned" sentinel: a filter where every key digests to
	// zero must still hold the XOR invariant for every key.
	b := Builder[uint16]{
		Fingerprint: func(key []byte) uint64 { return 0 },
	}
	keys := sequentialKeys(500)
	filter, err := b.BuildSeeded(keys, 99)
	require.NoError(t, err)
	for _, k := range keys {
		assert.Equal(t, true, filter.Contains(k))
	}
}

func TestDedup(t *testing.T) {
	keys := [][]byte{
		[]byte("a"), []byte("b"), []byte("a"), []byte("c"), []byte("b"),
	}
	out := dedup(keys)
	require.Len(t, out, 3)
	assert.Equal(t, []byte("a"), out[0])
	assert.Equal(t, []byte("b"), out[1])
	assert.Equal(t, []byte("c"), out[2])
}

func TestTableSize(t *testing.T) {
	assert.Equal(t, uint32(3), tableSize(1))
	assert.Equal(t, uint32(3), tableSize(2))
	assert.Equal(t, uint32(4), tableSize(3))
	assert.Equal(t, uint32(123), tableSize(100))
	assert.Equal(t, uint32(12300), tableSize(10000))
}
