package xorfilter

// bands is the partition of a table of m slots into three disjoint,
// contiguous index ranges, one per hash function. When m is not a
// multiple of 3 the remainder goes to band 0, then band 1.
type bands struct {
	start [3]uint32
	width [3]uint32
}

func tableBands(m uint32) bands {
	q, r := m/3, m%3
	var b bands
	b.width[0] = q
	if r >= 1 {
		b.width[0]++
	}
	b.width[1] = q
	if r == 2 {
		b.width[1]++
	}
	b.width[2] = q
	b.start[1] = b.width[0]
	b.start[2] = b.width[0] + b.width[1]
	return b
}

// indexes maps a key to one slot per band. Bands are disjoint, so the
// three indices are distinct even when the raw hash values coincide.
func (b bands) indexes(hash HashFunc, seeds [3]uint32, key []byte) (uint32, uint32, uint32) {
	i0 := b.start[0] + hash(seeds[0], key)%b.width[0]
	i1 := b.start[1] + hash(seeds[1], key)%b.width[1]
	i2 := b.start[2] + hash(seeds[2], key)%b.width[2]
	return i0, i1, i2
}
