package xorfilter

// peel computes a peeling order over all keys given each key's slot
// triple, or reports failure when a 2-core remains. Failure is an
// expected outcome that the caller answers with fresh seeds, not an
// error. The sets, queue and stack buffers are reused across attempts;
// queue needs capacity m and stack capacity len(triples).
func peel(triples [][3]uint32, sets []slotSet, queue []uint32, stack []peelRecord) ([]peelRecord, bool) {
	for i := range sets {
		sets[i] = slotSet{}
	}
	for i, t := range triples {
		for _, s := range t {
			sets[s].keyxor ^= uint32(i)
			sets[s].count++
		}
	}

	queue = queue[:0]
	for s := range sets {
		if sets[s].count == 1 {
			queue = append(queue, uint32(s))
		}
	}

	stack = stack[:0]
	for len(queue) > 0 {
		slot := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if sets[slot].count != 1 {
			// An earlier peel emptied this slot in the meantime.
			continue
		}
		key := sets[slot].keyxor
		stack = append(stack, peelRecord{key: key, slot: slot})
		for _, s := range triples[key] {
			sets[s].keyxor ^= key
			sets[s].count--
			if sets[s].count == 1 {
				queue = append(queue, s)
			}
		}
	}
	return stack, len(stack) == len(triples)
}
