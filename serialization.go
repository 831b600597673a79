package xorfilter

import (
	"encoding/binary"
	"io"
)

// Save writes the filter to the writer in little endian format: the
// three band seeds, the slot count, then the slots. Together with the
// width T this is the complete state of a filter built with the
// default hash and fingerprint functions.
func (filter *Xor[T]) Save(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, filter.Seeds); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(filter.Fingerprints))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, filter.Fingerprints)
}

// Load reads a filter written by Save. The restored filter queries
// with the default hash and fingerprint functions, so filters built
// with custom capabilities cannot round-trip through Save/Load.
func Load[T Unsigned](r io.Reader) (*Xor[T], error) {
	var filter Xor[T]
	if err := binary.Read(r, binary.LittleEndian, &filter.Seeds); err != nil {
		return nil, err
	}
	var m uint32
	if err := binary.Read(r, binary.LittleEndian, &m); err != nil {
		return nil, err
	}
	filter.Fingerprints = make([]T, m)
	if err := binary.Read(r, binary.LittleEndian, filter.Fingerprints); err != nil {
		return nil, err
	}
	return &filter, nil
}
