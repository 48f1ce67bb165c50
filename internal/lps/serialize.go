package lps

import (
	"encoding/binary"
	"io"
)

var byteOrder = binary.LittleEndian

// Write serializes the parser's level and core list. The original sequence
// is not retained; a Parser loaded back via Read can still be deepened
// further since refinement past level 1 only needs the previous level's
// cores, not the raw sequence.
func (p *Parser) Write(w io.Writer) error {
	if err := binary.Write(w, byteOrder, uint8(p.level)); err != nil {
		return err
	}
	if err := binary.Write(w, byteOrder, uint32(len(p.cores))); err != nil {
		return err
	}
	for _, c := range p.cores {
		if err := binary.Write(w, byteOrder, c.Label); err != nil {
			return err
		}
		if err := binary.Write(w, byteOrder, uint32(c.Start)); err != nil {
			return err
		}
		if err := binary.Write(w, byteOrder, uint32(c.End)); err != nil {
			return err
		}
	}
	return nil
}

// Read deserializes a Parser previously written with Write.
func Read(r io.Reader) (*Parser, error) {
	var level uint8
	if err := binary.Read(r, byteOrder, &level); err != nil {
		return nil, err
	}
	var n uint32
	if err := binary.Read(r, byteOrder, &n); err != nil {
		return nil, err
	}
	cores := make([]Core, n)
	for i := range cores {
		if err := binary.Read(r, byteOrder, &cores[i].Label); err != nil {
			return nil, err
		}
		var start, end uint32
		if err := binary.Read(r, byteOrder, &start); err != nil {
			return nil, err
		}
		if err := binary.Read(r, byteOrder, &end); err != nil {
			return nil, err
		}
		cores[i].Start = int(start)
		cores[i].End = int(end)
	}
	return &Parser{level: int(level), cores: cores}, nil
}
