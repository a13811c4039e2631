package sf2

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

const bagSize = 4

// BagRecord is one pbag/ibag entry: where the owning zone's generator and
// modulator sub-lists start. The exclusive end of each sub-list comes from
// the next bag in the chunk.
type BagRecord struct {
	GenIndex uint16
	ModIndex uint16
}

func decodeBags(c Chunk) ([]BagRecord, error) {
	n, err := recordCount(c, bagSize)
	if err != nil {
		return nil, err
	}
	recs := make([]BagRecord, n)
	r := bytes.NewReader(c.Data)
	for i := range recs {
		if err := binary.Read(r, binary.LittleEndian, &recs[i]); err != nil {
			return nil, errors.Wrapf(err, "%s record %d", c.Tag, i)
		}
	}
	return recs, nil
}
