package sf2

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

const instrumentHeaderSize = 22

// InstrumentHeaderRecord is one inst entry.
type InstrumentHeaderRecord struct {
	Name     [20]byte
	BagIndex uint16
}

// InstrumentName returns the NUL-trimmed instrument name.
func (r *InstrumentHeaderRecord) InstrumentName() string { return trimFixed(r.Name[:]) }

func decodeInstrumentHeaders(c Chunk) ([]InstrumentHeaderRecord, error) {
	n, err := recordCount(c, instrumentHeaderSize)
	if err != nil {
		return nil, err
	}
	recs := make([]InstrumentHeaderRecord, n)
	r := bytes.NewReader(c.Data)
	for i := range recs {
		if err := binary.Read(r, binary.LittleEndian, &recs[i]); err != nil {
			return nil, errors.Wrapf(err, "inst record %d", i)
		}
	}
	return recs, nil
}
