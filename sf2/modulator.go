package sf2

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

const modulatorSize = 10

// ModulatorRecord is one pmod/imod entry: a rule mapping a real-time
// control source onto a generator's value.
type ModulatorRecord struct {
	SourceOper       uint16
	DestOper         uint16
	Amount           int16
	AmountSourceOper uint16
	TransformOper    uint16
}

func decodeModulators(c Chunk) ([]ModulatorRecord, error) {
	n, err := recordCount(c, modulatorSize)
	if err != nil {
		return nil, err
	}
	recs := make([]ModulatorRecord, n)
	r := bytes.NewReader(c.Data)
	for i := range recs {
		if err := binary.Read(r, binary.LittleEndian, &recs[i]); err != nil {
			return nil, errors.Wrapf(err, "%s record %d", c.Tag, i)
		}
	}
	return recs, nil
}
