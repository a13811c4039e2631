package sf2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

const generatorSize = 4

// GeneratorRecord is one pgen/igen entry. Amount keeps the raw bit pattern;
// whether it reads as signed, unsigned or a packed byte range depends on
// the operator, so typed views are exposed as methods. Any bit pattern is
// legal at this layer.
type GeneratorRecord struct {
	Oper   uint16
	Amount uint16
}

// OperName returns the SF2 name of the generator operator.
func (g GeneratorRecord) OperName() string { return GeneratorName(g.Oper) }

// SignedAmount reads the amount as a two's-complement value.
func (g GeneratorRecord) SignedAmount() int16 { return int16(g.Amount) }

// IsRange reports whether the operator packs a lo/hi byte pair
// (keyRange, velRange).
func (g GeneratorRecord) IsRange() bool {
	return g.Oper == GenKeyRange || g.Oper == GenVelRange
}

// Range unpacks the amount as a lo/hi byte pair.
func (g GeneratorRecord) Range() (lo, hi uint8) {
	return uint8(g.Amount & 0xFF), uint8(g.Amount >> 8)
}

// AmountString renders the amount for display: "lo - hi" for range
// operators, the signed value otherwise.
func (g GeneratorRecord) AmountString() string {
	if g.IsRange() {
		lo, hi := g.Range()
		return fmt.Sprintf("%d - %d", lo, hi)
	}
	return strconv.Itoa(int(g.SignedAmount()))
}

func decodeGenerators(c Chunk) ([]GeneratorRecord, error) {
	n, err := recordCount(c, generatorSize)
	if err != nil {
		return nil, err
	}
	recs := make([]GeneratorRecord, n)
	r := bytes.NewReader(c.Data)
	for i := range recs {
		if err := binary.Read(r, binary.LittleEndian, &recs[i]); err != nil {
			return nil, errors.Wrapf(err, "%s record %d", c.Tag, i)
		}
	}
	return recs, nil
}
