package sf2

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

const sampleHeaderSize = 46

// SampleHeaderRecord is one shdr entry. Start/End/StartLoop/EndLoop are
// sample-point offsets into the sdta pool.
type SampleHeaderRecord struct {
	Name            [20]byte
	Start           uint32
	End             uint32
	StartLoop       uint32
	EndLoop         uint32
	SampleRate      uint32
	OriginalPitch   uint8
	PitchCorrection int8
	SampleLink      uint16
	SampleType      uint16
}

// SampleName returns the NUL-trimmed sample name.
func (r *SampleHeaderRecord) SampleName() string { return trimFixed(r.Name[:]) }

func decodeSampleHeaders(c Chunk) ([]SampleHeaderRecord, error) {
	n, err := recordCount(c, sampleHeaderSize)
	if err != nil {
		return nil, err
	}
	recs := make([]SampleHeaderRecord, n)
	r := bytes.NewReader(c.Data)
	for i := range recs {
		if err := binary.Read(r, binary.LittleEndian, &recs[i]); err != nil {
			return nil, errors.Wrapf(err, "shdr record %d", i)
		}
	}
	return recs, nil
}
