package sf2

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

const presetHeaderSize = 38

// PresetHeaderRecord is one phdr entry. Library, genre and morphology are
// reserved in SF2 2.4 and carried through undecoded.
type PresetHeaderRecord struct {
	Name       [20]byte
	Preset     uint16
	Bank       uint16
	BagIndex   uint16
	Library    uint32
	Genre      uint32
	Morphology uint32
}

// PresetName returns the NUL-trimmed preset name.
func (p *PresetHeaderRecord) PresetName() string { return trimFixed(p.Name[:]) }

func decodePresetHeaders(c Chunk) ([]PresetHeaderRecord, error) {
	n, err := recordCount(c, presetHeaderSize)
	if err != nil {
		return nil, err
	}
	recs := make([]PresetHeaderRecord, n)
	r := bytes.NewReader(c.Data)
	for i := range recs {
		if err := binary.Read(r, binary.LittleEndian, &recs[i]); err != nil {
			return nil, errors.Wrapf(err, "phdr record %d", i)
		}
	}
	return recs, nil
}
