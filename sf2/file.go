package sf2

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// File is the decoded container: the INFO entries, the sample-pool byte
// size, and the flat pdta record lists exactly as they appear on disk,
// terminator records included. Assemble links them into a SoundFont graph.
type File struct {
	Info           Info
	SampleDataSize int64

	PresetHeaders        []PresetHeaderRecord
	PresetBags           []BagRecord
	PresetModulators     []ModulatorRecord
	PresetGenerators     []GeneratorRecord
	InstrumentHeaders    []InstrumentHeaderRecord
	InstrumentBags       []BagRecord
	InstrumentModulators []ModulatorRecord
	InstrumentGenerators []GeneratorRecord
	SampleHeaders        []SampleHeaderRecord
}

// ParseFile reads and decodes the SF2 container at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return Parse(data)
}

// ParseReader reads r to the end and decodes it as an SF2 container.
func ParseReader(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return Parse(data)
}

// Parse decodes a whole SF2 container held in memory. The input is never
// mutated; the returned File copies everything it keeps.
func Parse(data []byte) (*File, error) {
	body, err := riffBody(data)
	if err != nil {
		return nil, err
	}
	lists, err := splitChunks(body, 12)
	if err != nil {
		return nil, err
	}

	f := &File{}
	seenInfo, seenPdta := false, false
	for _, list := range lists {
		if list.Tag != tagLIST {
			logrus.Debugf("skipping unknown top-level chunk %q", list.Tag)
			continue
		}
		if len(list.Data) < 4 {
			return nil, &FormatError{
				Kind:   ErrTruncatedChunk,
				Chunk:  list.Tag.String(),
				Offset: list.Offset,
				Detail: "LIST chunk too short to carry a form type",
			}
		}
		var form FourByteString
		copy(form[:], list.Data[:4])
		subs, err := splitChunks(list.Data[4:], list.Offset+4)
		if err != nil {
			return nil, err
		}
		switch form {
		case listINFO:
			if f.Info, err = decodeInfo(subs); err != nil {
				return nil, err
			}
			seenInfo = true
		case listSDTA:
			// PCM is out of scope; only its extent is kept.
			for _, c := range subs {
				f.SampleDataSize += int64(len(c.Data))
			}
		case listPDTA:
			if err = f.decodePdta(subs); err != nil {
				return nil, err
			}
			seenPdta = true
		default:
			logrus.Debugf("skipping unknown LIST form %q", form)
		}
	}
	if !seenInfo {
		return nil, &FormatError{Kind: ErrNotSF2, Detail: "missing INFO list"}
	}
	if !seenPdta {
		return nil, &FormatError{Kind: ErrNotSF2, Detail: "missing pdta list"}
	}
	return f, nil
}

func (f *File) decodePdta(subs []Chunk) error {
	for _, c := range subs {
		var err error
		switch c.Tag {
		case tagPHDR:
			f.PresetHeaders, err = decodePresetHeaders(c)
		case tagPBAG:
			f.PresetBags, err = decodeBags(c)
		case tagPMOD:
			f.PresetModulators, err = decodeModulators(c)
		case tagPGEN:
			f.PresetGenerators, err = decodeGenerators(c)
		case tagINST:
			f.InstrumentHeaders, err = decodeInstrumentHeaders(c)
		case tagIBAG:
			f.InstrumentBags, err = decodeBags(c)
		case tagIMOD:
			f.InstrumentModulators, err = decodeModulators(c)
		case tagIGEN:
			f.InstrumentGenerators, err = decodeGenerators(c)
		case tagSHDR:
			f.SampleHeaders, err = decodeSampleHeaders(c)
		default:
			logrus.Debugf("skipping unknown pdta sub-chunk %q", c.Tag)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
