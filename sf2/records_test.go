package sf2

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordWidths(t *testing.T) {
	require.Equal(t, presetHeaderSize, binary.Size(PresetHeaderRecord{}))
	require.Equal(t, bagSize, binary.Size(BagRecord{}))
	require.Equal(t, modulatorSize, binary.Size(ModulatorRecord{}))
	require.Equal(t, generatorSize, binary.Size(GeneratorRecord{}))
	require.Equal(t, instrumentHeaderSize, binary.Size(InstrumentHeaderRecord{}))
	require.Equal(t, sampleHeaderSize, binary.Size(SampleHeaderRecord{}))
}

func TestMisalignedRecordChunk(t *testing.T) {
	tests := []struct {
		tag   string
		width int
	}{
		{"phdr", presetHeaderSize},
		{"pbag", bagSize},
		{"pmod", modulatorSize},
		{"pgen", generatorSize},
		{"inst", instrumentHeaderSize},
		{"ibag", bagSize},
		{"imod", modulatorSize},
		{"igen", generatorSize},
		{"shdr", sampleHeaderSize},
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			// A pdta whose chunk under test is width*2+3 bytes long,
			// which can never divide evenly.
			bad := list("pdta", chunk(tc.tag, make([]byte, tc.width*2+3)))
			_, err := Parse(riff("sfbk", infoList(), sdtaList(), bad))
			var ferr *FormatError
			require.ErrorAs(t, err, &ferr)
			require.Equal(t, ErrMisalignedChunk, ferr.Kind)
			require.Equal(t, tc.tag, ferr.Chunk)
		})
	}
}

func TestRecordDecoding(t *testing.T) {
	f, err := Parse(minimalFont())
	require.NoError(t, err)

	require.Len(t, f.PresetHeaders, 2)
	require.Equal(t, "TestPreset", f.PresetHeaders[0].PresetName())
	require.Equal(t, "EOP", f.PresetHeaders[1].PresetName())

	require.Len(t, f.SampleHeaders, 2)
	s := f.SampleHeaders[0]
	require.Equal(t, "TestSample", s.SampleName())
	require.Equal(t, uint32(44100), s.SampleRate)
	require.Equal(t, uint8(60), s.OriginalPitch)
	require.Equal(t, int8(-2), s.PitchCorrection)
	require.Equal(t, uint16(1), s.SampleType)
}

func TestTrimFixed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"trailing nuls", []byte("Piano\x00\x00\x00"), "Piano"},
		{"no padding", []byte("Piano"), "Piano"},
		{"all nuls", make([]byte, 20), ""},
		{"embedded nul kept", []byte("A\x00B\x00\x00"), "A\x00B"},
		{"invalid utf8 replaced", []byte{'P', 0xFF, 'o'}, "P�o"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, trimFixed(tc.in))
		})
	}
}

func TestGeneratorAmountViews(t *testing.T) {
	pan := GeneratorRecord{Oper: 17, Amount: 0xFFCE} // -50
	require.Equal(t, int16(-50), pan.SignedAmount())
	require.False(t, pan.IsRange())
	require.Equal(t, "-50", pan.AmountString())

	keyRange := GeneratorRecord{Oper: GenKeyRange, Amount: 0x4C28} // 40..76
	require.True(t, keyRange.IsRange())
	lo, hi := keyRange.Range()
	require.Equal(t, uint8(40), lo)
	require.Equal(t, uint8(76), hi)
	require.Equal(t, "40 - 76", keyRange.AmountString())

	require.Equal(t, "pan", pan.OperName())
	require.Equal(t, "keyRange", keyRange.OperName())
	require.Equal(t, "unknown(99)", GeneratorName(99))
}
