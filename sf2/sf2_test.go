package sf2

import (
	"bytes"
	"encoding/binary"
)

// Test fixtures are synthetic SF2 containers built in memory, byte for
// byte, so every offset and padding rule is exercised exactly as on disk.

func le32(n int) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	return b[:]
}

func chunk(tag string, payload []byte) []byte {
	b := []byte(tag)
	b = append(b, le32(len(payload))...)
	b = append(b, payload...)
	if len(payload)%2 == 1 {
		b = append(b, 0)
	}
	return b
}

func list(form string, subs ...[]byte) []byte {
	payload := []byte(form)
	for _, s := range subs {
		payload = append(payload, s...)
	}
	return chunk("LIST", payload)
}

func riff(form string, lists ...[]byte) []byte {
	body := []byte(form)
	for _, l := range lists {
		body = append(body, l...)
	}
	out := []byte("RIFF")
	out = append(out, le32(len(body))...)
	out = append(out, body...)
	return out
}

func records(recs ...any) []byte {
	var b bytes.Buffer
	for _, r := range recs {
		if err := binary.Write(&b, binary.LittleEndian, r); err != nil {
			panic(err)
		}
	}
	return b.Bytes()
}

func name20(s string) (n [20]byte) {
	copy(n[:], s)
	return
}

func versionChunk(tag string, major, minor uint16) []byte {
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint16(payload[0:2], major)
	binary.LittleEndian.PutUint16(payload[2:4], minor)
	return chunk(tag, payload)
}

func infoList(extra ...[]byte) []byte {
	subs := [][]byte{
		versionChunk("ifil", 2, 1),
		chunk("isng", []byte("EMU8000\x00")),
		chunk("INAM", []byte("Test Bank\x00")),
	}
	subs = append(subs, extra...)
	return list("INFO", subs...)
}

func sdtaList() []byte {
	return list("sdta", chunk("smpl", make([]byte, 8)))
}

// pdtaParts is the full record complement of a pdta list; tests tweak
// individual fields before serializing.
type pdtaParts struct {
	phdr []PresetHeaderRecord
	pbag []BagRecord
	pmod []ModulatorRecord
	pgen []GeneratorRecord
	inst []InstrumentHeaderRecord
	ibag []BagRecord
	imod []ModulatorRecord
	igen []GeneratorRecord
	shdr []SampleHeaderRecord
}

func (p pdtaParts) list() []byte {
	return list("pdta",
		chunk("phdr", records(p.phdr)),
		chunk("pbag", records(p.pbag)),
		chunk("pmod", records(p.pmod)),
		chunk("pgen", records(p.pgen)),
		chunk("inst", records(p.inst)),
		chunk("ibag", records(p.ibag)),
		chunk("imod", records(p.imod)),
		chunk("igen", records(p.igen)),
		chunk("shdr", records(p.shdr)),
	)
}

// minimalParts is one preset ("TestPreset", bank 0, preset 0) with one zone
// linking to one instrument with one zone linking to one sample, plus the
// terminator records every list carries.
func minimalParts() pdtaParts {
	return pdtaParts{
		phdr: []PresetHeaderRecord{
			{Name: name20("TestPreset"), Preset: 0, Bank: 0, BagIndex: 0},
			{Name: name20("EOP"), BagIndex: 1},
		},
		pbag: []BagRecord{{GenIndex: 0, ModIndex: 0}, {GenIndex: 1, ModIndex: 0}},
		pmod: []ModulatorRecord{{}},
		pgen: []GeneratorRecord{{Oper: GenInstrument, Amount: 0}, {}},
		inst: []InstrumentHeaderRecord{
			{Name: name20("TestInstrument"), BagIndex: 0},
			{Name: name20("EOI"), BagIndex: 1},
		},
		ibag: []BagRecord{{GenIndex: 0, ModIndex: 0}, {GenIndex: 1, ModIndex: 0}},
		imod: []ModulatorRecord{{}},
		igen: []GeneratorRecord{{Oper: GenSampleID, Amount: 0}, {}},
		shdr: []SampleHeaderRecord{
			{
				Name: name20("TestSample"), Start: 0, End: 4,
				StartLoop: 1, EndLoop: 3, SampleRate: 44100,
				OriginalPitch: 60, PitchCorrection: -2, SampleType: 1,
			},
			{Name: name20("EOS")},
		},
	}
}

func minimalFont() []byte {
	return riff("sfbk", infoList(), sdtaList(), minimalParts().list())
}
