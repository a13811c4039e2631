package sf2

import "fmt"

// SoundFont is the assembled object graph: presets owning zones linking to
// instruments owning zones linking to samples. It is pure construction over
// the decoded record lists and read-only after Assemble returns.
type SoundFont struct {
	Info           Info
	SampleDataSize int64
	Presets        []Preset
	Instruments    []Instrument
	Samples        []Sample
}

// Preset is a playable patch. Zones appear in bag order; a leading zone
// with no instrument link is the preset's global zone.
type Preset struct {
	Name   string
	Number uint16
	Bank   uint16
	Zones  []Zone
}

// Instrument is a collection of zones mapping key/velocity ranges to
// samples.
type Instrument struct {
	Name  string
	Zones []Zone
}

// Sample carries the shdr metadata for one sample in the sdta pool.
type Sample struct {
	Name            string
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

// Zone is one bag's worth of parameters. For a preset zone, Instrument is
// the linked instrument; for an instrument zone, Sample is the linked
// sample. Both are nil for a global zone. Global-zone defaults are not
// merged into sibling zones here; how to treat them is a reporting concern.
type Zone struct {
	Generators []GeneratorRecord
	Modulators []ModulatorRecord

	Instrument      *Instrument
	InstrumentIndex int
	Sample          *Sample
	SampleIndex     int
}

// Assemble resolves the phdr→pbag→(pgen,pmod) and inst→ibag→(igen,imod)
// index ranges and the sample/instrument link generators. The final record
// of each owning list is the range terminator and never surfaces as an
// entity. Any inconsistency aborts the whole assembly.
func (f *File) Assemble() (*SoundFont, error) {
	sf := &SoundFont{Info: f.Info, SampleDataSize: f.SampleDataSize}

	if n := len(f.SampleHeaders); n > 0 {
		sf.Samples = make([]Sample, n-1)
		for i, rec := range f.SampleHeaders[:n-1] {
			sf.Samples[i] = Sample{
				Name:            rec.SampleName(),
				Start:           rec.Start,
				End:             rec.End,
				StartLoop:       rec.StartLoop,
				EndLoop:         rec.EndLoop,
				SampleRate:      rec.SampleRate,
				OriginalPitch:   rec.OriginalPitch,
				PitchCorrection: rec.PitchCorrection,
				SampleLink:      rec.SampleLink,
				SampleType:      rec.SampleType,
			}
		}
	}

	if n := len(f.InstrumentHeaders); n > 0 {
		sf.Instruments = make([]Instrument, n-1)
		for i := range sf.Instruments {
			rec, next := &f.InstrumentHeaders[i], &f.InstrumentHeaders[i+1]
			if next.BagIndex < rec.BagIndex {
				return nil, decreasing("inst", i+1, int(rec.BagIndex), int(next.BagIndex))
			}
			zones, err := cutZones("ibag", f.InstrumentBags, f.InstrumentGenerators, f.InstrumentModulators,
				int(rec.BagIndex), int(next.BagIndex))
			if err != nil {
				return nil, err
			}
			for zi := range zones {
				if err := linkSample(&zones[zi], sf.Samples); err != nil {
					return nil, err
				}
			}
			sf.Instruments[i] = Instrument{Name: rec.InstrumentName(), Zones: zones}
		}
	}

	if n := len(f.PresetHeaders); n > 0 {
		sf.Presets = make([]Preset, n-1)
		for i := range sf.Presets {
			rec, next := &f.PresetHeaders[i], &f.PresetHeaders[i+1]
			if next.BagIndex < rec.BagIndex {
				return nil, decreasing("phdr", i+1, int(rec.BagIndex), int(next.BagIndex))
			}
			zones, err := cutZones("pbag", f.PresetBags, f.PresetGenerators, f.PresetModulators,
				int(rec.BagIndex), int(next.BagIndex))
			if err != nil {
				return nil, err
			}
			for zi := range zones {
				if err := linkInstrument(&zones[zi], sf.Instruments); err != nil {
					return nil, err
				}
			}
			sf.Presets[i] = Preset{
				Name:   rec.PresetName(),
				Number: rec.Preset,
				Bank:   rec.Bank,
				Zones:  zones,
			}
		}
	}

	return sf, nil
}

// cutZones materializes the bag range [start, end) into Zones. Each zone's
// generator and modulator spans run from its own bag's indices to the next
// bag's, so bags[end] must exist whenever the range is non-empty. Empty
// spans are legal and yield empty slices. The zones hold copies of the
// record data.
func cutZones(chunk string, bags []BagRecord, gens []GeneratorRecord, mods []ModulatorRecord, start, end int) ([]Zone, error) {
	if start == end {
		return nil, nil
	}
	if end >= len(bags) {
		return nil, dangling(chunk, fmt.Sprintf("bag range [%d, %d) needs bag %d, chunk has %d", start, end, end, len(bags)))
	}
	zones := make([]Zone, end-start)
	for i := range zones {
		bag, next := &bags[start+i], &bags[start+i+1]
		genLo, genHi := int(bag.GenIndex), int(next.GenIndex)
		modLo, modHi := int(bag.ModIndex), int(next.ModIndex)
		if genHi < genLo {
			return nil, decreasing(chunk, start+i+1, genLo, genHi)
		}
		if modHi < modLo {
			return nil, decreasing(chunk, start+i+1, modLo, modHi)
		}
		if genHi > len(gens) {
			return nil, dangling(chunk, fmt.Sprintf("generator range [%d, %d) exceeds %d records", genLo, genHi, len(gens)))
		}
		if modHi > len(mods) {
			return nil, dangling(chunk, fmt.Sprintf("modulator range [%d, %d) exceeds %d records", modLo, modHi, len(mods)))
		}
		zone := Zone{InstrumentIndex: -1, SampleIndex: -1}
		if genHi > genLo {
			zone.Generators = append([]GeneratorRecord(nil), gens[genLo:genHi]...)
		}
		if modHi > modLo {
			zone.Modulators = append([]ModulatorRecord(nil), mods[modLo:modHi]...)
		}
		zones[i] = zone
	}
	return zones, nil
}

// linkInstrument resolves the instrument generator of a preset zone, if
// present. Generators past the link are ignored per SF2 2.4 §8.1.2, so the
// link's position in the zone is not validated.
func linkInstrument(z *Zone, instruments []Instrument) error {
	for _, g := range z.Generators {
		if g.Oper != GenInstrument {
			continue
		}
		idx := int(g.Amount)
		if idx >= len(instruments) {
			return dangling("pgen", fmt.Sprintf("instrument %d referenced, %d exist", idx, len(instruments)))
		}
		z.InstrumentIndex = idx
		z.Instrument = &instruments[idx]
		return nil
	}
	return nil
}

// linkSample resolves the sampleID generator of an instrument zone, if
// present.
func linkSample(z *Zone, samples []Sample) error {
	for _, g := range z.Generators {
		if g.Oper != GenSampleID {
			continue
		}
		idx := int(g.Amount)
		if idx >= len(samples) {
			return dangling("igen", fmt.Sprintf("sample %d referenced, %d exist", idx, len(samples)))
		}
		z.SampleIndex = idx
		z.Sample = &samples[idx]
		return nil
	}
	return nil
}

func decreasing(chunk string, record, from, to int) *FormatError {
	return &FormatError{
		Kind:   ErrDecreasingIndex,
		Chunk:  chunk,
		Detail: fmt.Sprintf("index falls from %d to %d at record %d", from, to, record),
	}
}

func dangling(chunk, detail string) *FormatError {
	return &FormatError{Kind: ErrDanglingReference, Chunk: chunk, Detail: detail}
}
