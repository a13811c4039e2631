// Package report renders the assembled SoundFont graph into the two output
// documents: a markdown overview and an xlsx spreadsheet. Renderers consume
// the graph only through iteration and indexed lookup, never raw chunk
// layout.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexoransky/sf2-contents/sf2"
)

// Markdown renders the overview document. name labels the document, usually
// the source file name.
func Markdown(sf *sf2.SoundFont, name string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# File %s\n\n", name)

	var comments string
	for _, e := range sf.Info.Entries {
		if e.Tag == "ICMT" {
			comments = e.Value
			continue
		}
		fmt.Fprintf(&b, "- %s: `%s`\n", e.Label, e.Value)
	}
	if comments != "" {
		b.WriteString("\n### Comments\n\n")
		fmt.Fprintf(&b, "%s\n", cleanComment(comments))
	}

	b.WriteString("\n## Presets\n\n")
	banks := bankNumbers(sf)
	fmt.Fprintf(&b, "- Banks: `%d`\n", len(banks))
	fmt.Fprintf(&b, "- Presets: `%d`\n", len(sf.Presets))
	fmt.Fprintf(&b, "- Instruments: `%d`\n", len(sf.Instruments))
	fmt.Fprintf(&b, "- Samples: `%d`\n", len(sf.Samples))
	fmt.Fprintf(&b, "- Sample data: `%d bytes`\n\n", sf.SampleDataSize)

	b.WriteString("| Bank | Preset | Preset Name | Instruments |\n")
	b.WriteString("|:----:|:------:|-------------|-------------|\n")
	for _, bank := range banks {
		label := strconv.Itoa(int(bank))
		for _, p := range presetsInBank(sf, bank) {
			fmt.Fprintf(&b, "|%s|%d|%s|%s|\n", label, p.Number, p.Name,
				strings.Join(presetInstruments(p), ", "))
			label = " "
		}
	}

	b.WriteString("\n## Instruments\n\n")
	b.WriteString("| Instrument | Instrument Name |\n")
	b.WriteString("|:----------:|-----------------|\n")
	for i, inst := range sf.Instruments {
		fmt.Fprintf(&b, "|%d|%s|\n", i, inst.Name)
	}

	return b.Bytes()
}

// cleanComment strips the NULs and trailing newlines that INFO comment
// blocks commonly carry.
func cleanComment(s string) string {
	return strings.TrimRight(strings.ReplaceAll(s, "\x00", ""), "\n")
}

// bankNumbers returns the bank numbers present in the font, ascending.
func bankNumbers(sf *sf2.SoundFont) []uint16 {
	seen := map[uint16]bool{}
	var banks []uint16
	for _, p := range sf.Presets {
		if !seen[p.Bank] {
			seen[p.Bank] = true
			banks = append(banks, p.Bank)
		}
	}
	sort.Slice(banks, func(i, j int) bool { return banks[i] < banks[j] })
	return banks
}

// presetsInBank returns the bank's presets sorted by preset number.
func presetsInBank(sf *sf2.SoundFont, bank uint16) []sf2.Preset {
	var presets []sf2.Preset
	for _, p := range sf.Presets {
		if p.Bank == bank {
			presets = append(presets, p)
		}
	}
	sort.SliceStable(presets, func(i, j int) bool { return presets[i].Number < presets[j].Number })
	return presets
}

// presetInstruments returns the names of the instruments the preset's zones
// link to, unique, in zone order.
func presetInstruments(p sf2.Preset) []string {
	var names []string
	seen := map[string]bool{}
	for _, z := range p.Zones {
		if z.Instrument == nil || seen[z.Instrument.Name] {
			continue
		}
		seen[z.Instrument.Name] = true
		names = append(names, z.Instrument.Name)
	}
	return names
}
