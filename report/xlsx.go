package report

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/alexoransky/sf2-contents/sf2"
)

// Spreadsheet renders the detailed workbook: one tab per view of the graph.
// Everything on it comes from the assembled SoundFont, never raw records.
func Spreadsheet(sf *sf2.SoundFont) ([]byte, error) {
	w, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	defer w.f.Close()

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{"INFO", nil, infoRows(sf)},
		{"Presets",
			[]string{"Bank", "Preset", "Preset Name", "Zones", "Instruments"},
			presetRows(sf)},
		{"Preset Zones",
			[]string{"Bank", "Preset", "Preset Name", "Zone", "sfGenOper", "Generator", "Amount", "Instrument"},
			presetZoneRows(sf)},
		{"Preset Modulators",
			[]string{"Bank", "Preset", "Preset Name", "Zone", "sfModSrcOper", "sfModDestOper", "Amount", "sfModAmtSrcOper", "sfModTransOper"},
			presetModulatorRows(sf)},
		{"Instruments",
			[]string{"Index", "Instrument Name", "Zones"},
			instrumentRows(sf)},
		{"Instrument Zones",
			[]string{"Instrument", "Instrument Name", "Zone", "sfGenOper", "Generator", "Amount", "Sample"},
			instrumentZoneRows(sf)},
		{"Instrument Modulators",
			[]string{"Instrument", "Instrument Name", "Zone", "sfModSrcOper", "sfModDestOper", "Amount", "sfModAmtSrcOper", "sfModTransOper"},
			instrumentModulatorRows(sf)},
		{"Samples",
			[]string{"Index", "Sample Name", "Start", "End", "Start Loop", "End Loop", "Sample Rate", "Original Pitch", "Pitch Correction", "Sample Link", "Sample Type"},
			sampleRows(sf)},
	}
	for i, s := range sheets {
		logrus.Debugf("writing %s tab", s.name)
		if err := w.addSheet(i == 0, s.name, s.header, s.rows); err != nil {
			return nil, err
		}
	}
	w.f.SetActiveSheet(0)

	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

type workbook struct {
	f     *excelize.File
	bands [2]int // alternating row style IDs
}

func newWorkbook() (*workbook, error) {
	w := &workbook{f: excelize.NewFile()}
	for i, fill := range []string{"2F2F2F", "1F1F1F"} {
		style, err := w.f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Family: "Consolas", Size: 9, Color: "C0C0C0"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			Border: []excelize.Border{
				{Type: "left", Color: "707070", Style: 1},
				{Type: "right", Color: "707070", Style: 1},
				{Type: "top", Color: "707070", Style: 1},
				{Type: "bottom", Color: "707070", Style: 1},
			},
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}
		w.bands[i] = style
	}
	return w, nil
}

// addSheet writes a whole tab: optional header row, data rows, alternating
// row fills, content-sized columns and a frozen header row.
func (w *workbook) addSheet(first bool, name string, header []string, rows [][]any) error {
	if first {
		if err := w.f.SetSheetName("Sheet1", name); err != nil {
			return errors.WithStack(err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return errors.WithStack(err)
	}

	cols := len(header)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)

	r := 1
	if header != nil {
		cells := make([]any, len(header))
		for i, h := range header {
			cells[i] = h
			widths[i] = max(widths[i], len(h))
		}
		if err := w.writeRow(name, r, cells); err != nil {
			return err
		}
		r++
	}
	for _, row := range rows {
		for i, v := range row {
			widths[i] = max(widths[i], len(fmt.Sprint(v)))
		}
		if err := w.writeRow(name, r, row); err != nil {
			return err
		}
		r++
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.WithStack(err)
		}
		if width > 254 { // xlsx caps column width at 255
			width = 254
		}
		if err := w.f.SetColWidth(name, col, col, float64(width+1)); err != nil {
			return errors.WithStack(err)
		}
	}
	if header != nil {
		err := w.f.SetPanes(name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func (w *workbook) writeRow(sheet string, row int, cells []any) error {
	if len(cells) == 0 {
		return nil
	}
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := w.f.SetSheetRow(sheet, start, &cells); err != nil {
		return errors.WithStack(err)
	}
	end, err := excelize.CoordinatesToCellName(len(cells), row)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := w.f.SetCellStyle(sheet, start, end, w.bands[row%2]); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// infoRows lists the INFO entries; the comment block goes last, the way the
// overview shows it.
func infoRows(sf *sf2.SoundFont) [][]any {
	var rows [][]any
	var comments string
	for _, e := range sf.Info.Entries {
		if e.Tag == "ICMT" {
			comments = e.Value
			continue
		}
		rows = append(rows, []any{e.Label, e.Value})
	}
	if comments != "" {
		rows = append(rows, []any{"Comments", cleanComment(comments)})
	}
	return rows
}

func presetRows(sf *sf2.SoundFont) [][]any {
	var rows [][]any
	for _, bank := range bankNumbers(sf) {
		for _, p := range presetsInBank(sf, bank) {
			rows = append(rows, []any{
				int(p.Bank), int(p.Number), p.Name, len(p.Zones),
				strings.Join(presetInstruments(p), ", "),
			})
		}
	}
	return rows
}

func presetZoneRows(sf *sf2.SoundFont) [][]any {
	var rows [][]any
	for _, p := range sf.Presets {
		for zi, z := range p.Zones {
			for _, g := range z.Generators {
				link := ""
				if g.Oper == sf2.GenInstrument && z.Instrument != nil {
					link = z.Instrument.Name
				}
				rows = append(rows, []any{
					int(p.Bank), int(p.Number), p.Name, zi,
					int(g.Oper), g.OperName(), g.AmountString(), link,
				})
			}
		}
	}
	return rows
}

func presetModulatorRows(sf *sf2.SoundFont) [][]any {
	var rows [][]any
	for _, p := range sf.Presets {
		for zi, z := range p.Zones {
			for _, m := range z.Modulators {
				rows = append(rows, []any{
					int(p.Bank), int(p.Number), p.Name, zi,
					int(m.SourceOper), int(m.DestOper), int(m.Amount),
					int(m.AmountSourceOper), int(m.TransformOper),
				})
			}
		}
	}
	return rows
}

func instrumentRows(sf *sf2.SoundFont) [][]any {
	var rows [][]any
	for i, inst := range sf.Instruments {
		rows = append(rows, []any{i, inst.Name, len(inst.Zones)})
	}
	return rows
}

func instrumentZoneRows(sf *sf2.SoundFont) [][]any {
	var rows [][]any
	for i, inst := range sf.Instruments {
		for zi, z := range inst.Zones {
			for _, g := range z.Generators {
				link := ""
				if g.Oper == sf2.GenSampleID && z.Sample != nil {
					link = z.Sample.Name
				}
				rows = append(rows, []any{
					i, inst.Name, zi,
					int(g.Oper), g.OperName(), g.AmountString(), link,
				})
			}
		}
	}
	return rows
}

func instrumentModulatorRows(sf *sf2.SoundFont) [][]any {
	var rows [][]any
	for i, inst := range sf.Instruments {
		for zi, z := range inst.Zones {
			for _, m := range z.Modulators {
				rows = append(rows, []any{
					i, inst.Name, zi,
					int(m.SourceOper), int(m.DestOper), int(m.Amount),
					int(m.AmountSourceOper), int(m.TransformOper),
				})
			}
		}
	}
	return rows
}

func sampleRows(sf *sf2.SoundFont) [][]any {
	var rows [][]any
	for i, s := range sf.Samples {
		rows = append(rows, []any{
			i, s.Name, int(s.Start), int(s.End), int(s.StartLoop), int(s.EndLoop),
			int(s.SampleRate), int(s.OriginalPitch), int(s.PitchCorrection),
			int(s.SampleLink), int(s.SampleType),
		})
	}
	return rows
}
