package sf2

import (
	"encoding/binary"
	"fmt"
)

// Version is an ifil/iver major.minor pair.
type Version struct {
	Major uint16
	Minor uint16
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// InfoEntry is one INFO-list sub-chunk with its display label, in file
// order.
type InfoEntry struct {
	Tag   string
	Label string
	Value string
}

// Info holds the decoded INFO list. Version comes from the mandatory ifil
// sub-chunk.
type Info struct {
	Version Version
	Entries []InfoEntry
}

// Entry returns the entry for tag, or nil.
func (i *Info) Entry(tag string) *InfoEntry {
	for n := range i.Entries {
		if i.Entries[n].Tag == tag {
			return &i.Entries[n]
		}
	}
	return nil
}

// infoLabels gives display names for the INFO sub-chunks defined by SF2 2.4.
var infoLabels = map[string]string{
	"ifil": "Version",
	"isng": "Target Sound Engine",
	"INAM": "Sound Font Bank Name",
	"irom": "ROM",
	"iver": "ROM Revision",
	"ICRD": "Date of Creation of the Bank",
	"IENG": "Sound Designers and Engineers for the Bank",
	"IPRD": "Product for which the Bank was intended",
	"ICOP": "Copyright",
	"ICMT": "Comments",
	"ISFT": "SoundFont tools used to create and alter the bank",
}

func decodeInfo(subs []Chunk) (Info, error) {
	var info Info
	seenVersion := false
	for _, c := range subs {
		tag := c.Tag.String()
		label, known := infoLabels[tag]
		if !known {
			label = tag
		}
		var value string
		switch tag {
		case "ifil", "iver":
			v, err := decodeVersion(c)
			if err != nil {
				return Info{}, err
			}
			if tag == "ifil" {
				info.Version = v
				seenVersion = true
			}
			value = v.String()
		default:
			value = trimFixed(c.Data)
		}
		info.Entries = append(info.Entries, InfoEntry{Tag: tag, Label: label, Value: value})
	}
	if !seenVersion {
		return Info{}, &FormatError{Kind: ErrNotSF2, Chunk: "INFO", Detail: "missing ifil version sub-chunk"}
	}
	return info, nil
}

func decodeVersion(c Chunk) (Version, error) {
	if len(c.Data) != 4 {
		return Version{}, &FormatError{
			Kind:   ErrMisalignedChunk,
			Chunk:  c.Tag.String(),
			Offset: c.Offset,
			Detail: fmt.Sprintf("version sub-chunk is %d bytes, want 4", len(c.Data)),
		}
	}
	return Version{
		Major: binary.LittleEndian.Uint16(c.Data[0:2]),
		Minor: binary.LittleEndian.Uint16(c.Data[2:4]),
	}, nil
}
