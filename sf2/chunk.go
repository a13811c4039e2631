package sf2

import (
	"encoding/binary"
	"fmt"
)

// FourByteString is a RIFF chunk tag. Tags are case-sensitive ASCII.
type FourByteString [4]byte

func NewFourByteStr(str string) FourByteString {
	if len(str) != 4 {
		panic("FourByteString must be 4 bytes")
	}
	res := FourByteString{}
	for i, v := range str {
		res[i] = byte(v)
	}
	return res
}

func (s FourByteString) String() string { return string(s[:]) }

var (
	tagRIFF = NewFourByteStr("RIFF")
	tagLIST = NewFourByteStr("LIST")

	formSFBK = NewFourByteStr("sfbk")
	listINFO = NewFourByteStr("INFO")
	listSDTA = NewFourByteStr("sdta")
	listPDTA = NewFourByteStr("pdta")

	tagPHDR = NewFourByteStr("phdr")
	tagPBAG = NewFourByteStr("pbag")
	tagPMOD = NewFourByteStr("pmod")
	tagPGEN = NewFourByteStr("pgen")
	tagINST = NewFourByteStr("inst")
	tagIBAG = NewFourByteStr("ibag")
	tagIMOD = NewFourByteStr("imod")
	tagIGEN = NewFourByteStr("igen")
	tagSHDR = NewFourByteStr("shdr")
)

// Chunk is a named byte range within the container. Data aliases the file
// buffer and must not be mutated.
type Chunk struct {
	Tag    FourByteString
	Offset int64
	Data   []byte
}

// riffBody validates the RIFF/sfbk envelope and returns the form payload,
// i.e. the byte range holding the LIST chunks.
func riffBody(data []byte) ([]byte, error) {
	if len(data) < 12 {
		return nil, &FormatError{Kind: ErrNotSF2, Detail: "file shorter than a RIFF header"}
	}
	var tag, form FourByteString
	copy(tag[:], data[0:4])
	copy(form[:], data[8:12])
	if tag != tagRIFF {
		return nil, &FormatError{Kind: ErrNotSF2, Detail: fmt.Sprintf("leading tag is %q, want \"RIFF\"", tag)}
	}
	size := int(binary.LittleEndian.Uint32(data[4:8]))
	if size < 4 || size-4 > len(data)-12 {
		return nil, &FormatError{
			Kind:  ErrTruncatedChunk,
			Chunk: tagRIFF.String(),
			Detail: fmt.Sprintf("declared %d bytes, file holds %d after the header",
				size-4, len(data)-12),
		}
	}
	if form != formSFBK {
		return nil, &FormatError{Kind: ErrNotSF2, Detail: fmt.Sprintf("RIFF form is %q, want \"sfbk\"", form)}
	}
	return data[12 : 12+size-4], nil
}

// splitChunks cuts a chunk sequence into (tag, byte range) pairs in file
// order. An odd-sized payload is followed by a pad byte per the RIFF
// word-alignment rule; the pad is skipped without shifting later offsets.
// base is the absolute file offset of data[0].
func splitChunks(data []byte, base int64) ([]Chunk, error) {
	var chunks []Chunk
	pos := 0
	for pos < len(data) {
		if len(data)-pos < 8 {
			return nil, &FormatError{
				Kind:   ErrTruncatedChunk,
				Offset: base + int64(pos),
				Detail: "chunk header runs past the end of its parent",
			}
		}
		var tag FourByteString
		copy(tag[:], data[pos:pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		if size > len(data)-pos-8 {
			return nil, &FormatError{
				Kind:   ErrTruncatedChunk,
				Chunk:  tag.String(),
				Offset: base + int64(pos),
				Detail: fmt.Sprintf("declared %d bytes, %d remain", size, len(data)-pos-8),
			}
		}
		pos += 8
		chunks = append(chunks, Chunk{Tag: tag, Offset: base + int64(pos), Data: data[pos : pos+size]})
		pos += size
		if size%2 == 1 {
			pos++
		}
	}
	return chunks, nil
}
