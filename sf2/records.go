package sf2

import (
	"bytes"
	"fmt"
	"strings"
)

// recordCount enforces the alignment contract for a fixed-width record
// chunk: its byte length must be an exact multiple of the record width.
func recordCount(c Chunk, width int) (int, error) {
	if len(c.Data)%width != 0 {
		return 0, &FormatError{
			Kind:   ErrMisalignedChunk,
			Chunk:  c.Tag.String(),
			Offset: c.Offset,
			Detail: fmt.Sprintf("%d bytes is not a multiple of the %d-byte record", len(c.Data), width),
		}
	}
	return len(c.Data) / width, nil
}

// trimFixed turns a fixed-width NUL-padded name field into its logical
// string. Only trailing NULs are trimmed; embedded bytes pass through, with
// invalid UTF-8 replaced rather than rejected.
func trimFixed(b []byte) string {
	b = bytes.TrimRight(b, "\x00")
	return strings.ToValidUTF8(string(b), "�")
}
