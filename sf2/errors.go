package sf2

import "fmt"

// FormatErrorKind classifies the container damage that stopped a parse.
type FormatErrorKind int

const (
	// ErrNotSF2 means the file is not an SF2 container at all.
	ErrNotSF2 FormatErrorKind = iota
	// ErrTruncatedChunk means a chunk declares more bytes than remain.
	ErrTruncatedChunk
	// ErrMisalignedChunk means a record chunk's length is not a multiple
	// of its record width.
	ErrMisalignedChunk
	// ErrDanglingReference means an index points past the end of the
	// record list it refers to.
	ErrDanglingReference
	// ErrDecreasingIndex means an index range runs backwards.
	ErrDecreasingIndex
)

func (k FormatErrorKind) String() string {
	switch k {
	case ErrNotSF2:
		return "not an SF2 file"
	case ErrTruncatedChunk:
		return "truncated chunk"
	case ErrMisalignedChunk:
		return "misaligned record chunk"
	case ErrDanglingReference:
		return "dangling reference"
	case ErrDecreasingIndex:
		return "decreasing index"
	}
	return "format error"
}

// FormatError reports unrecoverable container damage. Chunk is the tag of
// the offending chunk when known and Offset its absolute byte position in
// the file. A FormatError aborts the whole parse; there is no partial
// result.
type FormatError struct {
	Kind   FormatErrorKind
	Chunk  string
	Offset int64
	Detail string
}

func (e *FormatError) Error() string {
	msg := e.Kind.String()
	if e.Chunk != "" {
		msg += fmt.Sprintf(": chunk %q", e.Chunk)
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset 0x%X", e.Offset)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
