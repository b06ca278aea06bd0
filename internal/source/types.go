package source

import "fmt"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Flags   FileFlags
}

// Location is the position of one lexical match: 1-based line and byte
// column, plus the match length in bytes. Immutable once captured.
type Location struct {
	Line   uint32
	Column uint32
	Length uint16
}

// IsValid reports whether the location points into a file.
func (l Location) IsValid() bool { return l.Line != 0 && l.Column != 0 }

// End returns the first column past the match.
func (l Location) End() uint32 { return l.Column + uint32(l.Length) }

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LineSource hands out physical source lines (1-based) for diagnostics.
type LineSource interface {
	Line(n uint32) string
}
