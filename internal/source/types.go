package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // плотная нумерация с нуля
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileDecodedUTF16
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content string
	// LineStarts holds the byte offset of every line start, terminated by len(Content).
	LineStarts []uint32
	Hash       [32]byte
	Flags      FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
