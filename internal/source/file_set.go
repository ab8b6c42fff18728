package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every file loaded during one run and hands out dense FileIDs.
type FileSet struct {
	files   []File
	index   map[string]FileID // path -> latest id
	baseDir string
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// NewFileSetWithBase создаёт FileSet с заданной базовой директорией.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// BaseDir returns the directory used for relative path display.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add stores already-normalised content and returns a fresh FileID.
// Adding the same path twice yields two ids; GetLatest returns the newer one.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:         id,
		Path:       normalizedPath,
		Content:    string(content),
		LineStarts: buildLineStarts(content),
		Hash:       sha256.Sum256(content),
		Flags:      flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, decodes BOM-marked UTF-16, strips a UTF-8 BOM,
// normalises CRLF and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags, err := decodeContent(raw)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Len returns the number of files, including superseded versions.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Get returns the file for id. Unknown ids yield nil.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}
	}
	return f.LineCol(span.Start), f.LineCol(span.End)
}

// LineCol maps a byte offset to a 1-based line and column.
// Offsets past the end clamp to the end of the file.
func (f *File) LineCol(off uint32) LineCol {
	if int(off) > len(f.Content) {
		off = uint32(len(f.Content)) // #nosec G115 -- len fits, checked in Add
	}
	line := f.lineIndex(off)
	return LineCol{Line: uint32(line) + 1, Col: off - f.LineStarts[line] + 1} // #nosec G115
}

// LineCount returns the number of lines; an empty file has one empty line.
func (f *File) LineCount() int {
	return f.realLines()
}

// Line returns the text of the 1-based line n without its newline.
func (f *File) Line(n uint32) string {
	if n == 0 || int(n) > f.realLines() {
		return ""
	}
	start := f.LineStarts[n-1]
	end := uint32(len(f.Content)) // #nosec G115
	if int(n) < len(f.LineStarts) {
		end = f.LineStarts[n]
	}
	line := f.Content[start:end]
	if l := len(line); l > 0 && line[l-1] == '\n' {
		line = line[:l-1]
	}
	return line
}

// FormatPath renders the path for display.
// mode: "absolute", "relative", "basename", "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := filepath.Rel(baseDir, f.Path); err == nil {
			return filepath.ToSlash(rel)
		}
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.Base(f.Path)
	}
	return f.Path
}

// realLines считает строки: терминатор в LineStarts является началом строки
// только если файл пуст или заканчивается на '\n'.
func (f *File) realLines() int {
	n := len(f.LineStarts)
	if n > 1 && f.Content[len(f.Content)-1] != '\n' {
		return n - 1
	}
	return n
}

func (f *File) lineIndex(off uint32) int {
	lines := f.LineStarts[:f.realLines()]
	// бинпоиск: наибольший i, для которого lines[i] <= off
	lo, hi := 0, len(lines)-1
	for lo < hi {
		mid := (lo + hi + 1) >> 1
		if lines[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
