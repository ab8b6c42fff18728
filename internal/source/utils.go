package source

import (
	"bytes"
	"path/filepath"

	"fortio.org/safecast"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeContent strips a UTF-8 BOM and transcodes BOM-marked UTF-16 to UTF-8.
// Content without a BOM is returned untouched, invalid UTF-8 included.
func decodeContent(raw []byte) ([]byte, FileFlags, error) {
	var flags FileFlags
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		flags |= FileHadBOM
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		flags |= FileHadBOM | FileDecodedUTF16
	default:
		return raw, 0, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
	if err != nil {
		return nil, 0, err
	}
	return out, flags, nil
}

// normalizeCRLF заменяет все \r\n на \n, одиночные \r остаются.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content, false
	}
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n")), true
}

// buildLineStarts returns every line start offset followed by len(content),
// the latter only when it is not already a line start.
func buildLineStarts(content []byte) []uint32 {
	size, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(err)
	}
	out := make([]uint32, 1, bytes.Count(content, []byte{'\n'})+2)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)+1) // #nosec G115 -- i < size
		}
	}
	if out[len(out)-1] != size {
		out = append(out, size)
	}
	return out
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
