package fuzztests

import (
	"errors"
	"testing"

	"ferrite/internal/lexer"
	"ferrite/internal/source"
	"ferrite/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.fe", clampInput(input)))

		toks, eof, err := lexer.ReadTokens(file.ID, file.Content)
		if err != nil {
			var lexErr *lexer.Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			if int(lexErr.Pos.Index) > len(file.Content) {
				t.Fatalf("error position %d beyond input %d", lexErr.Pos.Index, len(file.Content))
			}
			return
		}
		if int(eof.Index) != len(file.Content) {
			t.Fatalf("eof at %d, want %d", eof.Index, len(file.Content))
		}
		if err := testkit.CheckTokens(file.Content, toks); err != nil {
			t.Fatal(err)
		}
	})
}
