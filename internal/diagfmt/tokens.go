package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ferrite/internal/source"
	"ferrite/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File) error {
	for i, tok := range tokens {
		start, end := file.LineCol(tok.Span.Start), file.LineCol(tok.Span.End)
		if _, err := fmt.Fprintf(w, "%3d: %-16s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(), tok.Text(file.Content),
			start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, text string) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text(text),
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
