package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint",
			a:        Span{File: 1, Start: 2, End: 4},
			b:        Span{File: 1, Start: 8, End: 9},
			expected: Span{File: 1, Start: 2, End: 9},
		},
		{
			name:     "nested",
			a:        Span{File: 1, Start: 0, End: 10},
			b:        Span{File: 1, Start: 3, End: 4},
			expected: Span{File: 1, Start: 0, End: 10},
		},
		{
			name:     "reversed order",
			a:        Span{File: 1, Start: 8, End: 9},
			b:        Span{File: 1, Start: 2, End: 4},
			expected: Span{File: 1, Start: 2, End: 9},
		},
		{
			name:     "different files keep receiver",
			a:        Span{File: 1, Start: 8, End: 9},
			b:        Span{File: 2, Start: 0, End: 4},
			expected: Span{File: 1, Start: 8, End: 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_ContainsAndText(t *testing.T) {
	outer := Span{File: 0, Start: 4, End: 9}
	if !outer.Contains(Span{Start: 4, End: 9}) || !outer.Contains(Span{Start: 5, End: 5}) {
		t.Errorf("expected containment")
	}
	if outer.Contains(Span{Start: 3, End: 5}) || outer.Contains(Span{File: 1, Start: 5, End: 6}) {
		t.Errorf("unexpected containment")
	}
	if got := outer.Text("let answer = 42"); got != "answe" {
		t.Errorf("Text = %q", got)
	}
	if got := (Span{Start: 10, End: 40}).Text("short"); got != "" {
		t.Errorf("out of range Text = %q", got)
	}
	if got := (Span{Start: 1, End: 3}).To(Span{Start: 7, End: 9}); got != (Span{Start: 1, End: 9}) {
		t.Errorf("To = %v", got)
	}
}

func TestPos_Span(t *testing.T) {
	p := Pos{File: 3, Index: 15}
	if got := p.Span(); got != (Span{File: 3, Start: 15, End: 16}) {
		t.Errorf("Span() = %v", got)
	}
	if got := (Span{File: 3, Start: 2, End: 15}).EndPos(); got != p {
		t.Errorf("EndPos() = %v", got)
	}
}

func TestSpanOfPanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	_ = SpanOf(0, 5, 4)
}
