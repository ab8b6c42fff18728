package parser

import (
	"ferrite/internal/source"
	"ferrite/internal/token"
)

// many repeats f until it fails. A recoverable failure ends the list;
// a committed one is returned.
func many[T any](p *Parser, f func() (T, error)) ([]T, error) {
	var out []T
	for {
		start := p.index
		v, err := f()
		if err != nil {
			if p.index == start {
				return out, nil
			}
			return nil, err
		}
		out = append(out, v)
		if p.index == start {
			return out, nil
		}
	}
}

// manySeparated parses `item (sep item)* sep?`. The list may be empty, and a
// trailing separator is kept when the item after it fails recoverably.
func manySeparated[T any](p *Parser, sep token.Kind, f func() (T, error)) ([]T, []source.Span, error) {
	var (
		items []T
		seps  []source.Span
	)
	start := p.index
	v, err := f()
	if err != nil {
		if p.index == start {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	items = append(items, v)
	for {
		s := p.eat(sep)
		if s == nil {
			return items, seps, nil
		}
		seps = append(seps, *s)
		start = p.index
		v, err = f()
		if err != nil {
			if p.index == start {
				return items, seps, nil
			}
			return nil, nil, err
		}
		items = append(items, v)
	}
}

func manyCommaSeparated[T any](p *Parser, f func() (T, error)) ([]T, []source.Span, error) {
	return manySeparated(p, token.Comma, f)
}

// maybe turns a recoverable failure into absence.
func maybe[T any](p *Parser, f func() (T, error)) (v T, ok bool, err error) {
	start := p.index
	v, err = f()
	if err != nil {
		var zero T
		if p.index == start {
			return zero, false, nil
		}
		return zero, false, err
	}
	return v, true, nil
}

// oneOf tries the alternatives in order. The first success or committed
// failure wins; if all fail recoverably the result is Expected(what).
func oneOf[T any](p *Parser, what string, alts ...func() (T, error)) (T, error) {
	var zero T
	for _, alt := range alts {
		start := p.index
		v, err := alt()
		if err == nil {
			return v, nil
		}
		if p.index != start {
			return zero, err
		}
	}
	return zero, p.expected(what)
}
